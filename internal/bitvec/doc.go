// Package bitvec implements the fixed-width configuration words bound to
// CFG and ARI1 instances, and the rules turning input bits into lookup
// table addresses.
//
// A word is written `<width>'h<hex>` and stored least-significant bit
// first, so bit i of the word is bit i of the hexadecimal value. Two
// address rules exist:
//
//   - Index: the first bit is the least significant one. CFG instances
//     concatenate their inputs in declared order and read the result
//     reversed, so the last-declared input is the address MSB.
//   - IndexMSBFirst: the first bit is the most significant one. ARI1 forms
//     its (a, d, c, b) address this way.
package bitvec
