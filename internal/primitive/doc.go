// Package primitive describes the FPGA primitives a netlist is built from
// and decodes their configuration words into logic functions.
//
// Instance kinds are INBUF, OUTBUF, TRIBUFF, CFG1..CFG4 and ARI1. Net
// nodes (input, output, constant) and the AND/OR voters inserted by the
// TMR transform share the same Kind type so a graph node carries a single
// discriminator.
package primitive
