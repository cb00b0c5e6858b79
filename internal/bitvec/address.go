package bitvec

// Index forms a table address from bits given in declaration order, the
// first bit being the least significant. Index(a, b) == b<<1 | a.
func Index(bits ...bool) int {
	idx := 0
	for i, b := range bits {
		if b {
			idx |= 1 << uint(i)
		}
	}
	return idx
}

// IndexMSBFirst forms a table address with the first bit most
// significant. IndexMSBFirst(a, d, c, b) == a<<3 | d<<2 | c<<1 | b.
func IndexMSBFirst(bits ...bool) int {
	idx := 0
	for _, b := range bits {
		idx <<= 1
		if b {
			idx |= 1
		}
	}
	return idx
}

// Lookup reads the table entry addressed by inputs under the Index rule.
func (w Word) Lookup(inputs ...bool) bool {
	return w.Bit(Index(inputs...))
}
