package base

// PackLongArrayTight packs values into longs the way Litematica stores block
// states: entries are bitsPerEntry wide, least significant first, and may
// span two longs.
func PackLongArrayTight(values []int, bitsPerEntry int) []int64 {
	if bitsPerEntry <= 0 {
		return nil
	}
	longs := make([]uint64, (len(values)*bitsPerEntry+63)/64)
	mask := uint64(1)<<bitsPerEntry - 1

	for i, v := range values {
		bit := i * bitsPerEntry
		word, shift := bit/64, bit%64
		u := uint64(v) & mask
		longs[word] |= u << shift
		if shift+bitsPerEntry > 64 {
			longs[word+1] |= u >> (64 - shift)
		}
	}

	out := make([]int64, len(longs))
	for i, l := range longs {
		out[i] = int64(l)
	}
	return out
}

// UnpackLongArrayTight reads count entries packed by PackLongArrayTight.
// Entries past the end of longs are zero.
func UnpackLongArrayTight(longs []int64, bitsPerEntry, count int) []int {
	values := make([]int, count)
	if bitsPerEntry <= 0 {
		return values
	}
	mask := uint64(1)<<bitsPerEntry - 1

	for i := range values {
		bit := i * bitsPerEntry
		word, shift := bit/64, bit%64
		if word >= len(longs) {
			break
		}
		u := uint64(longs[word]) >> shift
		if shift+bitsPerEntry > 64 && word+1 < len(longs) {
			u |= uint64(longs[word+1]) << (64 - shift)
		}
		values[i] = int(u & mask)
	}
	return values
}
