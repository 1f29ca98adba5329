package radixkey

// FixedBytes is the built-in oracle for keys decomposed into a fixed number
// of raw bytes, such as a packed struct key or a []byte prefix of a known
// width. NumLevels must equal the length of every value's byte slice; level
// 0 is byte index 0. Values with fewer bytes than NumLevels are a contract
// violation in the caller's own slicing, not something this oracle can
// detect.
type FixedBytes struct {
	NumLevels int
}

func (o FixedBytes) Levels() int { return o.NumLevels }

func (o FixedBytes) Digit(v []byte, level int) byte {
	return v[level]
}
