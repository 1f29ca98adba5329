package radixkey

// Uint8 is the built-in oracle for byte-sized unsigned keys.
type Uint8 struct{}

func (Uint8) Levels() int { return 1 }

func (Uint8) Digit(v uint8, _ int) byte { return v }

// Uint16 extracts digits little-endian: level 0 is the low byte.
type Uint16 struct{}

func (Uint16) Levels() int { return 2 }

func (Uint16) Digit(v uint16, level int) byte {
	return byte(v >> (uint(level) * 8))
}

// Uint32 extracts digits little-endian: level 0 is the low byte.
type Uint32 struct{}

func (Uint32) Levels() int { return 4 }

func (Uint32) Digit(v uint32, level int) byte {
	return byte(v >> (uint(level) * 8))
}

// Uint64 extracts digits little-endian: level 0 is the low byte.
type Uint64 struct{}

func (Uint64) Levels() int { return 8 }

func (Uint64) Digit(v uint64, level int) byte {
	return byte(v >> (uint(level) * 8))
}
