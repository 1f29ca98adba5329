package radixkey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint16Digits(t *testing.T) {
	var o Uint16
	require.Equal(t, 2, o.Levels())

	require.Equal(t, byte(0x00), o.Digit(0x0101, 0)^0x01)
	require.Equal(t, byte(0x01), o.Digit(0x0101, 0))
	require.Equal(t, byte(0x01), o.Digit(0x0101, 1))
}

func TestInt32OrderingPreservesSign(t *testing.T) {
	var o Int32
	neg := o.Digit(-1, 3)
	pos := o.Digit(1, 3)
	require.Less(t, neg, pos, "negative numbers must sort before positive ones at the MSB digit")
}

func TestFloat64OrderingPreservesSign(t *testing.T) {
	var o Float64
	neg := o.Digit(-1.5, 7)
	pos := o.Digit(1.5, 7)
	zero := o.Digit(0.0, 7)
	require.Less(t, neg, zero)
	require.Less(t, zero, pos)
}

func TestFixedBytesDigit(t *testing.T) {
	o := FixedBytes{NumLevels: 4}
	v := []byte{0x10, 0x20, 0x30, 0x40}
	require.Equal(t, byte(0x10), o.Digit(v, 0))
	require.Equal(t, byte(0x40), o.Digit(v, 3))
}
