package parameter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{input: 0.25, want: "0.25"},
		{input: 140, want: "140.0"},
		{input: -2.5, want: "-2.5"},
		{input: 0, want: "0.0"},
		{input: math.Copysign(0, -1), want: "-0.0"},
		{input: 0.1, want: "0.1"},
		{input: 1234567.0, want: "1234567.0"},
		{input: 0.0001, want: "0.0001"},
		{input: 0.00001, want: "1e-05"},
		{input: 1.5e-7, want: "1.5e-07"},
		{input: 1e16, want: "1e+16"},
		{input: 9999999999999998, want: "9999999999999998.0"},
		{input: math.NaN(), want: "nan"},
		{input: math.Inf(1), want: "inf"},
		{input: math.Inf(-1), want: "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFloat(tt.input))
		})
	}
}

func TestFormatInteger(t *testing.T) {
	assert.Equal(t, "140", formatInteger(140))
	assert.Equal(t, "-128", formatInteger(int8(-128)))
	assert.Equal(t, "18446744073709551615", formatInteger(uint64(math.MaxUint64)))
	assert.Equal(t, "-9223372036854775808", formatInteger(int64(math.MinInt64)))
}

func TestFloatHolder_Float32Widening(t *testing.T) {
	h := NewFloatHolder(float32(0.1))

	assert.Equal(t, 0.1, h.Float())
	assert.Equal(t, KindFloat, h.Kind())
}

func TestSelectHolder_CopiesOptions(t *testing.T) {
	src := Options{"A", "B"}
	h := NewSelectHolder(src)

	src[0] = "Z"
	assert.Equal(t, Options{"A", "B"}, h.Options())

	got := h.Options()
	got[1] = "Y"
	assert.Equal(t, Options{"A", "B"}, h.Value())
}

func TestIntegerHolder_KeepsOriginalType(t *testing.T) {
	h := NewIntegerHolder(uint8(7))

	assert.Equal(t, uint8(7), h.Value())
	assert.Equal(t, KindInteger, h.Kind())
}
