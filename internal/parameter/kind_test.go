package parameter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Kind
	}{
		{name: "int", raw: 140, want: KindInteger},
		{name: "negative int", raw: -5, want: KindInteger},
		{name: "int8", raw: int8(3), want: KindInteger},
		{name: "int64", raw: int64(1 << 40), want: KindInteger},
		{name: "uint16", raw: uint16(65535), want: KindInteger},
		{name: "uint64", raw: uint64(1 << 63), want: KindInteger},
		{name: "float64", raw: 0.25, want: KindFloat},
		{name: "integral float64", raw: 140.0, want: KindFloat},
		{name: "float32", raw: float32(1.5), want: KindFloat},
		{name: "options", raw: Options{"A", "B", "C"}, want: KindSelect},
		{name: "string slice", raw: []string{"heat", "cool"}, want: KindSelect},
		{name: "empty options", raw: Options{}, want: KindSelect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{name: "string", raw: "text"},
		{name: "bool", raw: true},
		{name: "nil", raw: nil},
		{name: "int slice", raw: []int{1, 2}},
		{name: "any slice", raw: []any{"A", "B"}},
		{name: "map", raw: map[string]int{"a": 1}},
		{name: "complex", raw: complex(1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.raw)
			require.ErrorIs(t, err, ErrUnsupportedValueKind)
			assert.Equal(t, KindUnknown, got)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "integer", KindInteger.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "select", KindSelect.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestNewValue_BoolIsNotInteger(t *testing.T) {
	for _, raw := range []any{true, false} {
		_, err := NewValue(raw)
		assert.ErrorIs(t, err, ErrUnsupportedValueKind)
	}
}
