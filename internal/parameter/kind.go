package parameter

import "fmt"

// Kind classifies a raw parameter value.
type Kind int

// Recognised value kinds.
const (
	// KindUnknown is the zero value and is never returned with a nil error.
	KindUnknown Kind = iota

	// KindInteger is a whole number.
	KindInteger

	// KindFloat is a decimal number. Integral floats stay KindFloat.
	KindFloat

	// KindSelect is a fixed ordered set of options.
	KindSelect
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Options is the ordered option set of a Select parameter.
type Options []string

// Classify determines the kind of a raw value from its Go type.
//
// Integer types map to KindInteger, float32/float64 to KindFloat, and
// Options or []string to KindSelect. Strings, booleans, nil and every other
// type are rejected; bool is not treated as a whole number.
//
// Parameters:
//   - raw: Value to classify
//
// Returns:
//   - Kind: The value's kind
//   - error: ErrUnsupportedValueKind if raw has none of the recognised shapes
func Classify(raw any) (Kind, error) {
	switch raw.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindInteger, nil
	case float32, float64:
		return KindFloat, nil
	case Options, []string:
		return KindSelect, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %T", ErrUnsupportedValueKind, raw)
	}
}
