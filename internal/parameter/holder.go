package parameter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueHolder is the immutable storage of a raw parameter value.
//
// The set of implementations is closed: IntegerHolder, FloatHolder and
// SelectHolder.
type ValueHolder interface {
	// Kind returns the kind of the stored value.
	Kind() Kind

	// Value returns the stored value. Select holders return a copy of
	// their options.
	Value() any

	sealedHolder()
}

// IntegerHolder stores a whole number in its original Go integer type.
type IntegerHolder struct {
	value any
}

// NewIntegerHolder stores an integer value.
func NewIntegerHolder(raw any) *IntegerHolder {
	return &IntegerHolder{value: raw}
}

// Kind returns KindInteger.
func (h *IntegerHolder) Kind() Kind { return KindInteger }

// Value returns the stored integer.
func (h *IntegerHolder) Value() any { return h.value }

func (h *IntegerHolder) sealedHolder() {}

// FloatHolder stores a decimal number widened to float64.
type FloatHolder struct {
	value float64
}

// NewFloatHolder stores a float value.
func NewFloatHolder(raw any) *FloatHolder {
	return &FloatHolder{value: toFloat64(raw)}
}

// Kind returns KindFloat.
func (h *FloatHolder) Kind() Kind { return KindFloat }

// Value returns the stored float64.
func (h *FloatHolder) Value() any { return h.value }

// Float returns the stored value.
func (h *FloatHolder) Float() float64 { return h.value }

func (h *FloatHolder) sealedHolder() {}

// SelectHolder stores its own copy of an option set.
type SelectHolder struct {
	options Options
}

// NewSelectHolder stores a copy of the given options.
func NewSelectHolder(raw any) *SelectHolder {
	return &SelectHolder{options: toOptions(raw)}
}

// Kind returns KindSelect.
func (h *SelectHolder) Kind() Kind { return KindSelect }

// Value returns a copy of the options.
func (h *SelectHolder) Value() any { return h.Options() }

// Options returns a copy of the options.
func (h *SelectHolder) Options() Options {
	return cloneOptions(h.options)
}

func (h *SelectHolder) sealedHolder() {}

// toFloat64 widens float32 through its shortest decimal form so that
// float32(0.1) is held as 0.1 rather than 0.10000000149011612.
func toFloat64(raw any) float64 {
	switch v := raw.(type) {
	case float32:
		f, err := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
		if err != nil {
			return float64(v)
		}
		return f
	case float64:
		return v
	default:
		return math.NaN()
	}
}

// toOptions copies a Select raw value into a fresh Options slice.
func toOptions(raw any) Options {
	switch v := raw.(type) {
	case Options:
		return cloneOptions(v)
	case []string:
		return cloneOptions(v)
	default:
		return nil
	}
}

func cloneOptions(src []string) Options {
	if src == nil {
		return nil
	}
	cpy := make(Options, len(src))
	copy(cpy, src)
	return cpy
}

// formatInteger renders any Go integer in base 10.
func formatInteger(raw any) string {
	switch v := raw.(type) {
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

// Exponent form is used outside [floatPlainMin, floatPlainMax).
const (
	floatPlainMin = 1e-4
	floatPlainMax = 1e16
)

// formatFloat renders the shortest decimal that round-trips to f.
//
// Plain notation always carries a fractional part ("140.0") so a float
// never reads as an integer. Very small and very large magnitudes use
// exponent form ("1e-05", "1e+16").
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < floatPlainMin || abs >= floatPlainMax) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
