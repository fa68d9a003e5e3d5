package render

import (
	"math"
	"reflect"
	"strconv"

	"github.com/arthur-debert/insightdump/pkg/markup"
)

func (s *state) null() string {
	return markup.Wrap(ClassNull, "null")
}

func (s *state) boolean(b bool) string {
	literal := strconv.FormatBool(b)
	return markup.Wrap(booleanClass(literal), literal)
}

func (s *state) string(str string) string {
	return markup.Wrap(ClassString, s.text(str))
}

func (s *state) quotedString(str string) string {
	return markup.Wrap(ClassString, "'"+s.text(str)+"'")
}

func (s *state) number(v reflect.Value) string {
	return markup.Wrap(ClassNumber, formatNumber(v))
}

// formatNumber renders a numeric value in its plain decimal form
func formatNumber(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return formatFloat(v.Float(), 32)
	case reflect.Float64:
		return formatFloat(v.Float(), 64)
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	}
	return ""
}

// formatFloat uses positional notation for everyday magnitudes and falls
// back to exponent notation for very large or very small values.
func formatFloat(f float64, bitSize int) string {
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}
