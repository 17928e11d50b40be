package numeric

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fits reports whether value can be stored in a NUMERIC(precision, scale)
// column without rounding or overflow.
func Fits(value decimal.Decimal, precision, scale int32) bool {
	if scale < 0 || precision <= 0 || scale > precision {
		return false
	}

	if !value.Equal(value.Truncate(scale)) {
		return false
	}

	return value.Abs().LessThan(decimal.New(1, precision-scale))
}

// ParseSpec parses a "precision.scale" pair such as "6.2".
func ParseSpec(spec string) (precision, scale int32, err error) {
	left, right, found := strings.Cut(spec, ".")
	if !found {
		return 0, 0, fmt.Errorf("invalid numeric spec %q", spec)
	}

	p, err := strconv.ParseInt(left, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numeric precision %q: %w", left, err)
	}

	s, err := strconv.ParseInt(right, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numeric scale %q: %w", right, err)
	}

	return int32(p), int32(s), nil
}
