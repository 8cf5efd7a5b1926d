package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Domain is the numeric representation a pair of operands is evaluated in.
type Domain int

const (
	Float    Domain = iota // float64
	Signed                 // int64
	Unsigned               // uint64
)

func (d Domain) String() string {
	switch d {
	case Float:
		return "floating-point"
	case Signed:
		return "signed integer"
	case Unsigned:
		return "unsigned integer"
	default:
		return "unknown"
	}
}

// ConversionError reports a literal that could not be converted to the
// selected domain's representation.
type ConversionError struct {
	Literal string
	Domain  Domain
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to a %s value", e.Literal, e.Domain)
}

// SelectDomain picks the numeric domain for two fully resolved literals.
// First match wins: floating-point whenever either literal carries a
// decimal point, signed whenever either starts with a minus sign, unsigned
// otherwise.
func SelectDomain(base, exponent string) Domain {
	if strings.Contains(base, ".") || strings.Contains(exponent, ".") {
		return Float
	}
	if strings.HasPrefix(base, "-") || strings.HasPrefix(exponent, "-") {
		return Signed
	}
	return Unsigned
}

// Compute raises base to exponent in the selected domain and renders the
// result with the domain's default text conversion. Overflow is not caught:
// integer results wrap and float results follow IEEE 754.
func Compute(base, exponent string) (string, error) {
	switch SelectDomain(base, exponent) {
	case Float:
		return powFloat(base, exponent)
	case Signed:
		return powSigned(base, exponent)
	default:
		return powUnsigned(base, exponent)
	}
}

func powFloat(base, exponent string) (string, error) {
	b, err := strconv.ParseFloat(base, 64)
	if err != nil {
		return "", &ConversionError{Literal: base, Domain: Float}
	}
	e, err := strconv.ParseFloat(exponent, 64)
	if err != nil {
		return "", &ConversionError{Literal: exponent, Domain: Float}
	}
	return strconv.FormatFloat(math.Pow(b, e), 'g', -1, 64), nil
}

func powSigned(base, exponent string) (string, error) {
	b, err := strconv.ParseInt(base, 10, 64)
	if err != nil {
		return "", &ConversionError{Literal: base, Domain: Signed}
	}
	e, err := strconv.ParseInt(exponent, 10, 64)
	if err != nil {
		return "", &ConversionError{Literal: exponent, Domain: Signed}
	}
	return strconv.FormatInt(ipow(b, e), 10), nil
}

func powUnsigned(base, exponent string) (string, error) {
	b, err := strconv.ParseUint(base, 10, 64)
	if err != nil {
		return "", &ConversionError{Literal: base, Domain: Unsigned}
	}
	e, err := strconv.ParseUint(exponent, 10, 64)
	if err != nil {
		return "", &ConversionError{Literal: exponent, Domain: Unsigned}
	}
	return strconv.FormatUint(upow(b, e), 10), nil
}

// ipow is integer exponentiation by squaring. Overflow wraps. A negative
// exponent truncates toward zero, so only bases of magnitude one survive.
func ipow(base, exponent int64) int64 {
	if exponent < 0 {
		switch base {
		case 1:
			return 1
		case -1:
			if exponent%2 == 0 {
				return 1
			}
			return -1
		default:
			return 0
		}
	}
	result := int64(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result *= base
		}
		base *= base
		exponent >>= 1
	}
	return result
}

func upow(base, exponent uint64) uint64 {
	result := uint64(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result *= base
		}
		base *= base
		exponent >>= 1
	}
	return result
}
