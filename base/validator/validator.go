package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/xerrors"
)

const suiAddressHexLen = 64

// IsValidAddress reports whether address is a full length Sui address:
// an optional 0x prefix followed by exactly 64 hex digits.
func IsValidAddress(address string) bool {
	hex := trimHexPrefix(address)
	return len(hex) == suiAddressHexLen && isHex(hex)
}

// IsValidShortAddress accepts the abbreviated forms used in type tags, e.g. 0x2.
func IsValidShortAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return false
	}
	hex := address[2:]
	return len(hex) > 0 && len(hex) <= suiAddressHexLen && isHex(hex)
}

func trimHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

type validation struct {
	tag string
	fn  validator.Func
}

var validations = []validation{
	{tag: "suiaddr", fn: func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	}},
	{tag: "suiaddrs", fn: func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.Slice {
			return false
		}
		for i := 0; i < field.Len(); i++ {
			if !IsValidAddress(field.Index(i).String()) {
				return false
			}
		}
		return true
	}},
}

// New returns a validator that knows the `suiaddr` tag and reports fields by their `name` tag.
func New() (*validator.Validate, error) {
	v := validator.New()
	if err := register(v, validations); err != nil {
		return nil, err
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("name"); name != "" {
			return name
		}
		return f.Name
	})
	return v, nil
}

func register(v *validator.Validate, vs []validation) error {
	for _, c := range vs {
		if err := v.RegisterValidation(c.tag, c.fn); err != nil {
			return xerrors.Errorf("failed to register %q: %w", c.tag, err)
		}
	}
	return nil
}
