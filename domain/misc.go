package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/xerrors"

	"github.com/braav-io/setup/base/validator"
)

const addressHexLen = 64

// Address is a 32 byte Sui account address or object id, hex encoded with 0x prefix.
type Address string

// ObjectId shares the address format
type ObjectId = Address

const ClockObjectId = Address("0x6")

func (a Address) String() string {
	return string(a)
}

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsValid reports whether a is a full length address.
func (a Address) IsValid() bool {
	return validator.IsValidAddress(string(a))
}

// Normalize returns the lower case, zero padded 0x form. Short forms such as 0x2 are expanded.
func (a Address) Normalize() Address {
	s := strings.ToLower(strings.TrimSpace(string(a)))
	s = strings.TrimPrefix(s, "0x")
	if len(s) < addressHexLen {
		s = strings.Repeat("0", addressHexLen-len(s)) + s
	}
	return Address("0x" + s)
}

func (a Address) Equals(b Address) bool {
	return a.Normalize() == b.Normalize()
}

// Bytes decodes the normalized address.
func (a Address) Bytes() ([]byte, error) {
	b, err := hexutil.Decode(string(a.Normalize()))
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", a, ErrInvalidAddress)
	}
	return b, nil
}

// ParseAddress trims and validates a full length address.
func ParseAddress(raw string) (Address, error) {
	a := Address(strings.TrimSpace(raw))
	if !a.IsValid() {
		return "", xerrors.Errorf("%s: %w", raw, ErrInvalidAddress)
	}
	return a, nil
}
