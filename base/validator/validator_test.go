package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "valid address",
			address:    "0x85256c63276f9f62047042948a1c2a4a2694427498ec759c5ac7e34cbd95c6d4",
			expIsValid: true,
		},
		{
			desc:       "valid address - no prefix, upper case",
			address:    "85256C63276F9F62047042948A1C2A4A2694427498EC759C5AC7E34CBD95C6D4",
			expIsValid: true,
		},
		{
			desc:       "non hex digit",
			address:    "0x85256c63276f9f62047042948a1c2a4a2694427498ec759c5ac7e34cbd95c6dz",
			expIsValid: false,
		},
		{
			desc:       "too long",
			address:    "0x85256c63276f9f62047042948a1c2a4a2694427498ec759c5ac7e34cbd95c6d400",
			expIsValid: false,
		},
		{
			desc:       "empty",
			address:    "",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsValidShortAddress() {
	s.True(IsValidShortAddress("0x2"))
	s.True(IsValidShortAddress("0x0000000000000000000000000000000000000000000000000000000000000006"))
	s.False(IsValidShortAddress("2"))
	s.False(IsValidShortAddress("0x"))
	s.False(IsValidShortAddress("0xg"))
}

func (s *ValidatorTestSuite) TestNew() {
	type target struct {
		Recipient  string   `name:"RECIPIENT_ADDRESS" validate:"suiaddr"`
		Recipients []string `name:"RECIPIENT_ADDRESSES" validate:"suiaddrs"`
	}
	v, err := New()
	s.Require().NoError(err)

	err = v.Struct(target{Recipient: "0x1", Recipients: []string{}})
	var errs validator.ValidationErrors
	s.True(errors.As(err, &errs))
	s.Len(errs, 1)
	s.Equal("RECIPIENT_ADDRESS", errs[0].Field())
	s.Equal("suiaddr", errs[0].Tag())

	addr := "0x85256c63276f9f62047042948a1c2a4a2694427498ec759c5ac7e34cbd95c6d4"
	err = v.Struct(target{Recipient: addr, Recipients: []string{addr, "bad"}})
	s.True(errors.As(err, &errs))
	s.Equal("RECIPIENT_ADDRESSES", errs[0].Field())

	s.NoError(v.Struct(target{Recipient: addr, Recipients: []string{addr}}))
}

func (s *ValidatorTestSuite) TestRegisterRejectsBadTag() {
	always := func(validator.FieldLevel) bool { return true }

	s.Error(register(validator.New(), []validation{{tag: "", fn: always}}))
	s.Error(register(validator.New(), []validation{{tag: "omitempty", fn: always}}))
	s.NoError(register(validator.New(), []validation{{tag: "braav", fn: always}}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
