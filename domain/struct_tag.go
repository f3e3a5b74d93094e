package domain

import (
	"strings"

	"golang.org/x/xerrors"

	"github.com/braav-io/setup/base/validator"
)

var primitiveTypes = map[string]bool{
	"bool": true, "u8": true, "u16": true, "u32": true, "u64": true,
	"u128": true, "u256": true, "address": true, "signer": true,
}

// StructTag is a fully qualified Move struct type, e.g. 0x2::display::Display<0xabc::nft::NFT>.
type StructTag struct {
	Address    Address
	Module     string
	Name       string
	TypeParams []TypeTag
}

// TypeTag is one of: a primitive (Name), a vector (Name "vector" and Elem) or a struct.
type TypeTag struct {
	Name   string
	Elem   *TypeTag
	Struct *StructTag
}

func NewStructTag(address Address, module, name string, typeParams ...TypeTag) StructTag {
	return StructTag{Address: address.Normalize(), Module: module, Name: name, TypeParams: typeParams}
}

func StructType(s StructTag) TypeTag {
	return TypeTag{Struct: &s}
}

// String renders the canonical form with normalized addresses.
func (s StructTag) String() string {
	var b strings.Builder
	b.WriteString(string(s.Address.Normalize()))
	b.WriteString("::")
	b.WriteString(s.Module)
	b.WriteString("::")
	b.WriteString(s.Name)
	if len(s.TypeParams) > 0 {
		b.WriteByte('<')
		for i, p := range s.TypeParams {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteByte('>')
	}
	return b.String()
}

func (t TypeTag) String() string {
	switch {
	case t.Struct != nil:
		return t.Struct.String()
	case t.Elem != nil:
		return "vector<" + t.Elem.String() + ">"
	default:
		return t.Name
	}
}

// Equals compares two tags after address normalization, type parameters included.
func (s StructTag) Equals(o StructTag) bool {
	return s.String() == o.String()
}

// Is matches address, module and name, ignoring type parameters.
func (s StructTag) Is(address Address, module, name string) bool {
	return s.Address.Equals(address) && s.Module == module && s.Name == name
}

// ParseStructTag parses a struct type as returned by the fullnode.
func ParseStructTag(raw string) (StructTag, error) {
	t, err := ParseTypeTag(raw)
	if err != nil {
		return StructTag{}, err
	}
	if t.Struct == nil {
		return StructTag{}, xerrors.Errorf("%s is not a struct: %w", raw, ErrInvalidStructTag)
	}
	return *t.Struct, nil
}

func ParseTypeTag(raw string) (TypeTag, error) {
	p := &typeParser{s: raw}
	t, err := p.parseType()
	if err != nil {
		return TypeTag{}, xerrors.Errorf("%s: %w", raw, err)
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return TypeTag{}, xerrors.Errorf("%s: trailing input at %d: %w", raw, p.pos, ErrInvalidStructTag)
	}
	return t, nil
}

type typeParser struct {
	s   string
	pos int
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t' || p.s[p.pos] == '\n') {
		p.pos++
	}
}

func (p *typeParser) peek() byte {
	if p.pos < len(p.s) {
		return p.s[p.pos]
	}
	return 0
}

func (p *typeParser) ident() string {
	start := p.pos
	for p.pos < len(p.s) && !strings.ContainsRune("<>, \t\n", rune(p.s[p.pos])) {
		p.pos++
	}
	return p.s[start:p.pos]
}

func (p *typeParser) parseParams() ([]TypeTag, error) {
	// caller saw '<'
	p.pos++
	var params []TypeTag
	for {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, t)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '>':
			p.pos++
			return params, nil
		default:
			return nil, xerrors.Errorf("unexpected end of type parameters at %d: %w", p.pos, ErrInvalidStructTag)
		}
	}
}

func (p *typeParser) parseType() (TypeTag, error) {
	p.skipSpace()
	name := p.ident()
	if name == "" {
		return TypeTag{}, xerrors.Errorf("empty type at %d: %w", p.pos, ErrInvalidStructTag)
	}
	p.skipSpace()

	if !strings.Contains(name, "::") {
		if name == "vector" {
			if p.peek() != '<' {
				return TypeTag{}, xerrors.Errorf("vector without element type: %w", ErrInvalidStructTag)
			}
			params, err := p.parseParams()
			if err != nil {
				return TypeTag{}, err
			}
			if len(params) != 1 {
				return TypeTag{}, xerrors.Errorf("vector takes one element type: %w", ErrInvalidStructTag)
			}
			return TypeTag{Name: "vector", Elem: &params[0]}, nil
		}
		if !primitiveTypes[name] {
			return TypeTag{}, xerrors.Errorf("unknown primitive %s: %w", name, ErrInvalidStructTag)
		}
		return TypeTag{Name: name}, nil
	}

	parts := strings.Split(name, "::")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return TypeTag{}, xerrors.Errorf("%s is not address::module::name: %w", name, ErrInvalidStructTag)
	}
	if !validator.IsValidShortAddress(parts[0]) {
		return TypeTag{}, xerrors.Errorf("bad address %s: %w", parts[0], ErrInvalidStructTag)
	}
	st := NewStructTag(Address(parts[0]), parts[1], parts[2])
	if p.peek() == '<' {
		params, err := p.parseParams()
		if err != nil {
			return TypeTag{}, err
		}
		st.TypeParams = params
	}
	return TypeTag{Struct: &st}, nil
}
