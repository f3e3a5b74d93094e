// Package sui holds the account primitives: mnemonic handling, the derived
// ed25519 signer and the exported private key format.
package sui

import (
	"crypto/ed25519"
	"encoding/hex"
	"strings"

	"github.com/block-vision/sui-go-sdk/signer"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/xerrors"

	"github.com/braav-io/setup/domain"
)

const (
	ed25519Flag byte = 0x00

	privateKeyHRP = "suiprivkey"
	mnemonicBits  = 128
)

var (
	ErrEmptyMnemonic     = xerrors.New("empty mnemonic")
	ErrInvalidPrivateKey = xerrors.New("invalid private key")
)

// Keypair is the ed25519 account at m/44'/784'/0'/0'/0'.
type Keypair struct {
	signer *signer.Signer
}

// NewMnemonic returns a fresh 12 word english mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicBits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// NormalizeMnemonic trims, lowercases and collapses whitespace.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
}

func KeypairFromMnemonic(mnemonic string) (*Keypair, error) {
	mnemonic = NormalizeMnemonic(mnemonic)
	if mnemonic == "" {
		return nil, ErrEmptyMnemonic
	}
	s, err := signer.NewSignertWithMnemonic(mnemonic)
	if err != nil {
		return nil, xerrors.Errorf("signer.NewSignertWithMnemonic: %w", err)
	}
	return &Keypair{signer: s}, nil
}

// KeypairFromSeed wraps a 32 byte ed25519 seed.
func KeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, xerrors.Errorf("seed has %d bytes: %w", len(seed), ErrInvalidPrivateKey)
	}
	return &Keypair{signer: signer.NewSigner(seed)}, nil
}

func (k *Keypair) Address() domain.Address {
	return domain.Address(k.signer.Address)
}

func (k *Keypair) PublicKey() ed25519.PublicKey {
	return k.signer.PubKey
}

func (k *Keypair) PrivateKey() ed25519.PrivateKey {
	return k.signer.PriKey
}

// Seed returns the 32 byte private seed
func (k *Keypair) Seed() []byte {
	return k.signer.PriKey.Seed()
}

// PrivateKeyHex is the hex encoded private seed without prefix.
func (k *Keypair) PrivateKeyHex() string {
	return hex.EncodeToString(k.Seed())
}

// ExportPrivateKey encodes flag || seed as bech32 with the suiprivkey prefix.
func (k *Keypair) ExportPrivateKey() (string, error) {
	payload := append([]byte{ed25519Flag}, k.Seed()...)
	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(privateKeyHRP, conv)
}
