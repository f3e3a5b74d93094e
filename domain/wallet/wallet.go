package wallet

import (
	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/domain"
)

type UserDetails struct {
	Id        string
	CreatedAt string
	SecretKey string
}

type Wallet struct {
	Address            domain.Address `json:"address"`
	PrivateKey         string         `json:"privateKey"`
	ExportedPrivateKey string         `json:"exportedPrivateKey"`
	Mnemonic           string         `json:"mnemonic"`
	Hash               string         `json:"hash"`
}

type UseCase interface {
	CreateCustodialWallet(ctx bCtx.Ctx, user UserDetails) (*Wallet, error)
}
