package usecase

import (
	"crypto/sha256"
	"encoding/hex"

	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/base/log"
	"github.com/braav-io/setup/base/sui"
	"github.com/braav-io/setup/domain/wallet"
)

type WalletUseCaseCfg struct {
	WalletSecret string
	// NewMnemonic defaults to a fresh 12 word phrase
	NewMnemonic func() (string, error)
}

type impl struct {
	walletSecret string
	newMnemonic  func() (string, error)
}

func New(cfg *WalletUseCaseCfg) wallet.UseCase {
	newMnemonic := cfg.NewMnemonic
	if newMnemonic == nil {
		newMnemonic = sui.NewMnemonic
	}
	return &impl{
		walletSecret: cfg.WalletSecret,
		newMnemonic:  newMnemonic,
	}
}

func (im *impl) CreateCustodialWallet(ctx bCtx.Ctx, user wallet.UserDetails) (*wallet.Wallet, error) {
	mnemonic, err := im.newMnemonic()
	if err != nil {
		ctx.WithField("err", err).Error("newMnemonic failed")
		return nil, err
	}
	kp, err := sui.KeypairFromMnemonic(mnemonic)
	if err != nil {
		ctx.WithField("err", err).Error("sui.KeypairFromMnemonic failed")
		return nil, err
	}
	exported, err := kp.ExportPrivateKey()
	if err != nil {
		ctx.WithField("err", err).Error("kp.ExportPrivateKey failed")
		return nil, err
	}

	w := &wallet.Wallet{
		Address:            kp.Address(),
		PrivateKey:         kp.PrivateKeyHex(),
		ExportedPrivateKey: exported,
		Mnemonic:           mnemonic,
		Hash:               im.hash(user),
	}
	ctx.WithFields(log.Fields{
		"userId":  user.Id,
		"address": w.Address,
	}).Info("custodial wallet created")
	return w, nil
}

// hash binds the wallet to the user record and the deployment secret.
func (im *impl) hash(user wallet.UserDetails) string {
	sum := sha256.Sum256([]byte(user.Id + user.CreatedAt + user.SecretKey + im.walletSecret))
	return hex.EncodeToString(sum[:])
}
