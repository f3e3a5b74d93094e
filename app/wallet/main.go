package main

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/spf13/pflag"

	"github.com/braav-io/setup/app/internal/tool"
	"github.com/braav-io/setup/domain/wallet"
	walletUsecase "github.com/braav-io/setup/stores/wallet/usecase"
)

func main() {
	tool.Main(tool.Tool{
		Name: "wallet",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("user-id", "user123", "user the wallet belongs to")
			fs.String("created-at", time.Now().UTC().Format(time.RFC3339), "user creation time")
			fs.String("secret", "", "per user secret, random when empty")
		},
		Run: run,
	})
}

func run(env *tool.Env) error {
	secret := env.String("secret")
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return err
		}
		secret = hex.EncodeToString(buf)
	}

	uc := walletUsecase.New(&walletUsecase.WalletUseCaseCfg{WalletSecret: env.Config.WalletSecret})
	w, err := uc.CreateCustodialWallet(env.Ctx, wallet.UserDetails{
		Id:        env.String("user-id"),
		CreatedAt: env.String("created-at"),
		SecretKey: secret,
	})
	if err != nil {
		return err
	}
	return env.Console.JSON(w)
}
