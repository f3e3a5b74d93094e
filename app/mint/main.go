package main

import (
	"github.com/spf13/pflag"

	"github.com/braav-io/setup/app/internal/tool"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/nft"
)

func main() {
	tool.Main(tool.Tool{
		Name: "mint",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("recipient", "", "address receiving the NFT (RECIPIENT_ADDRESS)")
			fs.String("name", "NFT_Example", "NFT name")
			fs.String("coin-id", "COIN_123", "coin id")
			fs.String("variant", "BRAAV1", "coin marker type argument")
		},
		Require: []string{"Mnemonic", "PackageId", "SuiNetwork", "SupplyCapId", "LineageId", "CounterId", "RecipientAddress"},
		Run:     run,
	})
}

func run(env *tool.Env) error {
	variant, err := env.Variant()
	if err != nil {
		return err
	}
	uc, err := env.Nft()
	if err != nil {
		return err
	}
	res, err := uc.Mint(env.Ctx, nft.MintInput{
		Name:      env.String("name"),
		CoinId:    env.String("coin-id"),
		Recipient: domain.Address(env.Config.RecipientAddress),
		Variant:   variant,
	})
	if err != nil {
		return err
	}
	printMint(env, res)
	return nil
}

func printMint(env *tool.Env, res *nft.MintResult) {
	recipient, timestamp, quantity := res.Recipient.String(), nft.NotFound, "0"
	if res.LastRecord != nil {
		recipient = res.LastRecord.Recipient.String()
		timestamp = res.LastRecord.Timestamp
		quantity = res.LastRecord.Quantity
	}
	env.Console.Success("Minted and Shared NFT with recipient %s", recipient)
	env.Console.Field("NFT Object ID", res.NftId)
	env.Console.Field("Timestamp", timestamp)
	env.Console.Field("Quantity", quantity)
	env.Console.Field("Digest", res.Digest)
	env.Console.Field("Gas (SUI)", res.GasCostSui)
}
