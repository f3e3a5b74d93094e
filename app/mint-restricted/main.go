package main

import (
	"github.com/spf13/pflag"

	"github.com/braav-io/setup/app/internal/tool"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/nft"
)

func main() {
	tool.Main(tool.Tool{
		Name: "mint-restricted",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("recipient", "", "address receiving the NFT (RECIPIENT_ADDRESS)")
			fs.String("name", "Restricted_NFT_Example", "NFT name")
			fs.String("coin-id", "RESTRICTED_COIN_123", "coin id")
			fs.String("variant", "BRAAV3", "coin marker type argument")
		},
		Require: []string{"Mnemonic", "PackageId", "SuiNetwork", "CreatorCapId", "SupplyCapId", "LineageId", "CounterId", "RecipientAddress"},
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
	res, err := uc.MintRestricted(env.Ctx, nft.MintInput{
		Name:      env.String("name"),
		CoinId:    env.String("coin-id"),
		Recipient: domain.Address(env.Config.RecipientAddress),
		Variant:   variant,
	})
	if err != nil {
		return err
	}
	env.Console.Success("Minted non-transferable RestrictedNFT for %s", res.Recipient)
	env.Console.Field("RestrictedNFT Object ID", res.NftId)
	if res.LastRecord != nil {
		env.Console.Field("Timestamp", res.LastRecord.Timestamp)
		env.Console.Field("Quantity", res.LastRecord.Quantity)
	}
	env.Console.Field("Digest", res.Digest)
	env.Console.Warn("Only admins can transfer this NFT using restricted_transfer.")
	return nil
}
