package main

import (
	"github.com/spf13/pflag"

	"github.com/braav-io/setup/app/internal/tool"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/nft"
)

func main() {
	tool.Main(tool.Tool{
		Name: "edit-nft",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("nft", "", "NFT object to update (NFT_OBJECT_ID)")
			fs.String("name", "Updated_NFT_Name", "new name")
			fs.String("coin-id", "NEW_COIN_456", "new coin id")
			fs.String("variant", "BRAAV1", "coin marker type argument")
		},
		Require: []string{"Mnemonic", "PackageId", "SuiNetwork", "NftObjectId", "CreatorCapId"},
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

	in := nft.UpdateMetadataInput{
		NftId:   domain.ObjectId(env.Config.NftObjectId),
		Name:    env.String("name"),
		CoinId:  env.String("coin-id"),
		Variant: variant,
	}
	resp, err := uc.UpdateMetadata(env.Ctx, in)
	if err != nil {
		return err
	}
	env.Console.Success("Updated NFT %s with name: %s, coin_id: %s", in.NftId, in.Name, in.CoinId)
	env.Console.Field("Digest", resp.Digest)
	return nil
}
