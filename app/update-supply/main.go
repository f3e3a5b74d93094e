package main

import (
	"github.com/spf13/pflag"

	"github.com/braav-io/setup/app/internal/tool"
	"github.com/braav-io/setup/domain/nft"
)

func main() {
	tool.Main(tool.Tool{
		Name: "update-supply",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("new-supply-limit", "", "new supply limit (NEW_SUPPLY_LIMIT)")
			fs.String("variant", "BRAAV3", "coin marker type argument of the SupplyCap")
		},
		Require: []string{"Mnemonic", "CreatorCapId", "PackageId", "SuiNetwork", "SupplyCapId", "CounterId", "NewSupplyLimit"},
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
	resp, err := uc.UpdateSupply(env.Ctx, nft.UpdateSupplyInput{
		NewLimit: env.Config.NewSupplyLimit,
		Variant:  variant,
	})
	if err != nil {
		return err
	}
	env.Console.Success("Updated %s supply to %d", variant.Name, env.Config.NewSupplyLimit)
	env.Console.Field("Digest", resp.Digest)
	return nil
}
