package main

import (
	"github.com/spf13/pflag"

	"github.com/braav-io/setup/app/internal/tool"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/nft"
)

func main() {
	tool.Main(tool.Tool{
		Name: "mint-batch",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("recipients", "", "comma separated recipients (RECIPIENT_ADDRESSES)")
			fs.String("quantity", "", "NFTs per recipient (QUANTITY)")
			fs.String("name-prefix", "NFT_Example", "name prefix, suffixed with _<n>")
			fs.String("coin-prefix", "COIN", "coin id prefix, suffixed with _<n>")
			fs.Bool("await-lineage", false, "poll the lineage object after the batch")
		},
		Require: []string{"Mnemonic", "PackageId", "SupplyCapId", "CreatorCapId", "LineageId", "CounterId", "SuiNetwork", "RecipientAddresses", "Quantity"},
		Run:     run,
	})
}

func run(env *tool.Env) error {
	uc, err := env.Nft()
	if err != nil {
		return err
	}
	recipients := make([]domain.Address, 0, len(env.Config.RecipientAddresses))
	for _, r := range env.Config.RecipientAddresses {
		recipients = append(recipients, domain.Address(r))
	}

	res, err := uc.MintBatch(env.Ctx, nft.BatchMintInput{
		Recipients: recipients,
		Quantity:   env.Config.Quantity,
		NamePrefix: env.String("name-prefix"),
		CoinPrefix: env.String("coin-prefix"),
	})
	if err != nil {
		return err
	}
	env.Console.Field("Detected BRAAV type", res.Variant)
	for _, m := range res.Minted {
		if m.NftId == nft.NotFound {
			env.Console.Warn("NFT not found for recipient %s (%s)", m.Recipient, m.Name)
		}
	}
	env.Console.Success("Minted %d NFTs per recipient:", env.Config.Quantity)
	if err := env.Console.JSON(res); err != nil {
		return err
	}

	if await, _ := env.Flags.GetBool("await-lineage"); await {
		last, err := env.Lineage().AwaitLastRecord(env.Ctx, domain.ObjectId(env.Config.LineageId))
		if err != nil {
			return err
		}
		if last == nil {
			env.Console.Warn("Lineage has no records yet")
			return nil
		}
		env.Console.Field("Last lineage record", last.Recipient)
		env.Console.Field("Timestamp", last.Timestamp)
		env.Console.Field("Quantity", last.Quantity)
	}
	return nil
}
