package main

import (
	"github.com/spf13/pflag"

	"github.com/braav-io/setup/app/internal/tool"
	"github.com/braav-io/setup/domain"
)

func main() {
	tool.Main(tool.Tool{
		Name: "read-nft",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("nft", "", "NFT object to read (NFT_OBJECT_ID)")
		},
		Require: []string{"SuiNetwork", "PackageId", "NftObjectId"},
		Run:     run,
	})
}

func run(env *tool.Env) error {
	// reading needs no signer, MNEMONIC may be absent
	res, err := env.NftReader().Read(env.Ctx, domain.ObjectId(env.Config.NftObjectId))
	if err != nil {
		return err
	}
	env.Console.Field("NFT Metadata", "")
	if err := env.Console.JSON(res.Metadata); err != nil {
		return err
	}
	if res.DisplayData == nil {
		env.Console.Field("Display Data", "No display data available")
		return nil
	}
	env.Console.Field("Display Data", "")
	return env.Console.JSON(res.DisplayData)
}
