package main

import (
	"github.com/spf13/pflag"

	"github.com/braav-io/setup/app/internal/tool"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/display"
	displayUsecase "github.com/braav-io/setup/stores/display/usecase"
)

func main() {
	tool.Main(tool.Tool{
		Name: "display",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("publisher", "", "Publisher object of the package (PUBLISHER_ID)")
			fs.String("variant", "BRAAV1", "coin marker type argument")
		},
		Require: []string{"Mnemonic", "PublisherId", "PackageId", "SuiNetwork", "DisplayGasBudget"},
		Run:     run,
	})
}

func run(env *tool.Env) error {
	variant, err := env.Variant()
	if err != nil {
		return err
	}
	tx, err := env.Transaction()
	if err != nil {
		return err
	}
	uc := displayUsecase.New(&displayUsecase.DisplayUseCaseCfg{
		Transaction: tx,
		Object:      env.Object(),
		PackageId:   env.PackageId(),
		GasBudget:   env.Config.DisplayGasBudget,
	})
	res, err := uc.Create(env.Ctx, display.CreateInput{
		PublisherId: domain.ObjectId(env.Config.PublisherId),
		Variant:     variant,
	})
	if err != nil {
		return err
	}
	env.Console.Success("Display created")
	return env.Console.JSON(res)
}
