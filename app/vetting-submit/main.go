package main

import (
	"github.com/spf13/pflag"

	"github.com/braav-io/setup/app/internal/tool"
	"github.com/braav-io/setup/domain"
	vettingUsecase "github.com/braav-io/setup/stores/vetting/usecase"
)

func main() {
	tool.Main(tool.Tool{
		Name: "vetting-submit",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("vetting-table", "", "VettingTable object (VETTING_TABLE_ID)")
		},
		Require: []string{"PackageId", "VettingTableId", "Mnemonic", "SuiNetwork"},
		Run:     run,
	})
}

func run(env *tool.Env) error {
	tx, err := env.Transaction()
	if err != nil {
		return err
	}
	uc := vettingUsecase.New(&vettingUsecase.VettingUseCaseCfg{
		Transaction: tx,
		PackageId:   env.PackageId(),
		GasBudget:   env.Config.GasBudget,
	})
	resp, err := uc.Submit(env.Ctx, domain.ObjectId(env.Config.VettingTableId))
	if err != nil {
		return err
	}
	env.Console.Success("Submitted for vetting")
	env.Console.Field("Digest", resp.Digest)
	return nil
}
