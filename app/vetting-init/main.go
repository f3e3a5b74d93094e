package main

import (
	"github.com/braav-io/setup/app/internal/tool"
	"github.com/braav-io/setup/domain"
	vettingUsecase "github.com/braav-io/setup/stores/vetting/usecase"
)

func main() {
	tool.Main(tool.Tool{
		Name:    "vetting-init",
		Require: []string{"PackageId", "Mnemonic", "AdminCap", "SuiNetwork"},
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
	res, err := uc.InitializeTable(env.Ctx, domain.ObjectId(env.Config.AdminCap))
	if err != nil {
		return err
	}
	env.Console.Success("VettingTable created")
	env.Console.Field("VettingTable Object ID", res.VettingTableId)
	env.Console.Field("Digest", res.Digest)
	return nil
}
