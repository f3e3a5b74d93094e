package main

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/braav-io/setup/app/internal/tool"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/lineage"
)

func main() {
	tool.Main(tool.Tool{
		Name: "lineage",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("lineage", "", "lineage object (LINEAGE_ID)")
		},
		Require: []string{"Mnemonic", "PackageId", "LineageId", "SuiNetwork"},
		Run:     run,
	})
}

func run(env *tool.Env) error {
	entries, err := env.Lineage().GetLineage(env.Ctx, domain.ObjectId(env.Config.LineageId))
	if errors.Is(err, domain.ErrNoLineageRecords) {
		env.Console.Warn("No lineage records found")
		return env.Console.JSON(lineage.Result{LineageRecords: []lineage.Entry{}})
	} else if err != nil {
		return err
	}
	return env.Console.JSON(lineage.Result{LineageRecords: entries})
}
