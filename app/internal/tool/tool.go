// Package tool holds the start-up sequence shared by every command under app/.
package tool

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/base/config"
	"github.com/braav-io/setup/base/console"
	"github.com/braav-io/setup/base/goroutine"
	"github.com/braav-io/setup/base/log"
	"github.com/braav-io/setup/base/metrics"
	"github.com/braav-io/setup/base/sui"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/lineage"
	"github.com/braav-io/setup/domain/nft"
	suiService "github.com/braav-io/setup/service/sui"
	lineageUsecase "github.com/braav-io/setup/stores/lineage/usecase"
	nftUsecase "github.com/braav-io/setup/stores/nft/usecase"
	objectUsecase "github.com/braav-io/setup/stores/object/usecase"
	txUsecase "github.com/braav-io/setup/stores/transaction/usecase"
)

type Tool struct {
	Name string
	// Flags registers the tool specific flags on top of the common ones.
	Flags func(fs *pflag.FlagSet)
	// Require lists the Config fields validated before Run starts.
	Require []string
	Run     func(env *Env) error
}

// Env is what a tool run gets to work with. Network collaborators are built on demand.
type Env struct {
	Ctx     bCtx.Ctx
	Config  *config.Config
	Flags   *pflag.FlagSet
	Console *console.Printer

	client  domain.SuiClientRepo
	object  domain.ObjectUseCase
	keypair *sui.Keypair
}

func (e *Env) Client() domain.SuiClientRepo {
	if e.client == nil {
		e.client = suiService.NewClient(&suiService.ClientCfg{
			Url:     e.Config.SuiNetwork,
			Timeout: e.Config.RpcTimeout,
		})
	}
	return e.client
}

func (e *Env) Object() domain.ObjectUseCase {
	if e.object == nil {
		e.object = objectUsecase.NewObjectUseCase(&objectUsecase.ObjectUseCaseCfg{
			Client:       e.Client(),
			PollAttempts: e.Config.PollAttempts,
			PollInterval: e.Config.PollInterval,
		})
	}
	return e.object
}

// Signer derives the account from MNEMONIC.
func (e *Env) Signer() (*sui.Keypair, error) {
	if e.keypair == nil {
		kp, err := sui.KeypairFromMnemonic(e.Config.Mnemonic)
		if err != nil {
			return nil, err
		}
		e.keypair = kp
		e.Ctx.WithField("signer", kp.Address()).Debug("signer derived")
	}
	return e.keypair, nil
}

// Transaction executes transactions signed by the MNEMONIC account.
func (e *Env) Transaction() (domain.TransactionUseCase, error) {
	signer, err := e.Signer()
	if err != nil {
		return nil, err
	}
	return txUsecase.NewTransactionUseCase(&txUsecase.TransactionUseCaseCfg{
		Client: e.Client(),
		Signer: signer,
	}), nil
}

func (e *Env) PackageId() domain.Address {
	return domain.Address(e.Config.PackageId)
}

// Main runs t and exits the process with its outcome.
func Main(t Tool) {
	os.Exit(Run(t, os.Args[1:]))
}

// Run returns the process exit code.
func Run(t Tool, args []string) int {
	out := console.Stdout()
	fs := pflag.NewFlagSet(t.Name, pflag.ContinueOnError)
	config.RegisterFlags(fs)
	if t.Flags != nil {
		t.Flags(fs)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		out.Fail("%v", err)
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		out.Fail("%v", err)
		return 1
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		out.Warn("%v, keeping info level", err)
	}
	defer log.Sync()

	flush, err := metrics.Init(cfg.DatadogHost)
	if err != nil {
		log.Log().WithField("err", err).Warn("metrics.Init failed, metrics are logged instead")
	}
	defer flush()

	sigCtx, stop := signal.NotifyContext(bCtx.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx := bCtx.WithOperation(bCtx.From(sigCtx), t.Name)

	env := &Env{
		Ctx:     ctx,
		Config:  cfg,
		Flags:   fs,
		Console: out,
	}
	m := metrics.New("tool")
	ender := m.BumpTime("run.time", "op", t.Name)
	err = <-goroutine.RecoverableGo(func() error {
		if err := cfg.Require(t.Require...); err != nil {
			return err
		}
		return t.Run(env)
	})
	ender.End()
	if err != nil {
		m.BumpSum("run.err", 1, "op", t.Name)
		ctx.WithField("err", err).Error("run failed")
		out.Fail("%s failed: %v", t.Name, err)
		return 1
	}
	ctx.Debug("run succeeded")
	return 0
}

// Variant reads --variant against the package allow-list.
func (e *Env) Variant() (domain.StructTag, error) {
	raw, err := e.Flags.GetString("variant")
	if err != nil {
		return domain.StructTag{}, err
	}
	return nft.ParseVariant(e.PackageId(), raw)
}

func mustString(fs *pflag.FlagSet, name string) string {
	v, err := fs.GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag %s not registered: %v", name, err))
	}
	return v
}

// String returns a string flag registered by the tool.
func (e *Env) String(name string) string {
	return mustString(e.Flags, name)
}

func (e *Env) Lineage() lineage.UseCase {
	return lineageUsecase.New(&lineageUsecase.LineageUseCaseCfg{Object: e.Object()})
}

// Nft wires the NFT use case with every object id found in the configuration.
func (e *Env) Nft() (nft.UseCase, error) {
	tx, err := e.Transaction()
	if err != nil {
		return nil, err
	}
	return e.nft(tx), nil
}

// NftReader is an NFT use case without signer, enough for Read.
func (e *Env) NftReader() nft.UseCase {
	return e.nft(nil)
}

func (e *Env) nft(tx domain.TransactionUseCase) nft.UseCase {
	return nftUsecase.New(&nftUsecase.NftUseCaseCfg{
		Transaction:  tx,
		Object:       e.Object(),
		Lineage:      e.Lineage(),
		PackageId:    e.PackageId(),
		SupplyCapId:  domain.ObjectId(e.Config.SupplyCapId),
		CreatorCapId: domain.ObjectId(e.Config.CreatorCapId),
		LineageId:    domain.ObjectId(e.Config.LineageId),
		CounterId:    domain.ObjectId(e.Config.CounterId),
		GasBudget:    e.Config.GasBudget,
	})
}
