package usecase

import (
	"golang.org/x/xerrors"

	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/base/log"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/vetting"
)

type VettingUseCaseCfg struct {
	Transaction domain.TransactionUseCase
	PackageId   domain.Address
	GasBudget   uint64
}

type impl struct {
	transaction domain.TransactionUseCase
	packageId   domain.Address
	gasBudget   uint64
}

func New(cfg *VettingUseCaseCfg) vetting.UseCase {
	return &impl{
		transaction: cfg.Transaction,
		packageId:   cfg.PackageId,
		gasBudget:   cfg.GasBudget,
	}
}

func (im *impl) InitializeTable(ctx bCtx.Ctx, adminCap domain.ObjectId) (*vetting.InitResult, error) {
	if !adminCap.IsValid() {
		return nil, xerrors.Errorf("Invalid ADMIN_CAP: %s: %w", adminCap, domain.ErrInvalidAddress)
	}
	resp, err := im.execute(ctx, vetting.FnInitialize, adminCap)
	if err != nil {
		return nil, err
	}
	tables := resp.CreatedObjects(func(t domain.StructTag) bool {
		return t.Is(im.packageId, vetting.Module, vetting.StructVettingTable)
	})
	if len(tables) == 0 {
		ctx.WithField("digest", resp.Digest).Error("vetting table missing from object changes")
		return nil, xerrors.Errorf("VettingTable object not found: %w", domain.ErrCreatedObjectNotFound)
	}
	ctx.WithFields(log.Fields{
		"digest":         resp.Digest,
		"vettingTableId": tables[0].ObjectId,
	}).Info("vetting table initialized")
	return &vetting.InitResult{
		Digest:         resp.Digest,
		VettingTableId: tables[0].ObjectId,
	}, nil
}

func (im *impl) Submit(ctx bCtx.Ctx, table domain.ObjectId) (*domain.TransactionResponse, error) {
	if !table.IsValid() {
		return nil, xerrors.Errorf("Invalid VETTING_TABLE_ID: %s: %w", table, domain.ErrInvalidAddress)
	}
	resp, err := im.execute(ctx, vetting.FnSubmit, table)
	if err != nil {
		return nil, err
	}
	ctx.WithField("digest", resp.Digest).Info("submitted for vetting")
	return resp, nil
}

func (im *impl) execute(ctx bCtx.Ctx, fn string, arg domain.ObjectId) (*domain.TransactionResponse, error) {
	call := domain.MoveCall{
		Package:   im.packageId,
		Module:    vetting.Module,
		Function:  fn,
		Arguments: []interface{}{arg},
	}
	return im.transaction.Execute(ctx, domain.TransactionRequest{
		Calls:     []domain.MoveCall{call},
		GasBudget: im.gasBudget,
	})
}
