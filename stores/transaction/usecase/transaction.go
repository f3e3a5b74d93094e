package usecase

import (
	"strings"

	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/base/log"
	"github.com/braav-io/setup/domain"
)

type TransactionUseCaseCfg struct {
	Client domain.SuiClientRepo
	Signer domain.Signer
}

type impl struct {
	client domain.SuiClientRepo
	signer domain.Signer
}

func NewTransactionUseCase(cfg *TransactionUseCaseCfg) domain.TransactionUseCase {
	return &impl{
		client: cfg.Client,
		signer: cfg.Signer,
	}
}

func (im *impl) Execute(ctx bCtx.Ctx, req domain.TransactionRequest) (*domain.TransactionResponse, error) {
	if im.signer == nil {
		return nil, domain.ErrNoSigner
	}
	targets := targetsOf(req.Calls)
	resp, err := im.client.SignAndExecute(ctx, im.signer, req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"targets": targets,
			"err":     err,
		}).Error("client.SignAndExecute failed")
		return nil, err
	}
	if err := resp.Err(); err != nil {
		ctx.WithFields(log.Fields{
			"targets": targets,
			"digest":  resp.Digest,
			"err":     err,
		}).Error("transaction failed")
		return nil, err
	}
	ctx.WithFields(log.Fields{
		"targets": targets,
		"digest":  resp.Digest,
	}).Debug("transaction succeeded")
	return resp, nil
}

func targetsOf(calls []domain.MoveCall) string {
	targets := make([]string, 0, len(calls))
	for _, c := range calls {
		targets = append(targets, c.Target())
	}
	return strings.Join(targets, ",")
}
