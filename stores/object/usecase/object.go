package usecase

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/xerrors"

	"github.com/braav-io/setup/base/backoff"
	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/base/log"
	"github.com/braav-io/setup/base/metrics"
	"github.com/braav-io/setup/domain"
)

type ObjectUseCaseCfg struct {
	Client       domain.SuiClientRepo
	PollAttempts int
	PollInterval time.Duration
	Metrics      metrics.Service
}

type objectImpl struct {
	client       domain.SuiClientRepo
	pollAttempts int
	pollInterval time.Duration
	metrics      metrics.Service
}

func NewObjectUseCase(cfg *ObjectUseCaseCfg) domain.ObjectUseCase {
	m := cfg.Metrics
	if m == nil {
		m = metrics.New("object")
	}
	return &objectImpl{
		client:       cfg.Client,
		pollAttempts: cfg.PollAttempts,
		pollInterval: cfg.PollInterval,
		metrics:      m,
	}
}

func (im *objectImpl) Get(ctx bCtx.Ctx, id domain.ObjectId, opts domain.ObjectDataOptions) (*domain.ObjectData, error) {
	if !id.IsValid() {
		return nil, xerrors.Errorf("Invalid object id %s: %w", id, domain.ErrInvalidAddress)
	}
	resp, err := im.client.GetObject(ctx, id, opts)
	if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("client.GetObject failed")
		return nil, err
	}
	return resp.Object(id)
}

func (im *objectImpl) GetWithRetry(ctx bCtx.Ctx, id domain.ObjectId, opts domain.ObjectDataOptions) (*domain.ObjectData, error) {
	var data *domain.ObjectData
	policy := backoff.Policy{
		MaxAttempts: im.pollAttempts,
		Backoff:     backoff.NewConstant(im.pollInterval),
		Retryable:   isNotYetAvailable,
		OnRetry: func(attempt int, err error) {
			im.metrics.BumpSum("retry.attempt", 1)
			ctx.WithFields(log.Fields{
				"id":  id,
				"err": err,
			}).Warn(fmt.Sprintf("not yet available, retrying (%d left)", im.pollAttempts-attempt))
		},
	}
	err := backoff.Retry(ctx, policy, func(int) error {
		d, err := im.Get(ctx, id, opts)
		if err != nil {
			return err
		}
		data = d
		return nil
	})
	if errors.Is(err, backoff.ErrAttemptsExhausted) {
		ctx.WithFields(log.Fields{
			"id":       id,
			"attempts": im.pollAttempts,
			"err":      err,
		}).Error("object never became available")
		return nil, xerrors.Errorf("Object %s not found after %d retries: %w", id, im.pollAttempts, domain.ErrRetryExhausted)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func isNotYetAvailable(err error) bool {
	return errors.Is(err, domain.ErrObjectNotExists) || errors.Is(err, domain.ErrObjectNoData)
}
