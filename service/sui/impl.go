package sui

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/block-vision/sui-go-sdk/models"
	sdk "github.com/block-vision/sui-go-sdk/sui"
	"golang.org/x/xerrors"

	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/base/log"
	"github.com/braav-io/setup/base/metrics"
	"github.com/braav-io/setup/domain"
)

func NewClient(cfg *ClientCfg) domain.SuiClientRepo {
	m := cfg.Metrics
	if m == nil {
		m = metrics.New("sui")
	}
	return &client{
		api:     sdk.NewSuiClient(cfg.Url),
		timeout: cfg.Timeout,
		metrics: m,
	}
}

type client struct {
	api     sdk.ISuiAPI
	timeout time.Duration
	metrics metrics.Service
}

func (c *client) GetObject(ctx bCtx.Ctx, id domain.ObjectId, opts domain.ObjectDataOptions) (*domain.ObjectResponse, error) {
	var raw models.SuiObjectResponse
	err := c.observe(ctx, MethodGetObject, func(ctx bCtx.Ctx) (err error) {
		raw, err = c.api.SuiGetObject(ctx, models.SuiGetObjectRequest{
			ObjectId: string(id.Normalize()),
			Options: models.SuiObjectDataOptions{
				ShowType:    opts.ShowType,
				ShowOwner:   opts.ShowOwner,
				ShowContent: opts.ShowContent,
				ShowDisplay: opts.ShowDisplay,
			},
		})
		return err
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("c.observe failed")
		return nil, err
	}

	resp := &domain.ObjectResponse{}
	if err := convert(raw, resp); err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("failed to convert object response")
		return nil, err
	}
	// zero valued members mean the node left them out
	if resp.Data != nil && resp.Data.ObjectId == "" {
		resp.Data = nil
	}
	if resp.Error != nil && resp.Error.Code == "" {
		resp.Error = nil
	}
	return resp, nil
}

func (c *client) SignAndExecute(ctx bCtx.Ctx, signer domain.Signer, req domain.TransactionRequest) (*domain.TransactionResponse, error) {
	tx, err := c.build(ctx, signer.Address(), req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"signer": signer.Address(),
			"err":    err,
		}).Error("c.build failed")
		return nil, err
	}

	var raw models.SuiTransactionBlockResponse
	err = c.observe(ctx, MethodExecuteTransactionBlock, func(ctx bCtx.Ctx) (err error) {
		raw, err = c.api.SignAndExecuteTransactionBlock(ctx, models.SignAndExecuteTransactionBlockRequest{
			TxnMetaData: tx,
			PriKey:      signer.PrivateKey(),
			Options:     executeOptions,
			RequestType: RequestTypeWaitForLocalExecution,
		})
		return err
	})
	if err != nil {
		ctx.WithField("err", err).Error("c.observe failed")
		return nil, err
	}

	resp := &domain.TransactionResponse{}
	if err := convert(raw, resp); err != nil {
		ctx.WithField("err", err).Error("failed to convert transaction response")
		return nil, err
	}
	if resp.Effects != nil && resp.Effects.Status.Status == "" {
		resp.Effects = nil
	}
	ctx.WithFields(log.Fields{
		"digest": resp.Digest,
		"calls":  len(req.Calls),
	}).Debug("transaction executed")
	return resp, nil
}

// build lets the node assemble the transaction: a single call goes through
// unsafe_moveCall, several calls through unsafe_batchTransaction.
func (c *client) build(ctx bCtx.Ctx, sender domain.Address, req domain.TransactionRequest) (models.TxnMetaData, error) {
	var tx models.TxnMetaData
	budget := strconv.FormatUint(req.GasBudget, 10)
	var err error
	switch len(req.Calls) {
	case 0:
		return tx, ErrNoCalls
	case 1:
		call := moveCallRequest(req.Calls[0])
		call.Signer = string(sender)
		call.GasBudget = budget
		err = c.observe(ctx, MethodMoveCall, func(ctx bCtx.Ctx) (err error) {
			tx, err = c.api.MoveCall(ctx, call)
			return err
		})
	default:
		params := make([]models.RPCTransactionRequestParams, 0, len(req.Calls))
		for _, call := range req.Calls {
			mc := moveCallRequest(call)
			params = append(params, models.RPCTransactionRequestParams{MoveCallRequestParams: &mc})
		}
		err = c.observe(ctx, MethodBatchTransaction, func(ctx bCtx.Ctx) (err error) {
			var resp models.BatchTransactionResponse
			resp, err = c.api.BatchTransaction(ctx, models.BatchTransactionRequest{
				Signer:                      string(sender),
				RPCTransactionRequestParams: params,
				GasBudget:                   budget,
			})
			tx = models.TxnMetaData(resp)
			return err
		})
	}
	if err != nil {
		return tx, err
	}
	if tx.TxBytes == "" {
		return tx, ErrEmptyResult
	}
	return tx, nil
}

func moveCallRequest(call domain.MoveCall) models.MoveCallRequest {
	typeArgs := make([]interface{}, 0, len(call.TypeArguments))
	for _, t := range call.TypeArguments {
		typeArgs = append(typeArgs, t)
	}
	args := call.Arguments
	if args == nil {
		args = []interface{}{}
	}
	return models.MoveCallRequest{
		PackageObjectId: string(call.Package.Normalize()),
		Module:          call.Module,
		Function:        call.Function,
		TypeArguments:   typeArgs,
		Arguments:       args,
	}
}

// observe runs one SDK request under the per-request timeout and records it.
func (c *client) observe(ctx bCtx.Ctx, method string, fn func(ctx bCtx.Ctx) error) error {
	defer c.metrics.BumpTime("rpc.time", "method", method).End()
	if c.timeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := fn(ctx); err != nil {
		c.metrics.BumpSum("rpc.err", 1, "method", method)
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("rpc request failed")
		return xerrors.Errorf("%s: %w", method, err)
	}
	return nil
}

// convert maps an SDK model onto the domain type sharing its JSON shape.
func convert(src, dst interface{}) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
