package domain

import (
	"crypto/ed25519"

	bCtx "github.com/braav-io/setup/base/ctx"
)

// Signer is the account that pays for and signs transactions.
type Signer interface {
	Address() Address
	PrivateKey() ed25519.PrivateKey
}

// SuiClientRepo is the fullnode JSON-RPC surface the tools need.
type SuiClientRepo interface {
	GetObject(ctx bCtx.Ctx, id ObjectId, opts ObjectDataOptions) (*ObjectResponse, error)
	// SignAndExecute builds req on the node, signs it and waits for local execution.
	SignAndExecute(ctx bCtx.Ctx, signer Signer, req TransactionRequest) (*TransactionResponse, error)
}

// ObjectUseCase reads objects and turns node level errors into domain errors.
type ObjectUseCase interface {
	Get(ctx bCtx.Ctx, id ObjectId, opts ObjectDataOptions) (*ObjectData, error)
	// GetWithRetry polls while the object does not exist yet, e.g. right after the
	// transaction that created or mutated it.
	GetWithRetry(ctx bCtx.Ctx, id ObjectId, opts ObjectDataOptions) (*ObjectData, error)
}

// TransactionUseCase executes transactions on behalf of one signer.
type TransactionUseCase interface {
	// Execute returns ErrTransactionFailed unless the effects report success.
	Execute(ctx bCtx.Ctx, req TransactionRequest) (*TransactionResponse, error)
}
