package domain

import "errors"

var (
	ErrInvalidAddress   = errors.New("Invalid Sui address")
	ErrInvalidStructTag = errors.New("invalid struct tag")
	ErrInvalidVariant   = errors.New("invalid variant type")
	ErrTypeMismatch     = errors.New("type mismatch")

	// object fetch errors
	ErrObjectNotExists   = errors.New("object does not exist")
	ErrObjectDeleted     = errors.New("object deleted")
	ErrObjectNoData      = errors.New("no object data")
	ErrNotMoveObject     = errors.New("not a Move object")
	ErrUnknownObjectFail = errors.New("unknown object error")
	ErrRetryExhausted    = errors.New("retries exhausted")

	// transaction errors
	ErrTransactionFailed     = errors.New("transaction failed")
	ErrCreatedObjectNotFound = errors.New("created object not found")
	ErrNoSigner              = errors.New("no signer configured")

	ErrNoLineageRecords = errors.New("no lineage records")
)
