package vetting

import (
	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/domain"
)

const (
	Module             = "vetting"
	StructVettingTable = "VettingTable"
	FnInitialize       = "initialize_vetting_table"
	FnSubmit           = "submit_for_vetting"
)

type InitResult struct {
	Digest         string          `json:"digest"`
	VettingTableId domain.ObjectId `json:"vettingTableId"`
}

type UseCase interface {
	InitializeTable(ctx bCtx.Ctx, adminCap domain.ObjectId) (*InitResult, error)
	Submit(ctx bCtx.Ctx, table domain.ObjectId) (*domain.TransactionResponse, error)
}
