package sui

import (
	"errors"
	"time"

	"github.com/block-vision/sui-go-sdk/models"

	"github.com/braav-io/setup/base/metrics"
)

var (
	ErrEmptyResult = errors.New("empty JSON-RPC result")
	ErrNoCalls     = errors.New("transaction without move calls")
)

const (
	MethodGetObject               = "sui_getObject"
	MethodMoveCall                = "unsafe_moveCall"
	MethodBatchTransaction        = "unsafe_batchTransaction"
	MethodExecuteTransactionBlock = "sui_executeTransactionBlock"

	RequestTypeWaitForLocalExecution = "WaitForLocalExecution"
)

type ClientCfg struct {
	Url     string
	Timeout time.Duration
	Metrics metrics.Service
}

var executeOptions = models.SuiTransactionBlockOptions{
	ShowInput:          true,
	ShowEffects:        true,
	ShowEvents:         true,
	ShowObjectChanges:  true,
	ShowBalanceChanges: true,
}
