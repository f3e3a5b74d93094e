package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

const (
	ExecutionStatusSuccess = "success"
	ObjectChangeCreated    = "created"

	mistPerSuiExp = 9
)

// MoveCall is one entry function invocation. Arguments are JSON values:
// object ids and addresses as strings, u64 as decimal strings, vectors as arrays.
type MoveCall struct {
	Package       Address       `json:"packageObjectId"`
	Module        string        `json:"module"`
	Function      string        `json:"function"`
	TypeArguments []string      `json:"typeArguments"`
	Arguments     []interface{} `json:"arguments"`
}

// Target renders package::module::function
func (c MoveCall) Target() string {
	return string(c.Package) + "::" + c.Module + "::" + c.Function
}

// TransactionRequest is executed atomically: all calls land in one transaction.
type TransactionRequest struct {
	Calls     []MoveCall
	GasBudget uint64
}

type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type GasCostSummary struct {
	ComputationCost         string `json:"computationCost"`
	StorageCost             string `json:"storageCost"`
	StorageRebate           string `json:"storageRebate"`
	NonRefundableStorageFee string `json:"nonRefundableStorageFee"`
}

type TransactionEffects struct {
	Status  ExecutionStatus `json:"status"`
	GasUsed GasCostSummary  `json:"gasUsed"`
}

type ObjectChange struct {
	Type       string          `json:"type"`
	Sender     Address         `json:"sender,omitempty"`
	Owner      json.RawMessage `json:"owner,omitempty"`
	ObjectType string          `json:"objectType,omitempty"`
	ObjectId   Address         `json:"objectId,omitempty"`
	Version    string          `json:"version,omitempty"`
	Digest     string          `json:"digest,omitempty"`
}

type BalanceChange struct {
	Owner    json.RawMessage `json:"owner"`
	CoinType string          `json:"coinType"`
	Amount   string          `json:"amount"`
}

type TransactionResponse struct {
	Digest         string              `json:"digest"`
	Effects        *TransactionEffects `json:"effects,omitempty"`
	Events         []json.RawMessage   `json:"events,omitempty"`
	ObjectChanges  []ObjectChange      `json:"objectChanges,omitempty"`
	BalanceChanges []BalanceChange     `json:"balanceChanges,omitempty"`
}

func (r *TransactionResponse) Succeeded() bool {
	return r.Effects != nil && r.Effects.Status.Status == ExecutionStatusSuccess
}

// Err is nil for a successful transaction and wraps ErrTransactionFailed otherwise.
func (r *TransactionResponse) Err() error {
	if r.Succeeded() {
		return nil
	}
	reason := "no effects returned"
	if r.Effects != nil {
		reason = r.Effects.Status.Error
		if reason == "" {
			reason = r.Effects.Status.Status
		}
	}
	return xerrors.Errorf("Transaction %s failed: %s: %w", r.Digest, reason, ErrTransactionFailed)
}

// CreatedObjects returns the created objects whose type satisfies match.
// Changes with unparseable types never match.
func (r *TransactionResponse) CreatedObjects(match func(StructTag) bool) []ObjectChange {
	var out []ObjectChange
	for _, c := range r.ObjectChanges {
		if c.Type != ObjectChangeCreated {
			continue
		}
		tag, err := ParseStructTag(c.ObjectType)
		if err != nil {
			continue
		}
		if match(tag) {
			out = append(out, c)
		}
	}
	return out
}

// FindCreated returns the id of the first created object of exactly type t.
func (r *TransactionResponse) FindCreated(t StructTag) (ObjectId, bool) {
	created := r.CreatedObjects(t.Equals)
	if len(created) == 0 {
		return "", false
	}
	return created[0].ObjectId, true
}

// GasCost is computation + storage - rebate, in MIST.
func (r *TransactionResponse) GasCost() decimal.Decimal {
	if r.Effects == nil {
		return decimal.Zero
	}
	g := r.Effects.GasUsed
	return parseMist(g.ComputationCost).Add(parseMist(g.StorageCost)).Sub(parseMist(g.StorageRebate))
}

func parseMist(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// MistToSui converts MIST to SUI
func MistToSui(mist decimal.Decimal) decimal.Decimal {
	return mist.Shift(-mistPerSuiExp)
}
