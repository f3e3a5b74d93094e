package lineage

import (
	"encoding/json"

	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/domain"
)

const (
	TimestampLayout = "2006-01-02 15:04:05"

	// NotFound stands in for fields the node did not return
	NotFound = "Not found"
)

// RawRecord is one element of the lineage object's records vector as the node returns it.
type RawRecord struct {
	Type   string                     `json:"type,omitempty"`
	Fields map[string]json.RawMessage `json:"fields"`
}

// Fields of the lineage Move object
type Fields struct {
	Records json.RawMessage `json:"records"`
}

// Entry is the consolidated view of one recipient.
type Entry struct {
	Recipient domain.Address `json:"recipient"`
	Quantity  string         `json:"quantity"`
	Timestamp string         `json:"timestamp"`
}

type Result struct {
	LineageRecords []Entry `json:"lineageRecords"`
}

type UseCase interface {
	// GetLineage consolidates the records per recipient. It returns ErrNoLineageRecords
	// when no valid record exists.
	GetLineage(ctx bCtx.Ctx, id domain.ObjectId) ([]Entry, error)
	// AwaitLastRecord polls until the lineage object is readable and returns its newest
	// record, or nil when the object holds none.
	AwaitLastRecord(ctx bCtx.Ctx, id domain.ObjectId) (*Entry, error)
}
