package usecase

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/base/log"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/lineage"
)

var (
	contentOpts = domain.ObjectDataOptions{ShowType: true, ShowContent: true}

	unsignedInt = regexp.MustCompile(`^[0-9]+$`)
)

type LineageUseCaseCfg struct {
	Object domain.ObjectUseCase
}

type impl struct {
	object domain.ObjectUseCase
}

func New(cfg *LineageUseCaseCfg) lineage.UseCase {
	return &impl{object: cfg.Object}
}

func (im *impl) GetLineage(ctx bCtx.Ctx, id domain.ObjectId) ([]lineage.Entry, error) {
	data, err := im.object.Get(ctx, id, contentOpts)
	if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("object.Get failed")
		return nil, err
	}
	records, err := recordsOf(data)
	if err != nil {
		return nil, err
	}
	entries := reduce(ctx, records)
	if len(entries) == 0 {
		return nil, noRecords(id)
	}
	return entries, nil
}

func (im *impl) AwaitLastRecord(ctx bCtx.Ctx, id domain.ObjectId) (*lineage.Entry, error) {
	data, err := im.object.GetWithRetry(ctx, id, contentOpts)
	if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("object.GetWithRetry failed")
		return nil, err
	}
	records, err := recordsOf(data)
	if errors.Is(err, domain.ErrNoLineageRecords) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	last := records[len(records)-1]
	entry := lineage.Entry{
		Recipient: domain.Address(lineage.NotFound),
		Quantity:  "0",
		Timestamp: lineage.NotFound,
	}
	if s, ok := scalar(last.Fields["recipient"]); ok {
		entry.Recipient = domain.Address(s)
	}
	if q, ok := parseQuantity(last.Fields["quantity"]); ok {
		entry.Quantity = q.String()
	}
	if ts, ok := parseTimestamp(last.Fields["timestamp"]); ok {
		entry.Timestamp = formatTimestamp(ts)
	}
	return &entry, nil
}

func noRecords(id domain.ObjectId) error {
	return xerrors.Errorf("Lineage %s: %w", id, domain.ErrNoLineageRecords)
}

// recordsOf decodes fields.records. A missing or non array vector counts as no records.
func recordsOf(data *domain.ObjectData) ([]lineage.RawRecord, error) {
	raw, err := data.MoveFields()
	if err != nil {
		return nil, err
	}
	fields := lineage.Fields{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, noRecords(data.ObjectId)
	}
	records := []lineage.RawRecord{}
	if len(fields.Records) == 0 || json.Unmarshal(fields.Records, &records) != nil {
		return nil, noRecords(data.ObjectId)
	}
	return records, nil
}

type accumulated struct {
	recipient domain.Address
	quantity  decimal.Decimal
	timestamp int64
}

// reduce consolidates records per recipient in first seen order. A newer timestamp
// replaces the entry, otherwise the quantity is added and the timestamp kept.
func reduce(ctx bCtx.Ctx, records []lineage.RawRecord) []lineage.Entry {
	order := []domain.Address{}
	byRecipient := map[domain.Address]*accumulated{}
	for i, r := range records {
		recipient, ok := scalar(r.Fields["recipient"])
		if !ok || !domain.Address(recipient).IsValid() {
			ctx.WithField("index", i).Debug("skip record without valid recipient")
			continue
		}
		quantity, ok := parseQuantity(r.Fields["quantity"])
		if !ok {
			ctx.WithField("index", i).Debug("skip record without valid quantity")
			continue
		}
		ts, ok := parseTimestamp(r.Fields["timestamp"])
		if !ok {
			ctx.WithField("index", i).Debug("skip record without valid timestamp")
			continue
		}

		addr := domain.Address(recipient)
		acc, found := byRecipient[addr]
		switch {
		case !found:
			order = append(order, addr)
			byRecipient[addr] = &accumulated{recipient: addr, quantity: quantity, timestamp: ts}
		case ts > acc.timestamp:
			acc.quantity = quantity
			acc.timestamp = ts
		default:
			acc.quantity = acc.quantity.Add(quantity)
		}
	}

	entries := make([]lineage.Entry, 0, len(order))
	for _, addr := range order {
		acc := byRecipient[addr]
		entries = append(entries, lineage.Entry{
			Recipient: acc.recipient,
			Quantity:  acc.quantity.String(),
			Timestamp: formatTimestamp(acc.timestamp),
		})
	}
	return entries
}

// scalar reads a JSON string or number as its textual form.
func scalar(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

func parseQuantity(raw json.RawMessage) (decimal.Decimal, bool) {
	s, ok := scalar(raw)
	if !ok || !unsignedInt.MatchString(s) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func parseTimestamp(raw json.RawMessage) (int64, bool) {
	s, ok := scalar(raw)
	if !ok || !unsignedInt.MatchString(s) {
		return 0, false
	}
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}

func formatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Local().Format(lineage.TimestampLayout)
}
