package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/xerrors"

	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/base/log"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/lineage"
	"github.com/braav-io/setup/domain/nft"
)

const (
	fnUpdateNft       = "update_nft"
	fnMintAndTransfer = "mint_and_transfer"
	fnMintRestricted  = "mint_restricted"
	fnUpdateSupply    = "update_supply"

	defaultNamePrefix = "NFT_Example"
	defaultCoinPrefix = "COIN"
)

var (
	typeOpts = domain.ObjectDataOptions{ShowType: true}
	readOpts = domain.ObjectDataOptions{ShowType: true, ShowContent: true, ShowDisplay: true}

	ErrInvalidSupplyCapType = xerrors.New("Invalid SupplyCap type format")
	ErrInvalidQuantity      = xerrors.New("QUANTITY must be positive")
	ErrNoRecipients         = xerrors.New("RECIPIENT_ADDRESSES not set")
	ErrInvalidSupplyLimit   = xerrors.New("NEW_SUPPLY_LIMIT must be positive")
)

type NftUseCaseCfg struct {
	Transaction domain.TransactionUseCase
	Object      domain.ObjectUseCase
	Lineage     lineage.UseCase

	PackageId    domain.Address
	SupplyCapId  domain.ObjectId
	CreatorCapId domain.ObjectId
	LineageId    domain.ObjectId
	CounterId    domain.ObjectId
	GasBudget    uint64
}

type impl struct {
	transaction domain.TransactionUseCase
	object      domain.ObjectUseCase
	lineage     lineage.UseCase

	packageId    domain.Address
	supplyCapId  domain.ObjectId
	creatorCapId domain.ObjectId
	lineageId    domain.ObjectId
	counterId    domain.ObjectId
	gasBudget    uint64
}

func New(cfg *NftUseCaseCfg) nft.UseCase {
	return &impl{
		transaction:  cfg.Transaction,
		object:       cfg.Object,
		lineage:      cfg.Lineage,
		packageId:    cfg.PackageId,
		supplyCapId:  cfg.SupplyCapId,
		creatorCapId: cfg.CreatorCapId,
		lineageId:    cfg.LineageId,
		counterId:    cfg.CounterId,
		gasBudget:    cfg.GasBudget,
	}
}

type namedId struct {
	name string
	id   domain.ObjectId
}

func checkIds(ids ...namedId) error {
	for _, n := range ids {
		if !n.id.IsValid() {
			return xerrors.Errorf("Invalid %s: %s: %w", n.name, n.id, domain.ErrInvalidAddress)
		}
	}
	return nil
}

func (im *impl) call(fn string, variant domain.StructTag, args ...interface{}) domain.MoveCall {
	return domain.MoveCall{
		Package:       im.packageId,
		Module:        nft.ModulePublic,
		Function:      fn,
		TypeArguments: []string{variant.String()},
		Arguments:     args,
	}
}

// execute submits one call and fails unless the transaction succeeded.
func (im *impl) execute(ctx bCtx.Ctx, call domain.MoveCall) (*domain.TransactionResponse, error) {
	return im.transaction.Execute(ctx, domain.TransactionRequest{
		Calls:     []domain.MoveCall{call},
		GasBudget: im.gasBudget,
	})
}

func (im *impl) UpdateMetadata(ctx bCtx.Ctx, in nft.UpdateMetadataInput) (*domain.TransactionResponse, error) {
	if err := checkIds(
		namedId{"NFT_OBJECT_ID", in.NftId},
		namedId{"CREATOR_CAP_ID", im.creatorCapId},
	); err != nil {
		return nil, err
	}
	resp, err := im.execute(ctx, im.call(fnUpdateNft, in.Variant, im.creatorCapId, in.NftId, in.Name, in.CoinId))
	if err != nil {
		return nil, err
	}
	ctx.WithFields(log.Fields{
		"nftId":  in.NftId,
		"digest": resp.Digest,
	}).Info("nft metadata updated")
	return resp, nil
}

func (im *impl) Mint(ctx bCtx.Ctx, in nft.MintInput) (*nft.MintResult, error) {
	if err := checkIds(
		namedId{"recipient", in.Recipient},
		namedId{"SUPPLY_CAP_ID", im.supplyCapId},
		namedId{"LINEAGE_ID", im.lineageId},
		namedId{"COUNTER_ID", im.counterId},
	); err != nil {
		return nil, err
	}
	call := im.call(fnMintAndTransfer, in.Variant,
		in.Name, in.CoinId, im.supplyCapId, im.lineageId, im.counterId, in.Recipient, domain.ClockObjectId)
	return im.mint(ctx, call, in, nft.NFTType(im.packageId, in.Variant))
}

func (im *impl) MintRestricted(ctx bCtx.Ctx, in nft.MintInput) (*nft.MintResult, error) {
	if err := checkIds(
		namedId{"recipient", in.Recipient},
		namedId{"CREATOR_CAP_ID", im.creatorCapId},
		namedId{"SUPPLY_CAP_ID", im.supplyCapId},
		namedId{"LINEAGE_ID", im.lineageId},
		namedId{"COUNTER_ID", im.counterId},
	); err != nil {
		return nil, err
	}
	call := im.call(fnMintRestricted, in.Variant,
		im.creatorCapId, im.supplyCapId, im.lineageId, im.counterId, in.Recipient, in.Name, in.CoinId, domain.ClockObjectId)
	return im.mint(ctx, call, in, nft.RestrictedNFTType(im.packageId, in.Variant))
}

func (im *impl) mint(ctx bCtx.Ctx, call domain.MoveCall, in nft.MintInput, created domain.StructTag) (*nft.MintResult, error) {
	resp, err := im.execute(ctx, call)
	if err != nil {
		return nil, err
	}
	res := &nft.MintResult{
		Digest:     resp.Digest,
		Recipient:  in.Recipient,
		NftId:      domain.Address(nft.NotFound),
		GasCostSui: domain.MistToSui(resp.GasCost()).String(),
	}
	if id, ok := resp.FindCreated(created); ok {
		res.NftId = id
	} else {
		ctx.WithFields(log.Fields{
			"digest": resp.Digest,
			"type":   created.String(),
		}).Warn("created nft not found in object changes")
	}

	last, err := im.lineage.AwaitLastRecord(ctx, im.lineageId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"lineageId": im.lineageId,
			"digest":    res.Digest,
			"nftId":     res.NftId,
			"err":       err,
		}).Error("lineage.AwaitLastRecord failed")
		return nil, err
	}
	res.LastRecord = last
	ctx.WithFields(log.Fields{
		"digest":    res.Digest,
		"nftId":     res.NftId,
		"recipient": in.Recipient,
	}).Info("nft minted")
	return res, nil
}

// supplyCapVariant returns T of the SupplyCap<T> object.
func (im *impl) supplyCapVariant(ctx bCtx.Ctx) (domain.StructTag, error) {
	data, err := im.object.Get(ctx, im.supplyCapId, typeOpts)
	if err != nil {
		ctx.WithFields(log.Fields{
			"supplyCapId": im.supplyCapId,
			"err":         err,
		}).Error("object.Get failed")
		return domain.StructTag{}, err
	}
	tag, err := data.StructTag()
	if err != nil || len(tag.TypeParams) != 1 || tag.TypeParams[0].Struct == nil {
		return domain.StructTag{}, xerrors.Errorf("%s: %w", data.Type, ErrInvalidSupplyCapType)
	}
	return *tag.TypeParams[0].Struct, nil
}

func (im *impl) MintBatch(ctx bCtx.Ctx, in nft.BatchMintInput) (*nft.BatchMintResult, error) {
	if len(in.Recipients) == 0 {
		return nil, ErrNoRecipients
	}
	if in.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	for _, r := range in.Recipients {
		if !r.IsValid() {
			return nil, xerrors.Errorf("Invalid recipient address format: %s: %w", r, domain.ErrInvalidAddress)
		}
	}
	if err := checkIds(
		namedId{"SUPPLY_CAP_ID", im.supplyCapId},
		namedId{"LINEAGE_ID", im.lineageId},
		namedId{"COUNTER_ID", im.counterId},
	); err != nil {
		return nil, err
	}
	namePrefix, coinPrefix := in.NamePrefix, in.CoinPrefix
	if namePrefix == "" {
		namePrefix = defaultNamePrefix
	}
	if coinPrefix == "" {
		coinPrefix = defaultCoinPrefix
	}

	variant, err := im.supplyCapVariant(ctx)
	if err != nil {
		return nil, err
	}
	nftType := nft.NFTType(im.packageId, variant)
	res := &nft.BatchMintResult{Variant: variant}
	for _, recipient := range in.Recipients {
		for i := 0; i < in.Quantity; i++ {
			name := fmt.Sprintf("%s_%d", namePrefix, i+1)
			coinId := fmt.Sprintf("%s_%d", coinPrefix, i+1)
			resp, err := im.execute(ctx, im.call(fnMintAndTransfer, variant,
				name, coinId, im.supplyCapId, im.lineageId, im.counterId, recipient, domain.ClockObjectId))
			if err != nil {
				return nil, err
			}
			minted := nft.MintedNFT{
				Recipient: recipient,
				Name:      name,
				CoinId:    coinId,
				Digest:    resp.Digest,
				NftId:     nft.NotFound,
			}
			if id, ok := resp.FindCreated(nftType); ok {
				minted.NftId = id.String()
			} else {
				ctx.WithFields(log.Fields{
					"recipient": recipient,
					"iteration": i + 1,
				}).Warn("NFT not found for recipient")
			}
			res.Minted = append(res.Minted, minted)
		}
	}
	return res, nil
}

func (im *impl) UpdateSupply(ctx bCtx.Ctx, in nft.UpdateSupplyInput) (*domain.TransactionResponse, error) {
	if in.NewLimit == 0 {
		return nil, ErrInvalidSupplyLimit
	}
	if err := checkIds(
		namedId{"CREATOR_CAP_ID", im.creatorCapId},
		namedId{"SUPPLY_CAP_ID", im.supplyCapId},
		namedId{"COUNTER_ID", im.counterId},
	); err != nil {
		return nil, err
	}
	if _, err := nft.ParseVariant(im.packageId, in.Variant.String()); err != nil {
		return nil, err
	}
	onChain, err := im.supplyCapVariant(ctx)
	if err != nil {
		return nil, err
	}
	if !onChain.Equals(in.Variant) {
		return nil, xerrors.Errorf("SupplyCap is for %s, not %s: %w", onChain, in.Variant, domain.ErrTypeMismatch)
	}
	resp, err := im.execute(ctx, im.call(fnUpdateSupply, in.Variant,
		im.creatorCapId, im.supplyCapId, strconv.FormatUint(in.NewLimit, 10), im.counterId))
	if err != nil {
		return nil, err
	}
	ctx.WithFields(log.Fields{
		"newLimit": in.NewLimit,
		"digest":   resp.Digest,
	}).Info("supply limit updated")
	return resp, nil
}

func (im *impl) Read(ctx bCtx.Ctx, id domain.ObjectId) (*nft.ReadResult, error) {
	data, err := im.object.Get(ctx, id, readOpts)
	if err != nil {
		return nil, xerrors.Errorf("Failed to fetch NFT: %s: %w", id, err)
	}
	raw, err := data.MoveFields()
	if err != nil {
		return nil, xerrors.Errorf("No content data found for NFT: %s: %w", id, err)
	}
	fields := map[string]json.RawMessage{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, xerrors.Errorf("No content data found for NFT: %s: %w", id, domain.ErrNotMoveObject)
		}
	}
	res := &nft.ReadResult{
		Metadata: nft.Metadata{
			Name:       fieldString(fields["name"]),
			CoinId:     fieldString(fields["coin_id"]),
			MintNumber: fieldString(fields["mint_number"]),
			Issuer:     fieldString(fields["issuer"]),
			Timestamp:  fieldString(fields["timestamp"]),
			Restricted: fieldBool(fields["restricted"]),
			Type:       data.Content.Type,
		},
	}
	if data.Display != nil && data.Display.Data != nil {
		res.DisplayData = data.Display.Data
	}
	return res, nil
}

func fieldString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return nft.NotFound
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return string(raw)
}

func fieldBool(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}
