package usecase

import (
	"golang.org/x/xerrors"

	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/base/log"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/display"
	"github.com/braav-io/setup/domain/nft"
)

var (
	typeOpts = domain.ObjectDataOptions{ShowType: true}

	ErrInvalidPublisher = xerrors.New("not a valid Publisher object")
)

type DisplayUseCaseCfg struct {
	Transaction domain.TransactionUseCase
	Object      domain.ObjectUseCase
	PackageId   domain.Address
	GasBudget   uint64
}

type impl struct {
	transaction domain.TransactionUseCase
	object      domain.ObjectUseCase
	packageId   domain.Address
	gasBudget   uint64
}

func New(cfg *DisplayUseCaseCfg) display.UseCase {
	return &impl{
		transaction: cfg.Transaction,
		object:      cfg.Object,
		packageId:   cfg.PackageId,
		gasBudget:   cfg.GasBudget,
	}
}

// Create registers one Display per NFT type in a first transaction, then fills the
// templates and bumps the versions of both in a second one.
func (im *impl) Create(ctx bCtx.Ctx, in display.CreateInput) (*display.Result, error) {
	if err := im.checkPublisher(ctx, in.PublisherId); err != nil {
		return nil, err
	}
	fields := in.Fields
	if len(fields) == 0 {
		fields = display.DefaultFields
	}
	nftType := nft.NFTType(im.packageId, in.Variant)
	restrictedType := nft.RestrictedNFTType(im.packageId, in.Variant)

	created, err := im.execute(ctx,
		frameworkCall(display.FnCreateAndKeep, nftType, in.PublisherId),
		frameworkCall(display.FnCreateAndKeep, restrictedType, in.PublisherId),
	)
	if err != nil {
		return nil, err
	}
	nftDisplayId, okNft := created.FindCreated(display.Type(nftType))
	restrictedDisplayId, okRestricted := created.FindCreated(display.Type(restrictedType))
	if !okNft || !okRestricted {
		ctx.WithFields(log.Fields{
			"digest":          created.Digest,
			"nftFound":        okNft,
			"restrictedFound": okRestricted,
		}).Error("display objects missing from object changes")
		return nil, xerrors.Errorf("Failed to retrieve Display object IDs: %w", domain.ErrCreatedObjectNotFound)
	}

	keys := make([]string, 0, len(fields))
	values := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
		values = append(values, f.Value)
	}
	updated, err := im.execute(ctx,
		frameworkCall(display.FnAddMultiple, nftType, nftDisplayId, keys, values),
		frameworkCall(display.FnUpdateVersion, nftType, nftDisplayId),
		frameworkCall(display.FnAddMultiple, restrictedType, restrictedDisplayId, keys, values),
		frameworkCall(display.FnUpdateVersion, restrictedType, restrictedDisplayId),
	)
	if err != nil {
		return nil, err
	}

	ctx.WithFields(log.Fields{
		"nftDisplayId":           nftDisplayId,
		"restrictedNftDisplayId": restrictedDisplayId,
	}).Info("display created")
	return &display.Result{
		NftDisplayId:           nftDisplayId,
		RestrictedNftDisplayId: restrictedDisplayId,
		CreateDigest:           created.Digest,
		UpdateDigest:           updated.Digest,
	}, nil
}

func (im *impl) checkPublisher(ctx bCtx.Ctx, id domain.ObjectId) error {
	data, err := im.object.Get(ctx, id, typeOpts)
	if err != nil {
		ctx.WithFields(log.Fields{
			"publisherId": id,
			"err":         err,
		}).Error("object.Get failed")
		return xerrors.Errorf("Failed to fetch PUBLISHER_ID %s: %w", id, err)
	}
	tag, err := data.StructTag()
	if err != nil || !tag.Equals(display.PublisherType) {
		return xerrors.Errorf("Invalid PUBLISHER_ID: %s: %w", id, ErrInvalidPublisher)
	}
	return nil
}

func frameworkCall(fn string, t domain.StructTag, args ...interface{}) domain.MoveCall {
	return domain.MoveCall{
		Package:       display.FrameworkPackage,
		Module:        display.Module,
		Function:      fn,
		TypeArguments: []string{t.String()},
		Arguments:     args,
	}
}

func (im *impl) execute(ctx bCtx.Ctx, calls ...domain.MoveCall) (*domain.TransactionResponse, error) {
	return im.transaction.Execute(ctx, domain.TransactionRequest{
		Calls:     calls,
		GasBudget: im.gasBudget,
	})
}
