package nft

import (
	"strings"

	"golang.org/x/xerrors"

	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/lineage"
)

const (
	ModulePublic   = "braav_public"
	ModuleVariants = "xoa"

	StructNFT           = "NFT"
	StructRestrictedNFT = "RestrictedNFT"
	StructSupplyCap     = "SupplyCap"

	NotFound = lineage.NotFound
)

// Variants are the coin marker types the package accepts as NFT type argument.
var Variants = []string{"BRAAV1", "BRAAV2", "BRAAV3"}

// VariantType returns pkg::xoa::<name>
func VariantType(pkg domain.Address, name string) domain.StructTag {
	return domain.NewStructTag(pkg, ModuleVariants, name)
}

// ParseVariant accepts a bare name (BRAAV2) or the full type and checks it against Variants.
func ParseVariant(pkg domain.Address, raw string) (domain.StructTag, error) {
	raw = strings.TrimSpace(raw)
	allowed := make([]string, 0, len(Variants))
	for _, v := range Variants {
		allowed = append(allowed, string(pkg)+"::"+ModuleVariants+"::"+v)
	}
	invalid := xerrors.Errorf("Invalid BRAAV type: %s. Must be one of: %s: %w", raw, strings.Join(allowed, ", "), domain.ErrInvalidVariant)

	var tag domain.StructTag
	if strings.Contains(raw, "::") {
		parsed, err := domain.ParseStructTag(raw)
		if err != nil || len(parsed.TypeParams) > 0 || !parsed.Is(pkg, ModuleVariants, parsed.Name) {
			return domain.StructTag{}, invalid
		}
		tag = parsed
	} else {
		tag = VariantType(pkg, raw)
	}
	for _, v := range Variants {
		if tag.Name == v {
			return tag, nil
		}
	}
	return domain.StructTag{}, invalid
}

// NFTType returns pkg::braav_public::NFT<variant>
func NFTType(pkg domain.Address, variant domain.StructTag) domain.StructTag {
	return domain.NewStructTag(pkg, ModulePublic, StructNFT, domain.StructType(variant))
}

// RestrictedNFTType returns pkg::braav_public::RestrictedNFT<variant>
func RestrictedNFTType(pkg domain.Address, variant domain.StructTag) domain.StructTag {
	return domain.NewStructTag(pkg, ModulePublic, StructRestrictedNFT, domain.StructType(variant))
}

type UpdateMetadataInput struct {
	NftId   domain.ObjectId
	Name    string
	CoinId  string
	Variant domain.StructTag
}

type MintInput struct {
	Name      string
	CoinId    string
	Recipient domain.Address
	Variant   domain.StructTag
}

type MintResult struct {
	Digest    string          `json:"digest"`
	Recipient domain.Address  `json:"recipient"`
	NftId     domain.ObjectId `json:"nftId,omitempty"`
	// LastRecord is the newest lineage entry after the mint, nil when the lineage is empty.
	LastRecord *lineage.Entry `json:"lastRecord,omitempty"`
	GasCostSui string         `json:"gasCostSui"`
}

type BatchMintInput struct {
	Recipients []domain.Address
	Quantity   int
	NamePrefix string
	CoinPrefix string
}

type MintedNFT struct {
	Recipient domain.Address `json:"recipient"`
	Name      string         `json:"name"`
	CoinId    string         `json:"coinId"`
	Digest    string         `json:"digest"`
	// NftId is NotFound when the node reported no created NFT
	NftId string `json:"nftId"`
}

type BatchMintResult struct {
	Variant domain.StructTag `json:"-"`
	Minted  []MintedNFT      `json:"minted"`
}

type UpdateSupplyInput struct {
	NewLimit uint64
	Variant  domain.StructTag
}

type Metadata struct {
	Name       string `json:"name"`
	CoinId     string `json:"coin_id"`
	MintNumber string `json:"mint_number"`
	Issuer     string `json:"issuer"`
	Timestamp  string `json:"timestamp"`
	Restricted bool   `json:"restricted"`
	Type       string `json:"type"`
}

type ReadResult struct {
	Metadata Metadata `json:"metadata"`
	// DisplayData is nil when the object has no display
	DisplayData map[string]interface{} `json:"displayData"`
}

type UseCase interface {
	UpdateMetadata(ctx bCtx.Ctx, in UpdateMetadataInput) (*domain.TransactionResponse, error)
	Mint(ctx bCtx.Ctx, in MintInput) (*MintResult, error)
	MintRestricted(ctx bCtx.Ctx, in MintInput) (*MintResult, error)
	MintBatch(ctx bCtx.Ctx, in BatchMintInput) (*BatchMintResult, error)
	UpdateSupply(ctx bCtx.Ctx, in UpdateSupplyInput) (*domain.TransactionResponse, error)
	Read(ctx bCtx.Ctx, id domain.ObjectId) (*ReadResult, error)
}
