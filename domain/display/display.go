package display

import (
	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/domain"
)

const (
	Module          = "display"
	StructDisplay   = "Display"
	FnCreateAndKeep = "create_and_keep"
	FnAddMultiple   = "add_multiple"
	FnUpdateVersion = "update_version"
)

var (
	FrameworkPackage = domain.Address("0x2")
	PublisherType    = domain.NewStructTag(FrameworkPackage, "package", "Publisher")
)

// Field is one display key and its template
type Field struct {
	Key   string
	Value string
}

// DefaultFields render each key from the NFT field of the same name.
var DefaultFields = []Field{
	{Key: "name", Value: "{name}"},
	{Key: "image_url", Value: "{image_url}"},
	{Key: "description", Value: "{description}"},
	{Key: "project_url", Value: "{project_url}"},
	{Key: "coin_story", Value: "{coin_story}"},
}

// Type returns 0x2::display::Display<t>
func Type(t domain.StructTag) domain.StructTag {
	return domain.NewStructTag(FrameworkPackage, Module, StructDisplay, domain.StructType(t))
}

type CreateInput struct {
	PublisherId domain.ObjectId
	Variant     domain.StructTag
	Fields      []Field
}

type Result struct {
	NftDisplayId           domain.ObjectId `json:"nftDisplayId"`
	RestrictedNftDisplayId domain.ObjectId `json:"restrictedNftDisplayId"`
	CreateDigest           string          `json:"createDigest"`
	UpdateDigest           string          `json:"updateDigest"`
}

type UseCase interface {
	Create(ctx bCtx.Ctx, in CreateInput) (*Result, error)
}
