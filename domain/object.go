package domain

import (
	"encoding/json"

	"golang.org/x/xerrors"
)

const (
	ObjectErrorNotExists = "notExists"
	ObjectErrorDeleted   = "deleted"

	DataTypeMoveObject = "moveObject"
	DataTypePackage    = "package"
)

type ObjectDataOptions struct {
	ShowType    bool `json:"showType,omitempty"`
	ShowOwner   bool `json:"showOwner,omitempty"`
	ShowContent bool `json:"showContent,omitempty"`
	ShowDisplay bool `json:"showDisplay,omitempty"`
}

type ObjectResponse struct {
	Data  *ObjectData          `json:"data,omitempty"`
	Error *ObjectResponseError `json:"error,omitempty"`
}

type ObjectResponseError struct {
	Code     string  `json:"code"`
	ObjectId Address `json:"object_id,omitempty"`
}

type ObjectData struct {
	ObjectId Address         `json:"objectId"`
	Version  string          `json:"version"`
	Digest   string          `json:"digest"`
	Type     string          `json:"type,omitempty"`
	Owner    json.RawMessage `json:"owner,omitempty"`
	Content  *MoveContent    `json:"content,omitempty"`
	Display  *DisplayFields  `json:"display,omitempty"`
}

type MoveContent struct {
	DataType          string          `json:"dataType"`
	Type              string          `json:"type,omitempty"`
	HasPublicTransfer bool            `json:"hasPublicTransfer,omitempty"`
	Fields            json.RawMessage `json:"fields,omitempty"`
}

type DisplayFields struct {
	Data  map[string]interface{} `json:"data,omitempty"`
	Error json.RawMessage        `json:"error,omitempty"`
}

// Object returns the object data, or the reason the node did not return it.
func (r *ObjectResponse) Object(id ObjectId) (*ObjectData, error) {
	if r.Error != nil {
		switch r.Error.Code {
		case ObjectErrorNotExists:
			return nil, xerrors.Errorf("Object %s does not exist: %w", id, ErrObjectNotExists)
		case ObjectErrorDeleted:
			return nil, xerrors.Errorf("Object %s was deleted: %w", id, ErrObjectDeleted)
		default:
			return nil, xerrors.Errorf("Object %s: %s: %w", id, r.Error.Code, ErrUnknownObjectFail)
		}
	}
	if r.Data == nil {
		return nil, xerrors.Errorf("Object %s: %w", id, ErrObjectNoData)
	}
	return r.Data, nil
}

// MoveFields returns the struct fields of a Move object.
func (d *ObjectData) MoveFields() (json.RawMessage, error) {
	if d.Content == nil || d.Content.DataType != DataTypeMoveObject {
		return nil, xerrors.Errorf("Object %s: %w", d.ObjectId, ErrNotMoveObject)
	}
	return d.Content.Fields, nil
}

// StructTag parses the object type, falling back to the content type.
func (d *ObjectData) StructTag() (StructTag, error) {
	t := d.Type
	if t == "" && d.Content != nil {
		t = d.Content.Type
	}
	if t == "" {
		return StructTag{}, xerrors.Errorf("Object %s has no type: %w", d.ObjectId, ErrInvalidStructTag)
	}
	return ParseStructTag(t)
}
