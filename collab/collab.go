package collab

import (
	"context"
)

// Record is one makeup brand x videogame partnership entry. Both record
// kinds are stored in this single shape; CollaborationType is only carried
// by kinds whose schema includes it and is omitted from JSON when empty.
type Record struct {
	ID                   int    `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	MakeupBrand          string `json:"makeupBrand" gorm:"column:makeup_brand"`
	Videogame            string `json:"videogame" gorm:"column:videogame"`
	CollaborationDate    string `json:"collaborationDate" gorm:"column:collaboration_date"`
	CollaborationType    string `json:"collaborationType,omitempty" gorm:"column:collaboration_type"`
	SalesIncreasePercent string `json:"salesIncreasePercent" gorm:"column:sales_increase_percent"`
	ImageURL             string `json:"imageUrl" gorm:"column:image_url"`
}

// Value reads a schema field off the record by its external name
func (r *Record) Value(name string) string {
	switch name {
	case FieldMakeupBrand:
		return r.MakeupBrand
	case FieldVideogame:
		return r.Videogame
	case FieldCollaborationDate:
		return r.CollaborationDate
	case FieldCollaborationType:
		return r.CollaborationType
	case FieldSalesIncreasePercent:
		return r.SalesIncreasePercent
	case FieldImageURL:
		return r.ImageURL
	}
	return ""
}

// SetValue writes a schema field onto the record by its external name.
// Unknown names are ignored; they never get past a Kind's allow-list anyway
func (r *Record) SetValue(name string, value string) {
	switch name {
	case FieldMakeupBrand:
		r.MakeupBrand = value
	case FieldVideogame:
		r.Videogame = value
	case FieldCollaborationDate:
		r.CollaborationDate = value
	case FieldCollaborationType:
		r.CollaborationType = value
	case FieldSalesIncreasePercent:
		r.SalesIncreasePercent = value
	case FieldImageURL:
		r.ImageURL = value
	}
}

// External field names
const (
	FieldMakeupBrand          = "makeupBrand"
	FieldVideogame            = "videogame"
	FieldCollaborationDate    = "collaborationDate"
	FieldCollaborationType    = "collaborationType"
	FieldSalesIncreasePercent = "salesIncreasePercent"
	FieldImageURL             = "imageUrl"
)

// Field describes one schema field of a record kind
type Field struct {
	// Name is the external field name used in payloads and search queries
	Name string
	// Column is the table column backing the field
	Column string
	// Rules are the validator tags applied on write. Create prepends
	// `required` to them
	Rules string
}

// Kind is the schema of one record family. The two families only differ
// in their field set and table names so all logic is parameterized by Kind
// instead of being duplicated per family
type Kind struct {
	// Slug is the URL path prefix, ie: "cosmetics"
	Slug string
	// Singular is the human label used in messages
	Singular string
	// ActiveTable holds live records
	ActiveTable string
	// DeletedTable holds copies of soft deleted records with its own
	// identity space
	DeletedTable string
	// PrimaryField names the field served by the convenience search
	// endpoint, ie: the makeup brand for cosmetics
	PrimaryField string
	// PrimaryRoute is the path of that endpoint under the kind's prefix
	PrimaryRoute string
	Fields       []Field
}

// Field resolves an external field name against the kind's schema. Lookups
// only ever go through this allow-list so caller supplied names never reach
// the query layer
func (k Kind) Field(name string) (Field, bool) {
	for _, f := range k.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Columns returns the kind's writable column list, without the id
func (k Kind) Columns() []string {
	cols := make([]string, 0, len(k.Fields))
	for _, f := range k.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

var (
	makeupBrand          = Field{Name: FieldMakeupBrand, Column: "makeup_brand", Rules: "min=3,max=50"}
	videogame            = Field{Name: FieldVideogame, Column: "videogame", Rules: "min=3,max=50"}
	collaborationDate    = Field{Name: FieldCollaborationDate, Column: "collaboration_date", Rules: "min=3,max=50"}
	collaborationType    = Field{Name: FieldCollaborationType, Column: "collaboration_type", Rules: "min=3,max=100"}
	salesIncreasePercent = Field{Name: FieldSalesIncreasePercent, Column: "sales_increase_percent", Rules: "percent"}
	imageURL             = Field{Name: FieldImageURL, Column: "image_url", Rules: "min=3,max=500"}
)

// Cosmetics is the makeup side of a collaboration. It is the only kind
// that records the collaboration type
var Cosmetics = Kind{
	Slug:         "cosmetics",
	Singular:     "cosmetic collaboration",
	ActiveTable:  "cosmetic_collabs",
	DeletedTable: "deleted_cosmetic_collabs",
	PrimaryField: FieldMakeupBrand,
	PrimaryRoute: "search_by_brand",
	Fields: []Field{
		makeupBrand,
		videogame,
		collaborationDate,
		collaborationType,
		salesIncreasePercent,
		imageURL,
	},
}

// Videogames is the videogame side of a collaboration
var Videogames = Kind{
	Slug:         "videogames",
	Singular:     "videogame collaboration",
	ActiveTable:  "videogame_collabs",
	DeletedTable: "deleted_videogame_collabs",
	PrimaryField: FieldVideogame,
	PrimaryRoute: "search_by_name",
	Fields: []Field{
		videogame,
		makeupBrand,
		collaborationDate,
		salesIncreasePercent,
		imageURL,
	},
}

// Kinds lists every registered record kind
var Kinds = []Kind{Cosmetics, Videogames}

type Repository interface {
	// Create inserts a new Record into the kind's active table and
	// returns it with its assigned id
	Create(ctx context.Context, kind Kind, record Record) (*Record, error)
	// Update persists every schema column of an existing Record
	Update(ctx context.Context, kind Kind, record Record) (*Record, error)
	// Get retrieves a single active Record given its id
	Get(ctx context.Context, kind Kind, id int) (*Record, error)
	// List retrieves every active Record of the kind in storage order
	List(ctx context.Context, kind Kind) ([]Record, error)
	// ListDeleted retrieves every Record in the kind's deleted table
	ListDeleted(ctx context.Context, kind Kind) ([]Record, error)
	// Search retrieves active Records whose column contains term,
	// case-insensitively
	Search(ctx context.Context, kind Kind, column string, term string) ([]Record, error)
	// SoftDelete copies the Record into the kind's deleted table and
	// removes it from the active table as one transaction
	SoftDelete(ctx context.Context, kind Kind, record Record) error
}

type Service interface {
	// Create validates values against the kind's schema and stores a new
	// Record
	Create(ctx context.Context, kind Kind, values map[string]string) (*Record, error)
	// Update merge-patches an existing Record. Blank or absent values
	// keep the stored value
	Update(ctx context.Context, kind Kind, id int, values map[string]string) (*Record, error)
	// Find retrieves a single active Record
	Find(ctx context.Context, kind Kind, id int) (*Record, error)
	// List retrieves every active Record
	List(ctx context.Context, kind Kind) ([]Record, error)
	// ListByDate retrieves every active Record ordered by collaboration
	// date descending, compared as plain strings
	ListByDate(ctx context.Context, kind Kind) ([]Record, error)
	// ListDeleted retrieves every soft deleted Record
	ListDeleted(ctx context.Context, kind Kind) ([]Record, error)
	// SearchByField retrieves active Records whose field contains value.
	// An unknown field name yields an empty result, not an error
	SearchByField(ctx context.Context, kind Kind, field string, value string) ([]Record, error)
	// Delete soft deletes a Record and returns its last active state
	Delete(ctx context.Context, kind Kind, id int) (*Record, error)
}
