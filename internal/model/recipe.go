package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe types
const (
	TypeFood  = "food"
	TypeDrink = "drink"
)

// IsValidType reports whether t is one of the recipe types the catalog accepts
func IsValidType(t string) bool {
	return t == TypeFood || t == TypeDrink
}

// StringArray is a custom type for handling string arrays in JSONB
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a food or drink entry in the catalog. The cuisine and continent
// fields are the facets the client apps browse by.
type Recipe struct {
	ID           uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Name         string      `gorm:"size:255;not null" json:"name"`
	Cuisine      string      `gorm:"size:100;not null;index" json:"cuisine"`
	Continent    string      `gorm:"size:50;not null;index" json:"continent"`
	Type         string      `gorm:"size:10;not null;index" json:"type"`
	Ingredients  StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions string      `gorm:"type:text" json:"instructions"`
	Description  string      `gorm:"type:text" json:"description"`
	ImageURL     string      `gorm:"size:255" json:"imageUrl"`
}

// ValidationError reports a recipe draft that violates the catalog schema
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate enforces the write-time schema: the facet fields are required and
// the type must be a known one
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if r.Cuisine == "" {
		return &ValidationError{Field: "cuisine", Message: "is required"}
	}
	if r.Continent == "" {
		return &ValidationError{Field: "continent", Message: "is required"}
	}
	if !IsValidType(r.Type) {
		return &ValidationError{Field: "type", Message: "must be food or drink"}
	}
	return nil
}

// BeforeCreate rejects drafts that violate the schema, assigns the record id
// and fills defaults. The store owns id assignment, so any caller-supplied id
// is replaced; the id is generated here rather than by the database so the
// same model works on the SQLite test store.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.ID = uuid.New()
	if r.Ingredients == nil {
		r.Ingredients = StringArray{}
	}
	return nil
}
