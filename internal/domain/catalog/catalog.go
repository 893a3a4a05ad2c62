// Package catalog holds the static aircraft catalog the quiz is played over.
package catalog

import (
	"fmt"
	"strings"
)

// Minimum number of records needed to form one four-option question.
const minCatalogSize = 4

// Category classifies an aircraft record.
type Category string

// The four fixed categories.
const (
	CategoryCommercial Category = "commercial"
	CategoryMilitary   Category = "military"
	CategoryVintage    Category = "vintage"
	CategoryGeneral    Category = "general"
)

// Categories returns all valid categories in a stable order.
func Categories() []Category {
	return []Category{CategoryCommercial, CategoryMilitary, CategoryVintage, CategoryGeneral}
}

// Valid reports whether c is one of the four fixed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCommercial, CategoryMilitary, CategoryVintage, CategoryGeneral:
		return true
	default:
		return false
	}
}

// ParseCategory parses a category string (case-insensitive).
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Spec carries display-only descriptive fields for an aircraft.
type Spec struct {
	Role        string `json:"role"`
	Engines     string `json:"engines"`
	FirstFlight string `json:"first_flight"`
}

// Record is one immutable aircraft entry.
type Record struct {
	ID          string   `json:"id"`
	Model       string   `json:"model"`
	Category    Category `json:"category"`
	LookupTitle string   `json:"-"` // optional alternate image-lookup title
	Fact        string   `json:"fact"`
	Spec        Spec     `json:"spec"`
}

// Lookup returns the title used for image lookup, defaulting to Model.
func (r Record) Lookup() string {
	if r.LookupTitle != "" {
		return r.LookupTitle
	}
	return r.Model
}

// Catalog is an immutable collection of aircraft records.
type Catalog struct {
	records []Record
	byID    map[string]int
}

// New builds a Catalog after validating the records: IDs must be unique and
// non-empty, and at least four records are required to form a question.
func New(records ...Record) (*Catalog, error) {
	if len(records) < minCatalogSize {
		return nil, fmt.Errorf("%w: got %d records, need at least %d", ErrTooSmall, len(records), minCatalogSize)
	}

	byID := make(map[string]int, len(records))
	owned := make([]Record, len(records))
	for i, r := range records {
		if strings.TrimSpace(r.ID) == "" {
			return nil, fmt.Errorf("%w: record %d (%q)", ErrEmptyID, i, r.Model)
		}
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
		}
		if !r.Category.Valid() {
			return nil, fmt.Errorf("%w: %q on record %q", ErrUnknownCategory, r.Category, r.ID)
		}
		byID[r.ID] = i
		owned[i] = r
	}

	return &Catalog{records: owned, byID: byID}, nil
}

// Default returns the built-in aircraft catalog.
func Default() *Catalog {
	c, err := New(builtin...)
	if err != nil {
		// The built-in data is validated by tests; reaching this is a bug.
		panic("catalog: invalid built-in data: " + err.Error())
	}
	return c
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns a copy of every record.
func (c *Catalog) All() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// ByID returns the record with the given id.
func (c *Catalog) ByID(id string) (Record, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

// Filter returns copies of the records whose category is in the given set.
// An empty set means no filtering.
func (c *Catalog) Filter(categories ...Category) []Record {
	if len(categories) == 0 {
		return c.All()
	}
	enabled := make(map[Category]struct{}, len(categories))
	for _, cat := range categories {
		enabled[cat] = struct{}{}
	}
	var out []Record
	for _, r := range c.records {
		if _, ok := enabled[r.Category]; ok {
			out = append(out, r)
		}
	}
	return out
}
