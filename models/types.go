package models

// Database type constants
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Request types

type UpdateSectionRequest struct {
	Title  string `json:"title"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Active bool   `json:"active"`
}

type UpdateSizeRequest struct {
	Size  string `json:"size"`
	Price string `json:"price"`
}

// Every mutable item column is overwritten on update, so omitted optional
// fields write NULL rather than keeping the previous value.
type UpdateItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Emoji       string  `json:"emoji"`
	BgColor     string  `json:"bgColor"`
	Image       *string `json:"image"`
	Active      bool    `json:"active"`
	OrderIndex  int     `json:"orderIndex"`
}

// Response types

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types (database rows)

type Section struct {
	ID     int64  `json:"id"`
	Key    string `json:"key"`
	Title  string `json:"title"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Active bool   `json:"active"`
}

type Size struct {
	ID         int64  `json:"id"`
	SectionKey string `json:"section_key"`
	Size       string `json:"size"`
	Price      string `json:"price"`
}

type Subsection struct {
	ID         int64  `json:"id"`
	SectionKey string `json:"section_key"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index"`
}

// An item belongs to exactly one of a section (direct) or a subsection.
// The unused owner reference is nil.
type Item struct {
	ID           int64   `json:"id"`
	SectionKey   *string `json:"section_key,omitempty"`
	SubsectionID *int64  `json:"subsection_id,omitempty"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        *string `json:"price"`
	Emoji        string  `json:"emoji"`
	BgColor      string  `json:"bg_color"`
	Image        *string `json:"image"`
	Active       bool    `json:"active"`
	OrderIndex   int     `json:"order_index"`
}

// Assembled document types

// Menu is the assembled document, keyed by section natural key.
type Menu map[string]*SectionView

// SectionView attaches sizes, subsections, and items only when the
// corresponding query returned rows. An absent field means "this kind of
// child doesn't apply here"; consumers branch on field presence, not length.
type SectionView struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Icon        string           `json:"icon"`
	Color       string           `json:"color"`
	Active      bool             `json:"active"`
	Sizes       []SizeView       `json:"sizes,omitempty"`
	Subsections []SubsectionView `json:"subsections,omitempty"`
	Items       []ItemView       `json:"items,omitempty"`
}

type SizeView struct {
	ID    int64  `json:"id"`
	Size  string `json:"size"`
	Price string `json:"price"`
}

type SubsectionView struct {
	ID    int64      `json:"id"`
	Title string     `json:"title"`
	Items []ItemView `json:"items"`
}

type ItemView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Emoji       string  `json:"emoji"`
	BgColor     string  `json:"bgColor"`
	Image       *string `json:"image"`
	Active      bool    `json:"active"`
}
