package project

const (
	// DefaultName is the bootstrap project every deployment starts with.
	// Notes that arrive without a project reference land here.
	DefaultName = "General"
	// DefaultColor is applied when a client omits or blanks the color.
	DefaultColor = "#90CAF9"
)

// Project groups notes under a display name. The name is the business key:
// upserting an existing name updates the color in place.
type Project struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
