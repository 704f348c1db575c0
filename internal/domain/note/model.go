package note

// Note is a single entry as clients consume it: the project reference is
// denormalized so the phone and watch can render without a second lookup.
// Project fields are pointers because the read model left-joins projects and
// a dangling reference serializes as null.
type Note struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	ProjectID    *int64  `json:"projectId"`
	ProjectName  *string `json:"projectName"`
	ProjectColor *string `json:"projectColor"`
	UpdatedAt    int64   `json:"updatedAt"`
}
