package domain

// ProjectStatus is the lifecycle state of a portfolio project.
type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "Ongoing"
	ProjectCompleted ProjectStatus = "Completed"
)

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	return s == ProjectOngoing || s == ProjectCompleted
}

// Project is a portfolio entry.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Image is the URL of the showcase image.
	Image string `json:"image"`

	Status ProjectStatus `json:"status"`
	Tags   []string      `json:"tags"`
}

// ProjectPatch carries a partial update. Nil fields are left untouched.
type ProjectPatch struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Image       *string        `json:"image"`
	Status      *ProjectStatus `json:"status"`
	Tags        *[]string      `json:"tags"`
}
