package domain

// ReviewStatus is the moderation state of a customer review.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
)

// Valid reports whether s is one of the known statuses.
func (s ReviewStatus) Valid() bool {
	return s == ReviewPending || s == ReviewApproved
}

// Review is a customer review submitted from the public site.
//
// New reviews always enter the moderation queue as pending,
// whatever status the submitter claims.
type Review struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Rating is 1..5, validated at the API boundary.
	Rating int `json:"rating"`

	Comment   string       `json:"comment"`
	Status    ReviewStatus `json:"status"`
	CreatedAt Millis       `json:"createdAt"`
}
