package domain

// Banner is a promotional banner shown on the home page.
type Banner struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`

	// Link is where the banner points when clicked.
	Link string `json:"link"`

	Published bool `json:"published"`
}

// BannerPatch carries a partial update. Nil fields are left untouched.
type BannerPatch struct {
	Title     *string `json:"title"`
	ImageURL  *string `json:"imageUrl"`
	Link      *string `json:"link"`
	Published *bool   `json:"published"`
}
