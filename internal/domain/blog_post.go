package domain

// BlogPost is one article of the blog.
//
// Slug uniqueness is a convention enforced at the API boundary, not by
// the store: two posts with the same slug are stored fine, the public
// slug lookup just returns the most recent published one.
type BlogPost struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// Slug is the URL fragment of the post (lowercase/digits/hyphens).
	Slug string `json:"slug"`

	Content string `json:"content"`
	Author  string `json:"author"`

	// Published gates visibility on the public blog listing.
	Published bool `json:"published"`

	CreatedAt Millis `json:"createdAt"`
}

// BlogPostPatch carries a partial update. Nil fields are left untouched.
// CreatedAt is stamped once at creation and never patched.
type BlogPostPatch struct {
	Title     *string `json:"title"`
	Slug      *string `json:"slug"`
	Content   *string `json:"content"`
	Author    *string `json:"author"`
	Published *bool   `json:"published"`
}
