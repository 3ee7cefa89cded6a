package store

// Durable key namespaces. Every collection owns one prefix; the single
// settings record lives under one reserved key. Hydration dispatches
// stored entries to their in-memory collection by these prefixes and
// ignores anything it does not recognize.
const (
	prefixChatSession  = "session_"
	prefixContact      = "contact_"
	prefixService      = "service_"
	prefixProject      = "project_"
	prefixBlogPost     = "blogpost_"
	prefixBanner       = "banner_"
	prefixReview       = "review_"
	prefixAdminSession = "adminsession_"

	keySiteSettings = "site_settings"
)

func chatSessionKey(id string) string  { return prefixChatSession + id }
func contactKey(id string) string      { return prefixContact + id }
func serviceKey(id string) string      { return prefixService + id }
func projectKey(id string) string      { return prefixProject + id }
func blogPostKey(id string) string     { return prefixBlogPost + id }
func bannerKey(id string) string       { return prefixBanner + id }
func reviewKey(id string) string       { return prefixReview + id }
func adminSessionKey(id string) string { return prefixAdminSession + id }
