package domain

// SiteSettings is the singleton record driving the public site's hero
// section, contact details, social links and chatbot behavior.
//
// Exactly one instance exists. When nothing has been stored yet the
// store serves DefaultSiteSettings instead.
type SiteSettings struct {
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	HeroCtaText  string `json:"heroCtaText"`

	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	TwitterURL  string `json:"twitterUrl,omitempty"`
	FacebookURL string `json:"facebookUrl,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`

	// ChatbotPrompt is the system prompt handed to the chat agent.
	ChatbotPrompt string `json:"chatbotPrompt"`
}

// DefaultSiteSettings returns the built-in settings served before an
// admin has saved any. The values are fixed constants, not user data.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		HeroTitle:     "Build Smart. Scale Fast.",
		HeroSubtitle:  "Creziapro delivers end-to-end digital solutions, from stunning websites to intelligent AI chatbots, empowering your business to thrive in the digital age.",
		HeroCtaText:   "Get a Quote",
		ContactEmail:  "contact@creziapro.com",
		ContactPhone:  "+91 12345 67890",
		TwitterURL:    "#",
		FacebookURL:   "#",
		LinkedinURL:   "#",
		ChatbotPrompt: "You are a helpful assistant for Creziapro. Help users find the right service and provide price estimates based on the available services and their pricing bands.",
	}
}

// ChatbotConfig is the read-only composition of the settings prompt and
// the current service catalogue, consumed by the chat agent.
type ChatbotConfig struct {
	Prompt   string    `json:"prompt"`
	Services []Service `json:"services"`
}

// Stats are the dashboard counters, derived from in-memory collection sizes.
type Stats struct {
	Messages  int `json:"messages"`
	Services  int `json:"services"`
	Projects  int `json:"projects"`
	BlogPosts int `json:"blogPosts"`
}
