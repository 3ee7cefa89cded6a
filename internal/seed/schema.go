package seed

// File is the top-level structure of the optional seed YAML.
type File struct {
	Settings *Settings `yaml:"settings,omitempty"`
	Services []Service `yaml:"services,omitempty"`
	Projects []Project `yaml:"projects,omitempty"`
}

// Settings overrides the default site settings. Empty fields keep the default.
type Settings struct {
	HeroTitle     string `yaml:"heroTitle,omitempty"`
	HeroSubtitle  string `yaml:"heroSubtitle,omitempty"`
	HeroCtaText   string `yaml:"heroCtaText,omitempty"`
	ContactEmail  string `yaml:"contactEmail,omitempty"`
	ContactPhone  string `yaml:"contactPhone,omitempty"`
	TwitterURL    string `yaml:"twitterUrl,omitempty"`
	FacebookURL   string `yaml:"facebookUrl,omitempty"`
	LinkedinURL   string `yaml:"linkedinUrl,omitempty"`
	ChatbotPrompt string `yaml:"chatbotPrompt,omitempty"`
}

// Service is one seeded service offering.
type Service struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Icon        string        `yaml:"icon"`
	Features    []string      `yaml:"features,omitempty"`
	Pricing     []PricingBand `yaml:"pricing,omitempty"`
}

// PricingBand mirrors a service pricing tier.
type PricingBand struct {
	Label string `yaml:"label"`
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
}

// Project is one seeded portfolio project.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}
