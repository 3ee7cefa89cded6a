package domain

// PricingBand is one labelled price range of a service.
// Invariant: Min <= Max.
type PricingBand struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// Service is an offered service shown on the services page and fed to
// the chatbot so it can quote price estimates.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Icon is the name of the icon rendered by the frontend.
	Icon string `json:"icon"`

	// Features is an ordered list of selling points.
	Features []string `json:"features"`

	PricingBands []PricingBand `json:"pricingBands"`
}

// ServicePatch carries a partial update. Nil fields are left untouched.
type ServicePatch struct {
	Title        *string        `json:"title"`
	Description  *string        `json:"description"`
	Icon         *string        `json:"icon"`
	Features     *[]string      `json:"features"`
	PricingBands *[]PricingBand `json:"pricingBands"`
}
