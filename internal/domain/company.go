package domain

// Provider identifies which ATS hosts a company's job board.
type Provider string

const (
	ProviderGreenhouse      Provider = "greenhouse"
	ProviderLever           Provider = "lever"
	ProviderWorkday         Provider = "workday"
	ProviderAshby           Provider = "ashby"
	ProviderSmartRecruiters Provider = "smartrecruiters"
	// ProviderCustom marks manually curated companies that are never
	// auto-scraped.
	ProviderCustom Provider = "custom"
)

// Company is read-only configuration for the pipeline; lifecycle management
// belongs to whoever maintains the config file.
type Company struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	CareerURL string   `json:"careerUrl"`
	Provider  Provider `json:"provider"`
	// BoardSlug is the provider-side identifier for slug-addressed boards
	// (greenhouse, lever, ashby, smartrecruiters).
	BoardSlug string `json:"boardSlug"`
	// BoardURL is the full job-board URL for providers that need one (workday).
	BoardURL string `json:"boardUrl"`
	Active   bool   `json:"active"`
}
