package dal

// BrewerySummary defines the minimal brewery record used for the result list
// and the postal histogram
type BrewerySummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PostalCode string `json:"postal_code"`
}

// BreweryDetail defines a single brewery as shown on its detail page
type BreweryDetail struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BreweryType string `json:"brewery_type"`
	City        string `json:"city"`
	State       string `json:"state"`
	WebsiteURL  string `json:"website_url"`
}

// SearchQuery defines the parameters of a by-city search
type SearchQuery struct {
	City string
	Type BreweryType
}
