package mssos

type BusinessSummary struct {
	State  string `json:"state"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Id     string `json:"id"`
	Url    string `json:"url"`
}

type DocumentRecord struct {
	Link        string `json:"link"`
	Description string `json:"description"`
	Name        string `json:"name"`
	Date        string `json:"date"`
}

type OfficerRecord struct {
	// Name is nil when the officer's cell has no link.
	Name    *string `json:"name"`
	Address string  `json:"address"`
	Title   string  `json:"title"`
}

// BusinessDetail is the record extracted from a business detail page. The
// labeled fields are nil when their label is missing from the page, Officers
// is nil when no officer rows were found and Documents is never nil on a
// record returned by Scraper.Details.
type BusinessDetail struct {
	State              string           `json:"state"`
	Name               string           `json:"name"`
	Status             *string          `json:"status"`
	RegistrationNumber *string          `json:"registration_number"`
	DateRegistered     *string          `json:"date_registered"`
	EntityType         *string          `json:"entity_type"`
	PrincipalAddress   *string          `json:"principal_address"`
	AgentName          string           `json:"agent_name"`
	AgentAddress       string           `json:"agent_address"`
	Officers           []OfficerRecord  `json:"officers"`
	Documents          []DocumentRecord `json:"documents"`
}

// IsZero reports whether d is the empty sentinel returned on failure.
func (d BusinessDetail) IsZero() bool {
	return d.State == "" &&
		d.Name == "" &&
		d.Status == nil &&
		d.RegistrationNumber == nil &&
		d.Officers == nil &&
		d.Documents == nil
}
