package extract

// Address is the decoded complete_address sub-document. Fields that the
// scraper left unset stay "".
type Address struct {
	Street     string `json:"street"`
	Borough    string `json:"borough"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
	Country    string `json:"country_code"`
}

// ExtractAddress decodes the raw complete_address column. A malformed or
// absent sub-document yields an empty Address.
func ExtractAddress(raw string) Address {
	return Decode(raw, Address{})
}
