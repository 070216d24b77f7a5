package extract

import "strings"

// aboutSection mirrors one section of the scraper's about column, a list of
// named boolean options grouped under headings like "Service options".
type aboutSection struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Options []aboutOption `json:"options"`
}

type aboutOption struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Services holds the pickup/delivery flags derived from the about column.
type Services struct {
	IsPickup   bool
	IsDelivery bool
}

// ExtractServices scans every option of every about section. An option
// whose name contains "pickup" sets IsPickup to that option's enabled flag;
// "delivery" sets IsDelivery the same way. Matching is case-insensitive and
// the last matching option wins. With no matching option a flag stays false.
func ExtractServices(raw string) Services {
	sections := Decode(raw, []aboutSection{})

	var services Services

	for _, section := range sections {
		for _, option := range section.Options {
			name := strings.ToLower(option.Name)

			if strings.Contains(name, "pickup") {
				services.IsPickup = option.Enabled
			}

			if strings.Contains(name, "delivery") {
				services.IsDelivery = option.Enabled
			}
		}
	}

	return services
}
