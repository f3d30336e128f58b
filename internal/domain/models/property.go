package models

// Property represents a hotel site as known to the upstream inventory
// provider. The siteID is the provider's stable unique identifier; the
// position of a property in the site list fixes its column in the rate
// matrix for the whole request.
//
// Fields beyond SiteID and PrimaryName are populated only by the
// property-information operation and feed the card display; the
// aggregation core never reads them.
type Property struct {
	SiteID      int      `json:"siteID" example:"11"`
	PrimaryName string   `json:"primaryName" example:"Dromoland Castle"`
	Address     string   `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	URL         string   `json:"url,omitempty"`
	Stars       int      `json:"stars,omitempty" example:"5"`
	Currency    string   `json:"currency,omitempty" example:"EUR"`
	Facilities  []string `json:"facilities,omitempty"`
	Images      []string `json:"images,omitempty"`
	Latitude    float64  `json:"latitude,omitempty"`
	Longitude   float64  `json:"longitude,omitempty"`
}
