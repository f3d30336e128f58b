package provider

import (
	"github.com/guttosm/ratepulse/internal/domain/models"
)

// userAuth carries the credentials sent with every RPC envelope.
type userAuth struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// rpcRequest is the POST envelope of the upstream inventory API. Every
// operation goes to the same URL; the "operation" field selects the
// behavior and the remaining fields are operation-specific.
type rpcRequest struct {
	UserAuth         userAuth `json:"userAuth"`
	Operation        string   `json:"operation"`
	SiteIDList       []int    `json:"siteIDList,omitempty"`
	StartDate        string   `json:"startDate,omitempty"`
	InventoryHorizon int      `json:"inventoryHorizon,omitempty"`
	LOSOptions       []int    `json:"losOptions,omitempty"`
}

// Site is one entry of the getSiteAccess response: the provider's
// stable identifier plus the display name used in the matrix header.
type Site struct {
	SiteID      int    `json:"siteID"`
	PrimaryName string `json:"primaryName"`
}

// SiteAccessResult is the getSiteAccess payload. The order of SiteList
// fixes the matrix column order for the whole request.
type SiteAccessResult struct {
	SiteList []Site `json:"siteList"`
}

// PropertyInfoResult is the getPropertyInformation payload with the
// rich per-site metadata used for card display.
type PropertyInfoResult struct {
	SiteList []models.Property `json:"siteList"`
}

// PriceTier is one pricing tier of a rate record. The single-occupancy
// price lives in pr1, double-occupancy in pr2; either may be absent.
type PriceTier struct {
	Pr1 *float64 `json:"pr1,omitempty"`
	Pr2 *float64 `json:"pr2,omitempty"`
}

// For selects the tier price for an occupancy mode, nil when the tier
// carries no price for that mode.
func (p PriceTier) For(occ models.Occupancy) *float64 {
	if occ == models.Couple {
		return p.Pr2
	}
	return p.Pr1
}

// Rate is one raw quote record: a room's rate for a checkin date.
// Multiple records may exist for the same (siteID, checkin) pair, one
// per room type; only tier index 0 of Price is ever consulted.
type Rate struct {
	RateID    int         `json:"rateID"`
	RoomID    int         `json:"roomID"`
	Checkin   string      `json:"checkin"`
	Occupancy int         `json:"occupancy"`
	Price     []PriceTier `json:"price"`
}

// SiteRates groups the rate records of one site in a getRates response.
// Sites are returned in the order they were requested.
type SiteRates struct {
	SiteID      int    `json:"siteID"`
	PrimaryName string `json:"primaryName"`
	Rates       []Rate `json:"rates"`
}

// RatesResult is the getRates payload.
type RatesResult struct {
	SiteList []SiteRates `json:"siteList"`
}
