package entity

import (
	"github.com/7pessoal-source/noir-menu-v2/pkg/money"
)

// Config source tags, reported to the UI so it can flag stale/static data.
const (
	ConfigSourceSettings = "settings"
	ConfigSourceLegacy   = "legacy"
	ConfigSourceStatic   = "static"
)

// RestaurantConfig is the resolved, read-only configuration snapshot.
// Built whole by one resolver pass; never patched in place.
type RestaurantConfig struct {
	Source string `json:"source"`

	Name           string `json:"name"`
	Tagline        string `json:"tagline"`
	WhatsappNumber string `json:"whatsappNumber"`

	IsOpen        bool   `json:"isOpen"`
	OpenTime      string `json:"openTime"`
	CloseTime     string `json:"closeTime"`
	WorkingDays   string `json:"workingDays"`
	ClosedMessage string `json:"closedMessage"`
	EstimatedTime string `json:"estimatedTime"`

	MinimumOrder        money.Money `json:"minimumOrder"`
	MinimumOrderEnabled bool        `json:"minimumOrderEnabled"`

	Neighborhoods []Neighborhood `json:"neighborhoods"`
}

func (c *RestaurantConfig) NeighborhoodByID(id string) (Neighborhood, bool) {
	for _, n := range c.Neighborhoods {
		if n.ID == id {
			return n, true
		}
	}
	return Neighborhood{}, false
}
