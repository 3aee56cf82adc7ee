package entity

import (
	"gorm.io/gorm"

	"github.com/7pessoal-source/noir-menu-v2/pkg/money"
)

// MenuConfig is the legacy single-row configuration table. It is used
// verbatim when the settings table is empty; optional columns stay nil
// rather than being filled with defaults.
type MenuConfig struct {
	gorm.Model
	WhatsappNumber string      `json:"whatsappNumber"`
	MinimumOrder   money.Money `json:"minimumOrder" gorm:"type:decimal(10,2)"`
	Neighborhoods  string      `json:"neighborhoods"` // raw JSON array

	RestaurantName *string `json:"restaurantName"`
	Tagline        *string `json:"tagline"`
	OpenTime       *string `json:"openTime"`
	CloseTime      *string `json:"closeTime"`
	WorkingDays    *string `json:"workingDays"`
	IsOpen         *bool   `json:"isOpen"`
}
