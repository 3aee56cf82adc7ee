package entity

import (
	"time"
)

// Setting is one row of the flat key/value configuration table.
// Key is a dotted path ("general.phone", "hours.monday"); Value holds the
// raw JSON for that key, decoded only by the config resolver.
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
