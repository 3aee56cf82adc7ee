package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder" gorm:"index"`

	Products []Product `json:"-"`
}
