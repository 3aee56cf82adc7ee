package entity

import (
	"gorm.io/gorm"

	"github.com/7pessoal-source/noir-menu-v2/pkg/money"
)

type Product struct {
	gorm.Model
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Money `json:"price" gorm:"type:decimal(10,2)"`
	ImageURL    string      `json:"imageUrl"`
	Available   bool        `json:"available" gorm:"default:true"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`
}
