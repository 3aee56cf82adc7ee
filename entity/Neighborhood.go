package entity

import (
	"github.com/7pessoal-source/noir-menu-v2/pkg/money"
)

type Neighborhood struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	DeliveryFee money.Money `json:"deliveryFee"`
}
