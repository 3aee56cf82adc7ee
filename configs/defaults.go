package configs

import (
	"github.com/7pessoal-source/noir-menu-v2/entity"
	"github.com/7pessoal-source/noir-menu-v2/pkg/money"
)

// DefaultNeighborhoods is the compiled-in delivery area, used when no data
// source is reachable at all.
var DefaultNeighborhoods = []entity.Neighborhood{
	{ID: "centro", Name: "Centro", DeliveryFee: money.FromCents(500)},
	{ID: "jardins", Name: "Jardins", DeliveryFee: money.FromCents(600)},
	{ID: "vila-madalena", Name: "Vila Madalena", DeliveryFee: money.FromCents(700)},
	{ID: "pinheiros", Name: "Pinheiros", DeliveryFee: money.FromCents(650)},
	{ID: "moema", Name: "Moema", DeliveryFee: money.FromCents(800)},
	{ID: "itaim-bibi", Name: "Itaim Bibi", DeliveryFee: money.FromCents(750)},
	{ID: "consolacao", Name: "Consolação", DeliveryFee: money.FromCents(550)},
	{ID: "bela-vista", Name: "Bela Vista", DeliveryFee: money.FromCents(500)},
	{ID: "liberdade", Name: "Liberdade", DeliveryFee: money.FromCents(500)},
	{ID: "paraiso", Name: "Paraíso", DeliveryFee: money.FromCents(600)},
}

// DefaultRestaurantConfig is the fallback when neither the settings table
// nor the legacy config row exists. Callers treat it as "static defaults",
// never as an error.
func DefaultRestaurantConfig() *entity.RestaurantConfig {
	return &entity.RestaurantConfig{
		Source:         entity.ConfigSourceStatic,
		Name:           "Nome da Sua Empresa",
		Tagline:        "Seu Slogan",
		WhatsappNumber: "5511999999999",

		IsOpen:        true,
		OpenTime:      "18:00",
		CloseTime:     "23:00",
		WorkingDays:   "Terça a Domingo",
		ClosedMessage: "Estamos fechados no momento. Nosso horário de funcionamento é de Terça a Domingo, das 18h às 23h.",
		EstimatedTime: "40-60 min",

		MinimumOrder:        money.FromCents(3000),
		MinimumOrderEnabled: true,

		Neighborhoods: DefaultNeighborhoods,
	}
}
