package services

import (
	"strings"

	"github.com/7pessoal-source/noir-menu-v2/configs"
	"github.com/7pessoal-source/noir-menu-v2/entity"
	"github.com/7pessoal-source/noir-menu-v2/pkg/money"
)

// ValidateCheckout evaluates every business rule and returns the full
// ordered list of violations; an empty list means the order is accepted.
// It is a pure function: no side effects, same input same output.
func ValidateCheckout(cart *entity.Cart, cfg *entity.RestaurantConfig, form entity.CheckoutForm) []string {
	var violations []string

	if !cfg.IsOpen {
		violations = append(violations, "O restaurante está fechado no momento.")
	}

	if cart.IsEmpty() {
		violations = append(violations, "Seu carrinho está vazio.")
	}

	if cfg.MinimumOrderEnabled {
		subtotal := cart.Subtotal()
		if subtotal.LessThan(cfg.MinimumOrder) {
			shortfall := cfg.MinimumOrder.Sub(subtotal)
			violations = append(violations,
				"Pedido mínimo não atingido: "+cfg.MinimumOrder.BRL()+". Faltam "+shortfall.BRL()+".")
		}
	}

	// Only require a neighborhood when there is a delivery area to pick
	// from; with an empty set the fee is zero and the field is skipped.
	if len(cfg.Neighborhoods) > 0 {
		if _, ok := SelectedNeighborhood(cfg, form); !ok {
			violations = append(violations, "Selecione um bairro.")
		}
	}

	if strings.TrimSpace(form.Street) == "" {
		violations = append(violations, "Informe a rua.")
	}

	if strings.TrimSpace(form.Number) == "" {
		violations = append(violations, "Informe o número.")
	}

	if form.PaymentMethodID == "" {
		violations = append(violations, "Selecione a forma de pagamento.")
	}

	if strings.TrimSpace(form.CustomerWhatsApp) == "" {
		violations = append(violations, "Informe seu WhatsApp.")
	}

	return violations
}

// SelectedNeighborhood resolves the form's neighborhood id against the
// configured delivery area.
func SelectedNeighborhood(cfg *entity.RestaurantConfig, form entity.CheckoutForm) (entity.Neighborhood, bool) {
	if form.NeighborhoodID == "" {
		return entity.Neighborhood{}, false
	}
	return cfg.NeighborhoodByID(form.NeighborhoodID)
}

// DeliveryFee is zero when no neighborhood applies.
func DeliveryFee(cfg *entity.RestaurantConfig, form entity.CheckoutForm) money.Money {
	if n, ok := SelectedNeighborhood(cfg, form); ok {
		return n.DeliveryFee
	}
	return money.Zero()
}

// CheckoutService ties validation, formatting and the cart lifecycle
// together for the HTTP layer.
type CheckoutService struct {
	Carts *CartService
	Sync  SnapshotProvider
}

func NewCheckoutService(carts *CartService, sync SnapshotProvider) *CheckoutService {
	return &CheckoutService{Carts: carts, Sync: sync}
}

type CheckoutResult struct {
	Message     string      `json:"message"`
	WaURL       string      `json:"waUrl"`
	Subtotal    money.Money `json:"subtotal"`
	DeliveryFee money.Money `json:"deliveryFee"`
	Total       money.Money `json:"total"`
}

// Submit validates the session's cart against the current config snapshot.
// On acceptance it builds the WhatsApp document and deep link and clears
// the cart; the caller (the browser) opens the link. On rejection it
// returns the ordered violation list — violations are user data, not
// errors.
func (s *CheckoutService) Submit(sessionID string, form entity.CheckoutForm) (*CheckoutResult, []string) {
	snap := s.Sync.Snapshot()

	cfg := snap.Config
	if cfg == nil {
		cfg = configs.DefaultRestaurantConfig()
	}

	cart := s.Carts.Snapshot(sessionID)

	if violations := ValidateCheckout(cart, cfg, form); len(violations) > 0 {
		return nil, violations
	}

	lines := snap.Catalog.OrderLines(cart)
	subtotal := cart.Subtotal()
	fee := DeliveryFee(cfg, form)

	doc := BuildOrderMessage(cfg, lines, form)
	result := &CheckoutResult{
		Message:     doc,
		WaURL:       DeepLink(cfg.WhatsappNumber, doc),
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}

	// the only commit: clear after the link exists
	s.Carts.Clear(sessionID)
	return result, nil
}
