package entity

// CheckoutForm carries the raw user input for checkout. Fields may hold
// empty or partial values; nothing is enforced until the validator runs.
type CheckoutForm struct {
	NeighborhoodID   string `json:"neighborhoodId"`
	Street           string `json:"street"`
	Number           string `json:"number"`
	Complement       string `json:"complement"`
	Reference        string `json:"reference"`
	PaymentMethodID  string `json:"paymentMethodId"`
	Notes            string `json:"notes"`
	CustomerWhatsApp string `json:"customerWhatsapp"`
}
