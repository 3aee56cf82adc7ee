package entity

// Icon tags the frontend knows how to render. Unknown tags must fall back
// to IconDefault, never fail.
const (
	IconBanknote   = "banknote"
	IconQRCode     = "qr-code"
	IconCreditCard = "credit-card"

	IconDefault = IconCreditCard
)

type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// PaymentMethods is the accepted set. Compiled in; the admin panel does not
// manage these.
var PaymentMethods = []PaymentMethod{
	{ID: "dinheiro", Name: "Dinheiro", Icon: IconBanknote},
	{ID: "pix", Name: "Pix", Icon: IconQRCode},
	{ID: "cartao", Name: "Cartão", Icon: IconCreditCard},
}

func PaymentMethodByID(id string) (PaymentMethod, bool) {
	for _, m := range PaymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

func NormalizeIcon(icon string) string {
	switch icon {
	case IconBanknote, IconQRCode, IconCreditCard:
		return icon
	default:
		return IconDefault
	}
}
