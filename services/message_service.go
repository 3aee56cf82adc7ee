package services

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/7pessoal-source/noir-menu-v2/entity"
	"github.com/7pessoal-source/noir-menu-v2/pkg/money"
	"github.com/7pessoal-source/noir-menu-v2/utils"
)

// BuildOrderMessage serializes an accepted order into the WhatsApp text
// document. Section order is fixed; given the same input the output is
// byte-identical. lines must already be in catalog iteration order.
func BuildOrderMessage(cfg *entity.RestaurantConfig, lines []entity.CartItem, form entity.CheckoutForm) string {
	var out []string

	out = append(out,
		"🍽️ *NOVO PEDIDO - "+strings.ToUpper(cfg.Name)+"*",
		"",
		"📋 *ITENS DO PEDIDO:*",
	)

	subtotal := money.Zero()
	for _, it := range lines {
		subtotal = subtotal.Add(it.LineTotal())
		out = append(out, "• "+strconv.Itoa(it.Quantity)+"x "+it.Product.Name+" - "+it.LineTotal().BRL())
	}

	neighborhood, hasNeighborhood := SelectedNeighborhood(cfg, form)
	fee := DeliveryFee(cfg, form)
	total := subtotal.Add(fee)

	out = append(out, "", "💰 *VALORES:*")
	out = append(out, "Subtotal: "+subtotal.BRL())
	if hasNeighborhood {
		out = append(out, "Taxa de Entrega ("+neighborhood.Name+"): "+fee.BRL())
	}
	out = append(out, "*TOTAL: "+total.BRL()+"*")

	out = append(out, "", "📍 *ENDEREÇO:*")
	if hasNeighborhood {
		out = append(out, "Bairro: "+neighborhood.Name)
	}
	out = append(out, "Rua: "+form.Street+", "+form.Number)
	if strings.TrimSpace(form.Complement) != "" {
		out = append(out, "Complemento: "+form.Complement)
	}
	if strings.TrimSpace(form.Reference) != "" {
		out = append(out, "Referência: "+form.Reference)
	}

	out = append(out, "", "💳 *PAGAMENTO:*")
	out = append(out, paymentDisplayName(form.PaymentMethodID))

	if strings.TrimSpace(form.Notes) != "" {
		out = append(out, "", "📝 *OBSERVAÇÕES:*", form.Notes)
	}

	out = append(out, "", "📱 *WHATSAPP DO CLIENTE:*", form.CustomerWhatsApp)

	return strings.Join(out, "\n")
}

// DeepLink embeds the document in a wa.me URL. url.Values escapes every
// reserved character and the encoding round-trips through url.ParseQuery.
func DeepLink(whatsappNumber, document string) string {
	q := url.Values{"text": {document}}
	return "https://wa.me/" + utils.DigitsOnly(whatsappNumber) + "?" + q.Encode()
}

// unknown payment ids render as-is rather than failing the order
func paymentDisplayName(id string) string {
	if m, ok := entity.PaymentMethodByID(id); ok {
		return m.Name
	}
	return id
}
