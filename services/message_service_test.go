package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7pessoal-source/noir-menu-v2/entity"
)

func messageFixture() (*entity.RestaurantConfig, []entity.CartItem, entity.CheckoutForm) {
	cfg := openConfig()

	lines := []entity.CartItem{
		{Product: product(1, "Margherita Premium", 5990), Quantity: 2},
		{Product: product(2, "Suco Natural", 1290), Quantity: 1},
	}

	form := entity.CheckoutForm{
		NeighborhoodID:   "jardins",
		Street:           "Rua Augusta",
		Number:           "123",
		Complement:       "Ap 42",
		Reference:        "Próximo à praça",
		PaymentMethodID:  "pix",
		Notes:            "Sem cebola",
		CustomerWhatsApp: "(11) 98888-7777",
	}
	return cfg, lines, form
}

func TestOrderMessageGolden(t *testing.T) {
	cfg, lines, form := messageFixture()
	doc := BuildOrderMessage(cfg, lines, form)

	g := goldie.New(t)
	g.Assert(t, "order_message", []byte(doc))
}

func TestOrderMessageTotals(t *testing.T) {
	cfg, lines, form := messageFixture()
	doc := BuildOrderMessage(cfg, lines, form)

	assert.Contains(t, doc, "Subtotal: R$ 132,70")
	assert.Contains(t, doc, "Taxa de Entrega (Jardins): R$ 6,00")
	assert.Contains(t, doc, "*TOTAL: R$ 138,70*")
}

func TestOrderMessageOmitsBlankOptionalLines(t *testing.T) {
	cfg, lines, form := messageFixture()
	form.Complement = ""
	form.Reference = "  "
	form.Notes = ""

	doc := BuildOrderMessage(cfg, lines, form)
	assert.NotContains(t, doc, "Complemento:")
	assert.NotContains(t, doc, "Referência:")
	assert.NotContains(t, doc, "OBSERVAÇÕES")
}

func TestOrderMessageUnknownPaymentFallsBackToRawID(t *testing.T) {
	cfg, lines, form := messageFixture()
	form.PaymentMethodID = "criptomoeda"

	doc := BuildOrderMessage(cfg, lines, form)
	assert.Contains(t, doc, "💳 *PAGAMENTO:*\ncriptomoeda")
}

func TestOrderMessageWithoutDeliveryArea(t *testing.T) {
	cfg, lines, form := messageFixture()
	cfg.Neighborhoods = nil
	form.NeighborhoodID = ""

	doc := BuildOrderMessage(cfg, lines, form)
	assert.NotContains(t, doc, "Taxa de Entrega")
	assert.NotContains(t, doc, "Bairro:")
	assert.Contains(t, doc, "*TOTAL: R$ 132,70*")
}

func TestDeepLinkRoundTrip(t *testing.T) {
	cfg, lines, form := messageFixture()
	doc := BuildOrderMessage(cfg, lines, form)
	link := DeepLink(cfg.WhatsappNumber, doc)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/5511999999999", u.Path)

	// decoding yields the exact original document
	assert.Equal(t, doc, u.Query().Get("text"))
}

func TestDeepLinkStripsPhoneFormatting(t *testing.T) {
	link := DeepLink("+55 (11) 99999-9999", "oi")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511999999999?"))
}

func TestDeepLinkEscapesReservedCharacters(t *testing.T) {
	doc := "a&b=c?d #e\n*f*"
	link := DeepLink("5511999999999", doc)

	rest := strings.TrimPrefix(link, "https://wa.me/5511999999999?")
	assert.NotContains(t, rest, "&b")
	assert.NotContains(t, rest, "#")
	assert.NotContains(t, rest, "\n")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, doc, u.Query().Get("text"))
}
