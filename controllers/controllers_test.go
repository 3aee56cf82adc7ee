package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/7pessoal-source/noir-menu-v2/entity"
	"github.com/7pessoal-source/noir-menu-v2/routes"
)

// client drives the wired engine and replays the session cookie so cart
// requests land on the same session, the way a browser would.
type client struct {
	t       *testing.T
	r       *gin.Engine
	cookies []*http.Cookie
}

func newClient(t *testing.T) (*client, *routes.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Category{}, &entity.Product{},
		&entity.Setting{}, &entity.MenuConfig{},
	))

	r := gin.New()
	app := routes.RegisterRoutes(r, db)
	return &client{t: t, r: r}, app
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	if got := w.Result().Cookies(); len(got) > 0 {
		c.cookies = got
	}
	return w
}

func (c *client) decode(w *httptest.ResponseRecorder, out any) {
	c.t.Helper()
	var envelope struct {
		OK   bool            `json:"ok"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(c.t, envelope.OK)
	if out != nil {
		require.NoError(c.t, json.Unmarshal(envelope.Data, out))
	}
}

// seedOpenRestaurant configures the restaurant through the admin API so it
// is open at any wall-clock time the test happens to run.
func seedOpenRestaurant(c *client) (productID uint) {
	put := func(key, value string) {
		w := c.do(http.MethodPut, "/admin/settings/"+key,
			map[string]json.RawMessage{"value": json.RawMessage(value)})
		require.Equal(c.t, http.StatusOK, w.Code)
	}

	put("general.name", `"Noir Menu"`)
	put("general.phone", `"5511999999999"`)
	put("orders.minimum_value", `20`)
	put("delivery.neighborhoods", `[{"id":"jardins","name":"Jardins","delivery_fee":6}]`)
	for _, day := range []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		put("hours."+day, `{"open":"00:00","close":"23:59","closed":false}`)
	}

	w := c.do(http.MethodPost, "/admin/categories", gin.H{"name": "Pizzas", "sortOrder": 1})
	require.Equal(c.t, http.StatusCreated, w.Code)
	var cat entity.Category
	c.decode(w, &cat)

	w = c.do(http.MethodPost, "/admin/products", gin.H{
		"name": "Margherita Premium", "price": 59.90, "categoryId": cat.ID,
	})
	require.Equal(c.t, http.StatusCreated, w.Code)
	var p entity.Product
	c.decode(w, &p)
	return p.ID
}

func TestMenuEndpointServesResolvedConfig(t *testing.T) {
	c, app := newClient(t)
	seedOpenRestaurant(c)
	app.Sync.Refresh()

	w := c.do(http.MethodGet, "/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var menu struct {
		Categories []json.RawMessage `json:"categories"`
		Config     struct {
			Name   string `json:"name"`
			IsOpen bool   `json:"isOpen"`
			Source string `json:"source"`
		} `json:"config"`
		Version   int64  `json:"version"`
		SyncState string `json:"syncState"`
	}
	c.decode(w, &menu)

	assert.Len(t, menu.Categories, 1)
	assert.Equal(t, "Noir Menu", menu.Config.Name)
	assert.True(t, menu.Config.IsOpen)
	assert.Equal(t, "settings", menu.Config.Source)
	assert.GreaterOrEqual(t, menu.Version, int64(1))
	assert.Equal(t, "ready", menu.SyncState)
}

func TestMenuEndpointFallsBackToDefaultsBeforeFirstFetch(t *testing.T) {
	c, _ := newClient(t)

	w := c.do(http.MethodGet, "/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var menu struct {
		Config struct {
			Source string `json:"source"`
		} `json:"config"`
		SyncState string `json:"syncState"`
	}
	c.decode(w, &menu)
	assert.Equal(t, "static", menu.Config.Source)
	assert.Equal(t, "idle", menu.SyncState)
}

func TestCartFlowAndCheckout(t *testing.T) {
	c, app := newClient(t)
	productID := seedOpenRestaurant(c)
	app.Sync.Refresh()

	// unknown product is rejected
	w := c.do(http.MethodPost, "/cart/items", gin.H{"productId": 9999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// add the same product twice: one line, quantity 2
	w = c.do(http.MethodPost, "/cart/items", gin.H{"productId": productID})
	require.Equal(t, http.StatusCreated, w.Code)
	w = c.do(http.MethodPost, "/cart/items", gin.H{"productId": productID})
	require.Equal(t, http.StatusCreated, w.Code)

	var cart struct {
		Items      []struct{ Quantity int } `json:"items"`
		Subtotal   json.Number              `json:"subtotal"`
		TotalItems int                      `json:"totalItems"`
	}
	c.decode(w, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "119.80", cart.Subtotal.String())
	assert.Equal(t, 2, cart.TotalItems)

	// checkout with a blank form lists the violations, cart untouched
	w = c.do(http.MethodPost, "/checkout", entity.CheckoutForm{})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var rejected struct {
		Violations []string `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rejected))
	assert.Contains(t, rejected.Violations, "Selecione um bairro.")
	assert.Contains(t, rejected.Violations, "Informe seu WhatsApp.")

	// valid checkout returns the deep link and clears the cart
	w = c.do(http.MethodPost, "/checkout", entity.CheckoutForm{
		NeighborhoodID:   "jardins",
		Street:           "Rua Augusta",
		Number:           "123",
		PaymentMethodID:  "pix",
		CustomerWhatsApp: "(11) 98888-7777",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		WaURL string      `json:"waUrl"`
		Total json.Number `json:"total"`
	}
	c.decode(w, &result)
	assert.True(t, strings.HasPrefix(result.WaURL, "https://wa.me/5511999999999?text="))
	assert.Equal(t, "125.80", result.Total.String())

	w = c.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	c.decode(w, &cart)
	assert.Empty(t, cart.Items)
}

func TestCartQuantityEndpoints(t *testing.T) {
	c, app := newClient(t)
	productID := seedOpenRestaurant(c)
	app.Sync.Refresh()

	w := c.do(http.MethodPost, "/cart/items", gin.H{"productId": productID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodPatch, "/cart/items/qty", gin.H{"productId": productID, "qty": 5})
	require.Equal(t, http.StatusOK, w.Code)
	var cart struct {
		Items      []struct{ Quantity int } `json:"items"`
		TotalItems int                      `json:"totalItems"`
	}
	c.decode(w, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// zero removes the line
	w = c.do(http.MethodPatch, "/cart/items/qty", gin.H{"productId": productID, "qty": 0})
	require.Equal(t, http.StatusOK, w.Code)
	c.decode(w, &cart)
	assert.Empty(t, cart.Items)
}

func TestAdminWritesReachTheMenuAfterRefresh(t *testing.T) {
	c, app := newClient(t)
	seedOpenRestaurant(c)
	app.Sync.Refresh()
	before := app.Sync.Snapshot().Version

	put := c.do(http.MethodPut, "/admin/settings/general.name",
		map[string]json.RawMessage{"value": json.RawMessage(`"Outro Nome"`)})
	require.Equal(t, http.StatusOK, put.Code)

	w := c.do(http.MethodPost, "/menu/refresh", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Greater(t, app.Sync.Snapshot().Version, before)

	w = c.do(http.MethodGet, "/menu", nil)
	var menu struct {
		Config struct {
			Name string `json:"name"`
		} `json:"config"`
	}
	c.decode(w, &menu)
	assert.Equal(t, "Outro Nome", menu.Config.Name)
}

func TestPaymentMethodsEndpoint(t *testing.T) {
	c, _ := newClient(t)

	w := c.do(http.MethodGet, "/payment-methods", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var methods []entity.PaymentMethod
	c.decode(w, &methods)
	require.Len(t, methods, 3)

	ids := make([]string, len(methods))
	for i, m := range methods {
		ids[i] = m.ID
	}
	assert.Equal(t, []string{"dinheiro", "pix", "cartao"}, ids)
}

func TestSessionCookieIsIssuedOnce(t *testing.T) {
	c, _ := newClient(t)

	w := c.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, c.cookies)
	first := c.cookies[0].Value

	// the replayed cookie is accepted, no new one minted
	w = c.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Result().Cookies())
	assert.Equal(t, first, c.cookies[0].Value)
}
