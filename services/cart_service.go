package services

import (
	"sync"

	"github.com/7pessoal-source/noir-menu-v2/entity"
	"github.com/7pessoal-source/noir-menu-v2/pkg/money"
)

// CartService keeps one in-memory cart per browsing session. Carts are
// never persisted: they live for the session and are dropped on checkout
// or explicit clear. All operations succeed; availability is the
// catalog's concern, not the cart's.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*entity.Cart
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string]*entity.Cart)}
}

// CartView is the derived read model, recomputed on every Get.
type CartView struct {
	Items      []entity.CartItem `json:"items"`
	Subtotal   money.Money       `json:"subtotal"`
	TotalItems int               `json:"totalItems"`
}

func (s *CartService) Get(sessionID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	items := make([]entity.CartItem, len(c.Items))
	copy(items, c.Items)
	return CartView{Items: items, Subtotal: c.Subtotal(), TotalItems: c.TotalItems()}
}

func (s *CartService) Add(sessionID string, p entity.Product) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Add(p)
	return s.view(c)
}

func (s *CartService) UpdateQuantity(sessionID string, productID uint, qty int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.UpdateQuantity(productID, qty)
	return s.view(c)
}

func (s *CartService) Remove(sessionID string, productID uint) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Remove(productID)
	return s.view(c)
}

func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Snapshot returns a copy of the cart for checkout, so validation and
// formatting see one consistent state even if the session keeps clicking.
func (s *CartService) Snapshot(sessionID string) *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	items := make([]entity.CartItem, len(c.Items))
	copy(items, c.Items)
	return &entity.Cart{Items: items}
}

func (s *CartService) cart(sessionID string) *entity.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &entity.Cart{}
		s.carts[sessionID] = c
	}
	return c
}

func (s *CartService) view(c *entity.Cart) CartView {
	items := make([]entity.CartItem, len(c.Items))
	copy(items, c.Items)
	return CartView{Items: items, Subtotal: c.Subtotal(), TotalItems: c.TotalItems()}
}
