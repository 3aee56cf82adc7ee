package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7pessoal-source/noir-menu-v2/entity"
)

func buildTestCatalog() *Catalog {
	pizzas := entity.Category{Name: "Pizzas", SortOrder: 1}
	pizzas.ID = 10
	bebidas := entity.Category{Name: "Bebidas", SortOrder: 2}
	bebidas.ID = 20
	vazia := entity.Category{Name: "Sobremesas", SortOrder: 3}
	vazia.ID = 30

	margherita := product(1, "Margherita Premium", 5990)
	margherita.CategoryID = 10
	pepperoni := product(2, "Pepperoni Clássica", 6290)
	pepperoni.CategoryID = 10
	suco := product(3, "Suco Natural", 1290)
	suco.CategoryID = 20

	return BuildCatalog(
		[]entity.Category{pizzas, bebidas, vazia},
		[]entity.Product{margherita, pepperoni, suco},
	)
}

func TestBuildCatalogGroupsAndDropsEmpty(t *testing.T) {
	catalog := buildTestCatalog()

	require.Len(t, catalog.Categories, 2)
	assert.Equal(t, "Pizzas", catalog.Categories[0].Name)
	assert.Len(t, catalog.Categories[0].Products, 2)
	assert.Equal(t, "Bebidas", catalog.Categories[1].Name)
	assert.Len(t, catalog.Categories[1].Products, 1)
}

func TestProductByID(t *testing.T) {
	catalog := buildTestCatalog()

	p, ok := catalog.ProductByID(3)
	require.True(t, ok)
	assert.Equal(t, "Suco Natural", p.Name)

	_, ok = catalog.ProductByID(99)
	assert.False(t, ok)
}

func TestOrderLinesFollowCatalogIterationOrder(t *testing.T) {
	catalog := buildTestCatalog()

	// cart filled backwards
	cart := &entity.Cart{}
	cart.Add(product(3, "Suco Natural", 1290))
	cart.Add(product(1, "Margherita Premium", 5990))
	cart.Add(product(1, "Margherita Premium", 5990))

	lines := catalog.OrderLines(cart)
	require.Len(t, lines, 2)
	assert.Equal(t, "Margherita Premium", lines[0].Product.Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Suco Natural", lines[1].Product.Name)
}

func TestOrderLinesKeepVanishedProductsLast(t *testing.T) {
	catalog := buildTestCatalog()

	cart := &entity.Cart{}
	cart.Add(product(99, "Item Removido", 1000))
	cart.Add(product(1, "Margherita Premium", 5990))

	lines := catalog.OrderLines(cart)
	require.Len(t, lines, 2)
	assert.Equal(t, "Margherita Premium", lines[0].Product.Name)
	assert.Equal(t, "Item Removido", lines[1].Product.Name)
}
