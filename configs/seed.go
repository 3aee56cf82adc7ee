package configs

import (
	"log"

	"github.com/7pessoal-source/noir-menu-v2/entity"
	"github.com/7pessoal-source/noir-menu-v2/pkg/money"
)

type seedProduct struct {
	name, description string
	cents             int64
	image             string
}

var seedCatalog = []struct {
	category string
	order    int
	products []seedProduct
}{
	{"Lanches", 1, []seedProduct{
		{"Smash Burger Noir", "Blend de carnes nobres, queijo cheddar, bacon crocante e molho especial da casa", 3890, "/assets/products/smash-burger.jpg"},
		{"Burger Trufado", "Hambúrguer artesanal com queijo brie, cogumelos salteados e azeite trufado", 4890, "/assets/products/truffle-burger.jpg"},
		{"Chicken Supreme", "Frango empanado crocante, maionese de ervas e salada fresca", 3490, "/assets/products/chicken-supreme.jpg"},
		{"Veggie Gourmet", "Hambúrguer de grão-de-bico, queijo coalho grelhado e molho tahine", 3690, "/assets/products/veggie-burger.jpg"},
		{"Double Bacon", "Dois hambúrgueres, muito bacon, cheddar derretido e cebola caramelizada", 5290, "/assets/products/double-bacon.jpg"},
	}},
	{"Pizzas", 2, []seedProduct{
		{"Margherita Premium", "Molho de tomate San Marzano, mozzarella de búfala e manjericão fresco", 5990, "/assets/products/pizza-margherita.jpg"},
		{"Quattro Formaggi", "Gorgonzola, parmesão, mozzarella e provolone com mel trufado", 6990, "/assets/products/pizza-quattro.jpg"},
		{"Pepperoni Clássica", "Pepperoni artesanal, mozzarella e orégano importado", 6290, "/assets/products/pizza-pepperoni.jpg"},
		{"Parma & Rúcula", "Presunto de Parma, rúcula selvagem, lascas de parmesão e azeite extra virgem", 7490, "/assets/products/pizza-parma.jpg"},
		{"Calabresa Gold", "Calabresa artesanal, cebola roxa caramelizada e pimenta calabresa", 5490, "/assets/products/pizza-calabresa.jpg"},
	}},
	{"Porções", 3, []seedProduct{
		{"Batata Rústica", "Batatas com casca, temperadas com alecrim e flor de sal", 2890, "/assets/products/batata-rustica.jpg"},
		{"Onion Rings Premium", "Anéis de cebola empanados com farinha panko e maionese sriracha", 3290, "/assets/products/onion-rings.jpg"},
		{"Nuggets Artesanais", "Nuggets de frango temperado com ervas finas", 3490, "/assets/products/nuggets.jpg"},
		{"Mix de Aperitivos", "Seleção de polenta frita, bolinhos de queijo e croquetes", 4590, "/assets/products/mix-aperitivos.jpg"},
		{"Tábua de Frios", "Queijos selecionados, presuntos e antepastos com torradas", 6890, "/assets/products/tabua-frios.jpg"},
	}},
	{"Bebidas", 4, []seedProduct{
		{"Refrigerante Lata", "Coca-Cola, Guaraná ou Sprite (350ml)", 790, "/assets/products/refrigerante.jpg"},
		{"Suco Natural", "Laranja, limão ou maracujá (400ml)", 1290, "/assets/products/suco-natural.jpg"},
		{"Água Mineral", "Com ou sem gás (500ml)", 590, "/assets/products/agua-mineral.jpg"},
		{"Cerveja Premium", "Heineken, Budweiser ou Corona (long neck)", 1490, "/assets/products/cerveja.jpg"},
		{"Milk Shake", "Chocolate, morango ou ovomaltine (400ml)", 1890, "/assets/products/milkshake.jpg"},
	}},
}

var seedSettings = map[string]string{
	"general.name":            `"Nome da Sua Empresa"`,
	"general.description":     `"Seu Slogan"`,
	"general.phone":           `"5511999999999"`,
	"general.working_days":    `"Terça a Domingo"`,
	"orders.enabled":          `true`,
	"orders.minimum_value":    `30.00`,
	"orders.minimum_enabled":  `true`,
	"delivery.estimated_time": `"40-60 min"`,
	"delivery.neighborhoods": `[
		{"id":"centro","name":"Centro","delivery_fee":5.00},
		{"id":"jardins","name":"Jardins","delivery_fee":6.00},
		{"id":"vila-madalena","name":"Vila Madalena","delivery_fee":7.00},
		{"id":"pinheiros","name":"Pinheiros","delivery_fee":6.50},
		{"id":"moema","name":"Moema","delivery_fee":8.00},
		{"id":"itaim-bibi","name":"Itaim Bibi","delivery_fee":7.50},
		{"id":"consolacao","name":"Consolação","delivery_fee":5.50},
		{"id":"bela-vista","name":"Bela Vista","delivery_fee":5.00},
		{"id":"liberdade","name":"Liberdade","delivery_fee":5.00},
		{"id":"paraiso","name":"Paraíso","delivery_fee":6.00}
	]`,
	"hours.monday": `{"open":"18:00","close":"23:00","closed":true}`,
}

// SeedCatalog loads the starter menu when the catalog is empty.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Category{}).Count(&count)
	if count > 0 {
		log.Println("catalog already seeded")
		return nil
	}

	for _, c := range seedCatalog {
		cat := entity.Category{Name: c.category, SortOrder: c.order}
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
		for _, p := range c.products {
			prod := entity.Product{
				Name:        p.name,
				Description: p.description,
				Price:       money.FromCents(p.cents),
				ImageURL:    p.image,
				Available:   true,
				CategoryID:  cat.ID,
			}
			if err := db.Create(&prod).Error; err != nil {
				return err
			}
		}
	}
	log.Println("seeded catalog:", len(seedCatalog), "categories")
	return nil
}

// SeedSettings fills in missing settings keys without overwriting edits.
func SeedSettings() error {
	db := DB()
	for key, value := range seedSettings {
		var row entity.Setting
		err := db.Where(entity.Setting{Key: key}).
			Attrs(entity.Setting{Value: value}).
			FirstOrCreate(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}
