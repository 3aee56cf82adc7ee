package repository

import (
	"gorm.io/gorm"

	"github.com/7pessoal-source/noir-menu-v2/entity"
)

type CatalogRepository struct {
	DB   *gorm.DB
	Feed *ChangeFeed
}

func NewCatalogRepository(db *gorm.DB, feed *ChangeFeed) *CatalogRepository {
	return &CatalogRepository{DB: db, Feed: feed}
}

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("sort_order asc").Find(&cats).Error
	return cats, err
}

// ListAvailableProducts returns only products the menu may show.
func (r *CatalogRepository) ListAvailableProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("available = ?", true).Order("id asc").Find(&products).Error
	return products, err
}

func (r *CatalogRepository) GetProduct(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) CreateCategory(c *entity.Category) error {
	if err := r.DB.Create(c).Error; err != nil {
		return err
	}
	r.Feed.Publish(TableCategories)
	return nil
}

func (r *CatalogRepository) UpdateCategory(c *entity.Category) error {
	if err := r.DB.Save(c).Error; err != nil {
		return err
	}
	r.Feed.Publish(TableCategories)
	return nil
}

func (r *CatalogRepository) DeleteCategory(id uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Category{}, id).Error
	})
	if err != nil {
		return err
	}
	r.Feed.Publish(TableCategories)
	r.Feed.Publish(TableProducts)
	return nil
}

func (r *CatalogRepository) CreateProduct(p *entity.Product) error {
	if err := r.DB.Create(p).Error; err != nil {
		return err
	}
	r.Feed.Publish(TableProducts)
	return nil
}

func (r *CatalogRepository) UpdateProduct(p *entity.Product) error {
	if err := r.DB.Save(p).Error; err != nil {
		return err
	}
	r.Feed.Publish(TableProducts)
	return nil
}

func (r *CatalogRepository) DeleteProduct(id uint) error {
	if err := r.DB.Delete(&entity.Product{}, id).Error; err != nil {
		return err
	}
	r.Feed.Publish(TableProducts)
	return nil
}
