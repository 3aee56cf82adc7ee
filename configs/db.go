package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/7pessoal-source/noir-menu-v2/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Category{}, &entity.Product{},
		&entity.Setting{}, &entity.MenuConfig{},
	)
}
