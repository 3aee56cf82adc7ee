package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/7pessoal-source/noir-menu-v2/entity"
)

type SettingsRepository struct {
	DB   *gorm.DB
	Feed *ChangeFeed
}

func NewSettingsRepository(db *gorm.DB, feed *ChangeFeed) *SettingsRepository {
	return &SettingsRepository{DB: db, Feed: feed}
}

func (r *SettingsRepository) ListSettings() ([]entity.Setting, error) {
	var rows []entity.Setting
	err := r.DB.Order("key asc").Find(&rows).Error
	return rows, err
}

// GetLegacyConfig returns the single legacy row, or nil when the table is
// empty (not an error: the resolver treats that as "source absent").
func (r *SettingsRepository) GetLegacyConfig() (*entity.MenuConfig, error) {
	var row entity.MenuConfig
	err := r.DB.Order("id asc").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *SettingsRepository) UpsertSetting(key, value string) error {
	row := entity.Setting{Key: key, Value: value}
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return err
	}
	r.Feed.Publish(TableSettings)
	return nil
}

func (r *SettingsRepository) DeleteSetting(key string) error {
	if err := r.DB.Delete(&entity.Setting{}, "key = ?", key).Error; err != nil {
		return err
	}
	r.Feed.Publish(TableSettings)
	return nil
}

// SaveLegacyConfig replaces the legacy row wholesale.
func (r *SettingsRepository) SaveLegacyConfig(cfg *entity.MenuConfig) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.MenuConfig{}).Error; err != nil {
			return err
		}
		return tx.Create(cfg).Error
	})
	if err != nil {
		return err
	}
	r.Feed.Publish(TableMenuConfig)
	return nil
}
