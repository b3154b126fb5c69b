package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

// ProfileRecord is the table row for the Postgres driver: the same JSON
// document the file store writes, keyed by username.
type ProfileRecord struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null"`
	Data     []byte
}

// GormStore persists profile documents through GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the profiles table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&ProfileRecord{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(username string) (*models.Profile, error) {
	var rec ProfileRecord
	if err := s.db.Where("username = ?", username).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return models.UnmarshalProfile(rec.Data)
}

func (s *GormStore) Save(username string, p *models.Profile) error {
	data, err := models.MarshalProfile(p)
	if err != nil {
		return err
	}

	res := s.db.Model(&ProfileRecord{}).
		Where("username = ?", username).
		Update("data", data)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.db.Create(&ProfileRecord{Username: username, Data: data}).Error
	}
	return nil
}

func (s *GormStore) List() ([]string, error) {
	var usernames []string
	err := s.db.Model(&ProfileRecord{}).
		Order("id").
		Pluck("username", &usernames).Error
	return usernames, err
}
