// Package storage persists user profiles as whole documents keyed by
// username. Two drivers exist: JSON files on disk (the default) and a
// Postgres table holding the same JSON document per row.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Bhuvantej123/skilltrack-bot/backend/config"
	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

// ErrNotFound is returned when no profile exists for a username.
var ErrNotFound = errors.New("profile not found")

// Store is the profile persistence contract. Load and Save always move the
// entire document; there are no partial updates and no locking — the system
// assumes a single writer per user.
type Store interface {
	Load(username string) (*models.Profile, error)
	Save(username string, p *models.Profile) error
	List() ([]string, error)
}

// Open builds the store selected by STORAGE_DRIVER.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case "file", "":
		return NewFileStore(cfg.DataDir)
	case "postgres":
		db, err := InitDB(cfg)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// LoadOrDefault substitutes a fresh default profile when none is stored.
// A missing record is never an error for read paths.
func LoadOrDefault(s Store, username string) (*models.Profile, error) {
	p, err := s.Load(username)
	if errors.Is(err, ErrNotFound) {
		return models.NewProfile(username), nil
	}
	return p, err
}

// SanitizeUsername lowercases the name and strips everything outside
// [a-z0-9_-] so it is safe to use as a storage key.
func SanitizeUsername(username string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(username)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
