package storage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

// FileStore keeps one <username>.json document per user in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(username string) string {
	return filepath.Join(s.dir, username+".json")
}

// Load reads and upgrades the user's document. Returns ErrNotFound when the
// file does not exist.
func (s *FileStore) Load(username string) (*models.Profile, error) {
	data, err := os.ReadFile(s.path(username))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return models.UnmarshalProfile(data)
}

// Save writes the whole document atomically: a temp file in the same
// directory is renamed over the target, so readers never observe a partial
// write. Two concurrent writers still race last-write-wins on the whole
// file; that is the documented storage model.
func (s *FileStore) Save(username string, p *models.Profile) error {
	data, err := models.MarshalProfile(p)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, username+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(username))
}

// List enumerates stored usernames in sorted order.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var usernames []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		usernames = append(usernames, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(usernames)
	return usernames, nil
}
