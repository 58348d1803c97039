package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// FileStore persists the CLI session as a JSON file with the same two keys
// the browser store uses.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

type fileSession struct {
	User  json.RawMessage `json:"user"`
	Token string          `json:"token"`
}

// Restore loads the persisted session; missing, malformed or expired data
// yields an empty session.
func (fs *FileStore) Restore() Session {
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		return Session{}
	}

	var persisted fileSession
	if err := json.Unmarshal(raw, &persisted); err != nil {
		return Session{}
	}
	if len(persisted.User) == 0 || persisted.Token == "" {
		return Session{}
	}

	var usr school.User
	if err := json.Unmarshal(persisted.User, &usr); err != nil {
		return Session{}
	}
	if tokenExpired(persisted.Token) {
		return Session{}
	}
	return Session{User: &usr, Token: persisted.Token}
}

func (fs *FileStore) Set(usr school.User, token string) error {
	rawUser, err := json.Marshal(usr)
	if err != nil {
		return errors.Wrap(err, "serializing session user")
	}
	raw, err := json.Marshal(fileSession{User: rawUser, Token: token})
	if err != nil {
		return errors.Wrap(err, "serializing session")
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}
	return errors.Wrap(os.WriteFile(fs.path, raw, 0o600), "writing session file")
}

func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}
