package client

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
)

// TokenStore persists the grant of a session between runs
type TokenStore interface {
	Load() (*Grant, error)
	Save(g Grant) error
	Clear() error
}

// FileTokenStore keeps the grant in a json file readable by the owner only
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load returns nil without error if nothing was saved yet
func (f *FileTokenStore) Load() (*Grant, error) {
	d, err := ioutil.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var g Grant
	if err := json.Unmarshal(d, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (f *FileTokenStore) Save(g Grant) error {
	d, err := json.Marshal(g)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return err
	}
	return ioutil.WriteFile(f.path, d, 0600)
}

func (f *FileTokenStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
