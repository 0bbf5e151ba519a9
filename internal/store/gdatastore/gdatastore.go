// Package gdatastore persists values in the per-user application data
// directory through quasilyte/gdata.
package gdatastore

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// Every key is a property of this one object.
const objectKey = "plantetyven"

type Store struct {
	m *gdata.Manager
}

// Open creates the gdata manager for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("gdata open: %w", err)
	}
	return &Store{m: m}, nil
}

// New wraps an already opened manager.
func New(m *gdata.Manager) *Store { return &Store{m: m} }

func (s *Store) Get(key string) (string, bool, error) {
	if !s.m.ObjectPropExists(objectKey, key) {
		return "", false, nil
	}
	b, err := s.m.LoadObjectProp(objectKey, key)
	if err != nil {
		return "", false, fmt.Errorf("load %s: %w", key, err)
	}
	return string(b), true, nil
}

func (s *Store) Set(key, value string) error {
	if err := s.m.SaveObjectProp(objectKey, key, []byte(value)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
