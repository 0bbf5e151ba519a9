// Package store defines the key-value persistence the game keeps between sessions.
package store

import "errors"

// KV is the browser localStorage shape: string keys, string values.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Backend names accepted by config and the --store flag.
const (
	BackendGdata  = "gdata"
	BackendFile   = "file"
	BackendMemory = "memory"
)

var ErrUnknownBackend = errors.New("unknown store backend")
