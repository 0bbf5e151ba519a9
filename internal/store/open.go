package store

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Makepad-fr/plantetyven/internal/store/gdatastore"
	"github.com/Makepad-fr/plantetyven/internal/store/jsonstore"
	"github.com/Makepad-fr/plantetyven/internal/store/memstore"
)

// AppName names the gdata directory.
const AppName = "plantetyven"

// Open builds the backend named by backend. A gdata failure degrades to the
// in-memory store (the game still runs, the streak just isn't kept).
func Open(backend, path string, log *zap.Logger) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendGdata:
		s, err := gdatastore.Open(AppName)
		if err != nil {
			log.Warn("gdata unavailable, streak kept in memory only", zap.Error(err))
			return memstore.New(), nil
		}
		return s, nil
	case BackendFile:
		s, err := jsonstore.New(path)
		if err != nil {
			return nil, err
		}
		log.Debug("using file store", zap.String("path", s.Path()))
		return s, nil
	case BackendMemory:
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
