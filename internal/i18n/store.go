package i18n

import (
	"fmt"
	"os"
	"path/filepath"

	"krishi-nirnay/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// emptyDocument is cached for any (language, module) pair whose backing file
// is missing or unparsable, so a failing read is not retried on every lookup.
var emptyDocument = []byte("{}")

// LocaleStore loads per-language, per-module locale documents from disk and
// caches them for the process lifetime. Documents are never invalidated or
// reloaded; a restart picks up on-disk changes.
type LocaleStore struct {
	dir   string
	cache store.Store
}

// NewLocaleStore creates a LocaleStore reading documents from dir and caching
// them in the given backing store.
func NewLocaleStore(dir string, cache store.Store) *LocaleStore {
	return &LocaleStore{dir: dir, cache: cache}
}

// Load returns the raw locale document for (language, module). The returned
// bytes are valid JSON; callers must treat them as read-only. Unknown module
// names are not rejected, they simply resolve to the empty document.
func (s *LocaleStore) Load(language, module string) []byte {
	key := cacheKey(language, module)

	if data, err := s.cache.Get(key); err == nil {
		return data
	}

	data := s.readDocument(language, module)

	// SetNX keeps the first complete document written for the slot; a
	// concurrent duplicate load wastes I/O but can never tear the cache.
	if _, err := s.cache.SetNX(key, data, 0); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"language": language,
			"module":   module,
		}).Warn("Failed to cache locale document")
		return data
	}

	if cached, err := s.cache.Get(key); err == nil {
		return cached
	}
	return data
}

// ReadFile returns the raw on-disk bytes for (language, module), bypassing the
// cache. The raw locale endpoint uses this so a document added after a failed
// lookup is served without a restart.
func (s *LocaleStore) ReadFile(language, module string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, language, module+".json"))
}

// readDocument reads and validates the backing JSON file, degrading to the
// empty document on any failure.
func (s *LocaleStore) readDocument(language, module string) []byte {
	path := filepath.Join(s.dir, language, module+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"language": language,
			"module":   module,
		}).Debugf("Locale document unavailable: %v", err)
		return emptyDocument
	}
	if !gjson.ValidBytes(data) {
		logrus.WithFields(logrus.Fields{
			"language": language,
			"module":   module,
		}).Warn("Locale document is not valid JSON, serving empty document")
		return emptyDocument
	}
	return data
}

func cacheKey(language, module string) string {
	return fmt.Sprintf("locale:%s:%s", language, module)
}
