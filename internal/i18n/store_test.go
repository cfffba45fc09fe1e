package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"krishi-nirnay/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeLocaleFile writes a locale document fixture under dir/lang/module.json
func writeLocaleFile(t *testing.T, dir, lang, module, content string) {
	t.Helper()
	langDir := filepath.Join(dir, lang)
	require.NoError(t, os.MkdirAll(langDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(langDir, module+".json"), []byte(content), 0o644))
}

func newTestStore(t *testing.T, dir string) *LocaleStore {
	t.Helper()
	memStore := store.NewMemoryStore()
	t.Cleanup(func() { memStore.Close() })
	return NewLocaleStore(dir, memStore)
}

func TestLocaleStore_LoadDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLocaleFile(t, dir, "hi", "common", `{"messages":{"error":"त्रुटि"}}`)

	s := newTestStore(t, dir)

	doc := s.Load("hi", "common")
	assert.JSONEq(t, `{"messages":{"error":"त्रुटि"}}`, string(doc))
}

func TestLocaleStore_MissingFileServesEmptyDocument(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, t.TempDir())

	doc := s.Load("ta", "dashboard")
	assert.Equal(t, "{}", string(doc))
}

func TestLocaleStore_InvalidJSONServesEmptyDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLocaleFile(t, dir, "hi", "common", `{"messages":`)

	s := newTestStore(t, dir)

	doc := s.Load("hi", "common")
	assert.Equal(t, "{}", string(doc))
}

func TestLocaleStore_NegativeResultIsCached(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := newTestStore(t, dir)

	// First load misses and caches the empty document.
	assert.Equal(t, "{}", string(s.Load("hi", "common")))

	// Creating the file afterwards must not change the cached result:
	// documents live for the process lifetime.
	writeLocaleFile(t, dir, "hi", "common", `{"messages":{"error":"त्रुटि"}}`)
	assert.Equal(t, "{}", string(s.Load("hi", "common")))
}

func TestLocaleStore_DocumentsAreCachedPerLanguageAndModule(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLocaleFile(t, dir, "hi", "common", `{"a":"1"}`)
	writeLocaleFile(t, dir, "hi", "chatbot", `{"b":"2"}`)
	writeLocaleFile(t, dir, "en", "common", `{"a":"3"}`)

	s := newTestStore(t, dir)

	assert.JSONEq(t, `{"a":"1"}`, string(s.Load("hi", "common")))
	assert.JSONEq(t, `{"b":"2"}`, string(s.Load("hi", "chatbot")))
	assert.JSONEq(t, `{"a":"3"}`, string(s.Load("en", "common")))
}
