package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbelotti-dev/orariodoc/internal/model"
)

// setupDurable creates a store over an in-memory database with a legacy
// path inside a test temp dir.
func setupDurable(t *testing.T) (*DurableStore, string) {
	t.Helper()
	db, err := OpenDB("", true)
	require.NoError(t, err)
	legacyPath := filepath.Join(t.TempDir(), model.LegacyFileName)
	store := NewDurableStore(db, legacyPath)
	t.Cleanup(func() { store.Close() })
	return store, legacyPath
}

func sampleData() *model.AppData {
	data := model.NewAppData()
	data.Lessons = append(data.Lessons, model.Lesson{
		ID: "l1", Name: "Matematica", Class: "3A", Day: 1, Start: "08:00", Duration: 60,
	})
	data.Settings["theme"] = "dark"
	return data
}

func TestOpenDBInMemory(t *testing.T) {
	db, err := OpenDB("", true)
	require.NoError(t, err)
	assert.Equal(t, "", db.Path())
	assert.NoError(t, db.Close())
}

func TestOpenDBOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")
	db, err := OpenDB(path, false)
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())
	assert.NoError(t, db.Close())
}

func TestDBBytesRoundTrip(t *testing.T) {
	db, err := OpenDB("", true)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.GetBytes("missing")
	assert.True(t, IsErrKeyNotFound(err))

	require.NoError(t, db.SetBytes("k", []byte("v")))
	got, err := db.GetBytes("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	exists, err := db.Exists("k")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = db.Exists("missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDurableReadDefaultDocument(t *testing.T) {
	store, _ := setupDurable(t)

	data, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, data.Lessons)
	assert.NotNil(t, data.Settings)
}

func TestDurableWriteReadRoundTrip(t *testing.T) {
	store, _ := setupDurable(t)

	require.NoError(t, store.Write(sampleData()))

	got, err := store.Read()
	require.NoError(t, err)
	require.Len(t, got.Lessons, 1)
	assert.Equal(t, "Matematica", got.Lessons[0].Name)
	assert.Equal(t, "dark", got.Settings["theme"])
}

func TestDefaultPaths(t *testing.T) {
	assert.Contains(t, DefaultPath(), model.AppName)
	assert.Contains(t, DefaultLegacyPath(), model.LegacyFileName)
}

func TestOpenSelectsDurable(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(Options{
		Path:       filepath.Join(dir, "db"),
		LegacyPath: filepath.Join(dir, model.LegacyFileName),
	})
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*DurableStore)
	assert.True(t, ok)
}

func TestOpenFallsBackToLegacy(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the database directory should be makes the
	// durable backend unopenable.
	blocked := filepath.Join(dir, "db")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0600))

	store, err := Open(Options{
		Path:       blocked,
		LegacyPath: filepath.Join(dir, model.LegacyFileName),
	})
	require.NoError(t, err)
	defer store.Close()

	legacy, ok := store.(*LegacyStore)
	require.True(t, ok)

	require.NoError(t, store.Write(sampleData()))
	got, err := store.Read()
	require.NoError(t, err)
	require.Len(t, got.Lessons, 1)
	assert.Equal(t, "Matematica", got.Lessons[0].Name)
	assert.Equal(t, filepath.Join(dir, model.LegacyFileName), legacy.Path())
}

// =============================================================================
// Legacy store
// =============================================================================

func TestLegacyReadMissingFile(t *testing.T) {
	store, err := OpenLegacy(filepath.Join(t.TempDir(), model.LegacyFileName))
	require.NoError(t, err)

	data, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, data.Lessons)
	assert.NotNil(t, data.Settings)
}

func TestLegacyWriteReadRoundTrip(t *testing.T) {
	store, err := OpenLegacy(filepath.Join(t.TempDir(), model.LegacyFileName))
	require.NoError(t, err)

	require.NoError(t, store.Write(sampleData()))

	got, err := store.Read()
	require.NoError(t, err)
	require.Len(t, got.Lessons, 1)
	assert.Equal(t, "l1", got.Lessons[0].ID)
}

func TestLegacyReadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), model.LegacyFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store, err := OpenLegacy(path)
	require.NoError(t, err)

	_, err = store.Read()
	assert.Error(t, err)
}

func TestLegacyMigrateIsNoOp(t *testing.T) {
	store, err := OpenLegacy(filepath.Join(t.TempDir(), model.LegacyFileName))
	require.NoError(t, err)
	assert.NoError(t, store.Migrate())
	assert.NoError(t, store.Close())
}
