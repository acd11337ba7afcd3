package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lisbeauty/storefront/pkg/logger"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Set("k", []byte(`"v"`)))
	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte(`"v"`), got)

	s.Remove("k")
	_, ok = s.Get("k")
	assert.False(t, ok)
}

func TestLoadTreatsCorruptValueAsAbsent(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Set("broken", []byte("{not json")))

	var out map[string]string
	assert.False(t, Load(s, "broken", &out))
}

func TestSaveThenLoad(t *testing.T) {
	s := NewMemory()

	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, Save(s, "m", in))

	var out map[string]int
	require.True(t, Load(s, "m", &out))
	assert.Equal(t, in, out)
}

func TestFilePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	f, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, Save(f, "k", []string{"a", "b"}))

	reopened, err := NewFile(path)
	require.NoError(t, err)

	var out []string
	require.True(t, Load(reopened, "k", &out))
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestFileRemovePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	f, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set("k", []byte(`"v"`)))
	f.Remove("k")

	reopened, err := NewFile(path)
	require.NoError(t, err)

	_, ok := reopened.Get("k")
	assert.False(t, ok)
}

func TestFileRemoveWarnsOnFailedFlush(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	path := filepath.Join(dir, "store.json")

	f, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set("k", []byte(`"v"`)))

	// Replace the data directory with a plain file so the next flush fails.
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, nil, 0o644))

	var buf bytes.Buffer
	prev := logger.Logger
	logger.Logger = zerolog.New(&buf)
	t.Cleanup(func() { logger.Logger = prev })

	f.Remove("k")

	_, ok := f.Get("k")
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "store delete failed")
}

func TestFileCorruptDocumentStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	f, err := NewFile(path)
	require.NoError(t, err)

	_, ok := f.Get("anything")
	assert.False(t, ok)
}

func TestScopedDurableWinsOnRead(t *testing.T) {
	durable := NewMemory()
	session := NewMemory()
	sc := NewScoped(durable, session)

	require.NoError(t, sc.Set("k", []byte("session"), false))
	got, ok := sc.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("session"), got)

	require.NoError(t, sc.Set("k", []byte("durable"), true))
	got, ok = sc.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("durable"), got)
}

func TestScopedRemoveClearsBothScopes(t *testing.T) {
	durable := NewMemory()
	session := NewMemory()
	sc := NewScoped(durable, session)

	require.NoError(t, sc.Set("k", []byte("a"), true))
	require.NoError(t, sc.Set("k", []byte("b"), false))
	sc.Remove("k")

	_, ok := sc.Get("k")
	assert.False(t, ok)
	_, ok = durable.Get("k")
	assert.False(t, ok)
	_, ok = session.Get("k")
	assert.False(t, ok)
}
