package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    int     `json:"id"`
	Price float64 `json:"price"`
}

func adapters(t *testing.T) map[string]Adapter {
	file, err := NewFile(t.TempDir())
	require.NoError(t, err)

	return map[string]Adapter{
		"memory": NewMemory(),
		"file":   file,
	}
}

func TestAdapterMissingKey(t *testing.T) {
	for name, a := range adapters(t) {
		t.Run(name, func(t *testing.T) {
			_, err := a.Load(context.Background(), "cart")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestAdapterSaveLoadOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, a := range adapters(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, a.Save(ctx, "cart", []byte(`[1]`)))
			require.NoError(t, a.Save(ctx, "cart", []byte(`[1,2]`)))

			data, err := a.Load(ctx, "cart")
			require.NoError(t, err)
			assert.Equal(t, `[1,2]`, string(data))
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, a := range adapters(t) {
		t.Run(name, func(t *testing.T) {
			in := []record{{ID: 1, Price: 19.99}, {ID: 2, Price: 0.1 + 0.2}}
			require.NoError(t, SaveJSON(ctx, a, "records", in))

			var out []record
			require.NoError(t, LoadJSON(ctx, a, "records", &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestLoadJSONMalformed(t *testing.T) {
	ctx := context.Background()
	a := NewMemory()
	require.NoError(t, a.Save(ctx, "records", []byte(`{not json`)))

	var out []record
	err := LoadJSON(ctx, a, "records", &out)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestMemoryCopiesBlobs(t *testing.T) {
	ctx := context.Background()
	a := NewMemory()
	data := []byte("abc")
	require.NoError(t, a.Save(ctx, "k", data))
	data[0] = 'x'

	got, err := a.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileRejectsUnsafeKeys(t *testing.T) {
	a, err := NewFile(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", ".hidden", `a\b`} {
		assert.Error(t, a.Save(context.Background(), key, []byte("x")), key)
	}
}

func TestFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	a, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, a.Save(context.Background(), "email_subscribers", []byte("[]")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "email_subscribers.json", entries[0].Name())

	_, err = os.Stat(filepath.Join(dir, "email_subscribers.json"))
	assert.NoError(t, err)
}
