package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFileStore(dir, filepath.Join(dir, "backups"))
	require.NoError(t, err)
	return s
}

func TestFileStore_ReadMissingKey(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.Read("nothing")

	assert.False(t, ok)
}

func TestFileStore_WriteReadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write("items", []string{"a", "b"}))

	raw, ok := s.Read("items")
	require.True(t, ok)

	var items []string
	require.NoError(t, json.Unmarshal(raw, &items))
	assert.Equal(t, []string{"a", "b"}, items)
}

func TestFileStore_CorruptFileReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, filepath.Join(dir, "backups"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.json"), []byte("{not json"), 0o644))

	_, ok := s.Read("items")
	assert.False(t, ok)

	// A write after corruption resets the document.
	require.NoError(t, s.Write("items", []int{1}))
	raw, ok := s.Read("items")
	require.True(t, ok)
	assert.JSONEq(t, "[1]", string(raw))
}

func TestFileStore_Update_AppliesReadModifyWrite(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Write("counts", []int{1, 2}))

	err := s.Update("counts", func(raw json.RawMessage) (any, error) {
		var counts []int
		require.NoError(t, json.Unmarshal(raw, &counts))
		return append(counts, 3), nil
	})
	require.NoError(t, err)

	raw, ok := s.Read("counts")
	require.True(t, ok)
	assert.JSONEq(t, "[1,2,3]", string(raw))
}

func TestFileStore_Update_MissingKeyPassesNil(t *testing.T) {
	s := newTestStore(t)

	err := s.Update("fresh", func(raw json.RawMessage) (any, error) {
		assert.Nil(t, raw)
		return []int{42}, nil
	})
	require.NoError(t, err)

	raw, ok := s.Read("fresh")
	require.True(t, ok)
	assert.JSONEq(t, "[42]", string(raw))
}

func TestFileStore_Update_ErrorLeavesDocumentUntouched(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Write("items", []string{"keep"}))

	updateErr := errors.New("reject")
	err := s.Update("items", func(raw json.RawMessage) (any, error) {
		return nil, updateErr
	})
	assert.ErrorIs(t, err, updateErr)

	raw, ok := s.Read("items")
	require.True(t, ok)
	assert.JSONEq(t, `["keep"]`, string(raw))
}

func TestFileStore_Snapshot_CopiesCollections(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Write("one", []int{1}))
	require.NoError(t, s.Write("two", []int{2}))

	dst, err := s.Snapshot()
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dst, "one.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[1]", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "two.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[2]", string(data))
}
