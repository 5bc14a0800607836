package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")
	val, err := base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, base.Set(k, v))
	val, err = base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, val)

	has, err := base.Has(k)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, base.Delete(k))
	val, err = base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestBTreeCacheWriteAndDiscard(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))

	// Writes in a cache are not visible in the base until Write.
	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))

	val, err := base.Get([]byte("b"))
	require.NoError(t, err)
	assert.Nil(t, val)
	val, err = base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)

	require.NoError(t, cache.Write())

	val, err = base.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)
	val, err = base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, val)

	// A discarded cache leaves the base untouched.
	cache = base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("rewritten")))
	cache.Discard()

	val, err = base.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)
}

func TestBTreeCacheIterator(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))
	require.NoError(t, base.Set([]byte("c"), []byte("3")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("c")))
	require.NoError(t, cache.Set([]byte("a"), []byte("one")))

	itr, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	defer itr.Close()

	var keys, values []string
	for itr.Valid() {
		keys = append(keys, string(itr.Key()))
		values = append(values, string(itr.Value()))
		require.NoError(t, itr.Next())
	}
	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, []string{"one", "2"}, values)
}

func TestBTreeCacheReverseIterator(t *testing.T) {
	base := MemStore()
	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, base.Set([]byte(k), []byte(k)))
	}

	itr, err := base.ReverseIterator(nil, nil)
	require.NoError(t, err)
	defer itr.Close()

	var keys []string
	for itr.Valid() {
		keys = append(keys, string(itr.Key()))
		require.NoError(t, itr.Next())
	}
	assert.Equal(t, []string{"c", "b", "a"}, keys)
}

func TestBTreeCacheIteratorRange(t *testing.T) {
	base := MemStore()
	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, base.Set([]byte(k), []byte(k)))
	}

	itr, err := base.Iterator([]byte("b"), []byte("d"))
	require.NoError(t, err)
	defer itr.Close()

	var keys []string
	for itr.Valid() {
		keys = append(keys, string(itr.Key()))
		require.NoError(t, itr.Next())
	}
	assert.Equal(t, []string{"b", "c"}, keys)
}
