package store

import (
	custody "github.com/iov-one/custody"
)

// Reexport the base store types so implementations in this package can be
// used without importing the root package.
type (
	ReadOnlyKVStore  = custody.ReadOnlyKVStore
	SetDeleter       = custody.SetDeleter
	KVStore          = custody.KVStore
	Batch            = custody.Batch
	Iterator         = custody.Iterator
	CacheableKVStore = custody.CacheableKVStore
	KVCacheWrap      = custody.KVCacheWrap
	Model            = custody.Model
)
