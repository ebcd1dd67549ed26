package ports

// StorageTier is a flat key/value store backing one cache tier. The memory
// tier lives inside the cache itself; implementations of this interface
// cover the session-scoped and durable tiers.
//
//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
type StorageTier interface {
	// Read returns the stored bytes for key. The second return is false if
	// the key is absent; an error means the tier itself failed.
	Read(key string) ([]byte, bool, error)

	// Write stores the bytes under key, replacing any previous value.
	Write(key string, data []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys returns every stored key with the given prefix.
	Keys(prefix string) ([]string, error)

	// Clear removes every key in the tier.
	Clear() error
}
