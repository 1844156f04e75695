package oreum

// Storage is a client-local string key-value store.
//
// Get reports found=false for a missing key. Delete of a missing key is not
// an error.
type Storage interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
