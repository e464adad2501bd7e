//go:build !unix

package arena

// mapRegion falls back to a heap slice when anonymous mappings are not available.
func mapRegion(size int) ([]byte, func() error, error) {
	return make([]byte, size), func() error { return nil }, nil
}
