//go:build !unix

package ktx2

import "os"

// loadFile reads the whole file on platforms without a usable mmap.
func loadFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
