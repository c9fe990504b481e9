//go:build !android

package game

import (
	"io"
	"os"
	"path/filepath"
)

func openAsset(dir, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(dir, name))
}
