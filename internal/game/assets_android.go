//go:build android

package game

import (
	"io"

	"golang.org/x/mobile/asset"
)

// openAsset reads from the APK assets/ folder; dir is ignored.
func openAsset(_, name string) (io.ReadCloser, error) {
	return asset.Open(name)
}
