//go:build android

package mic

import "errors"

// DefaultOpener reports that microphone capture is not supported on Android builds.
func DefaultOpener() Opener {
	return func(func(float64)) (Source, error) {
		return nil, errors.New("audio input not supported on this platform")
	}
}
