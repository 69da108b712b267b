// SPDX-License-Identifier: MIT
// Package: pixelcal/preview
//
// errors.go: sentinel errors for previews.

package preview

import "errors"

var (
	// ErrNilGrid is returned when an image preview is asked for a nil grid.
	ErrNilGrid = errors.New("preview: nil grid")

	// ErrBadColor is returned when a palette entry is not a valid hex colour.
	ErrBadColor = errors.New("preview: bad colour")
)
