// SPDX-License-Identifier: MIT
// Package: pixelcal/compose
//
// errors.go: sentinel errors for the composer.

package compose

import "errors"

var (
	// ErrNilGrid is returned when Compose or Write receives a nil grid.
	ErrNilGrid = errors.New("compose: nil grid")

	// ErrUnknownAnimation is returned by ParseAnimation for unknown names.
	ErrUnknownAnimation = errors.New("compose: unknown animation type")
)
