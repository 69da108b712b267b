// SPDX-License-Identifier: MIT
// Package: pixelcal/glyph
//
// errors.go: sentinel errors for the glyph package.

package glyph

import "errors"

// ErrUnknownFont is returned by ParseFont for names outside pixel/slim/bold.
var ErrUnknownFont = errors.New("glyph: unknown font")
