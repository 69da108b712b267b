// SPDX-License-Identifier: MIT
// Package: pixelcal/config
//
// errors.go: sentinel errors for loading and checking settings.

package config

import "errors"

var (
	// ErrInvalidConfig wraps every value rejected by Validate.
	ErrInvalidConfig = errors.New("config: invalid value")

	// ErrUnknownExt is returned for files that are not .yaml/.yml/.json/.jsonc.
	ErrUnknownExt = errors.New("config: unknown file extension")
)
