// SPDX-License-Identifier: MIT
// Package: abasp/builder
//
// errors.go - sentinel errors returned by Generate.

package builder

import (
	"github.com/katalvlaran/abasp/errors"
)

// ErrTooFewAtoms indicates Params.Atoms < MinAtoms.
var ErrTooFewAtoms = errors.New("builder: too few atoms")

// ErrInvalidRatio indicates an assumption ratio outside [0,1].
var ErrInvalidRatio = errors.New("builder: assumption ratio out of range")

// ErrNegativeSize indicates a negative standpoint count or body maximum.
var ErrNegativeSize = errors.New("builder: negative size")

// ErrInvalidRange indicates a Range with Min < 0 or Min > Max.
var ErrInvalidRange = errors.New("builder: invalid range")

// ErrNeedRandSource indicates that no RNG was configured.
var ErrNeedRandSource = errors.New("builder: rng is required")
