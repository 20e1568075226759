// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wib2 decodes raw WIB v2 frames, as sent by the warm interface
// boards (WIB) of the ProtoDUNE-SP-II readout.
//
// A frame is a fixed block of 119 32-bit words, in the native byte order
// of the host:
//
//	words   0-3    header  (crate, slot, fiber, status codes, timestamp)
//	words   4-115  payload (256 ADC samples, 14 bits each, densely packed)
//	words 116-118  trailer (CRC-20, flex words, end-of-frame marker)
//
// The ADC samples are ordered as:
//
//   - 40 values from FEMB0 U channels
//   - 40 values from FEMB0 V channels
//   - 48 values from FEMB0 X channels (collection)
//   - 40 values from FEMB1 U channels
//   - 40 values from FEMB1 V channels
//   - 48 values from FEMB1 X channels (collection)
//
// The canonical definition of the WIB format is given in EDMS document 2088713.
package wib2 // import "github.com/go-lpc/wib/wib2"

import (
	"golang.org/x/xerrors"
)

const (
	HeaderWords  = 4   // number of 32-bit words in a frame header
	PayloadWords = 112 // number of 32-bit words holding the ADC samples
	TrailerWords = 3   // number of 32-bit words in a frame trailer

	FrameWords = HeaderWords + PayloadWords + TrailerWords
	FrameSize  = 4 * FrameWords // size of a frame, in bytes

	NumADCs    = 256    // number of ADC samples in a frame
	BitsPerADC = 14     // width of an ADC sample, in bits
	ADCMax     = 0x3fff // largest ADC sample value
)

const (
	NumFEMBs        = 2   // number of front-end boards per frame
	ChannelsPerFEMB = 128 // number of ADC samples per front-end board

	NumU = 40 // number of U (induction) channels per FEMB
	NumV = 40 // number of V (induction) channels per FEMB
	NumX = 48 // number of X (collection) channels per FEMB
)

const bitsPerWord = 32

// the payload must hold exactly NumADCs samples, with no slack bits.
var _ = [1]struct{}{}[PayloadWords*bitsPerWord-NumADCs*BitsPerADC]

var (
	// ErrADCIndex is returned when an ADC sample index
	// falls outside [0, NumADCs).
	ErrADCIndex = xerrors.New("wib2: ADC index out of range")

	// ErrFrameSize is returned when a buffer does not hold
	// exactly FrameSize bytes.
	ErrFrameSize = xerrors.New("wib2: invalid frame size")

	// ErrFieldRange is returned when a value does not fit
	// in its frame bitfield.
	ErrFieldRange = xerrors.New("wib2: value overflows frame field")
)
