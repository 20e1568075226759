// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wib2

// field describes a bitfield within a frame word.
type field struct {
	word  int  // index of the word within the frame
	shift uint // position of the least significant bit
	width uint // number of bits
}

func (f field) mask() uint32 {
	return uint32(1)<<f.width - 1
}

func (f field) get(w uint32) uint32 {
	return (w >> f.shift) & f.mask()
}

func (f field) put(w *uint32, v uint32) {
	*w |= (v & f.mask()) << f.shift
}

// header
var (
	fCrate     = field{word: 0, shift: 0, width: 8}
	fVersion   = field{word: 0, shift: 8, width: 4}
	fSlot      = field{word: 0, shift: 12, width: 3}
	fFiber     = field{word: 0, shift: 15, width: 1}
	fFEMBValid = field{word: 0, shift: 16, width: 2}
	fWIBCode1  = field{word: 0, shift: 18, width: 14}
	fWIBCode2  = field{word: 1, shift: 0, width: 32}
	fTS1       = field{word: 2, shift: 0, width: 32}
	fTS2       = field{word: 3, shift: 0, width: 32}
)

// trailer
var (
	fCRC20  = field{word: 116, shift: 0, width: 20}
	fFlex12 = field{word: 116, shift: 20, width: 12}
	fEOF    = field{word: 117, shift: 0, width: 8}
	fFlex24 = field{word: 118, shift: 0, width: 24}
)

// adcPos returns the payload word holding the lowest bit of the i-th ADC
// sample, the position of that bit, and how many bits of the sample that
// word carries.
func adcPos(i int) (word, bit, n int) {
	off := BitsPerADC * i
	word = off / bitsPerWord
	bit = off % bitsPerWord
	n = min(BitsPerADC, bitsPerWord-bit)
	return word, bit, n
}
