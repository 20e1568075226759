// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wib2

import (
	"encoding/binary"
	"io"

	"golang.org/x/xerrors"
)

// Header is the decoded header of a WIB v2 frame.
type Header struct {
	Crate      uint8
	Version    uint8  // frame format version (4 bits)
	Slot       uint8  // 3 bits
	Fiber      uint8  // 1 bit
	FEMBValid  uint8  // FEMB-valid flags (2 bits)
	WIBCode1   uint16 // 14 bits
	WIBCode2   uint32
	Timestamp1 uint32 // low half of the timestamp
	Timestamp2 uint32 // high half of the timestamp
}

// Timestamp returns the 64-bit timestamp.
func (hdr Header) Timestamp() uint64 {
	return uint64(hdr.Timestamp1) | uint64(hdr.Timestamp2)<<32
}

// Trailer is the decoded trailer of a WIB v2 frame.
type Trailer struct {
	CRC20  uint32 // 20 bits
	Flex12 uint16 // 12 bits
	EOF    uint8  // end-of-frame marker
	Flex24 uint32 // 24 bits
}

// Data holds the decoded content of a WIB v2 frame.
type Data struct {
	Header  Header
	ADCs    [NumADCs]uint16
	Trailer Trailer
}

// Put writes the frame image of d into p, in the native byte order.
// p must be exactly FrameSize bytes long.
// p is left untouched if d holds a value that does not fit its field.
func Put(p []byte, d *Data) error {
	if len(p) != FrameSize {
		return xerrors.Errorf(
			"wib2: could not put frame (got=%d bytes, want=%d): %w",
			len(p), FrameSize, ErrFrameSize,
		)
	}

	var w [FrameWords]uint32
	for _, v := range []struct {
		name string
		fd   field
		v    uint32
	}{
		{"crate", fCrate, uint32(d.Header.Crate)},
		{"frame version", fVersion, uint32(d.Header.Version)},
		{"slot", fSlot, uint32(d.Header.Slot)},
		{"fiber", fFiber, uint32(d.Header.Fiber)},
		{"FEMB-valid", fFEMBValid, uint32(d.Header.FEMBValid)},
		{"WIB code-1", fWIBCode1, uint32(d.Header.WIBCode1)},
		{"WIB code-2", fWIBCode2, d.Header.WIBCode2},
		{"timestamp-1", fTS1, d.Header.Timestamp1},
		{"timestamp-2", fTS2, d.Header.Timestamp2},
		{"CRC-20", fCRC20, d.Trailer.CRC20},
		{"flex-12", fFlex12, uint32(d.Trailer.Flex12)},
		{"EOF", fEOF, uint32(d.Trailer.EOF)},
		{"flex-24", fFlex24, d.Trailer.Flex24},
	} {
		if v.v > v.fd.mask() {
			return xerrors.Errorf(
				"wib2: %s 0x%x does not fit in %d bits: %w",
				v.name, v.v, v.fd.width, ErrFieldRange,
			)
		}
		v.fd.put(&w[v.fd.word], v.v)
	}

	adcs := w[HeaderWords : HeaderWords+PayloadWords]
	for i, v := range d.ADCs {
		if v > ADCMax {
			return xerrors.Errorf(
				"wib2: ADC[%d]=0x%x does not fit in %d bits: %w",
				i, v, BitsPerADC, ErrFieldRange,
			)
		}
		word, bit, n := adcPos(i)
		adcs[word] |= uint32(v) << bit
		if n < BitsPerADC {
			adcs[word+1] |= uint32(v) >> n
		}
	}

	for i, v := range w {
		binary.NativeEndian.PutUint32(p[4*i:], v)
	}
	return nil
}

// Encoder writes WIB v2 frames to an output stream.
type Encoder struct {
	w   io.Writer
	buf []byte
	err error
}

// NewEncoder returns a new Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:   w,
		buf: make([]byte, FrameSize),
	}
}

// Encode writes the frame image of d to the stream.
//
// Values that do not fit their frame field are reported and nothing is
// written. Errors from the underlying writer are sticky.
func (enc *Encoder) Encode(d *Data) error {
	if d == nil {
		return nil
	}
	if enc.err != nil {
		return enc.err
	}

	err := Put(enc.buf, d)
	if err != nil {
		return xerrors.Errorf("wib2: could not encode frame: %w", err)
	}

	_, enc.err = enc.w.Write(enc.buf)
	if enc.err != nil {
		enc.err = xerrors.Errorf("wib2: could not write frame: %w", enc.err)
	}
	return enc.err
}
