// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wib2

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/xerrors"
)

// Frame is a read-only view over the bytes of a single WIB v2 frame.
//
// Frame does not copy nor own the underlying buffer: the buffer must
// outlive the Frame and must not be modified while the Frame is in use.
// All methods of Frame are safe for concurrent use.
//
// The zero value is not a valid Frame.
type Frame struct {
	p []byte
}

// NewFrame returns a view over the frame held in p.
// p must be exactly FrameSize bytes long.
func NewFrame(p []byte) (Frame, error) {
	if len(p) != FrameSize {
		return Frame{}, xerrors.Errorf(
			"wib2: could not create frame (got=%d bytes, want=%d): %w",
			len(p), FrameSize, ErrFrameSize,
		)
	}
	return Frame{p: p[:FrameSize:FrameSize]}, nil
}

// Bytes returns the underlying frame buffer.
func (f Frame) Bytes() []byte { return f.p }

// Word returns the i-th 32-bit word of the frame.
// Word panics if i is not in [0, FrameWords).
func (f Frame) Word(i int) uint32 {
	return binary.NativeEndian.Uint32(f.p[4*i : 4*i+4])
}

func (f Frame) get(fd field) uint32 {
	return fd.get(f.Word(fd.word))
}

// Header fields.

func (f Frame) Crate() uint8        { return uint8(f.get(fCrate)) }
func (f Frame) FrameVersion() uint8 { return uint8(f.get(fVersion)) }
func (f Frame) Slot() uint8         { return uint8(f.get(fSlot)) }
func (f Frame) Fiber() uint8        { return uint8(f.get(fFiber)) }
func (f Frame) FEMBValid() uint8    { return uint8(f.get(fFEMBValid)) }
func (f Frame) WIBCode1() uint16    { return uint16(f.get(fWIBCode1)) }
func (f Frame) WIBCode2() uint32    { return f.get(fWIBCode2) }
func (f Frame) Timestamp1() uint32  { return f.get(fTS1) }
func (f Frame) Timestamp2() uint32  { return f.get(fTS2) }

// Trailer fields.

func (f Frame) CRC20() uint32      { return f.get(fCRC20) }
func (f Frame) FlexWord12() uint16 { return uint16(f.get(fFlex12)) }
func (f Frame) EOF() uint8         { return uint8(f.get(fEOF)) }
func (f Frame) FlexWord24() uint32 { return f.get(fFlex24) }

// Timestamp returns the 64-bit timestamp of the frame.
func (f Frame) Timestamp() uint64 {
	return uint64(f.Timestamp1()) | uint64(f.Timestamp2())<<32
}

// Header decodes the frame header.
func (f Frame) Header() Header {
	return Header{
		Crate:      f.Crate(),
		Version:    f.FrameVersion(),
		Slot:       f.Slot(),
		Fiber:      f.Fiber(),
		FEMBValid:  f.FEMBValid(),
		WIBCode1:   f.WIBCode1(),
		WIBCode2:   f.WIBCode2(),
		Timestamp1: f.Timestamp1(),
		Timestamp2: f.Timestamp2(),
	}
}

// Trailer decodes the frame trailer.
func (f Frame) Trailer() Trailer {
	return Trailer{
		CRC20:  f.CRC20(),
		Flex12: f.FlexWord12(),
		EOF:    f.EOF(),
		Flex24: f.FlexWord24(),
	}
}

// ADC returns the i-th ADC sample of the frame.
// ADC returns an error wrapping ErrADCIndex if i is not in [0, NumADCs).
func (f Frame) ADC(i int) (uint16, error) {
	if i < 0 || i >= NumADCs {
		return 0, xerrors.Errorf(
			"wib2: invalid ADC index %d (want [0, %d)): %w",
			i, NumADCs, ErrADCIndex,
		)
	}
	return f.adc(i), nil
}

func (f Frame) adc(i int) uint16 {
	word, bit, n := adcPos(i)
	v := f.payload(word) >> bit
	if n < BitsPerADC {
		// the sample straddles two words: fetch its high bits.
		v |= f.payload(word+1) << n
	}
	return uint16(v & ADCMax)
}

func (f Frame) payload(i int) uint32 {
	if i < 0 || i >= PayloadWords {
		panic(fmt.Errorf("wib2: payload word %d outside of payload", i))
	}
	return f.Word(HeaderWords + i)
}

// ADCs unpacks all the ADC samples of the frame into dst.
func (f Frame) ADCs(dst *[NumADCs]uint16) {
	for i := range dst {
		dst[i] = f.adc(i)
	}
}

// U returns the i-th U-channel ADC sample of the given FEMB.
//
// Neither femb nor i are validated: only the resulting flat index is.
// An i outside [0, NumU) silently yields a sample from a neighbouring
// channel group.
func (f Frame) U(femb, i int) (uint16, error) {
	return f.ADC(ChannelsPerFEMB*femb + i)
}

// V returns the i-th V-channel ADC sample of the given FEMB.
// As for U, only the resulting flat index is validated.
func (f Frame) V(femb, i int) (uint16, error) {
	return f.ADC(ChannelsPerFEMB*femb + NumU + i)
}

// X returns the i-th X-channel (ie, collection) ADC sample of the given FEMB.
// As for U, only the resulting flat index is validated.
func (f Frame) X(femb, i int) (uint16, error) {
	return f.ADC(ChannelsPerFEMB*femb + NumU + NumV + i)
}

// Decode decodes the whole frame into d.
func (f Frame) Decode(d *Data) {
	d.Header = f.Header()
	f.ADCs(&d.ADCs)
	d.Trailer = f.Trailer()
}
