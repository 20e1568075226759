// Copyright 2026 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wib2_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-lpc/wib/wib2"
)

func ExampleFrame() {
	d := wib2.Data{
		Header: wib2.Header{
			Crate:      1,
			Slot:       2,
			Timestamp1: 0xffffffff,
			Timestamp2: 1,
		},
	}
	for i := range d.ADCs {
		d.ADCs[i] = uint16(1000 + i)
	}

	raw := make([]byte, wib2.FrameSize)
	err := wib2.Put(raw, &d)
	if err != nil {
		log.Fatalf("could not create frame: %+v", err)
	}

	f, err := wib2.NewFrame(raw)
	if err != nil {
		log.Fatalf("could not decode frame: %+v", err)
	}

	u, _ := f.U(0, 0)
	v, _ := f.V(0, 1)
	x, _ := f.X(1, 47)
	fmt.Printf("crate=%d slot=%d timestamp=0x%x\n", f.Crate(), f.Slot(), f.Timestamp())
	fmt.Printf("U(0,0)=%d V(0,1)=%d X(1,47)=%d\n", u, v, x)

	_, err = f.ADC(256)
	fmt.Println(errors.Is(err, wib2.ErrADCIndex))

	// Output:
	// crate=1 slot=2 timestamp=0x1ffffffff
	// U(0,0)=1000 V(0,1)=1041 X(1,47)=1255
	// true
}
