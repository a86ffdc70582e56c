// Package bitio provides the bit-level sink and source used by the
// arithmetic coder. Bits are packed into bytes least significant bit first,
// the ordering used by the gzip family of formats.
package bitio

import (
	"io"

	"github.com/pkg/errors"
)

// A Writer accumulates single bits and writes them to an underlying
// io.Writer one byte at a time. Callers who care about write performance
// should supply a buffered writer.
type Writer struct {
	w       io.Writer
	current byte
	numBits uint
}

// NewWriter returns a Writer emitting bytes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteBit appends the bit b, which must be 0 or 1, to the stream.
func (w *Writer) WriteBit(b int) error {
	w.current |= byte(b&1) << w.numBits
	w.numBits++
	if w.numBits == 8 {
		return w.writeCurrent()
	}
	return nil
}

// FlushToByte pads the current partial byte with copies of pad until the
// byte is complete, then writes it out. It is a no-op when the stream is
// already at a byte boundary.
func (w *Writer) FlushToByte(pad int) error {
	for w.numBits != 0 {
		if err := w.WriteBit(pad); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeCurrent() error {
	if _, err := w.w.Write([]byte{w.current}); err != nil {
		return errors.Wrap(err, "write byte")
	}
	w.current = 0
	w.numBits = 0
	return nil
}
