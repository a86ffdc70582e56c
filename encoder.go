package arith

import (
	"github.com/fumin/arith/bitio"
)

const (
	topBit    uint32 = 1 << 31
	secondBit uint32 = 1 << 30
)

// topBitsEqual reports whether the bounds share their most significant bit,
// in which case that bit is settled and can be shifted out.
func topBitsEqual(low, high uint32) bool {
	return low>>31 == high>>31
}

// nearConvergence reports whether the bounds are closing in on the midpoint
// without agreeing on a top bit, that is low = 01... and high = 10... .
func nearConvergence(low, high uint32) bool {
	return low&secondBit != 0 && high&secondBit == 0
}

// An Encoder arithmetically codes a sequence of symbols into a bit stream.
// The working interval [low, high] is narrowed for every symbol, and bits
// are emitted whenever the most significant bits of the bounds settle.
type Encoder struct {
	w     *bitio.Writer
	model Model

	low       uint32
	high      uint32
	underflow int
}

// NewEncoder returns an Encoder emitting bits to w under the given model.
func NewEncoder(w *bitio.Writer, model Model) *Encoder {
	return &Encoder{w: w, model: model, low: 0, high: ^uint32(0)}
}

// Encode codes a single symbol. Callers finish a stream by calling Close,
// which codes EOFSymbol and flushes; symbols must not be encoded after
// that.
func (e *Encoder) Encode(s int) error {
	// Narrow the interval to the symbol's cumulative frequency share.
	// Intermediate products need up to 64 bits.
	total := e.model.Total()
	rng := uint64(e.high) - uint64(e.low) + 1
	e.high = e.low + uint32(rng*e.model.High(s)/total) - 1
	e.low = e.low + uint32(rng*e.model.Low(s)/total)

	for {
		if topBitsEqual(e.low, e.high) {
			if err := e.emit(int(e.high >> 31)); err != nil {
				return err
			}
			e.high = e.high<<1 | 1
			e.low = e.low << 1
		} else if nearConvergence(e.low, e.high) {
			// Splice out the second bit of each bound, keeping its
			// top bit, and remember to emit the deferred opposite
			// bit once the top bits settle.
			e.underflow++
			e.high = e.high<<1 | topBit | 1
			e.low = e.low << 1 &^ topBit
		} else {
			return nil
		}
	}
}

// emit writes bit b followed by the pending underflow copies of its
// complement.
func (e *Encoder) emit(b int) error {
	if err := e.w.WriteBit(b); err != nil {
		return err
	}
	for ; e.underflow > 0; e.underflow-- {
		if err := e.w.WriteBit(b ^ 1); err != nil {
			return err
		}
	}
	return nil
}

// Close codes the end-of-stream symbol and flushes the final bits.
//
// After the last renormalization the bounds are known to start with 0 and
// 1 respectively, so the value 0.0111... (ones repeating) lies inside the
// working interval. Emitting 01 and padding the last byte with ones is
// therefore sufficient, provided the decoder's bit source repeats the
// final one bit once the physical stream ends.
func (e *Encoder) Close() error {
	if err := e.Encode(EOFSymbol); err != nil {
		return err
	}
	// Any pending underflow bits would be ones here and are covered by
	// the one-padding below.
	if err := e.w.WriteBit(0); err != nil {
		return err
	}
	if err := e.w.WriteBit(1); err != nil {
		return err
	}
	return e.w.FlushToByte(1)
}
