package arith

import (
	"github.com/fumin/arith/bitio"
)

// A Decoder reconstructs the symbol sequence produced by an Encoder by
// inverting its interval-narrowing steps. It keeps a 32-bit window of the
// most recently read encoded bits; the invariant low <= window <= high
// holds at the start of every step for a well-formed stream.
type Decoder struct {
	r     *bitio.Reader
	model Model

	low    uint32
	high   uint32
	window uint32
	primed bool
}

// NewDecoder returns a Decoder reading bits from r under the given model,
// which must be the model the stream was encoded with.
func NewDecoder(r *bitio.Reader, model Model) *Decoder {
	return &Decoder{r: r, model: model, low: 0, high: ^uint32(0)}
}

// Decode returns the next symbol of the stream. The end of the sequence is
// reported by returning EOFSymbol; no symbols remain after that.
//
// A truncated or corrupted stream is not detectable: the stream carries no
// checksum, so decoding garbage simply yields garbage symbols until an
// end-of-stream symbol happens to be produced.
func (d *Decoder) Decode() (int, error) {
	if !d.primed {
		if err := d.prime(); err != nil {
			return 0, err
		}
	}

	// Scale the window back to cumulative frequency space and look up the
	// symbol owning that position. The +1/-1 terms account for the
	// flooring in the encoder's interval update.
	total := d.model.Total()
	rng := uint64(d.high) - uint64(d.low) + 1
	scaled := ((uint64(d.window)-uint64(d.low)+1)*total - 1) / rng
	s := d.model.Find(scaled)
	if s == EOFSymbol {
		return EOFSymbol, nil
	}

	// Repeat the encoder's interval update for the identified symbol.
	d.high = d.low + uint32(rng*d.model.High(s)/total) - 1
	d.low = d.low + uint32(rng*d.model.Low(s)/total)

	for {
		if topBitsEqual(d.low, d.high) {
			// The window shares the settled top bit with the bounds,
			// so it is shifted out of all three.
			d.high = d.high<<1 | 1
			d.low = d.low << 1
			if err := d.shiftWindow(d.window << 1); err != nil {
				return 0, err
			}
		} else if nearConvergence(d.low, d.high) {
			d.high = d.high<<1 | topBit | 1
			d.low = d.low << 1 &^ topBit
			// Splice out the window's second bit, keeping its top bit,
			// exactly as done for the bounds.
			if err := d.shiftWindow(d.window&topBit | d.window<<1&^topBit); err != nil {
				return 0, err
			}
		} else {
			return s, nil
		}
	}
}

// prime fills the window with the first 32 encoded bits, most significant
// bit first.
func (d *Decoder) prime() error {
	for i := 0; i < 32; i++ {
		b, err := d.r.ReadBit()
		if err != nil {
			return err
		}
		d.window = d.window<<1 | uint32(b)
	}
	d.primed = true
	return nil
}

// shiftWindow installs the shifted window and brings in one fresh bit from
// the source at the low end.
func (d *Decoder) shiftWindow(shifted uint32) error {
	b, err := d.r.ReadBit()
	if err != nil {
		return err
	}
	d.window = shifted | uint32(b)
	return nil
}
