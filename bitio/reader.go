package bitio

import (
	"io"

	"github.com/pkg/errors"
)

// A Reader yields single bits from an underlying io.Reader, least
// significant bit of each byte first.
//
// Once the underlying stream is exhausted, ReadBit returns the last bit it
// ever produced, forever. It never reports end of input. The arithmetic
// encoder terminates its output with a 01 sequence padded with ones, and
// relies on the decoder's source repeating that final one bit indefinitely
// instead of transmitting the true stream length.
type Reader struct {
	r       io.Reader
	current byte
	numBits uint
	done    bool
	lastBit int
}

// NewReader returns a Reader consuming bytes from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadBit returns the next bit of the stream, or repeats the last real bit
// once the stream is exhausted. Errors other than end of input are
// returned as is.
func (r *Reader) ReadBit() (int, error) {
	if r.numBits == 0 && !r.done {
		if err := r.readCurrent(); err != nil {
			return 0, err
		}
	}
	if r.done {
		return r.lastBit, nil
	}
	r.lastBit = int(r.current & 1)
	r.current >>= 1
	r.numBits--
	return r.lastBit, nil
}

func (r *Reader) readCurrent() error {
	var buf [1]byte
	for {
		n, err := r.r.Read(buf[:])
		if n > 0 {
			r.current = buf[0]
			r.numBits = 8
			return nil
		}
		if err == io.EOF {
			r.done = true
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read byte")
		}
	}
}
