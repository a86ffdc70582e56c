// Package arith implements a lossless compressor based on arithmetic
// coding with a static frequency model.
// Bytes are coded as symbols of a 257-symbol alphabet whose last symbol
// marks the end of the stream, so the compressed format needs no length
// field, header, or checksum.
//
// Below is an example of using this package to compress a file:
//    go run compress/main.go gettysburg.txt > gettys.arith
//    cat gettys.arith | go run decompress/main.go > gettys.darith
//    diff gettysburg.txt gettys.darith
//
// Reference:
// Witten, Ian H.; Neal, Radford M.; Cleary, John G. (June 1987). "Arithmetic Coding for Data Compression". Communications of the ACM 30 (6): 520-540.
package arith

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/fumin/arith/bitio"
)

// Compress encodes the bytes of r and writes the compressed stream to w.
func Compress(w io.Writer, r io.Reader) error {
	bufw := bufio.NewWriter(w)
	enc := NewEncoder(bitio.NewWriter(bufw), NewStaticModel())

	bufr := bufio.NewReader(r)
	for {
		b, err := bufr.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "read input")
		}
		if err := enc.Encode(int(b)); err != nil {
			return err
		}
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return errors.Wrap(bufw.Flush(), "flush output")
}

// Decompress decodes the compressed stream r and writes the original bytes
// to w.
func Decompress(w io.Writer, r io.Reader) error {
	dec := NewDecoder(bitio.NewReader(bufio.NewReader(r)), NewStaticModel())

	bufw := bufio.NewWriter(w)
	for {
		s, err := dec.Decode()
		if err != nil {
			return err
		}
		if s == EOFSymbol {
			break
		}
		if err := bufw.WriteByte(byte(s)); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return errors.Wrap(bufw.Flush(), "flush output")
}
