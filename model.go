package arith

import (
	"fmt"
	"sort"
)

const (
	// EOFSymbol is the reserved symbol marking the end of the encoded
	// byte sequence. Symbols 0 through 255 are the byte values themselves.
	EOFSymbol = 256

	alphabetSize = EOFSymbol + 1
)

// A Model assigns each symbol a share of the cumulative frequency mass.
// Symbol s owns the half-open interval [Low(s), High(s)) out of Total().
// The same model must be used for encoding and decoding; no model
// parameters are transmitted in the compressed stream.
type Model interface {
	// Low returns the cumulative frequency below symbol s.
	Low(s int) uint64

	// High returns the cumulative frequency up to and including symbol s.
	High(s int) uint64

	// Total returns the cumulative frequency of all symbols.
	Total() uint64

	// Find returns the symbol whose interval contains the scaled
	// cumulative frequency v.
	Find(v uint64) int
}

// A StaticModel is a fixed frequency model over the 257-symbol alphabet.
// Every symbol has weight 1, except ASCII letters which have weight 2 and
// the vowels AEIOUaeiou which have weight 4. The weighting mildly favors
// English text while keeping every byte value encodable.
type StaticModel struct {
	cf [alphabetSize + 1]uint64
}

// NewStaticModel builds the fixed frequency model.
// Construction is deterministic: repeated calls produce identical models.
func NewStaticModel() *StaticModel {
	var freq [alphabetSize]uint64
	for i := range freq {
		freq[i] = 1
	}
	for c := 'A'; c <= 'Z'; c++ {
		freq[c] = 2
		freq[c+'a'-'A'] = 2
	}
	for _, c := range "AEIOUaeiou" {
		freq[c] = 4
	}

	m := &StaticModel{}
	for i, f := range freq {
		m.cf[i+1] = m.cf[i] + f
	}
	// The total is the denominator of every interval-narrowing division
	// and must fit in 32 bits. The fixed weights sum to 329, so this can
	// only trip if the weighting rule above is changed.
	if total := m.cf[alphabetSize]; total > 0xffffffff {
		panic(fmt.Sprintf("total frequency %d overflows 32 bits", total))
	}
	return m
}

// Low returns the cumulative frequency below symbol s.
func (m *StaticModel) Low(s int) uint64 { return m.cf[s] }

// High returns the cumulative frequency up to and including symbol s.
func (m *StaticModel) High(s int) uint64 { return m.cf[s+1] }

// Total returns the cumulative frequency of all symbols.
func (m *StaticModel) Total() uint64 { return m.cf[alphabetSize] }

// Find returns the symbol s with Low(s) <= v < High(s), by binary search
// over the cumulative array, which is strictly increasing since every
// weight is positive. Values at or beyond Total, which can only arise from
// a corrupted stream, map to EOFSymbol so that decoding terminates.
func (m *StaticModel) Find(v uint64) int {
	s := sort.Search(alphabetSize, func(i int) bool { return v < m.cf[i+1] })
	if s >= alphabetSize {
		return EOFSymbol
	}
	return s
}
