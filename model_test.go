package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticModelWeights(t *testing.T) {
	m := NewStaticModel()

	weight := func(s int) uint64 { return m.High(s) - m.Low(s) }

	assert.EqualValues(t, 1, weight(0))
	assert.EqualValues(t, 1, weight('#'))
	assert.EqualValues(t, 1, weight(0xff))
	assert.EqualValues(t, 1, weight(EOFSymbol))
	assert.EqualValues(t, 2, weight('B'))
	assert.EqualValues(t, 2, weight('z'))
	assert.EqualValues(t, 4, weight('A'))
	assert.EqualValues(t, 4, weight('u'))

	// 257 base weights, 52 letters doubled, 10 vowels doubled again.
	assert.EqualValues(t, 257+52+20, m.Total())
}

func TestStaticModelDeterminism(t *testing.T) {
	a, b := NewStaticModel(), NewStaticModel()
	assert.Equal(t, a.cf, b.cf)
}

func TestStaticModelCumulative(t *testing.T) {
	m := NewStaticModel()

	require.EqualValues(t, 0, m.Low(0))
	for s := 0; s <= EOFSymbol; s++ {
		require.Less(t, m.Low(s), m.High(s), "symbol %d has an empty interval", s)
		if s < EOFSymbol {
			require.Equal(t, m.High(s), m.Low(s+1))
		}
	}
	require.Equal(t, m.Total(), m.High(EOFSymbol))
}

func TestStaticModelFind(t *testing.T) {
	m := NewStaticModel()

	for s := 0; s <= EOFSymbol; s++ {
		require.Equal(t, s, m.Find(m.Low(s)), "low bound of symbol %d", s)
		require.Equal(t, s, m.Find(m.High(s)-1), "high bound of symbol %d", s)
	}

	// Out-of-range positions come from corrupted streams only; they map
	// to the end marker so that decoding terminates.
	assert.Equal(t, EOFSymbol, m.Find(m.Total()))
	assert.Equal(t, EOFSymbol, m.Find(^uint64(0)))
}
