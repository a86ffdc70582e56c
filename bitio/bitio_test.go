package bitio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterPacksLSBFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	for _, b := range []int{1, 0, 1, 1, 0, 0, 1, 0} {
		require.NoError(t, w.WriteBit(b))
	}
	assert.Equal(t, []byte{0x4d}, buf.Bytes())
}

func TestWriterFlushToByte(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteBit(0))
	require.NoError(t, w.WriteBit(1))
	require.NoError(t, w.FlushToByte(1))
	// 0, 1, then six ones of padding.
	assert.Equal(t, []byte{0xfe}, buf.Bytes())

	// At a byte boundary the flush must not emit anything.
	require.NoError(t, w.FlushToByte(1))
	assert.Equal(t, []byte{0xfe}, buf.Bytes())
}

func TestReader(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x4d}))
	want := []int{1, 0, 1, 1, 0, 0, 1, 0}
	for i, wb := range want {
		b, err := r.ReadBit()
		require.NoError(t, err)
		require.Equal(t, wb, b, "bit %d", i)
	}
}

// TestReaderRepeatsLastBit checks the exhaustion contract: past the end of
// the underlying stream, the reader keeps returning the last real bit and
// never reports end of input.
func TestReaderRepeatsLastBit(t *testing.T) {
	for _, test := range []struct {
		name string
		data []byte
		last int
	}{
		{"last_one", []byte{0x80}, 1},
		{"last_zero", []byte{0x01}, 0},
	} {
		t.Run(test.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(test.data))
			for i := 0; i < 8; i++ {
				if _, err := r.ReadBit(); err != nil {
					t.Fatalf("%+v", err)
				}
			}
			for i := 0; i < 100; i++ {
				b, err := r.ReadBit()
				require.NoError(t, err)
				require.Equal(t, test.last, b)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	bits := []int{1, 1, 0, 1, 0, 0, 1, 1, 0, 1, 1}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, b := range bits {
		require.NoError(t, w.WriteBit(b))
	}
	require.NoError(t, w.FlushToByte(0))

	r := NewReader(&buf)
	for i, wb := range bits {
		b, err := r.ReadBit()
		require.NoError(t, err)
		require.Equal(t, wb, b, "bit %d", i)
	}
}
