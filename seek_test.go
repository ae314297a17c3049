package bitrw

import (
	"bytes"
	"io"
	"testing"

	"github.com/icza/mighty"
)

// testSeeker is deliberately only an io.ReadSeeker, forcing the bufio
// wrapper path.
type testSeeker struct {
	r *bytes.Reader
}

func (s *testSeeker) Read(p []byte) (int, error) { return s.r.Read(p) }

func (s *testSeeker) Seek(off int64, whence int) (int64, error) { return s.r.Seek(off, whence) }

// readSkip reads and discards skip bits from a fresh reader over data, then
// returns the next n bits.
func readSkip(t *testing.T, data []byte, skip uint64, n byte) uint64 {
	t.Helper()

	r := NewReader(bytes.NewReader(data))
	for skip > 0 {
		c := byte(64)
		if skip < 64 {
			c = byte(skip)
		}
		if _, err := r.ReadBits(c); err != nil {
			t.Fatal("Got error:", err)
		}
		skip -= uint64(c)
	}
	u, err := r.ReadBits(n)
	if err != nil {
		t.Fatal("Got error:", err)
	}
	return u
}

func TestSeekReader(t *testing.T) {
	data := []byte{3, 255, 0xcc, 0x1a, 0xbc, 0xde, 0x80, 0x01, 0x02, 0xf8, 0x08, 0xf0}

	for i := 0; i < 2; i++ {
		// 2 rounds, first use something that implements io.ByteReader
		// (*bytes.Reader), next testSeeker which does not.
		var in io.ReadSeeker = bytes.NewReader(data)
		if i > 0 {
			in = &testSeeker{r: bytes.NewReader(data)}
		}

		r := NewSeekReader(in)
		eq, expEq := mighty.EqExpEq(t)

		eq(uint64(0), r.BitPosition())

		// Sequential reading still works and is counted.
		expEq(byte(3))(r.ReadByte())
		eq(uint64(8), r.BitPosition())

		// Absolute seek into the middle of a byte.
		expEq(uint64(20))(r.Seek(20, io.SeekStart))
		eq(uint64(20), r.BitPosition())
		expEq(uint64(0xc1))(r.ReadBits(8))
		eq(uint64(28), r.BitPosition())

		// Relative seek back over what was just read.
		expEq(uint64(20))(r.Seek(-8, io.SeekCurrent))
		expEq(uint64(0xc1))(r.ReadBits(8))

		// Back to the start.
		expEq(uint64(0))(r.Seek(0, io.SeekStart))
		expEq(uint64(3))(r.ReadBits(8))

		// Seeking discards buffered bits; Align right after a byte-aligned
		// seek has nothing to skip.
		expEq(uint64(4))(r.Seek(4, io.SeekStart))
		eq(uint8(4), r.Align())
		eq(uint64(8), r.BitPosition())
		expEq(uint64(16))(r.Seek(16, io.SeekStart))
		eq(uint8(0), r.Align())

		// From the end: the last 16 bits.
		expEq(uint64(80))(r.Seek(-16, io.SeekEnd))
		expEq(uint64(0x08f0))(r.ReadBits(16))
		_, err := r.ReadBool()
		eq(io.EOF, err)
	}
}

func TestSeekReaderSkipEquivalence(t *testing.T) {
	data := []byte{3, 255, 0xcc, 0x1a, 0xbc, 0xde, 0x80, 0x01, 0x02, 0xf8, 0x08, 0xf0}

	r := NewSeekReader(bytes.NewReader(data))
	eq := mighty.Eq(t)

	// Seeking to p and reading n bits must match reading from the start
	// and discarding the first p bits.
	for p := uint64(0); p+9 <= uint64(len(data))*8; p += 7 {
		pos, err := r.Seek(int64(p), io.SeekStart)
		eq(nil, err)
		eq(p, pos)
		u, err := r.ReadBits(9)
		eq(nil, err)
		eq(readSkip(t, data, p, 9), u)
		eq(p+9, r.BitPosition())
	}
}

func TestSeekReaderErrors(t *testing.T) {
	data := []byte{0x12, 0x34}

	r := NewSeekReader(bytes.NewReader(data))
	eq := mighty.Eq(t)

	_, err := r.Seek(-1, io.SeekStart)
	eq(errNegativePos, err)

	_, err = r.Seek(-1000, io.SeekEnd)
	eq(errNegativePos, err)

	_, err = r.Seek(1, io.SeekEnd)
	eq(errSeekPastEnd, err)

	_, err = r.Seek(0, 42)
	eq(errWhence, err)

	// A failed seek leaves the position usable.
	eq(uint64(0), r.BitPosition())
	u, err := r.ReadBits(16)
	eq(nil, err)
	eq(uint64(0x1234), u)

	// Byte-aligned seeks past the end succeed, the next read reports EOF.
	pos, err := r.Seek(64, io.SeekStart)
	eq(nil, err)
	eq(uint64(64), pos)
	_, err = r.ReadBool()
	eq(io.EOF, err)

	// An intra-byte seek past the end has to read the target byte, so it
	// fails right away.
	_, err = r.Seek(67, io.SeekStart)
	eq(io.EOF, err)
}
