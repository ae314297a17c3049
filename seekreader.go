/*

Bit-addressed seeking for seekable sources.

*/

package bitrw

import (
	"errors"
	"io"
)

var (
	errWhence      = errors.New("bitrw: invalid whence")
	errNegativePos = errors.New("bitrw: negative bit position")
	errSeekPastEnd = errors.New("bitrw: cannot seek past end")
)

// SeekReader is a CountReader over a source that also supports seeking by
// byte offset. Seek addresses individual bits: bit position p means byte
// p/8 of the source, bit p%8 within it, highest first.
//
// Seeking is a separate capability: sources without io.Seeker get a plain
// Reader or CountReader instead.
type SeekReader struct {
	*CountReader

	rs io.ReadSeeker
}

// NewSeekReader returns a new SeekReader using the specified io.ReadSeeker
// as the input (source). The source is assumed to be positioned at its
// start; if it is not, Seek before reading.
func NewSeekReader(in io.ReadSeeker) *SeekReader {
	return &SeekReader{CountReader: NewCountReader(in), rs: in}
}

// Seek moves the read position to the given bit offset, interpreted
// relative to whence (io.SeekStart, io.SeekCurrent or io.SeekEnd), and
// returns the new absolute bit position. io.SeekEnd only accepts offsets
// not greater than 0. Buffered bits are discarded; the next read refills
// from the new position. Errors from the source's Seek are returned as-is.
//
// A position inside a byte makes Seek read that byte from the source and
// discard its leading bits, so such a Seek can fail with io.EOF just like
// a read can.
func (s *SeekReader) Seek(bits int64, whence int) (uint64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = bits
	case io.SeekCurrent:
		target = int64(s.bitPos) + bits
	case io.SeekEnd:
		if bits > 0 {
			return s.bitPos, errSeekPastEnd
		}
		end, err := s.rs.Seek(0, io.SeekEnd)
		if err != nil {
			return s.bitPos, err
		}
		target = end*8 + bits
		if target < 0 {
			// Probing the end moved the source; put it back where the
			// reader thinks it is before reporting the bad offset.
			if _, err := s.Seek(int64(s.bitPos), io.SeekStart); err != nil {
				return s.bitPos, err
			}
			return s.bitPos, errNegativePos
		}
	default:
		return s.bitPos, errWhence
	}
	if target < 0 {
		return s.bitPos, errNegativePos
	}

	if _, err := s.rs.Seek(target/8, io.SeekStart); err != nil {
		return s.bitPos, err
	}
	s.reset()
	s.bitPos = uint64(target) &^ 7

	// Enter the target byte by discarding its leading bits.
	if n := byte(target % 8); n > 0 {
		if _, err := s.ReadBits(n); err != nil {
			return s.bitPos, err
		}
	}
	return s.bitPos, nil
}
