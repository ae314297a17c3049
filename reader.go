/*

Reader interface definition and implementation.

*/

package bitrw

import (
	"bufio"
	"errors"
	"io"
)

// ErrBitCount is returned by Reader.ReadBits and Writer.WriteBits when the
// requested bit count is greater than 64, the widest value either side can
// carry in a uint64.
var ErrBitCount = errors.New("bitrw: bit count out of range")

// Reader is the bit reader interface.
//
// End of input is reported as the error the source returns for it,
// normally io.EOF, so callers can tell a cleanly exhausted stream from a
// broken one.
type Reader interface {
	// Reader is an io.Reader.
	io.Reader

	// Reader is also an io.ByteReader.
	// ReadByte reads the next 8 bits and returns them as a byte.
	io.ByteReader

	// ReadBits reads n bits and returns them as the lowest n bits of u,
	// first bit read in the highest of those positions. n = 0 reads
	// nothing and returns 0; n > 64 fails with ErrBitCount.
	//
	// A read that fails partway keeps whatever bytes were already pulled
	// from the source; it is not rolled back.
	ReadBits(n byte) (u uint64, err error)

	// ReadBool reads the next bit, and returns true if it is 1.
	ReadBool() (b bool, err error)

	// Align aligns the bit stream to a byte boundary,
	// so next read will read/use data from the next byte.
	// Returns the number of unread / skipped bits.
	Align() (skipped byte)

	// Unwrap returns the source the Reader was created with.
	// Bits still buffered in the Reader are discarded.
	Unwrap() io.Reader
}

// An io.Reader and io.ByteReader at the same time.
type readerAndByteReader interface {
	io.Reader
	io.ByteReader
}

// reader is the bit reader implementation.
type reader struct {
	in        readerAndByteReader
	src       io.Reader     // the reader passed to newReader
	wrapperbr *bufio.Reader // wrapper bufio.Reader if src does not implement io.ByteReader
	pending   byte          // unread bits are stored here, highest first
	nbits     byte          // number of unread bits in pending
}

// NewReader returns a new Reader using the specified io.Reader as the input (source).
func NewReader(in io.Reader) Reader {
	return newReader(in)
}

func newReader(in io.Reader) *reader {
	r := &reader{src: in}
	var ok bool
	r.in, ok = in.(readerAndByteReader)
	if !ok {
		r.wrapperbr = bufio.NewReader(in)
		r.in = r.wrapperbr
	}
	return r
}

// Read implements io.Reader.
func (r *reader) Read(p []byte) (n int, err error) {
	// r.nbits will be the same after reading 8 bits, so we don't need to update that.
	if r.nbits == 0 {
		return r.in.Read(p)
	}

	for ; n < len(p); n++ {
		if p[n], err = r.readUnalignedByte(); err != nil {
			return
		}
	}

	return
}

func (r *reader) ReadBits(n byte) (u uint64, err error) {
	if n > 64 {
		return 0, ErrBitCount
	}
	if n == 0 {
		return 0, nil
	}

	// Some optimization, frequent cases
	if n < r.nbits {
		// pending has all needed bits, and there are some extra which will be left in pending
		shift := r.nbits - n
		u = uint64(r.pending >> shift)
		r.pending &= 1<<shift - 1
		r.nbits = shift
		return
	}

	if n > r.nbits {
		// all pending bits needed, and it's not even enough so more will be read
		if r.nbits > 0 {
			u = uint64(r.pending)
			n -= r.nbits
		}
		// Read whole bytes
		for n >= 8 {
			b, err2 := r.in.ReadByte()
			if err2 != nil {
				return 0, err2
			}
			u = u<<8 + uint64(b)
			n -= 8
		}
		// Read last fraction, if any
		if n > 0 {
			if r.pending, err = r.in.ReadByte(); err != nil {
				return 0, err
			}
			shift := 8 - n
			u = u<<n + uint64(r.pending>>shift)
			r.pending &= 1<<shift - 1
			r.nbits = shift
		} else {
			r.nbits = 0
		}
		return u, nil
	}

	// pending has exactly as many as needed
	r.nbits = 0 // no need to clear pending, will be overridden on next read
	return uint64(r.pending), nil
}

// ReadByte implements io.ByteReader.
func (r *reader) ReadByte() (b byte, err error) {
	// r.nbits will be the same after reading 8 bits, so we don't need to update that.
	if r.nbits == 0 {
		return r.in.ReadByte()
	}
	return r.readUnalignedByte()
}

// readUnalignedByte reads the next 8 bits which are (may be) unaligned and returns them as a byte.
func (r *reader) readUnalignedByte() (b byte, err error) {
	// r.nbits will be the same after reading 8 bits, so we don't need to update that.
	nbits := r.nbits
	b = r.pending << (8 - nbits)
	r.pending, err = r.in.ReadByte()
	if err != nil {
		return 0, err
	}
	b |= r.pending >> nbits
	r.pending &= 1<<nbits - 1
	return
}

func (r *reader) ReadBool() (b bool, err error) {
	if r.nbits == 0 {
		r.pending, err = r.in.ReadByte()
		if err != nil {
			return
		}
		b = (r.pending & 0x80) != 0
		r.pending, r.nbits = r.pending&0x7f, 7
		return
	}

	r.nbits--
	b = (r.pending & (1 << r.nbits)) != 0
	r.pending &= 1<<r.nbits - 1
	return
}

func (r *reader) Align() (skipped byte) {
	skipped = r.nbits
	r.nbits = 0 // no need to clear pending, will be overwritten on next read
	return
}

func (r *reader) Unwrap() io.Reader {
	return r.src
}

// reset drops buffered bits (and the bufio wrapper's readahead, if any),
// so the next read pulls fresh data from the source's current position.
func (r *reader) reset() {
	r.pending, r.nbits = 0, 0
	if r.wrapperbr != nil {
		r.wrapperbr.Reset(r.src)
	}
}
