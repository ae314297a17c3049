/*

Position-counting reader.

*/

package bitrw

import "io"

// CountReader is a Reader that keeps track of the absolute bit position:
// the number of bits delivered to the caller since creation (or since the
// last seek, for a SeekReader). A failed read only counts the bits that
// were actually delivered before the failure.
//
// CountReader also provides Try methods, variants that store the first
// error in TryError instead of returning it. Once TryError is set, all
// Try methods are no-ops.
type CountReader struct {
	*reader

	// TryError holds the first error encountered by a Try method.
	TryError error

	bitPos uint64
}

// NewCountReader returns a new CountReader using the specified io.Reader
// as the input (source).
func NewCountReader(in io.Reader) *CountReader {
	return &CountReader{reader: newReader(in)}
}

// BitPosition returns the current absolute bit position.
func (r *CountReader) BitPosition() uint64 {
	return r.bitPos
}

// Read implements io.Reader.
func (r *CountReader) Read(p []byte) (n int, err error) {
	n, err = r.reader.Read(p)
	r.bitPos += uint64(n) * 8
	return
}

// ReadByte implements io.ByteReader.
func (r *CountReader) ReadByte() (b byte, err error) {
	b, err = r.reader.ReadByte()
	if err == nil {
		r.bitPos += 8
	}
	return
}

func (r *CountReader) ReadBits(n byte) (u uint64, err error) {
	u, err = r.reader.ReadBits(n)
	if err == nil {
		r.bitPos += uint64(n)
	}
	return
}

func (r *CountReader) ReadBool() (b bool, err error) {
	b, err = r.reader.ReadBool()
	if err == nil {
		r.bitPos++
	}
	return
}

func (r *CountReader) Align() (skipped byte) {
	skipped = r.reader.Align()
	r.bitPos += uint64(skipped)
	return
}

// TryRead is like Read, but it does nothing if TryError is already set,
// and stores a non-nil error in TryError instead of returning it.
func (r *CountReader) TryRead(p []byte) (n int) {
	if r.TryError == nil {
		n, r.TryError = r.Read(p)
	}
	return
}

// TryReadByte is like ReadByte, with the error going to TryError.
func (r *CountReader) TryReadByte() (b byte) {
	if r.TryError == nil {
		b, r.TryError = r.ReadByte()
	}
	return
}

// TryReadBits is like ReadBits, with the error going to TryError.
func (r *CountReader) TryReadBits(n byte) (u uint64) {
	if r.TryError == nil {
		u, r.TryError = r.ReadBits(n)
	}
	return
}

// TryReadBool is like ReadBool, with the error going to TryError.
func (r *CountReader) TryReadBool() (b bool) {
	if r.TryError == nil {
		b, r.TryError = r.ReadBool()
	}
	return
}
