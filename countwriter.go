/*

Position-counting writer.

*/

package bitrw

import "io"

// CountWriter is a Writer that keeps track of the total number of bits
// delivered to the sink, including the zero bits Align pads with. Calls
// that fail are only counted for the bits they actually delivered.
//
// CountWriter also provides Try methods, variants that store the first
// error in TryError instead of returning it. Once TryError is set, all
// Try methods are no-ops.
type CountWriter struct {
	*writer

	// TryError holds the first error encountered by a Try method.
	TryError error

	count uint64
}

// NewCountWriter returns a new CountWriter using the specified io.Writer
// as the output (sink).
func NewCountWriter(out io.Writer) *CountWriter {
	return &CountWriter{writer: newWriter(out)}
}

// BitsWritten returns the total number of bits written so far,
// padding included.
func (w *CountWriter) BitsWritten() uint64 {
	return w.count
}

// Write implements io.Writer.
func (w *CountWriter) Write(p []byte) (n int, err error) {
	n, err = w.writer.Write(p)
	w.count += uint64(n) * 8
	return
}

// WriteByte implements io.ByteWriter.
func (w *CountWriter) WriteByte(b byte) (err error) {
	err = w.writer.WriteByte(b)
	if err == nil {
		w.count += 8
	}
	return
}

func (w *CountWriter) WriteBits(r uint64, n byte) (err error) {
	err = w.writer.WriteBits(r, n)
	if err == nil {
		w.count += uint64(n)
	}
	return
}

func (w *CountWriter) WriteBool(b bool) (err error) {
	err = w.writer.WriteBool(b)
	if err == nil {
		w.count++
	}
	return
}

func (w *CountWriter) Align() (padding byte, err error) {
	padding, err = w.writer.Align()
	if err == nil {
		w.count += uint64(padding)
	}
	return
}

// Close implements io.Closer.
func (w *CountWriter) Close() (err error) {
	_, err = w.Align()
	return
}

// TryWrite is like Write, but it does nothing if TryError is already set,
// and stores a non-nil error in TryError instead of returning it.
func (w *CountWriter) TryWrite(p []byte) (n int) {
	if w.TryError == nil {
		n, w.TryError = w.Write(p)
	}
	return
}

// TryWriteByte is like WriteByte, with the error going to TryError.
func (w *CountWriter) TryWriteByte(b byte) {
	if w.TryError == nil {
		w.TryError = w.WriteByte(b)
	}
}

// TryWriteBits is like WriteBits, with the error going to TryError.
func (w *CountWriter) TryWriteBits(r uint64, n byte) {
	if w.TryError == nil {
		w.TryError = w.WriteBits(r, n)
	}
}

// TryWriteBool is like WriteBool, with the error going to TryError.
func (w *CountWriter) TryWriteBool(b bool) {
	if w.TryError == nil {
		w.TryError = w.WriteBool(b)
	}
}

// TryAlign is like Align, with the error going to TryError.
func (w *CountWriter) TryAlign() (padding byte) {
	if w.TryError == nil {
		padding, w.TryError = w.Align()
	}
	return
}
