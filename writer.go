/*

Writer interface definition and implementation.

*/

package bitrw

import (
	"bufio"
	"io"
)

// Writer is the bit writer interface.
// Must be closed in order to flush cached data.
// If you can't or don't want to close it, flushing data can also be forced
// by calling Align().
type Writer interface {
	// Writer is an io.Writer and io.Closer.
	// Close closes the bit writer, writes out cached bits.
	// It does not close the underlying io.Writer.
	io.WriteCloser

	// Writer is also an io.ByteWriter.
	// WriteByte writes 8 bits.
	io.ByteWriter

	// WriteBits writes out the n lowest bits of r, highest first.
	// Bits of r at position n and above are ignored.
	// n = 0 writes nothing; n > 64 fails with ErrBitCount.
	WriteBits(r uint64, n byte) (err error)

	// WriteBool writes one bit: 1 if param is true, 0 otherwise.
	WriteBool(b bool) (err error)

	// Align aligns the bit stream to a byte boundary: if bits are cached,
	// the pending byte is padded with low zero bits and written out, and
	// the underlying writer's own buffering is flushed.
	// Returns the number of padding (unset but still written) bits, 0..7.
	Align() (padding byte, err error)

	// Unwrap returns the sink the Writer was created with. It does not
	// flush: a pending partial byte is lost unless Align or Close was
	// called first.
	Unwrap() io.Writer
}

// An io.Writer and io.ByteWriter at the same time.
type writerAndByteWriter interface {
	io.Writer
	io.ByteWriter
}

type flusher interface {
	Flush() error
}

// writer is the bit writer implementation.
type writer struct {
	out       writerAndByteWriter
	dst       io.Writer     // the writer passed to newWriter
	wrapperbw *bufio.Writer // wrapper bufio.Writer if dst does not implement io.ByteWriter
	pending   byte          // unwritten bits are stored here, highest first
	nbits     byte          // number of unwritten bits in pending
}

// NewWriter returns a new Writer using the specified io.Writer as the output (sink).
func NewWriter(out io.Writer) Writer {
	return newWriter(out)
}

func newWriter(out io.Writer) *writer {
	w := &writer{dst: out}
	var ok bool
	w.out, ok = out.(writerAndByteWriter)
	if !ok {
		w.wrapperbw = bufio.NewWriter(out)
		w.out = w.wrapperbw
	}
	return w
}

// Write implements io.Writer.
func (w *writer) Write(p []byte) (n int, err error) {
	// w.nbits will be the same after writing 8 bits, so we don't need to update that.
	if w.nbits == 0 {
		return w.out.Write(p)
	}

	for i, b := range p {
		if err = w.writeUnalignedByte(b); err != nil {
			return i, err
		}
	}

	return len(p), nil
}

func (w *writer) WriteBits(r uint64, n byte) (err error) {
	if n > 64 {
		return ErrBitCount
	}
	if n == 0 {
		return nil
	}
	if n < 64 {
		r &= 1<<n - 1
	}

	// Some optimization, frequent cases
	newbits := w.nbits + n
	if newbits < 8 {
		// r fits into pending, no write will occur to out
		w.pending |= byte(r) << (8 - newbits)
		w.nbits = newbits
		return nil
	}

	if newbits > 8 {
		// pending will be filled, and there will be more bits to write
		// "Fill pending" and write it out
		free := 8 - w.nbits
		err = w.out.WriteByte(w.pending | byte(r>>(n-free)))
		if err != nil {
			return
		}
		n -= free
		// write out whole bytes
		for n >= 8 {
			n -= 8
			// No need to mask r, converting to byte will mask out higher bits
			err = w.out.WriteByte(byte(r >> n))
			if err != nil {
				return
			}
		}
		// Put remaining into pending
		if n > 0 {
			// Note: n < 8 (in case of n=8, 1<<n would overflow byte)
			w.pending, w.nbits = (byte(r)&(1<<n-1))<<(8-n), n
		} else {
			w.pending, w.nbits = 0, 0
		}
		return nil
	}

	// pending will be filled exactly with the bits to be written
	bb := w.pending | byte(r)
	w.pending, w.nbits = 0, 0
	return w.out.WriteByte(bb)
}

// WriteByte implements io.ByteWriter.
func (w *writer) WriteByte(b byte) (err error) {
	// w.nbits will be the same after writing 8 bits, so we don't need to update that.
	if w.nbits == 0 {
		return w.out.WriteByte(b)
	}
	return w.writeUnalignedByte(b)
}

// writeUnalignedByte writes 8 bits which are (may be) unaligned.
func (w *writer) writeUnalignedByte(b byte) (err error) {
	// w.nbits will be the same after writing 8 bits, so we don't need to update that.
	nbits := w.nbits
	err = w.out.WriteByte(w.pending | b>>nbits)
	if err != nil {
		return
	}
	w.pending = (b & (1<<nbits - 1)) << (8 - nbits)
	return
}

func (w *writer) WriteBool(b bool) (err error) {
	if w.nbits == 7 {
		if b {
			err = w.out.WriteByte(w.pending | 1)
		} else {
			err = w.out.WriteByte(w.pending)
		}
		if err != nil {
			return
		}
		w.pending, w.nbits = 0, 0
		return nil
	}

	w.nbits++
	if b {
		w.pending |= 1 << (8 - w.nbits)
	}
	return nil
}

func (w *writer) Align() (padding byte, err error) {
	if w.nbits > 0 {
		if err = w.out.WriteByte(w.pending); err != nil {
			return
		}

		padding = 8 - w.nbits
		w.pending, w.nbits = 0, 0
	}
	err = w.flush()
	return
}

// flush pushes down the bufio wrapper, if any, and then whatever buffering
// the sink itself exposes.
func (w *writer) flush() error {
	if w.wrapperbw != nil {
		if err := w.wrapperbw.Flush(); err != nil {
			return err
		}
	}
	if f, ok := w.dst.(flusher); ok {
		return f.Flush()
	}
	return nil
}

func (w *writer) Unwrap() io.Writer {
	return w.dst
}

// Close implements io.Closer.
func (w *writer) Close() (err error) {
	// Make sure cached bits are flushed:
	if _, err = w.Align(); err != nil {
		return
	}

	return nil
}
