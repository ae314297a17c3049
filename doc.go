/*

Package bitrw layers bit-granularity reading and writing on top of ordinary
byte-oriented streams.

Writer accumulates individual bits and writes completed bytes to an
io.Writer; Reader pulls bytes from an io.Reader one at a time and serves
bit-sized requests from them. Use Writer.WriteBits() to pack the lowest n
bits of a uint64 and Reader.ReadBits() to unpack them again. Single bits
travel as bool values through Writer.WriteBool() and Reader.ReadBool(),
which have dedicated fast paths.

Both types also expose the plain byte-level view (io.Reader / io.Writer /
io.ByteReader / io.ByteWriter), so byte slices can be moved through the same
stream. Byte-level calls are cheapest when the stream is aligned to a byte
boundary, which can be forced with the Align() methods. Writer.Align() pads
the pending partial byte with zero bits, writes it out and reports how many
padding bits were added; a Writer must be aligned or closed before its
output is complete.

CountWriter and CountReader additionally track the absolute bit position,
and SeekReader supports repositioning a seekable source at bit granularity.

Bit order

Bits are packed highest-first: the first bit written becomes bit 7 of the
output byte, the next bit 6, and so on. A multi-bit value is emitted from
its highest requested bit down to bit 0. So if the input provides the bytes
0x8f and 0x55:

	HEXA    8    f     5    5
	BINARY  1000 1111  0101 0101
	        aaaa bbbc  ccdd dddd

Then ReadBits returns the following values:

	r := bitrw.NewReader(bytes.NewReader([]byte{0x8f, 0x55}))
	a, err := r.ReadBits(4) //   1000 = 0x08
	b, err := r.ReadBits(3) //    111 = 0x07
	c, err := r.ReadBits(3) //    101 = 0x05
	d, err := r.ReadBits(6) // 010101 = 0x15

Writing the same values reproduces the same two bytes:

	buf := &bytes.Buffer{}
	w := bitrw.NewWriter(buf)
	err := w.WriteBits(0x08, 4)
	err = w.WriteBits(0x07, 3)
	err = w.WriteBits(0x05, 3)
	err = w.WriteBits(0x15, 6)
	err = w.Close()
	// buf now holds 0x8f, 0x55

*/
package bitrw
