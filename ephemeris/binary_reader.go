// ./ephemeris/binary_reader.go
package ephemeris

/*
Package ephemeris provides byte-order aware reads from an ephemeris file.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.

Authorship:
Mohammad Shafiee authored this Go code as a translation of the original C code.
The C version was a translation of Fortran-77 code originally written by
Piotr A. Dybczynski and later revised by Bill J Gray.
*/

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// swapThreshold is the largest constant count a correctly ordered header can
// carry. A larger count means the file was written with the other byte order.
const swapThreshold = 65536

// binaryReader reads fixed-size values at absolute offsets. The byte order is
// detected once per file and kept on the reader, so handles with different
// orders can be open at the same time.
type binaryReader struct {
	r     io.ReaderAt
	order binary.ByteOrder
}

// detectOrder picks the byte order from the raw constant count field.
func detectOrder(raw []byte) (binary.ByteOrder, bool) {
	if binary.LittleEndian.Uint32(raw) > swapThreshold {
		return binary.BigEndian, true // swapped relative to the usual little-endian files
	}
	return binary.LittleEndian, false
}

// readAt fills b from offset off. A short read is an error.
func (br *binaryReader) readAt(b []byte, off int64) error {
	n, err := br.r.ReadAt(b, off)
	if n == len(b) {
		return nil
	}
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w at offset %d: %w", ErrFileRead, off, err)
}

// uint32At decodes a uint32 from b.
func (br *binaryReader) uint32At(b []byte) uint32 {
	return br.order.Uint32(b)
}

// float64At decodes a float64 from b.
func (br *binaryReader) float64At(b []byte) float64 {
	return math.Float64frombits(br.order.Uint64(b))
}

// float64s reads n doubles starting at off into dst, growing it when needed.
func (br *binaryReader) float64s(dst []float64, n int, off int64) ([]float64, error) {
	buf := make([]byte, 8*n)
	if err := br.readAt(buf, off); err != nil {
		return nil, err
	}
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = br.float64At(buf[8*i:])
	}
	return dst, nil
}
