// ./ephemeris/header.go
package ephemeris

/*
Package ephemeris provides the DE file header parser.

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
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// File structure:
//
//	Bytes 0-251:     three 84-byte title lines ("JPL Planetary Ephemeris DExxx/LExxx", start and final epoch).
//	Bytes 252-2651:  names of constants 0-399, 6 bytes each.
//	Bytes 2652-2675: start JED, end JED and step in days (float64).
//	Bytes 2676-2679: ncon, number of constants (uint32).
//	Bytes 2680-2695: AU in km and the Earth/Moon mass ratio (float64).
//	Bytes 2696-2855: 40 uint32: ipt[0..11], the DE number, lpt[0..2] (librations).
//	Bytes 2856-:     names of constants 400 and up, then ipt[13] and ipt[14] (DE430t and later).
//
// Constant values start at byte recsize; data records start at 2*recsize.
const (
	titleLen        = 84
	constNamesStart = 3 * titleLen
	constNameLen    = 6
	headerStart     = constNamesStart + 400*constNameLen // 2652
	headerSize      = 5*8 + 41*4                         // five doubles, ncon and 40 table words
	extraNamesStart = headerStart + headerSize           // 2856
	maxCheby        = 18
)

// Indices into the interpolation pointer table.
const (
	iptEMB        = 2
	iptMoon       = 9
	iptSun        = 10
	iptNutations  = 11
	iptLibrations = 12
	iptMantle     = 13
	iptTTMinusTDB = 14
)

// header is the decoded fixed part of a DE file.
type header struct {
	name      string
	version   int
	start     float64
	end       float64
	step      float64
	ncon      int
	au        float64
	emrat     float64
	ipt       [15][3]uint32
	swapped   bool
	kernel    int // kernel size in 4-byte words
	recsize   int // record size in bytes
	ncoeff    int // doubles per record
	numdeSlot uint32
}

// dimension returns the number of components of a quantity by ipt index.
// Nutations have two (longitude and obliquity), TT-TDB one.
func dimension(idx int) int {
	switch idx {
	case iptNutations:
		return 2
	case iptTTMinusTDB:
		return 1
	default:
		return 3
	}
}

// readHeader parses the title, numeric header and interpolation table.
func readHeader(br *binaryReader) (*header, error) {
	title := make([]byte, titleLen)
	if err := br.readAt(title, 0); err != nil {
		return nil, fmt.Errorf("read title: %w", err)
	}
	raw := make([]byte, headerSize)
	if err := br.readAt(raw, headerStart); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var h header
	br.order, h.swapped = detectOrder(raw[24:28])
	h.start = br.float64At(raw[0:8])
	h.end = br.float64At(raw[8:16])
	h.step = br.float64At(raw[16:24])
	h.ncon = int(br.uint32At(raw[24:28]))
	h.au = br.float64At(raw[28:36])
	h.emrat = br.float64At(raw[36:44])
	for i := 0; i < 40; i++ {
		off := 44 + 4*i
		h.ipt[i/3][i%3] = br.uint32At(raw[off : off+4])
	}

	// The DE number sits in ipt[12][0]; the libration pointers follow it.
	h.numdeSlot = h.ipt[12][0]
	h.ipt[12][0] = h.ipt[12][1]
	h.ipt[12][1] = h.ipt[12][2]
	h.ipt[12][2] = h.ipt[13][0]
	h.ipt[13][0] = 0

	var err error
	h.name, h.version, err = parseTitle(title)
	if err != nil {
		if h.numdeSlot == 0 {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		h.version = int(h.numdeSlot)
		h.name = fmt.Sprintf("DE%d", h.version)
	}

	// TT-TDB and mantle rates exist from DE430t on, after any extra constant names.
	if h.version >= 430 && h.ncon != 400 {
		off := int64(extraNamesStart + max(0, h.ncon-400)*constNameLen)
		b := make([]byte, 6*4)
		if err := br.readAt(b, off); err != nil {
			return nil, fmt.Errorf("read ipt[13..14]: %w", err)
		}
		for i := 0; i < 6; i++ {
			h.ipt[13+i/3][i%3] = br.uint32At(b[4*i:])
		}
	}
	// Pointers that do not follow on from the librations are garbage.
	if h.ipt[13][0] != h.ipt[12][0]+h.ipt[12][1]*h.ipt[12][2]*3 ||
		h.ipt[14][0] != h.ipt[13][0]+h.ipt[13][1]*h.ipt[13][2]*3 {
		h.ipt[13] = [3]uint32{}
		h.ipt[14] = [3]uint32{}
	}

	if h.emrat > 81.3008 || h.emrat < 81.30055 {
		return nil, fmt.Errorf("%w: Earth-Moon ratio out of range: %f", ErrCorrupt, h.emrat)
	}
	if h.step <= 0 || h.end <= h.start || h.au <= 0 {
		return nil, fmt.Errorf("%w: span %f..%f step %f", ErrCorrupt, h.start, h.end, h.step)
	}

	h.kernel = 4
	for i := range h.ipt {
		if h.ipt[i][1] >= maxCheby {
			return nil, fmt.Errorf("%w: %d coefficients for quantity %d", ErrCorrupt, h.ipt[i][1], i)
		}
		h.kernel += 2 * int(h.ipt[i][1]*h.ipt[i][2]) * dimension(i)
	}
	h.recsize = h.kernel * 4
	h.ncoeff = h.kernel / 2
	for i := 0; i <= iptSun; i++ {
		if h.ipt[i][0] == 0 || h.ipt[i][1] == 0 || h.ipt[i][2] == 0 {
			return nil, fmt.Errorf("%w: no coefficients for body %d", ErrCorrupt, i)
		}
	}
	for i := range h.ipt {
		n := int(h.ipt[i][1] * h.ipt[i][2])
		if n > 0 && (h.ipt[i][0] == 0 || int(h.ipt[i][0])-1+n*dimension(i) > h.ncoeff) {
			return nil, fmt.Errorf("%w: quantity %d overruns record", ErrCorrupt, i)
		}
	}
	return &h, nil
}

// parseTitle extracts the ephemeris name and DE number. INPOP titles carry
// the number right after the prefix; JPL titles at column 26.
func parseTitle(title []byte) (string, int, error) {
	var field, nameField []byte
	if bytes.HasPrefix(title, []byte("INPOP")) {
		field, nameField = title[5:30], title[:30]
	} else {
		field, nameField = title[26:54], title[24:54]
	}

	digits := strings.TrimLeft(string(field), " ")
	i := 0
	for i < len(digits) && digits[i] >= '0' && digits[i] <= '9' {
		i++
	}
	version, err := strconv.Atoi(digits[:i])
	if err != nil {
		return "", 0, fmt.Errorf("parse version from %q: %w", strings.TrimSpace(string(title)), err)
	}

	if n := bytes.IndexByte(nameField, 0); n >= 0 {
		nameField = nameField[:n]
	}
	name := ""
	if parts := strings.Fields(string(nameField)); len(parts) > 0 {
		name, _, _ = strings.Cut(parts[0], "/")
	}
	return name, version, nil
}
