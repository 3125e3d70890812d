/*
 *  MIT License
 *
 *  Copyright (c) 2020 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

// Package archive defines the archive-format abstraction: the Algorithm
// enum, magic-byte detection, and the forward-only Reader/Entry cursor
// contract implemented by the tar, zip, and sevenzip subpackages.
package archive

import "bytes"

// Algorithm identifies an archive container format.
type Algorithm uint8

const (
	None Algorithm = iota
	TarUSTAR
	TarPAX
	Zip
	SevenZip
	Cpio
	Shar
	ISO9660
)

func List() []Algorithm {
	return []Algorithm{None, TarUSTAR, TarPAX, Zip, SevenZip, Cpio, Shar, ISO9660}
}

func (a Algorithm) String() string {
	switch a {
	case TarUSTAR:
		return "tar-ustar"
	case TarPAX:
		return "tar-pax"
	case Zip:
		return "zip"
	case SevenZip:
		return "7z"
	case Cpio:
		return "cpio"
	case Shar:
		return "shar"
	case ISO9660:
		return "iso9660"
	default:
		return "none"
	}
}

// IsTar reports whether a is one of the tar variants; both are read with
// the same cursor regardless of USTAR/PAX header style.
func (a Algorithm) IsTar() bool {
	return a == TarUSTAR || a == TarPAX
}

// WriterSupported reports whether this package ships a writer for a. 7z is
// read-only; cpio is only detected, and shar/iso9660 are neither detected
// nor read — none of these has a writer. See feature.Supports.
func (a Algorithm) WriterSupported() bool {
	switch a {
	case TarUSTAR, TarPAX, Zip:
		return true
	default:
		return false
	}
}

const magicHeaderLen = 262 // long enough to reach the tar "ustar" marker at offsets 257..261

// DetectHeader reports whether h carries this algorithm's magic prefix.
// Tar has no magic at offset 0 usable for short-header sniffing; it is
// recognized by the "ustar" marker at offset 257, which DetectOnly checks
// explicitly rather than through this per-algorithm predicate.
func (a Algorithm) DetectHeader(h []byte) bool {
	switch a {
	case Zip:
		return len(h) >= 4 && bytes.Equal(h[0:4], []byte{0x50, 0x4b, 0x03, 0x04})
	case SevenZip:
		return len(h) >= 6 && bytes.Equal(h[0:6], []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c})
	case Cpio:
		return len(h) >= 6 && (bytes.Equal(h[0:6], []byte("070701")) || bytes.Equal(h[0:6], []byte("070707")))
	default:
		return false
	}
}
