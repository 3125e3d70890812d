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

package compress

import "bytes"

// Algorithm identifies a compression codec.
type Algorithm uint8

const (
	None Algorithm = iota
	Gzip
	Bzip2
	XZ
	Zstd
	LZ4
)

func List() []Algorithm {
	return []Algorithm{None, Gzip, Bzip2, XZ, Zstd, LZ4}
}

func ListString() []string {
	lst := List()
	res := make([]string, len(lst))
	for i := range lst {
		res[i] = lst[i].String()
	}
	return res
}

func (a Algorithm) IsNone() bool {
	return a == None
}

func (a Algorithm) String() string {
	switch a {
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	case XZ:
		return "xz"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "none"
	}
}

func (a Algorithm) Extension() string {
	switch a {
	case Gzip:
		return ".gz"
	case Bzip2:
		return ".bz2"
	case XZ:
		return ".xz"
	case Zstd:
		return ".zst"
	case LZ4:
		return ".lz4"
	default:
		return ""
	}
}

// Parse returns the Algorithm matching s (case-sensitive, teacher
// convention), or None if no algorithm matches.
func Parse(s string) Algorithm {
	for _, a := range List() {
		if a.String() == s {
			return a
		}
	}
	return None
}

// magicHeaderLen is the number of leading bytes the detector inspects —
// long enough to hold the longest fixed magic (xz, six bytes).
const magicHeaderLen = 6

// DetectHeader reports whether h (at least magicHeaderLen bytes) carries
// this algorithm's magic prefix. Magic bytes are bit-exact per spec and
// are never inferred from a filename extension.
func (a Algorithm) DetectHeader(h []byte) bool {
	if len(h) < magicHeaderLen {
		return false
	}
	switch a {
	case Gzip:
		return bytes.Equal(h[0:2], []byte{0x1f, 0x8b})
	case Bzip2:
		return bytes.Equal(h[0:3], []byte{0x42, 0x5a, 0x68})
	case XZ:
		return bytes.Equal(h[0:6], []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00})
	case Zstd:
		return bytes.Equal(h[0:4], []byte{0x28, 0xb5, 0x2f, 0xfd})
	default:
		return false
	}
}
