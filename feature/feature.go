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

// Package feature exposes a process-wide, immutable bitmap of which
// codecs and archive formats this build actually supports — compiled in
// once, queried everywhere, never mutated after init. Callers use it to
// fail fast with a clear Unsupported error before attempting an operation
// this build cannot perform, rather than discovering it deep inside a
// codec call.
package feature

// Bit identifies one optional capability of this build.
type Bit uint32

const (
	CompressGzip Bit = 1 << iota
	CompressBzip2
	CompressXZ
	CompressZstd
	CompressLZ4

	ArchiveTarUSTAR
	ArchiveTarPAX
	ArchiveZip
	ArchiveSevenZip
	ArchiveCpio
	ArchiveShar
	ArchiveISO9660

	MmapNative
)

// supported is fixed at package init and never written again.
var supported = CompressGzip | CompressBzip2 | CompressXZ | CompressZstd | CompressLZ4 |
	ArchiveTarUSTAR | ArchiveTarPAX | ArchiveZip | ArchiveSevenZip | mmapNativeBit()

// Supports reports whether this build includes bit. The cpio, shar and
// iso9660 archive formats are never set here: this module has neither a
// reader nor a writer for them — see stream/archive's
// Algorithm.WriterSupported and
// DESIGN.md for why those three were left unimplemented.
func Supports(bit Bit) bool {
	return supported&bit != 0
}

// List returns every bit this build supports, for diagnostics.
func List() []Bit {
	all := []Bit{
		CompressGzip, CompressBzip2, CompressXZ, CompressZstd, CompressLZ4,
		ArchiveTarUSTAR, ArchiveTarPAX, ArchiveZip, ArchiveSevenZip,
		ArchiveCpio, ArchiveShar, ArchiveISO9660, MmapNative,
	}
	var out []Bit
	for _, b := range all {
		if Supports(b) {
			out = append(out, b)
		}
	}
	return out
}

func (b Bit) String() string {
	switch b {
	case CompressGzip:
		return "compress:gzip"
	case CompressBzip2:
		return "compress:bzip2"
	case CompressXZ:
		return "compress:xz"
	case CompressZstd:
		return "compress:zstd"
	case CompressLZ4:
		return "compress:lz4"
	case ArchiveTarUSTAR:
		return "archive:tar-ustar"
	case ArchiveTarPAX:
		return "archive:tar-pax"
	case ArchiveZip:
		return "archive:zip"
	case ArchiveSevenZip:
		return "archive:7z"
	case ArchiveCpio:
		return "archive:cpio"
	case ArchiveShar:
		return "archive:shar"
	case ArchiveISO9660:
		return "archive:iso9660"
	case MmapNative:
		return "mmap:native"
	default:
		return "unknown"
	}
}
