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

package stream

// Capability is a bitmask of the abilities a Stream advertises. Capability
// bits are computed once at construction and never change afterward: an
// operation must succeed at least once if and only if its bit is set.
type Capability uint32

const (
	CapRead Capability = 1 << iota
	CapWrite
	CapSeekAbs
	CapSeekRel
	CapSeekEnd
	CapTell
	CapSize
	CapMmapNative
	CapMmapEmulated
	CapTruncate
	CapFlush
	CapCompressed
)

func (c Capability) Has(bit Capability) bool {
	return c&bit == bit
}

func (c Capability) String() string {
	names := []struct {
		bit  Capability
		name string
	}{
		{CapRead, "read"},
		{CapWrite, "write"},
		{CapSeekAbs, "seek-abs"},
		{CapSeekRel, "seek-rel"},
		{CapSeekEnd, "seek-end"},
		{CapTell, "tell"},
		{CapSize, "size"},
		{CapMmapNative, "mmap-native"},
		{CapMmapEmulated, "mmap-emulated"},
		{CapTruncate, "truncate"},
		{CapFlush, "flush"},
		{CapCompressed, "compressed"},
	}

	out := ""
	for _, n := range names {
		if c.Has(n.bit) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	if out == "" {
		return "none"
	}
	return out
}

// Intersect returns the capabilities common to both masks — the rule
// composite streams use: a wrapper's capabilities are never richer than
// what both the adapter and the wrapped stream can provide.
func Intersect(a, b Capability) Capability {
	return a & b
}

// Mode is the open-mode bitmap passed to backend constructors.
type Mode uint8

const (
	ModeRead Mode = 1 << iota
	ModeWrite
	ModeCreate
	ModeTruncate
)

func (m Mode) Has(bit Mode) bool {
	return m&bit == bit
}

// Prot is the protection requested for an mmap'd region.
type Prot uint8

const (
	ProtRead Prot = 1 << iota
	ProtWrite
)

// Whence mirrors io.Seek* but is kept as a named type so backend code reads
// self-documenting call sites (stream.SeekStart instead of a bare 0).
type Whence int

const (
	SeekStart   = Whence(0)
	SeekCurrent = Whence(1)
	SeekEnd     = Whence(2)
)
