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

import (
	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
)

// DetectOnly inspects h (a header buffer of any length) and returns the
// first matching Algorithm, or None if nothing matches. It does not touch
// any stream; callers that already have a header buffer in hand should use
// this directly.
func DetectOnly(h []byte) Algorithm {
	for _, a := range []Algorithm{Gzip, Bzip2, XZ, Zstd} {
		if a.DetectHeader(h) {
			return a
		}
	}
	return None
}

// Detect peeks magicHeaderLen bytes from s and restores the original
// position before returning, regardless of outcome. It requires
// CapSeekAbs and CapSeekRel; other streams fail with NotSeekable, the documented
// fallback being BufferPrefix.
func Detect(s libstm.Stream) (Algorithm, error) {
	if !s.Capabilities().Has(libstm.CapSeekAbs) || !s.Capabilities().Has(libstm.CapSeekRel) {
		return None, liberr.New(liberr.NotSeekable, "stream must be seekable to detect in place")
	}

	start, err := s.Tell()
	if err != nil {
		return None, err
	}

	h := make([]byte, magicHeaderLen)
	n, rerr := libstm.ReadFull(s, h)

	if _, serr := s.Seek(start, libstm.SeekStart); serr != nil {
		return None, serr
	}

	if rerr != nil && n == 0 {
		return None, nil
	}

	return DetectOnly(h[:n]), nil
}

// BufferPrefix reads up to magicHeaderLen bytes from a non-seekable
// source, detects the algorithm from them, and returns a memory-backed
// stream that replays those bytes ahead of whatever remains unread on
// src. This is the documented fallback for concatenating the peeked
// prefix back in front of a stream that cannot seek.
func BufferPrefix(src libstm.Stream, owns bool) (Algorithm, libstm.Stream, error) {
	h := make([]byte, magicHeaderLen)
	n, err := libstm.ReadFull(src, h)
	if err != nil && n == 0 {
		return None, nil, err
	}
	h = h[:n]

	algo := DetectOnly(h)
	return algo, newPrefixStream(h, src, owns), nil
}
