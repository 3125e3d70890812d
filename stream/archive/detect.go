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

package archive

import (
	"bytes"

	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
)

// ustarMarker is the magic recognizing both tar variants; PAX archives are
// still USTAR-framed at the block level, so the two are disambiguated by
// the pax_global_header / pax extended-header entries, not by this marker.
var ustarMarker = []byte("ustar")

// DetectOnly inspects h (ideally magicHeaderLen bytes) and returns the
// first matching Algorithm, or None.
func DetectOnly(h []byte) Algorithm {
	if len(h) >= 262 && bytes.Equal(h[257:262], ustarMarker) {
		return TarUSTAR
	}
	for _, a := range []Algorithm{Zip, SevenZip, Cpio} {
		if a.DetectHeader(h) {
			return a
		}
	}
	return None
}

// Detect peeks magicHeaderLen bytes from s and restores the original
// position before returning. It requires CapSeekAbs and CapSeekRel; other sources
// must be probed via a caller-supplied buffered prefix instead.
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
