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
	libstm "github.com/vampirefrog/streamio/stream"
)

// NewAuto detects the compression algorithm on src and, if one is found,
// returns a decoder Stream for it. src must be seekable; use
// NewAutoOrPassthrough for non-seekable sources.
func NewAuto(src libstm.Stream, owns bool) (*Stream, Algorithm, error) {
	algo, err := Detect(src)
	if err != nil {
		return nil, None, err
	}
	if algo.IsNone() {
		return nil, None, nil
	}
	dec, err := NewDecoder(src, algo, owns)
	return dec, algo, err
}

// NewAutoOrPassthrough detects the compression algorithm on src, which
// need not be seekable: the bytes consumed for detection are replayed
// ahead of the rest of src via BufferPrefix. If no algorithm matches, the
// returned Stream is the passthrough (prefix-replaying) wrapper itself,
// not a decoder, so callers always read the original logical content
// regardless of whether compression was present.
func NewAutoOrPassthrough(src libstm.Stream, owns bool) (libstm.Stream, Algorithm, error) {
	algo, wrapped, err := BufferPrefix(src, owns)
	if err != nil {
		return nil, None, err
	}
	if algo.IsNone() {
		return wrapped, None, nil
	}
	dec, err := NewDecoder(wrapped, algo, true)
	if err != nil {
		return nil, None, err
	}
	return dec, algo, nil
}
