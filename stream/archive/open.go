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
	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
)

// Opener is implemented by each format subpackage's Open function, bound
// into the dispatch table below so callers never need to import tar/zip/
// sevenzip directly unless they want format-specific options.
type Opener func(src libstm.Stream, size int64) (*Cursor, error)

var openers = map[Algorithm]Opener{}

// Register binds an Opener for algo. Format subpackages are expected to
// be imported for side effect (or wired explicitly by main) to populate
// this table; it is never populated implicitly by this package to avoid
// forcing every archive codec into every binary that imports archive.
func Register(algo Algorithm, open Opener) {
	openers[algo] = open
}

// Open dispatches to the Opener registered for algo. Callers that already
// know which subpackage they want may call that subpackage's Open
// directly instead.
func Open(algo Algorithm, src libstm.Stream, size int64) (*Cursor, error) {
	open, ok := openers[algo]
	if !ok {
		return nil, liberr.New(liberr.Unsupported, "no reader registered for "+algo.String())
	}
	return open(src, size)
}
