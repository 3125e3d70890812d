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

package walker

import (
	"time"

	libstm "github.com/vampirefrog/streamio/stream"
)

// Entry describes one node the walker yields: a real file or directory,
// or a virtual one materialized from inside an archive or behind a
// compression codec.
type Entry struct {
	// Path is slash-separated and relative to the walk root, regardless
	// of host OS. Virtual segments appended by archive expansion are
	// indistinguishable from real path segments.
	Path string

	IsDir   bool
	Size    int64
	ModTime time.Time

	// Depth counts how many archive/compression layers were unwrapped
	// to reach this entry; a plain file on disk has Depth 0.
	Depth int

	// Stream is nil for directory entries. It is valid only for the
	// duration of the callback: the walker closes it the moment the
	// callback returns, before producing the next Entry.
	Stream libstm.Stream
}
