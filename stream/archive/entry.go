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
	"io/fs"
	"time"
)

// EntryKind classifies an archive entry without relying on the host OS's
// fs.FileMode bits, since not every archive format can express them.
type EntryKind uint8

const (
	KindFile EntryKind = iota
	KindDir
	KindSymlink
	KindOther
)

// Entry describes one archive member as yielded by a Reader's cursor. Name
// is always slash-separated and relative to the archive root, regardless
// of host OS, matching the teacher's archive entry convention.
type Entry struct {
	Name     string
	Kind     EntryKind
	Size     int64
	Mode     fs.FileMode
	ModTime  time.Time
	LinkName string // target of a KindSymlink entry

	// Compressed reports whether the entry's content is stored with a
	// per-entry compression method the Reader already undoes before Read
	// returns bytes (zip's Deflate, for instance). Tar entries are never
	// individually compressed — the whole archive is, if at all, wrapped
	// by a separate codec layer outside this package.
	Compressed bool
}

// Reader is the forward-only cursor every archive format binds. Next
// advances the cursor to the following entry; Read reads the content of
// the entry the cursor currently sits on. A Reader returned by a format's
// Open function does not support any access pattern besides this
// sequential one — see the per-subpackage Open docs for capability notes.
type Reader interface {
	// Next advances to the next entry and returns it, or io.EOF when no
	// entries remain. Any stream returned by a prior Cursor.EntryStream call
	// becomes invalid the moment Next is called again.
	Next() (Entry, error)

	// Read reads from the content of the entry the cursor currently sits
	// on, as though the Reader itself were that entry's stream.
	Read(p []byte) (int, error)

	Close() error
}
