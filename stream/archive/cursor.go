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

// Cursor wraps a Reader with a generation counter that enforces, at
// runtime, the constraint Go's type system cannot express statically: an
// EntryStream borrowed from the current entry dies the instant Next is
// called again. Every format's Open function returns a *Cursor rather
// than a bare Reader.
type Cursor struct {
	r    Reader
	gen  int
	live Entry
}

// NewCursor wraps r in generation tracking. Format packages call this
// from their Open function.
func NewCursor(r Reader) *Cursor {
	return &Cursor{r: r}
}

// Next advances the cursor, invalidating any EntryStream borrowed from the
// previous position, and returns the new entry.
func (c *Cursor) Next() (Entry, error) {
	c.gen++
	e, err := c.r.Next()
	c.live = e
	return e, err
}

// Entry returns the entry the cursor currently sits on.
func (c *Cursor) Entry() Entry {
	return c.live
}

// EntryStream returns a read-only Stream view over the content of the
// entry the cursor currently sits on. The returned Stream is only valid
// until the next call to Next or Close on the cursor; Read and Size after
// that return errors.InvalidArgument.
func (c *Cursor) EntryStream() libstm.Stream {
	return &entryStream{
		Base:   libstm.NewBase(libstm.CapRead | libstm.CapSize),
		cursor: c,
		gen:    c.gen,
	}
}

// Close releases the underlying Reader and invalidates any outstanding
// EntryStream.
func (c *Cursor) Close() error {
	c.gen++
	return c.r.Close()
}

type entryStream struct {
	libstm.Base
	cursor *Cursor
	gen    int
}

func (s *entryStream) checkLive() error {
	if err := s.CheckRead(); err != nil {
		return err
	}
	if s.gen != s.cursor.gen {
		return liberr.New(liberr.InvalidArgument, "entry stream is no longer live: cursor has advanced")
	}
	return nil
}

func (s *entryStream) Read(p []byte) (int, error) {
	if err := s.checkLive(); err != nil {
		return 0, err
	}
	n, err := s.cursor.r.Read(p)
	if err != nil {
		return n, err
	}
	return n, nil
}

func (s *entryStream) Write(_ []byte) (int, error) {
	return 0, liberr.New(liberr.NotWritable, "archive entry streams are read-only")
}

func (s *entryStream) Seek(_ int64, _ libstm.Whence) (int64, error) {
	return 0, liberr.New(liberr.NotSeekable, "archive entry streams are forward-only")
}

func (s *entryStream) Tell() (int64, error) {
	return 0, liberr.New(liberr.Unsupported, "tell capability not set")
}

func (s *entryStream) Size() (int64, error) {
	if err := s.CheckSize(); err != nil {
		return 0, err
	}
	if s.gen != s.cursor.gen {
		return 0, liberr.New(liberr.InvalidArgument, "entry stream is no longer live: cursor has advanced")
	}
	return s.cursor.live.Size, nil
}

func (s *entryStream) Mmap(_, _ int64, _ libstm.Prot) ([]byte, error) {
	return nil, liberr.New(liberr.Unsupported, "mmap capability not set")
}

func (s *entryStream) Munmap() error {
	return liberr.New(liberr.Unsupported, "mmap capability not set")
}

func (s *entryStream) Truncate(_ int64) error {
	return liberr.New(liberr.Unsupported, "truncate capability not set")
}

func (s *entryStream) Flush() error {
	return liberr.New(liberr.Unsupported, "flush capability not set")
}

// Close on an entry stream is a no-op: the cursor, not the caller, owns
// the lifetime of the entry content.
func (s *entryStream) Close() error {
	s.MarkClosed()
	return nil
}
