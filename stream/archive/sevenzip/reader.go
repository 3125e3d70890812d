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

// Package sevenzip binds the archive.Reader contract to
// github.com/bodgit/sevenzip. There is no writer: 7z is read-only in this
// module, matching the upstream library, which itself only reads.
package sevenzip

import (
	"io"
	"io/fs"

	"github.com/bodgit/sevenzip"

	liberr "github.com/vampirefrog/streamio/errors"
	libarc "github.com/vampirefrog/streamio/stream/archive"
	libstm "github.com/vampirefrog/streamio/stream"
)

// Open requires a seekable, sized source since 7z (like zip) keeps its
// directory structure at the end of the file.
func Open(src libstm.Stream, size int64) (*libarc.Cursor, error) {
	if !src.Capabilities().Has(libstm.CapSeekAbs) {
		return nil, liberr.New(liberr.NotSeekable, "7z requires random access to its source")
	}

	zr, err := sevenzip.NewReader(&readerAtAdapter{s: src}, size)
	if err != nil {
		return nil, liberr.Wrap(liberr.ArchiveFormat, err, "7z open")
	}

	return libarc.NewCursor(&reader{zr: zr, closer: src}), nil
}

type readerAtAdapter struct {
	s libstm.Stream
}

func (r *readerAtAdapter) ReadAt(p []byte, off int64) (int, error) {
	if _, err := r.s.Seek(off, libstm.SeekStart); err != nil {
		return 0, err
	}
	return libstm.ReadFull(r.s, p)
}

type reader struct {
	zr     *sevenzip.ReadCloser
	closer io.Closer
	idx    int
	cur    io.ReadCloser
}

func (r *reader) Next() (libarc.Entry, error) {
	if r.cur != nil {
		_ = r.cur.Close()
		r.cur = nil
	}
	if r.idx >= len(r.zr.File) {
		return libarc.Entry{}, io.EOF
	}
	f := r.zr.File[r.idx]
	r.idx++

	rc, err := f.Open()
	if err != nil {
		return libarc.Entry{}, liberr.Wrap(liberr.ArchiveFormat, err, "7z open entry")
	}
	r.cur = rc

	kind := libarc.KindFile
	if f.FileInfo().IsDir() {
		kind = libarc.KindDir
	}

	return libarc.Entry{
		Name:    f.Name,
		Kind:    kind,
		Size:    int64(f.UncompressedSize),
		Mode:    f.Mode() & fs.ModePerm,
		ModTime: f.Modified,
	}, nil
}

func (r *reader) Read(p []byte) (int, error) {
	if r.cur == nil {
		return 0, liberr.New(liberr.InvalidArgument, "no entry is current")
	}
	n, err := r.cur.Read(p)
	if err != nil && err != io.EOF {
		return n, liberr.Wrap(liberr.IO, err, "7z entry read")
	}
	return n, err
}

func (r *reader) Close() error {
	if r.cur != nil {
		_ = r.cur.Close()
	}
	_ = r.zr.Close()
	return r.closer.Close()
}
