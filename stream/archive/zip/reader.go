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

package zip

import (
	"archive/zip"
	"io"
	"io/fs"
	"sync"

	liberr "github.com/vampirefrog/streamio/errors"
	libarc "github.com/vampirefrog/streamio/stream/archive"
	libmem "github.com/vampirefrog/streamio/stream/memory"
	libstm "github.com/vampirefrog/streamio/stream"
)

// streamReaderAt adapts a seekable Stream to io.ReaderAt, which
// archive/zip requires for its central directory lookup. Calls are
// serialized since the underlying Stream has a single cursor shared
// between Seek and Read.
type streamReaderAt struct {
	mu sync.Mutex
	s  libstm.Stream
}

func (r *streamReaderAt) ReadAt(p []byte, off int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.s.Seek(off, libstm.SeekStart); err != nil {
		return 0, err
	}
	return libstm.ReadFull(r.s, p)
}

// Open returns a forward-only archive.Cursor over a zip stream. Because
// zip's central directory lives at the end of the file, src must either
// be seekable (CapSeekAbs) or get materialized here into a memory stream
// first — the caller-visible cost of supporting zip on a pipe-like
// source.
func Open(src libstm.Stream, size int64) (*libarc.Cursor, error) {
	var ra io.ReaderAt
	var closer io.Closer = src

	if src.Capabilities().Has(libstm.CapSeekAbs) {
		ra = &streamReaderAt{s: src}
	} else {
		mem := libmem.NewDynamic(nil)
		if _, err := libstm.CopyAll(mem, src); err != nil {
			return nil, liberr.Wrap(liberr.IO, err, "materialize zip source")
		}
		size = int64(len(mem.Bytes()))
		ra = &streamReaderAt{s: mem}
		closer = mem
	}

	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, liberr.Wrap(liberr.ArchiveFormat, err, "zip open")
	}

	return libarc.NewCursor(&reader{zr: zr, closer: closer}), nil
}

type reader struct {
	zr     *zip.Reader
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
		return libarc.Entry{}, liberr.Wrap(liberr.ArchiveFormat, err, "zip open entry")
	}
	r.cur = rc

	kind := libarc.KindFile
	if f.FileInfo().IsDir() {
		kind = libarc.KindDir
	}

	return libarc.Entry{
		Name:       f.Name,
		Kind:       kind,
		Size:       int64(f.UncompressedSize64),
		Mode:       f.Mode() & fs.ModePerm,
		ModTime:    f.Modified,
		Compressed: f.Method != zip.Store,
	}, nil
}

func (r *reader) Read(p []byte) (int, error) {
	if r.cur == nil {
		return 0, liberr.New(liberr.InvalidArgument, "no entry is current")
	}
	n, err := r.cur.Read(p)
	if err != nil && err != io.EOF {
		return n, liberr.Wrap(liberr.IO, err, "zip entry read")
	}
	return n, err
}

func (r *reader) Close() error {
	if r.cur != nil {
		_ = r.cur.Close()
	}
	return r.closer.Close()
}
