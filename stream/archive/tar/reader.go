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

package tar

import (
	"archive/tar"
	"io"
	"io/fs"

	liberr "github.com/vampirefrog/streamio/errors"
	libarc "github.com/vampirefrog/streamio/stream/archive"
	libstm "github.com/vampirefrog/streamio/stream"
)

// reader adapts the standard library's *tar.Reader to archive.Reader.
type reader struct {
	tr     *tar.Reader
	closer io.Closer
}

// Open wraps src as a forward-only archive.Reader. size is accepted only
// to satisfy the archive.Opener signature shared with the random-access
// formats; tar needs no foreknowledge of length.
func Open(src libstm.Stream, _ int64) (*libarc.Cursor, error) {
	return libarc.NewCursor(&reader{tr: tar.NewReader(src), closer: src}), nil
}

func (r *reader) Next() (libarc.Entry, error) {
	hdr, err := r.tr.Next()
	if err != nil {
		if err == io.EOF {
			return libarc.Entry{}, io.EOF
		}
		return libarc.Entry{}, liberr.Wrap(liberr.ArchiveFormat, err, "tar next header")
	}

	return libarc.Entry{
		Name:     hdr.Name,
		Kind:     entryKind(hdr.Typeflag),
		Size:     hdr.Size,
		Mode:     fs.FileMode(hdr.Mode),
		ModTime:  hdr.ModTime,
		LinkName: hdr.Linkname,
	}, nil
}

func (r *reader) Read(p []byte) (int, error) {
	n, err := r.tr.Read(p)
	if err != nil && err != io.EOF {
		return n, liberr.Wrap(liberr.IO, err, "tar entry read")
	}
	return n, err
}

func (r *reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

func entryKind(flag byte) libarc.EntryKind {
	switch flag {
	case tar.TypeDir:
		return libarc.KindDir
	case tar.TypeSymlink, tar.TypeLink:
		return libarc.KindSymlink
	case tar.TypeReg, tar.TypeRegA:
		return libarc.KindFile
	default:
		return libarc.KindOther
	}
}
