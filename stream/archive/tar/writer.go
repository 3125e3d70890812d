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

	liberr "github.com/vampirefrog/streamio/errors"
	libarc "github.com/vampirefrog/streamio/stream/archive"
)

// Writer appends entries to a tar stream. PAX headers are emitted
// automatically by the standard library's writer whenever a field (long
// name, large size, etc.) does not fit the USTAR format, which is why a
// single Algorithm value for the whole archive does not apply on write.
type Writer struct {
	tw     *tar.Writer
	closer io.Closer
}

func NewWriter(dst io.Writer) *Writer {
	closer, _ := dst.(io.Closer)
	return &Writer{tw: tar.NewWriter(dst), closer: closer}
}

// WriteEntry writes one header and its content, reading exactly e.Size
// bytes from content unless e.Kind is KindDir or KindSymlink.
func (w *Writer) WriteEntry(e libarc.Entry, content io.Reader) error {
	hdr := &tar.Header{
		Name:     e.Name,
		Size:     e.Size,
		Mode:     int64(e.Mode.Perm()),
		ModTime:  e.ModTime,
		Linkname: e.LinkName,
		Typeflag: typeflag(e.Kind),
	}
	if e.Kind == libarc.KindDir || e.Kind == libarc.KindSymlink {
		hdr.Size = 0
	}

	if err := w.tw.WriteHeader(hdr); err != nil {
		return liberr.Wrap(liberr.ArchiveFormat, err, "tar write header")
	}
	if hdr.Size > 0 {
		if _, err := io.CopyN(w.tw, content, hdr.Size); err != nil {
			return liberr.Wrap(liberr.IO, err, "tar write content")
		}
	}
	return nil
}

// Close flushes the tar trailer and, if dst was an io.Closer, closes it.
func (w *Writer) Close() error {
	if err := w.tw.Close(); err != nil {
		return liberr.Wrap(liberr.ArchiveFormat, err, "tar close")
	}
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

func typeflag(k libarc.EntryKind) byte {
	switch k {
	case libarc.KindDir:
		return tar.TypeDir
	case libarc.KindSymlink:
		return tar.TypeSymlink
	default:
		return tar.TypeReg
	}
}
