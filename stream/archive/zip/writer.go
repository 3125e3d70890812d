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

	liberr "github.com/vampirefrog/streamio/errors"
	libarc "github.com/vampirefrog/streamio/stream/archive"
)

// Writer appends entries to a zip stream. Unlike tar, zip's own trailer
// format requires no foreknowledge of entry sizes, so WriteEntry simply
// streams content until content returns io.EOF.
type Writer struct {
	zw     *zip.Writer
	closer io.Closer
}

func NewWriter(dst io.Writer) *Writer {
	closer, _ := dst.(io.Closer)
	return &Writer{zw: zip.NewWriter(dst), closer: closer}
}

func (w *Writer) WriteEntry(e libarc.Entry, content io.Reader) error {
	if e.Kind == libarc.KindDir {
		_, err := w.zw.CreateHeader(&zip.FileHeader{
			Name:     e.Name + "/",
			Modified: e.ModTime,
		})
		if err != nil {
			return liberr.Wrap(liberr.ArchiveFormat, err, "zip write dir header")
		}
		return nil
	}

	hdr := &zip.FileHeader{
		Name:     e.Name,
		Modified: e.ModTime,
		Method:   zip.Deflate,
	}
	hdr.SetMode(e.Mode)

	fw, err := w.zw.CreateHeader(hdr)
	if err != nil {
		return liberr.Wrap(liberr.ArchiveFormat, err, "zip write header")
	}
	if _, err := io.Copy(fw, content); err != nil {
		return liberr.Wrap(liberr.IO, err, "zip write content")
	}
	return nil
}

func (w *Writer) Close() error {
	if err := w.zw.Close(); err != nil {
		return liberr.Wrap(liberr.ArchiveFormat, err, "zip close")
	}
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
