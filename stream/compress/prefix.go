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
	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
)

// prefixStream concatenates an already-consumed header buffer in front of
// whatever remains unread on an underlying non-seekable stream. It is the
// read-only, non-seekable fallback used when magic detection must peek a
// source that cannot Seek.
type prefixStream struct {
	libstm.Base

	prefix []byte
	off    int
	inner  libstm.Owned
}

func newPrefixStream(prefix []byte, src libstm.Stream, owns bool) *prefixStream {
	return &prefixStream{
		Base:   libstm.NewBase(libstm.CapRead),
		prefix: prefix,
		inner:  libstm.NewOwned(src, owns),
	}
}

func (p *prefixStream) Read(buf []byte) (int, error) {
	if err := p.CheckRead(); err != nil {
		return 0, err
	}
	if p.off < len(p.prefix) {
		n := copy(buf, p.prefix[p.off:])
		p.off += n
		return n, nil
	}
	return p.inner.Inner.Read(buf)
}

func (p *prefixStream) Write(_ []byte) (int, error) {
	return 0, liberr.New(liberr.NotWritable, "prefix stream is read-only")
}

func (p *prefixStream) Seek(_ int64, _ libstm.Whence) (int64, error) {
	return 0, liberr.New(liberr.NotSeekable, "prefix stream wraps a non-seekable source")
}

func (p *prefixStream) Tell() (int64, error) {
	return 0, liberr.New(liberr.Unsupported, "tell capability not set")
}

func (p *prefixStream) Size() (int64, error) {
	return 0, liberr.New(liberr.Unsupported, "size capability not set")
}

func (p *prefixStream) Mmap(_, _ int64, _ libstm.Prot) ([]byte, error) {
	return nil, liberr.New(liberr.Unsupported, "mmap capability not set")
}

func (p *prefixStream) Munmap() error {
	return liberr.New(liberr.Unsupported, "mmap capability not set")
}

func (p *prefixStream) Truncate(_ int64) error {
	return liberr.New(liberr.Unsupported, "truncate capability not set")
}

func (p *prefixStream) Flush() error {
	return liberr.New(liberr.Unsupported, "flush capability not set")
}

func (p *prefixStream) Close() error {
	if !p.MarkClosed() {
		return nil
	}
	return p.inner.CloseInner()
}
