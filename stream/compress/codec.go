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
	"compress/gzip"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"

	liberr "github.com/vampirefrog/streamio/errors"
)

// newDecoder binds an algorithm to the ecosystem reader that decodes it.
// Each codec is wired from the library the corpus reaches for rather than
// a hand-rolled equivalent.
func newDecoder(a Algorithm, r io.Reader) (io.ReadCloser, error) {
	switch a {
	case Gzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, liberr.Wrap(liberr.DecodeError, err, "gzip reader")
		}
		return gr, nil
	case Bzip2:
		br, err := bzip2.NewReader(r, nil)
		if err != nil {
			return nil, liberr.Wrap(liberr.DecodeError, err, "bzip2 reader")
		}
		return br, nil
	case XZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, liberr.Wrap(liberr.DecodeError, err, "xz reader")
		}
		return io.NopCloser(xr), nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, liberr.Wrap(liberr.DecodeError, err, "zstd reader")
		}
		return zr.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, liberr.New(liberr.Unsupported, "no decoder for algorithm "+a.String())
	}
}

// newEncoder binds an algorithm to the ecosystem writer that encodes it.
func newEncoder(a Algorithm, w io.Writer) (io.WriteCloser, error) {
	switch a {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Bzip2:
		bw, err := bzip2.NewWriter(w, nil)
		if err != nil {
			return nil, liberr.Wrap(liberr.EncodeError, err, "bzip2 writer")
		}
		return bw, nil
	case XZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, liberr.Wrap(liberr.EncodeError, err, "xz writer")
		}
		return xw, nil
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, liberr.Wrap(liberr.EncodeError, err, "zstd writer")
		}
		return zw, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, liberr.New(liberr.Unsupported, "no encoder for algorithm "+a.String())
	}
}
