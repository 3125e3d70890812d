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

// Package compress implements Stream adapters that transparently encode or
// decode one of several compression codecs over an underlying Stream, plus
// the magic-byte format detector used by the archive and walker packages.
package compress

import (
	"io"

	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
)

type direction uint8

const (
	decodeDir direction = iota
	encodeDir
)

// scratchSize is the fixed buffer size used internally by the mmap
// emulation's forward-materialization reads.
const scratchSize = 16 * 1024

// Stream adapts a single compression codec onto an underlying Stream. The
// direction (decode or encode) is fixed at construction; a Stream built as
// a decoder never supports Write, and vice versa, per the one-directional
// contract.
type Stream struct {
	libstm.Base

	inner libstm.Owned
	algo  Algorithm
	dir   direction

	rc io.ReadCloser
	wc io.WriteCloser

	pos int64

	mmapBuf     []byte
	mmapStart   int64
	mmapLive    bool
	nextMmapOff int64
}

// NewDecoder returns a Stream that decodes algo from inner as it is read.
func NewDecoder(inner libstm.Stream, algo Algorithm, owns bool) (*Stream, error) {
	rc, err := newDecoder(algo, eofReader{s: inner})
	if err != nil {
		return nil, err
	}
	return &Stream{
		Base:  libstm.NewBase(libstm.CapRead | libstm.CapTell | libstm.CapMmapEmulated | libstm.CapCompressed),
		inner: libstm.NewOwned(inner, owns),
		algo:  algo,
		dir:   decodeDir,
		rc:    rc,
	}, nil
}

// eofReader reports a Stream's (0, nil) end of stream as io.EOF, which the
// io.Reader-based codec libraries need in order to stop.
type eofReader struct{ s libstm.Stream }

func (r eofReader) Read(p []byte) (int, error) {
	n, err := r.s.Read(p)
	if n == 0 && err == nil && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}

// NewEncoder returns a Stream that encodes algo into inner as it is
// written.
func NewEncoder(inner libstm.Stream, algo Algorithm, owns bool) (*Stream, error) {
	wc, err := newEncoder(algo, inner)
	if err != nil {
		return nil, err
	}
	return &Stream{
		Base:  libstm.NewBase(libstm.CapWrite | libstm.CapTell | libstm.CapFlush | libstm.CapCompressed),
		inner: libstm.NewOwned(inner, owns),
		algo:  algo,
		dir:   encodeDir,
		wc:    wc,
	}, nil
}

// Algorithm reports the codec this Stream was constructed with.
func (s *Stream) Algorithm() Algorithm {
	return s.algo
}

func (s *Stream) Read(p []byte) (int, error) {
	if err := s.CheckRead(); err != nil {
		return 0, err
	}
	if s.dir != decodeDir {
		return 0, liberr.New(liberr.NotReadable, "stream is a one-directional encoder")
	}
	n, err := s.rc.Read(p)
	s.pos += int64(n)
	if err != nil && err != io.EOF {
		return n, liberr.Wrap(liberr.DecodeError, err, "decode")
	}
	return n, nil
}

func (s *Stream) Write(p []byte) (int, error) {
	if err := s.CheckWrite(); err != nil {
		return 0, err
	}
	if s.dir != encodeDir {
		return 0, liberr.New(liberr.NotWritable, "stream is a one-directional decoder")
	}
	n, err := s.wc.Write(p)
	s.pos += int64(n)
	if err != nil {
		return n, liberr.Wrap(liberr.EncodeError, err, "encode")
	}
	return n, nil
}

func (s *Stream) Seek(_ int64, _ libstm.Whence) (int64, error) {
	if err := s.CheckOpen(); err != nil {
		return 0, err
	}
	return 0, liberr.New(liberr.NotSeekable, "compression streams are forward-only")
}

func (s *Stream) Tell() (int64, error) {
	if err := s.CheckTell(); err != nil {
		return 0, err
	}
	return s.pos, nil
}

func (s *Stream) Size() (int64, error) {
	if err := s.CheckOpen(); err != nil {
		return 0, err
	}
	return 0, liberr.New(liberr.Unsupported, "size capability not set")
}

// Mmap emulates a memory mapping by materializing [start, start+length)
// forward from the decode pipeline into an owned buffer. Only one region
// is live at a time: a new call releases the previous one. start must not
// precede the current decode position (Unsupported otherwise) — the
// mapping is monotonic-forward, matching the stream's one-directional
// nature — and a window that runs past the end of the decoded data fails.
func (s *Stream) Mmap(start, length int64, _ libstm.Prot) ([]byte, error) {
	if err := s.CheckMmap(); err != nil {
		return nil, err
	}
	if s.dir != decodeDir {
		return nil, liberr.New(liberr.Unsupported, "mmap is only emulated over a decoder")
	}
	if length <= 0 {
		return nil, liberr.New(liberr.OutOfRange, "length must be positive")
	}
	if start < s.pos {
		return nil, liberr.New(liberr.Unsupported, "mmap window must not precede the current decode position")
	}
	s.mmapBuf = nil
	s.mmapLive = false

	// Skip forward to start, decoding into a scratch buffer and discarding
	// it — the decode pipeline has no rewind.
	if skip := start - s.pos; skip > 0 {
		scratch := make([]byte, scratchSize)
		for skip > 0 {
			chunk := scratch
			if int64(len(chunk)) > skip {
				chunk = chunk[:skip]
			}
			n, err := libstm.ReadFull(s, chunk)
			skip -= int64(n)
			if err != nil {
				return nil, liberr.Wrap(liberr.DecodeError, err, "skip to mmap window")
			}
		}
	}

	buf := make([]byte, length)
	if _, err := libstm.ReadFull(s, buf); err != nil {
		return nil, liberr.Wrap(liberr.DecodeError, err, "materialize mmap window")
	}

	s.mmapBuf = buf
	s.mmapStart = start
	s.mmapLive = true
	s.nextMmapOff = start + length
	return s.mmapBuf, nil
}

func (s *Stream) Munmap() error {
	if err := s.CheckOpen(); err != nil {
		return err
	}
	if !s.mmapLive {
		return liberr.New(liberr.InvalidArgument, "no mmap region is live")
	}
	s.mmapBuf = nil
	s.mmapLive = false
	return nil
}

func (s *Stream) Truncate(_ int64) error {
	if err := s.CheckOpen(); err != nil {
		return err
	}
	return liberr.New(liberr.Unsupported, "truncate capability not set")
}

// Flush flushes the underlying encoder if it exposes one (gzip.Writer
// does), then the wrapped Stream. It is a no-op capability-check failure
// on a decoder, since decode streams never advertise CapFlush.
func (s *Stream) Flush() error {
	if err := s.CheckFlush(); err != nil {
		return err
	}
	type flusher interface {
		Flush() error
	}
	if f, ok := s.wc.(flusher); ok {
		if err := f.Flush(); err != nil {
			return liberr.Wrap(liberr.EncodeError, err, "flush encoder")
		}
	}
	return s.inner.Inner.Flush()
}

func (s *Stream) Close() error {
	if !s.MarkClosed() {
		return nil
	}
	var cerr error
	if s.dir == decodeDir {
		cerr = s.rc.Close()
	} else {
		cerr = s.wc.Close()
	}
	if ierr := s.inner.CloseInner(); ierr != nil && cerr == nil {
		cerr = ierr
	}
	return cerr
}
