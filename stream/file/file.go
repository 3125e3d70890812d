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

// Package file implements the Stream interface over an OS file handle,
// with native mmap support on POSIX (golang.org/x/sys/unix). On Windows
// the mmap calls return errors.Unsupported.
package file

import (
	"errors"
	"io"
	"io/fs"
	"os"

	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
)

// Stream wraps a single OS file handle. It holds at most one live mmap
// region at a time; a new Mmap call implicitly releases any prior one.
type Stream struct {
	libstm.Base

	path string
	f    *os.File

	mmapData []byte // live region, nil when unmapped
	mmapOff  int64
}

// Open opens path under the given mode bitmap with the given permission
// bits (used only when ModeCreate is set). The mode bits translate the way
// spec.md describes: create|truncate -> create-always, create alone ->
// open-or-create, truncate alone -> truncate-existing, neither ->
// open-existing.
func Open(path string, mode libstm.Mode, perm fs.FileMode) (*Stream, error) {
	flag, err := osFlags(mode)
	if err != nil {
		return nil, err
	}

	f, oerr := os.OpenFile(path, flag, perm)
	if oerr != nil {
		return nil, translateOpenError(oerr)
	}

	caps := libstm.CapSeekAbs | libstm.CapSeekRel | libstm.CapSeekEnd |
		libstm.CapTell | libstm.CapSize | libstm.CapFlush | mmapCapability()
	if mode.Has(libstm.ModeRead) {
		caps |= libstm.CapRead
	}
	if mode.Has(libstm.ModeWrite) {
		caps |= libstm.CapWrite | libstm.CapTruncate
	}

	return &Stream{
		Base: libstm.NewBase(caps),
		path: path,
		f:    f,
	}, nil
}

func osFlags(mode libstm.Mode) (int, error) {
	var flag int
	switch {
	case mode.Has(libstm.ModeRead) && mode.Has(libstm.ModeWrite):
		flag = os.O_RDWR
	case mode.Has(libstm.ModeWrite):
		flag = os.O_WRONLY
	case mode.Has(libstm.ModeRead):
		flag = os.O_RDONLY
	default:
		return 0, liberr.New(liberr.InvalidArgument, "mode must include read and/or write")
	}

	switch {
	case mode.Has(libstm.ModeCreate) && mode.Has(libstm.ModeTruncate):
		flag |= os.O_CREATE | os.O_TRUNC
	case mode.Has(libstm.ModeCreate):
		flag |= os.O_CREATE
	case mode.Has(libstm.ModeTruncate):
		flag |= os.O_TRUNC
	}

	return flag, nil
}

// Path returns the path this Stream was opened with, for diagnostics.
func (s *Stream) Path() string {
	return s.path
}

// Stat exposes the underlying file's fs.FileInfo, sparing callers like the
// walker a second os.Stat call on a path they already opened.
func (s *Stream) Stat() (fs.FileInfo, error) {
	if err := s.CheckOpen(); err != nil {
		return nil, err
	}
	fi, err := s.f.Stat()
	if err != nil {
		return nil, liberr.Wrap(liberr.IO, err, "stat")
	}
	return fi, nil
}

func (s *Stream) Read(p []byte) (int, error) {
	if err := s.CheckRead(); err != nil {
		return 0, err
	}
	n, err := s.f.Read(p)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		return n, liberr.Wrap(liberr.IO, err, "read")
	}
	return n, nil
}

func (s *Stream) Write(p []byte) (int, error) {
	if err := s.CheckWrite(); err != nil {
		return 0, err
	}
	n, err := s.f.Write(p)
	if err != nil {
		return n, liberr.Wrap(liberr.IO, err, "write")
	}
	return n, nil
}

func (s *Stream) Seek(offset int64, whence libstm.Whence) (int64, error) {
	if err := s.CheckSeek(whence); err != nil {
		return 0, err
	}

	var base int64
	switch whence {
	case libstm.SeekCurrent:
		cur, err := s.f.Seek(0, int(libstm.SeekCurrent))
		if err != nil {
			return 0, liberr.Wrap(liberr.IO, err, "seek")
		}
		base = cur
	case libstm.SeekEnd:
		fi, err := s.f.Stat()
		if err != nil {
			return 0, liberr.Wrap(liberr.IO, err, "stat")
		}
		base = fi.Size()
	}
	if base+offset < 0 {
		return 0, liberr.New(liberr.OutOfRange, "negative resulting position")
	}

	n, err := s.f.Seek(offset, int(whence))
	if err != nil {
		return 0, liberr.Wrap(liberr.IO, err, "seek")
	}
	return n, nil
}

func (s *Stream) Tell() (int64, error) {
	if err := s.CheckTell(); err != nil {
		return 0, err
	}
	return s.f.Seek(0, int(libstm.SeekCurrent))
}

func (s *Stream) Size() (int64, error) {
	if err := s.CheckSize(); err != nil {
		return 0, err
	}
	fi, err := s.f.Stat()
	if err != nil {
		return 0, liberr.Wrap(liberr.IO, err, "stat")
	}
	return fi.Size(), nil
}

func (s *Stream) Truncate(size int64) error {
	if err := s.CheckTruncate(); err != nil {
		return err
	}
	if err := s.f.Truncate(size); err != nil {
		return liberr.Wrap(liberr.IO, err, "truncate")
	}
	return nil
}

func (s *Stream) Flush() error {
	if err := s.CheckFlush(); err != nil {
		return err
	}
	if err := s.f.Sync(); err != nil {
		return liberr.Wrap(liberr.IO, err, "sync")
	}
	return nil
}

func (s *Stream) Close() error {
	if !s.MarkClosed() {
		return nil
	}
	var mErr error
	if s.mmapData != nil {
		mErr = s.doMunmap()
	}
	if err := s.f.Close(); err != nil {
		if mErr != nil {
			return mErr
		}
		return liberr.Wrap(liberr.IO, err, "close")
	}
	return mErr
}
