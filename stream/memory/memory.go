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

// Package memory implements the Stream interface over an in-memory byte
// buffer, in three construction modes: borrowed (fixed, not owned),
// dynamic (owned, grows on demand), and static (owned, fixed size).
package memory

import (
	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
)

const growthUnit = 1024 // round capacity up to the next 1 KiB multiple

// Stream is a Stream backed by a contiguous byte buffer.
type Stream struct {
	libstm.Base

	buf      []byte
	length   int
	pos      int64
	ownsBuf  bool
	canGrow  bool
}

// NewBorrowed wraps buf without taking ownership or allowing growth: writes
// past the end of buf fail with NoSpace.
func NewBorrowed(buf []byte) *Stream {
	return &Stream{
		Base:    libstm.NewBase(baseCaps()),
		buf:     buf,
		length:  len(buf),
		ownsBuf: false,
		canGrow: false,
	}
}

// NewDynamic returns an owned, growable buffer seeded with initial (which
// may be nil). Writes past capacity reallocate, rounding up to the next
// 1 KiB multiple with a doubling minimum.
func NewDynamic(initial []byte) *Stream {
	buf := make([]byte, len(initial))
	copy(buf, initial)
	return &Stream{
		Base:    libstm.NewBase(baseCaps()),
		buf:     buf,
		length:  len(initial),
		ownsBuf: true,
		canGrow: true,
	}
}

// NewStatic returns an owned, fixed-capacity buffer of the given size;
// writes past size fail with NoSpace just like a borrowed buffer.
func NewStatic(size int) *Stream {
	return &Stream{
		Base:    libstm.NewBase(baseCaps()),
		buf:     make([]byte, size),
		length:  0,
		ownsBuf: true,
		canGrow: false,
	}
}

func baseCaps() libstm.Capability {
	return libstm.CapRead | libstm.CapWrite | libstm.CapSeekAbs |
		libstm.CapSeekRel | libstm.CapSeekEnd | libstm.CapTell |
		libstm.CapSize | libstm.CapMmapNative | libstm.CapTruncate | libstm.CapFlush
}

// Bytes returns the logical (length-bounded) content of the buffer. The
// returned slice aliases the stream's storage; callers must not retain it
// across a subsequent growing write.
func (s *Stream) Bytes() []byte {
	return s.buf[:s.length]
}

func (s *Stream) Read(p []byte) (int, error) {
	if err := s.CheckRead(); err != nil {
		return 0, err
	}
	if s.pos >= int64(s.length) {
		return 0, nil
	}
	n := copy(p, s.buf[s.pos:s.length])
	s.pos += int64(n)
	return n, nil
}

func (s *Stream) Write(p []byte) (int, error) {
	if err := s.CheckWrite(); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}

	end := s.pos + int64(len(p))
	if end > int64(cap(s.buf)) {
		if !s.canGrow {
			return 0, liberr.New(liberr.NoSpace, "write exceeds buffer capacity")
		}
		if err := s.grow(end); err != nil {
			return 0, err
		}
	}

	if end > int64(len(s.buf)) {
		s.buf = s.buf[:end]
	}

	n := copy(s.buf[s.pos:end], p)
	s.pos = end
	if int(end) > s.length {
		s.length = int(end)
	}
	return n, nil
}

func (s *Stream) grow(need int64) error {
	newCap := int64(growthUnit)
	for newCap < need {
		newCap *= 2
	}
	// round up to the next growthUnit multiple on top of the doubling
	if newCap%growthUnit != 0 {
		newCap += growthUnit - newCap%growthUnit
	}

	nb := make([]byte, s.length, newCap)
	copy(nb, s.buf[:s.length])
	s.buf = nb
	return nil
}

func (s *Stream) Seek(offset int64, whence libstm.Whence) (int64, error) {
	if err := s.CheckSeek(whence); err != nil {
		return 0, err
	}

	var target int64
	switch whence {
	case libstm.SeekStart:
		target = offset
	case libstm.SeekCurrent:
		target = s.pos + offset
	case libstm.SeekEnd:
		target = int64(s.length) + offset
	}

	if target < 0 {
		return 0, liberr.New(liberr.OutOfRange, "negative resulting position")
	}
	if target > int64(s.length) {
		target = int64(s.length)
	}
	s.pos = target
	return s.pos, nil
}

func (s *Stream) Tell() (int64, error) {
	if err := s.CheckTell(); err != nil {
		return 0, err
	}
	return s.pos, nil
}

func (s *Stream) Size() (int64, error) {
	if err := s.CheckSize(); err != nil {
		return 0, err
	}
	return int64(s.length), nil
}

func (s *Stream) Mmap(start, length int64, _ libstm.Prot) ([]byte, error) {
	if err := s.CheckMmap(); err != nil {
		return nil, err
	}
	if start < 0 || length <= 0 || start+length > int64(s.length) {
		return nil, liberr.New(liberr.OutOfRange, "mmap window out of bounds")
	}
	// A memory stream's mmap is trivial: it returns a sub-slice of the
	// owned buffer directly, so there is no separate region to release.
	return s.buf[start : start+length], nil
}

// Munmap always succeeds on an open stream, whether or not a region was
// mapped: Mmap keeps no region to release.
func (s *Stream) Munmap() error {
	if err := s.CheckOpen(); err != nil {
		return err
	}
	return nil
}

func (s *Stream) Truncate(size int64) error {
	if err := s.CheckTruncate(); err != nil {
		return err
	}
	if size < 0 {
		return liberr.New(liberr.OutOfRange, "negative size")
	}
	if size > int64(cap(s.buf)) {
		if !s.canGrow {
			return liberr.New(liberr.NoSpace, "truncate exceeds buffer capacity")
		}
		if err := s.grow(size); err != nil {
			return err
		}
	}
	s.buf = s.buf[:size]
	s.length = int(size)
	if s.pos > size {
		s.pos = size
	}
	return nil
}

func (s *Stream) Flush() error {
	return s.CheckFlush()
}

func (s *Stream) Close() error {
	if !s.MarkClosed() {
		return nil
	}
	if s.ownsBuf {
		s.buf = nil
		s.length = 0
	}
	return nil
}
