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

//go:build !windows

package file

import (
	"golang.org/x/sys/unix"

	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
)

func mmapCapability() libstm.Capability {
	return libstm.CapMmapNative
}

func (s *Stream) Mmap(start, length int64, prot libstm.Prot) ([]byte, error) {
	if err := s.CheckMmap(); err != nil {
		return nil, err
	}
	if length <= 0 {
		return nil, liberr.New(liberr.InvalidArgument, "length must be positive")
	}

	if s.mmapData != nil {
		if err := s.doMunmap(); err != nil {
			return nil, err
		}
	}

	var p int
	if prot&libstm.ProtWrite != 0 {
		p = unix.PROT_READ | unix.PROT_WRITE
	} else {
		p = unix.PROT_READ
	}

	data, err := unix.Mmap(int(s.f.Fd()), start, int(length), p, unix.MAP_SHARED)
	if err != nil {
		return nil, liberr.Wrap(liberr.IO, err, "mmap")
	}

	s.mmapData = data
	s.mmapOff = start
	return data, nil
}

func (s *Stream) Munmap() error {
	if err := s.CheckOpen(); err != nil {
		return err
	}
	if s.mmapData == nil {
		return liberr.New(liberr.InvalidArgument, "no live mmap region")
	}
	return s.doMunmap()
}

func (s *Stream) doMunmap() error {
	err := unix.Munmap(s.mmapData)
	s.mmapData = nil
	s.mmapOff = 0
	if err != nil {
		return liberr.Wrap(liberr.IO, err, "munmap")
	}
	return nil
}
