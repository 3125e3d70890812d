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

//go:build windows

package file

import (
	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
)

// Windows native mmap (CreateFileMapping/MapViewOfFile via
// golang.org/x/sys/windows) is not wired up: the capability bit is simply
// never granted on this platform, matching the approach the corpus itself
// takes when a mapping backend is POSIX-only (the mmap persister stubs out
// the same way on Windows rather than shipping unverified syscalls).
// CapMmapNative is cleared at Open time on this GOOS; Mmap always reports
// Unsupported.
func mmapCapability() libstm.Capability {
	return 0
}

func (s *Stream) Mmap(_, _ int64, _ libstm.Prot) ([]byte, error) {
	return nil, liberr.New(liberr.Unsupported, "native mmap is not available on windows")
}

func (s *Stream) Munmap() error {
	return liberr.New(liberr.Unsupported, "native mmap is not available on windows")
}

func (s *Stream) doMunmap() error {
	return nil
}
