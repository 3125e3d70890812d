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

package stream

import (
	"sync/atomic"

	liberr "github.com/vampirefrog/streamio/errors"
)

// Base is embedded by every concrete backend. It holds the capability mask
// fixed at construction and the idempotent-close flag, and exposes the
// capability-gated checks backend methods call before touching their own
// state — the "validate capability, dispatch, normalize" steps every
// operation in this package performs.
type Base struct {
	caps   Capability
	closed atomic.Bool
}

// NewBase returns a Base advertising the given capability set.
func NewBase(caps Capability) Base {
	return Base{caps: caps}
}

func (b *Base) Capabilities() Capability {
	return b.caps
}

// Closed reports whether Close has already run once for this stream.
func (b *Base) Closed() bool {
	return b.closed.Load()
}

// MarkClosed flips the closed flag and reports whether this call was the
// one to do so (false means Close had already happened — the idempotent
// no-op case).
func (b *Base) MarkClosed() bool {
	return b.closed.CompareAndSwap(false, true)
}

// CheckOpen fails fast on a closed stream; every operation except Close
// itself should call this first.
func (b *Base) CheckOpen() error {
	if b.closed.Load() {
		return liberr.New(liberr.InvalidArgument, "stream is closed")
	}
	return nil
}

func (b *Base) CheckRead() error {
	if err := b.CheckOpen(); err != nil {
		return err
	}
	if !b.caps.Has(CapRead) {
		return liberr.New(liberr.NotReadable, "read capability not set")
	}
	return nil
}

func (b *Base) CheckWrite() error {
	if err := b.CheckOpen(); err != nil {
		return err
	}
	if !b.caps.Has(CapWrite) {
		return liberr.New(liberr.NotWritable, "write capability not set")
	}
	return nil
}

// CheckSeek validates the capability for the given whence value.
func (b *Base) CheckSeek(whence Whence) error {
	if err := b.CheckOpen(); err != nil {
		return err
	}
	var bit Capability
	switch whence {
	case SeekStart:
		bit = CapSeekAbs
	case SeekCurrent:
		bit = CapSeekRel
	case SeekEnd:
		bit = CapSeekEnd
	default:
		return liberr.New(liberr.InvalidArgument, "unknown whence value")
	}
	if !b.caps.Has(bit) {
		return liberr.New(liberr.NotSeekable, "seek capability not set for this whence")
	}
	return nil
}

func (b *Base) CheckTell() error {
	if err := b.CheckOpen(); err != nil {
		return err
	}
	if !b.caps.Has(CapTell) {
		return liberr.New(liberr.Unsupported, "tell capability not set")
	}
	return nil
}

func (b *Base) CheckSize() error {
	if err := b.CheckOpen(); err != nil {
		return err
	}
	if !b.caps.Has(CapSize) {
		return liberr.New(liberr.Unsupported, "size capability not set")
	}
	return nil
}

func (b *Base) CheckMmap() error {
	if err := b.CheckOpen(); err != nil {
		return err
	}
	if !b.caps.Has(CapMmapNative) && !b.caps.Has(CapMmapEmulated) {
		return liberr.New(liberr.Unsupported, "mmap capability not set")
	}
	return nil
}

func (b *Base) CheckTruncate() error {
	if err := b.CheckOpen(); err != nil {
		return err
	}
	if !b.caps.Has(CapTruncate) {
		return liberr.New(liberr.Unsupported, "truncate capability not set")
	}
	return nil
}

func (b *Base) CheckFlush() error {
	if err := b.CheckOpen(); err != nil {
		return err
	}
	if !b.caps.Has(CapFlush) {
		return liberr.New(liberr.Unsupported, "flush capability not set")
	}
	return nil
}
