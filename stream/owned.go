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

// Owned models the ownership edge between a wrapper stream and the inner
// Stream it wraps, replacing a raw "owns_underlying" boolean scattered
// across adapters with one small value type every adapter embeds.
//
// When Owns is true, closing the wrapper closes Inner; when false, Inner
// outlives the wrapper and the wrapper's Close leaves it open. This is the
// re-expression the design notes call for: the wrapper either holds the
// inner stream "by value" (owned) or "by exclusive borrow" (not owned),
// with a single CloseInner method used by every wrapper's Close instead of
// each one re-deriving the same branch.
type Owned struct {
	Inner Stream
	Owns  bool
}

// NewOwned returns an Owned edge over inner with the given ownership.
func NewOwned(inner Stream, owns bool) Owned {
	return Owned{Inner: inner, Owns: owns}
}

// CloseInner closes Inner iff this edge owns it. Safe to call multiple
// times; Stream.Close is required to be idempotent by every backend.
func (o Owned) CloseInner() error {
	if o.Owns && o.Inner != nil {
		return o.Inner.Close()
	}
	return nil
}
