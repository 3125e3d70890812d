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

// Package errors provides the closed error taxonomy shared by every stream
// backend and adapter in this module.
//
// Unlike an open, HTTP-status-shaped code space, the set of things that can
// go wrong talking to a stream is small and fixed, so Kind is a small enum
// rather than a uint16 registry. Every Error carries its Kind, an optional
// wrapped cause, and the call site that raised it, and is compatible with
// the standard library's errors.Is / errors.As.
package errors

// Kind classifies why a stream operation failed. It never changes meaning
// once an operation has returned it: callers branch on Kind instead of on
// error strings.
type Kind uint8

const (
	// Unknown is the zero value; it should not be returned by any op.
	Unknown Kind = iota
	NotFound
	PermissionDenied
	AlreadyExists
	InvalidArgument
	NotReadable
	NotWritable
	NotSeekable
	OutOfRange
	OutOfMemory
	NoSpace
	Unsupported
	DecodeError
	EncodeError
	ArchiveFormat
	UnexpectedEOF
	IO
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case AlreadyExists:
		return "already exists"
	case InvalidArgument:
		return "invalid argument"
	case NotReadable:
		return "not readable"
	case NotWritable:
		return "not writable"
	case NotSeekable:
		return "not seekable"
	case OutOfRange:
		return "out of range"
	case OutOfMemory:
		return "out of memory"
	case NoSpace:
		return "no space"
	case Unsupported:
		return "unsupported"
	case DecodeError:
		return "decode error"
	case EncodeError:
		return "encode error"
	case ArchiveFormat:
		return "archive format error"
	case UnexpectedEOF:
		return "unexpected end of stream"
	case IO:
		return "i/o error"
	default:
		return "unknown error"
	}
}
