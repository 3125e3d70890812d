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

package errors

import (
	"fmt"
	"runtime"
)

// Error is the concrete error type returned by every package in this
// module. It is never compared by identity; callers use Is or Kind().
type Error struct {
	kind  Kind
	msg   string
	cause error
	file  string
	line  int
}

// New creates an Error of the given kind with no wrapped cause.
func New(k Kind, msg string) *Error {
	return newAt(k, msg, nil, 2)
}

// Wrap creates an Error of the given kind around an existing cause.
// If cause is nil, Wrap behaves like New.
func Wrap(k Kind, cause error, msg string) *Error {
	return newAt(k, msg, cause, 2)
}

func newAt(k Kind, msg string, cause error, skip int) *Error {
	_, file, line, _ := runtime.Caller(skip)
	return &Error{kind: k, msg: msg, cause: cause, file: file, line: line}
}

func (e *Error) Kind() Kind {
	if e == nil {
		return Unknown
	}
	return e.kind
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.kind, e.msg, e.cause.Error())
	}
	if e.msg != "" {
		return fmt.Sprintf("%s: %s", e.kind, e.msg)
	}
	return e.kind.String()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// File and Line report the call site that raised the error, mirroring the
// stack-trace capture the teacher's larger errors package performs, scaled
// down to a single frame since this taxonomy never builds a hierarchy.
func (e *Error) File() string {
	if e == nil {
		return ""
	}
	return e.file
}

func (e *Error) Line() int {
	if e == nil {
		return 0
	}
	return e.line
}

// Is reports whether err is, or wraps, an *Error of the given kind.
func Is(err error, k Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.kind == k {
				return true
			}
			err = e.cause
			continue
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// KindOf extracts the Kind carried by err, or Unknown if err does not wrap
// an *Error produced by this package.
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return Unknown
		}
		err = u.Unwrap()
	}
	return Unknown
}
