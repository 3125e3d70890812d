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

import "io"

// ReadFull reads exactly len(p) bytes from s, looping over short reads the
// way a well-behaved caller must. It returns io.ErrUnexpectedEOF if s ends
// before p is filled.
func ReadFull(s Stream, p []byte) (int, error) {
	n := 0
	for n < len(p) {
		k, err := s.Read(p[n:])
		n += k
		if err != nil {
			if err == io.EOF {
				if n == len(p) {
					return n, nil
				}
				return n, io.ErrUnexpectedEOF
			}
			return n, err
		}
		if k == 0 {
			return n, io.ErrUnexpectedEOF
		}
	}
	return n, nil
}

// WriteFull writes all of p to s, retrying internally on short writes
// until the whole buffer is written or an error is returned.
func WriteFull(s Stream, p []byte) (int, error) {
	n := 0
	for n < len(p) {
		k, err := s.Write(p[n:])
		n += k
		if err != nil {
			return n, err
		}
		if k == 0 {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

// CopyAll copies every remaining byte of src into dst, returning the total
// byte count copied. It is the Stream-level equivalent of io.Copy, used by
// the compress helper, the zip reader and the walker to materialize
// non-seekable sources into memory streams.
func CopyAll(dst Stream, src Stream) (int64, error) {
	buf := make([]byte, 32*1024)
	var total int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := WriteFull(dst, buf[:n]); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if rerr != nil {
			if rerr == io.EOF {
				return total, nil
			}
			return total, rerr
		}
		if n == 0 {
			return total, nil
		}
	}
}
