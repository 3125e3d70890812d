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

// Package helper provides one-shot convenience wrappers around the
// compress package for the common case of compressing or decompressing
// an entire in-memory buffer without managing a Stream by hand.
package helper

import (
	"github.com/vampirefrog/streamio/stream"
	"github.com/vampirefrog/streamio/stream/compress"
	"github.com/vampirefrog/streamio/stream/memory"
)

// Compress returns algo-compressed data for the given input buffer.
func Compress(algo compress.Algorithm, data []byte) ([]byte, error) {
	dst := memory.NewDynamic(nil)
	enc, err := compress.NewEncoder(dst, algo, false)
	if err != nil {
		return nil, err
	}

	if _, err := stream.WriteFull(enc, data); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	out := make([]byte, len(dst.Bytes()))
	copy(out, dst.Bytes())
	return out, nil
}

// Decompress returns the decoded content of algo-compressed data.
func Decompress(algo compress.Algorithm, data []byte) ([]byte, error) {
	src := memory.NewBorrowed(data)
	dec, err := compress.NewDecoder(src, algo, false)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	dst := memory.NewDynamic(nil)
	if _, err := stream.CopyAll(dst, dec); err != nil {
		return nil, err
	}

	out := make([]byte, len(dst.Bytes()))
	copy(out, dst.Bytes())
	return out, nil
}

// DecompressAuto detects the algorithm from data's header and decodes it;
// it returns data unchanged (copied) if no known algorithm is detected.
func DecompressAuto(data []byte) ([]byte, compress.Algorithm, error) {
	algo := compress.DetectOnly(data)
	if algo.IsNone() {
		out := make([]byte, len(data))
		copy(out, data)
		return out, compress.None, nil
	}
	out, err := Decompress(algo, data)
	return out, algo, err
}
