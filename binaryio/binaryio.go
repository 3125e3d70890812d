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

// Package binaryio is a thin, endian-aware layer of fixed-width read/write
// helpers over stream.Stream, for callers building a binary record format
// on top of the core abstraction without pulling in encoding/binary
// boilerplate at every call site.
package binaryio

import (
	"encoding/binary"

	libstm "github.com/vampirefrog/streamio/stream"
)

// Order selects the byte order helpers use; callers typically hold one
// per format rather than pass binary.ByteOrder around directly.
type Order = binary.ByteOrder

var (
	LittleEndian Order = binary.LittleEndian
	BigEndian    Order = binary.BigEndian
)

func ReadUint8(s libstm.Stream) (uint8, error) {
	var b [1]byte
	if _, err := libstm.ReadFull(s, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func WriteUint8(s libstm.Stream, v uint8) error {
	_, err := libstm.WriteFull(s, []byte{v})
	return err
}

func ReadUint16(s libstm.Stream, ord Order) (uint16, error) {
	var b [2]byte
	if _, err := libstm.ReadFull(s, b[:]); err != nil {
		return 0, err
	}
	return ord.Uint16(b[:]), nil
}

func WriteUint16(s libstm.Stream, ord Order, v uint16) error {
	var b [2]byte
	ord.PutUint16(b[:], v)
	_, err := libstm.WriteFull(s, b[:])
	return err
}

func ReadUint32(s libstm.Stream, ord Order) (uint32, error) {
	var b [4]byte
	if _, err := libstm.ReadFull(s, b[:]); err != nil {
		return 0, err
	}
	return ord.Uint32(b[:]), nil
}

func WriteUint32(s libstm.Stream, ord Order, v uint32) error {
	var b [4]byte
	ord.PutUint32(b[:], v)
	_, err := libstm.WriteFull(s, b[:])
	return err
}

func ReadUint64(s libstm.Stream, ord Order) (uint64, error) {
	var b [8]byte
	if _, err := libstm.ReadFull(s, b[:]); err != nil {
		return 0, err
	}
	return ord.Uint64(b[:]), nil
}

func WriteUint64(s libstm.Stream, ord Order, v uint64) error {
	var b [8]byte
	ord.PutUint64(b[:], v)
	_, err := libstm.WriteFull(s, b[:])
	return err
}

// ReadString reads a length-prefixed (uint32) UTF-8 string.
func ReadString(s libstm.Stream, ord Order) (string, error) {
	n, err := ReadUint32(s, ord)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := libstm.ReadFull(s, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteString writes s as a length-prefixed (uint32) UTF-8 string.
func WriteString(s libstm.Stream, ord Order, v string) error {
	if err := WriteUint32(s, ord, uint32(len(v))); err != nil {
		return err
	}
	_, err := libstm.WriteFull(s, []byte(v))
	return err
}
