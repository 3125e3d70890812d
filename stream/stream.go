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

// Package stream defines the polymorphic Stream interface shared by every
// backend (file, memory, compression, archive entry, walker-opened entry)
// and the capability model that gates which operations each concrete kind
// actually supports.
//
// A Stream is never safe for concurrent use from more than one goroutine;
// distinct Streams, even ones derived from the same underlying file, may
// be used from distinct goroutines provided each is owned by exactly one.
package stream

import "io"

// Stream is the single interface every backend in this module implements.
// Capability bits gate which of these operations may succeed; calling one
// whose bit is clear always fails with the matching *errors.Error kind
// instead of silently no-opping.
type Stream interface {
	io.Closer

	// Capabilities reports the fixed set of abilities this Stream
	// advertises. It never changes after construction.
	Capabilities() Capability

	// Read behaves like io.Reader.Read with one deliberate deviation:
	// short reads are legal, but clean end of stream is reported as
	// (0, nil) rather than (0, io.EOF), matching the file, memory, and
	// compression backends. A caller driving a Stream with io.Copy or
	// similar stdlib io.Reader consumers must check Tell against Size
	// (or otherwise know when to stop) instead of relying on io.EOF;
	// ReadFull and CopyAll in this package already do this. The one
	// exception is an archive entry's Stream, whose forward-only cursor
	// still reports io.EOF at the end of the current entry's content,
	// per archive.Reader's own contract.
	Read(p []byte) (int, error)

	// Write behaves like io.Writer.Write.
	Write(p []byte) (int, error)

	// Seek repositions the stream and returns the new absolute offset.
	Seek(offset int64, whence Whence) (int64, error)

	// Tell reports the current logical position.
	Tell() (int64, error)

	// Size reports the total logical size, or an error when unknown.
	Size() (int64, error)

	// Mmap returns a slice covering [start, start+length) of the logical
	// stream. A Stream holds at most one live region: a new Mmap call
	// implicitly releases any prior one.
	Mmap(start, length int64, prot Prot) ([]byte, error)

	// Munmap releases the live region. Backends that track a live region
	// (the POSIX file backend and compression decoders) report
	// InvalidArgument when none is mapped; the memory backend keeps no
	// region and its Munmap always succeeds on an open stream.
	Munmap() error

	// Flush pushes any buffered writes to the underlying resource.
	Flush() error

	// Truncate resizes the stream's logical content to size. Only
	// meaningful when CapTruncate is set.
	Truncate(size int64) error
}
