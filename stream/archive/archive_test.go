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

package archive_test

import (
	"bytes"
	"io"
	"io/fs"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
	libarc "github.com/vampirefrog/streamio/stream/archive"
	libtar "github.com/vampirefrog/streamio/stream/archive/tar"
	libzip "github.com/vampirefrog/streamio/stream/archive/zip"
	"github.com/vampirefrog/streamio/stream/memory"
)

func TestArchive(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "stream/archive")
}

// dst is a plain bytes.Buffer, not a memory.Stream: libtar.Writer and
// libzip.Writer close their destination if it implements io.Closer, and a
// memory.Stream's Close releases its backing buffer, which would erase the
// very bytes these helpers return.
func buildTar(entries []libarc.Entry, contents [][]byte) []byte {
	var dst bytes.Buffer
	w := libtar.NewWriter(&dst)
	for i, e := range entries {
		var r io.Reader
		if i < len(contents) {
			r = bytes.NewReader(contents[i])
		} else {
			r = bytes.NewReader(nil)
		}
		Expect(w.WriteEntry(e, r)).To(Succeed())
	}
	Expect(w.Close()).To(Succeed())
	return dst.Bytes()
}

func buildZip(entries []libarc.Entry, contents [][]byte) []byte {
	var dst bytes.Buffer
	w := libzip.NewWriter(&dst)
	for i, e := range entries {
		var r io.Reader
		if i < len(contents) {
			r = bytes.NewReader(contents[i])
		} else {
			r = bytes.NewReader(nil)
		}
		Expect(w.WriteEntry(e, r)).To(Succeed())
	}
	Expect(w.Close()).To(Succeed())
	return dst.Bytes()
}

var _ = Describe("tar round trip", func() {
	It("TC-ARC-001: writes and reads back files and a directory", func() {
		now := time.Unix(1700000000, 0).UTC()
		entries := []libarc.Entry{
			{Name: "dir/", Kind: libarc.KindDir, Mode: fs.ModeDir | 0o755, ModTime: now},
			{Name: "dir/a.txt", Kind: libarc.KindFile, Size: 5, Mode: 0o644, ModTime: now},
			{Name: "b.txt", Kind: libarc.KindFile, Size: 3, Mode: 0o644, ModTime: now},
		}
		raw := buildTar(entries, [][]byte{nil, []byte("hello"), []byte("bye")})

		src := memory.NewBorrowed(raw)
		cur, err := libtar.Open(src, int64(len(raw)))
		Expect(err).NotTo(HaveOccurred())
		defer cur.Close()

		var names []string
		var contents [][]byte
		for {
			e, err := cur.Next()
			if err == io.EOF {
				break
			}
			Expect(err).NotTo(HaveOccurred())
			names = append(names, e.Name)
			if e.Kind == libarc.KindFile {
				buf, rerr := io.ReadAll(toReader(cur.EntryStream()))
				Expect(rerr).NotTo(HaveOccurred())
				contents = append(contents, buf)
			}
		}
		Expect(names).To(Equal([]string{"dir/", "dir/a.txt", "b.txt"}))
		Expect(contents).To(Equal([][]byte{[]byte("hello"), []byte("bye")}))
	})
})

var _ = Describe("zip round trip", func() {
	It("TC-ARC-002: writes and reads back file content", func() {
		now := time.Unix(1700000000, 0).UTC()
		entries := []libarc.Entry{
			{Name: "one.txt", Kind: libarc.KindFile, Size: 11, Mode: 0o644, ModTime: now},
		}
		raw := buildZip(entries, [][]byte{[]byte("hello world")})

		src := memory.NewBorrowed(raw)
		cur, err := libzip.Open(src, int64(len(raw)))
		Expect(err).NotTo(HaveOccurred())
		defer cur.Close()

		e, err := cur.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Name).To(Equal("one.txt"))

		buf, rerr := io.ReadAll(toReader(cur.EntryStream()))
		Expect(rerr).NotTo(HaveOccurred())
		Expect(string(buf)).To(Equal("hello world"))

		_, err = cur.Next()
		Expect(err).To(Equal(io.EOF))
	})
})

var _ = Describe("Cursor generation liveness", func() {
	It("TC-ARC-003: an EntryStream borrowed from a stale position fails with InvalidArgument", func() {
		entries := []libarc.Entry{
			{Name: "a.txt", Kind: libarc.KindFile, Size: 3, Mode: 0o644},
			{Name: "b.txt", Kind: libarc.KindFile, Size: 3, Mode: 0o644},
		}
		raw := buildTar(entries, [][]byte{[]byte("aaa"), []byte("bbb")})

		src := memory.NewBorrowed(raw)
		cur, err := libtar.Open(src, int64(len(raw)))
		Expect(err).NotTo(HaveOccurred())
		defer cur.Close()

		_, err = cur.Next()
		Expect(err).NotTo(HaveOccurred())
		stale := cur.EntryStream()

		_, err = cur.Next()
		Expect(err).NotTo(HaveOccurred())

		_, rerr := stale.Read(make([]byte, 3))
		Expect(rerr).To(HaveOccurred())
		Expect(liberr.Is(rerr, liberr.InvalidArgument)).To(BeTrue())
	})

	It("TC-ARC-004: an EntryStream becomes stale once the cursor is closed", func() {
		entries := []libarc.Entry{
			{Name: "a.txt", Kind: libarc.KindFile, Size: 3, Mode: 0o644},
		}
		raw := buildTar(entries, [][]byte{[]byte("aaa")})

		src := memory.NewBorrowed(raw)
		cur, err := libtar.Open(src, int64(len(raw)))
		Expect(err).NotTo(HaveOccurred())

		_, err = cur.Next()
		Expect(err).NotTo(HaveOccurred())
		live := cur.EntryStream()

		Expect(cur.Close()).To(Succeed())

		_, rerr := live.Read(make([]byte, 3))
		Expect(rerr).To(HaveOccurred())
		Expect(liberr.Is(rerr, liberr.InvalidArgument)).To(BeTrue())
	})
})

var _ = Describe("format detection", func() {
	It("TC-ARC-005: detects a zip stream from its magic header", func() {
		raw := buildZip([]libarc.Entry{{Name: "f", Kind: libarc.KindFile, Size: 1, Mode: 0o644}}, [][]byte{[]byte("x")})
		Expect(libarc.DetectOnly(raw)).To(Equal(libarc.Zip))
	})

	It("TC-ARC-006: detects a ustar tar stream from its offset-257 marker", func() {
		raw := buildTar([]libarc.Entry{{Name: "f", Kind: libarc.KindFile, Size: 1, Mode: 0o644}}, [][]byte{[]byte("x")})
		Expect(len(raw) >= 265).To(BeTrue())
		Expect(libarc.DetectOnly(raw)).To(Equal(libarc.TarUSTAR))
	})

	It("TC-ARC-007: returns None for content with no recognizable archive header", func() {
		Expect(libarc.DetectOnly([]byte("plain text"))).To(Equal(libarc.None))
	})

	// TC-ARC-007b exercises the actual streaming path Detect/the walker
	// use, where only magicHeaderLen bytes are ever peeked, rather than
	// handing DetectOnly the whole archive buffer (which would pass even
	// if the ustar-marker guard demanded more bytes than Detect ever
	// reads).
	It("TC-ARC-007b: Detect recognizes a ustar tar stream from a bounded peek", func() {
		raw := buildTar([]libarc.Entry{{Name: "f", Kind: libarc.KindFile, Size: 1, Mode: 0o644}}, [][]byte{[]byte("x")})
		s := memory.NewBorrowed(raw)
		defer s.Close()

		algo, err := libarc.Detect(s)
		Expect(err).NotTo(HaveOccurred())
		Expect(algo).To(Equal(libarc.TarUSTAR))
	})

	It("TC-ARC-008: Detect restores the stream's original position", func() {
		raw := buildZip([]libarc.Entry{{Name: "f", Kind: libarc.KindFile, Size: 1, Mode: 0o644}}, [][]byte{[]byte("x")})
		s := memory.NewBorrowed(raw)
		defer s.Close()

		_, _ = s.Seek(5, libstm.SeekStart)
		pos0, _ := s.Tell()

		_, err := libarc.Detect(s)
		Expect(err).NotTo(HaveOccurred())

		pos1, _ := s.Tell()
		Expect(pos1).To(Equal(pos0))
	})
})

type readerAdapter struct {
	s libstm.Stream
}

func (r readerAdapter) Read(p []byte) (int, error) {
	n, err := r.s.Read(p)
	return n, err
}

func toReader(s libstm.Stream) io.Reader {
	return readerAdapter{s: s}
}
