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

package walker_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libarc "github.com/vampirefrog/streamio/stream/archive"
	libtar "github.com/vampirefrog/streamio/stream/archive/tar"
	libcmp "github.com/vampirefrog/streamio/stream/compress"
	"github.com/vampirefrog/streamio/stream/memory"
	"github.com/vampirefrog/streamio/walker"
)

func TestWalker(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "walker")
}

func buildTarBytes(names []string, contents [][]byte) []byte {
	var dst bytes.Buffer
	w := libtar.NewWriter(&dst)
	for i, name := range names {
		Expect(w.WriteEntry(libarc.Entry{
			Name: name,
			Kind: libarc.KindFile,
			Size: int64(len(contents[i])),
			Mode: 0o644,
		}, bytes.NewReader(contents[i]))).To(Succeed())
	}
	Expect(w.Close()).To(Succeed())
	return dst.Bytes()
}

// gzipBytes compresses data with the package under test's own gzip codec,
// writing into a memory.Stream it does not own so the bytes survive past
// the encoder's Close (which flushes the gzip footer).
func gzipBytes(data []byte) []byte {
	mem := memory.NewDynamic(nil)
	enc, err := libcmp.NewEncoder(mem, libcmp.Gzip, false)
	Expect(err).NotTo(HaveOccurred())
	_, err = enc.Write(data)
	Expect(err).NotTo(HaveOccurred())
	Expect(enc.Close()).To(Succeed())
	out := append([]byte(nil), mem.Bytes()...)
	Expect(mem.Close()).To(Succeed())
	return out
}

var _ = Describe("Walk over a plain directory tree", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "streamio-walk-*")
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Mkdir(filepath.Join(dir, "sub"), 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "a.txt"), []byte("aaa"), 0o644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("bbb"), 0o644)).To(Succeed())
	})

	AfterEach(func() {
		_ = os.RemoveAll(dir)
	})

	It("TC-WALK-001: visits every file in sorted, depth-first order", func() {
		var paths []string
		err := walker.Walk(dir, walker.Flags{}, func(e walker.Entry) (bool, error) {
			paths = append(paths, e.Path)
			return false, nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(paths).To(Equal([]string{"a.txt", "sub/b.txt"}))
	})

	It("TC-WALK-002: IncludeDirs additionally yields directory entries", func() {
		var dirs, files []string
		err := walker.Walk(dir, walker.Flags{IncludeDirs: true}, func(e walker.Entry) (bool, error) {
			if e.IsDir {
				dirs = append(dirs, e.Path)
			} else {
				files = append(files, e.Path)
			}
			return false, nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(dirs).To(Equal([]string{"sub"}))
		Expect(files).To(Equal([]string{"a.txt", "sub/b.txt"}))
	})

	It("TC-WALK-003: a callback reading file content sees the real bytes", func() {
		var got string
		err := walker.Walk(dir, walker.Flags{}, func(e walker.Entry) (bool, error) {
			if e.Path == "a.txt" {
				buf, rerr := io.ReadAll(readerOf(e))
				if rerr != nil {
					return false, rerr
				}
				got = string(buf)
			}
			return false, nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal("aaa"))
	})

	It("TC-WALK-004: a callback error aborts the whole walk", func() {
		boom := errors.New("boom")
		visited := 0
		err := walker.Walk(dir, walker.Flags{}, func(e walker.Entry) (bool, error) {
			visited++
			return false, boom
		})
		Expect(err).To(Equal(boom))
		Expect(visited).To(Equal(1))
	})
})

var _ = Describe("Walk and symlinks", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "streamio-walk-sym-*")
		Expect(err).NotTo(HaveOccurred())
		Expect(os.WriteFile(filepath.Join(dir, "real.txt"), []byte("x"), 0o644)).To(Succeed())
		Expect(os.Symlink(filepath.Join(dir, "real.txt"), filepath.Join(dir, "link.txt"))).To(Succeed())
	})

	AfterEach(func() {
		_ = os.RemoveAll(dir)
	})

	It("TC-WALK-005: symlinks are skipped unless FollowSymlinks is set", func() {
		var paths []string
		err := walker.Walk(dir, walker.Flags{}, func(e walker.Entry) (bool, error) {
			paths = append(paths, e.Path)
			return false, nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(paths).To(Equal([]string{"real.txt"}))
	})

	It("TC-WALK-006: FollowSymlinks causes the link target to be visited too", func() {
		var paths []string
		err := walker.Walk(dir, walker.Flags{FollowSymlinks: true}, func(e walker.Entry) (bool, error) {
			paths = append(paths, e.Path)
			return false, nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(paths).To(Equal([]string{"link.txt", "real.txt"}))
	})
})

var _ = Describe("Walk with archive expansion and decompression", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "streamio-walk-arc-*")
		Expect(err).NotTo(HaveOccurred())

		tarBytes := buildTarBytes(
			[]string{"one.txt", "two.txt"},
			[][]byte{[]byte("one"), []byte("two")},
		)
		Expect(os.WriteFile(
			filepath.Join(dir, "bundle.tar.gz"),
			gzipBytes(tarBytes),
			0o644,
		)).To(Succeed())
	})

	AfterEach(func() {
		_ = os.RemoveAll(dir)
	})

	It("TC-WALK-007: unwraps gzip then tar, yielding each archive entry's content", func() {
		flags := walker.Flags{DecompressFiles: true, ExpandArchives: true}
		var paths []string
		var contents []string
		err := walker.Walk(dir, flags, func(e walker.Entry) (bool, error) {
			paths = append(paths, e.Path)
			buf, rerr := io.ReadAll(readerOf(e))
			if rerr != nil {
				return false, rerr
			}
			contents = append(contents, string(buf))
			return false, nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(paths).To(Equal([]string{"bundle.tar/one.txt", "bundle.tar/two.txt"}))
		Expect(contents).To(Equal([]string{"one", "two"}))
	})

	// TC-WALK-008 exercises the fix for a legacy bug where a stop signal
	// raised from inside a nested archive only unwound as far as the
	// immediate recursive caller instead of the whole walk: without the
	// fix, the second top-level file below would still be visited.
	It("TC-WALK-008: a stop signaled from inside a nested archive halts the entire walk", func() {
		Expect(os.WriteFile(filepath.Join(dir, "zzz_after.txt"), []byte("should not be seen"), 0o644)).To(Succeed())

		flags := walker.Flags{DecompressFiles: true, ExpandArchives: true}
		var paths []string
		err := walker.Walk(dir, flags, func(e walker.Entry) (bool, error) {
			paths = append(paths, e.Path)
			return e.Path == "bundle.tar/one.txt", nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(paths).To(Equal([]string{"bundle.tar/one.txt"}))
	})
})

type entryReader struct {
	e walker.Entry
}

func (r entryReader) Read(p []byte) (int, error) {
	n, err := r.e.Stream.Read(p)
	if n == 0 && err == nil && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}

func readerOf(e walker.Entry) io.Reader {
	return entryReader{e: e}
}
