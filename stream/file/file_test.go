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

package file_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
	"github.com/vampirefrog/streamio/stream/file"
)

func TestFile(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "stream/file")
}

var _ = Describe("file.Stream", func() {

	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "streamio-file-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(dir)
	})

	It("TC-FILE-001: fails to open a missing file with NotFound", func() {
		_, err := file.Open(filepath.Join(dir, "missing"), libstm.ModeRead, 0)
		Expect(err).To(HaveOccurred())
		Expect(liberr.Is(err, liberr.NotFound)).To(BeTrue())
	})

	It("TC-FILE-002: creates, writes, and reads back a file", func() {
		path := filepath.Join(dir, "new.bin")
		s, err := file.Open(path, libstm.ModeRead|libstm.ModeWrite|libstm.ModeCreate, 0o644)
		Expect(err).NotTo(HaveOccurred())

		_, err = s.Write([]byte("payload"))
		Expect(err).NotTo(HaveOccurred())

		_, err = s.Seek(0, libstm.SeekStart)
		Expect(err).NotTo(HaveOccurred())

		buf := make([]byte, 7)
		n, err := s.Read(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(7))
		Expect(string(buf)).To(Equal("payload"))

		Expect(s.Close()).To(Succeed())
	})

	It("TC-FILE-003: reports size via Size and Stat consistently", func() {
		path := filepath.Join(dir, "sized.bin")
		Expect(os.WriteFile(path, []byte("0123456789"), 0o644)).To(Succeed())

		s, err := file.Open(path, libstm.ModeRead, 0)
		Expect(err).NotTo(HaveOccurred())
		defer s.Close()

		size, err := s.Size()
		Expect(err).NotTo(HaveOccurred())
		Expect(size).To(Equal(int64(10)))

		fi, err := s.Stat()
		Expect(err).NotTo(HaveOccurred())
		Expect(fi.Size()).To(Equal(int64(10)))
	})

	It("TC-FILE-004: Truncate resizes the underlying file", func() {
		path := filepath.Join(dir, "trunc.bin")
		Expect(os.WriteFile(path, []byte("0123456789"), 0o644)).To(Succeed())

		s, err := file.Open(path, libstm.ModeRead|libstm.ModeWrite, 0)
		Expect(err).NotTo(HaveOccurred())
		defer s.Close()

		Expect(s.Truncate(4)).To(Succeed())
		size, err := s.Size()
		Expect(err).NotTo(HaveOccurred())
		Expect(size).To(Equal(int64(4)))
	})

	It("TC-FILE-005: a read-only stream rejects Write", func() {
		path := filepath.Join(dir, "ro.bin")
		Expect(os.WriteFile(path, []byte("abc"), 0o644)).To(Succeed())

		s, err := file.Open(path, libstm.ModeRead, 0)
		Expect(err).NotTo(HaveOccurred())
		defer s.Close()

		_, err = s.Write([]byte("x"))
		Expect(err).To(HaveOccurred())
		Expect(liberr.Is(err, liberr.NotWritable)).To(BeTrue())
	})

	It("TC-FILE-006: Close is idempotent", func() {
		path := filepath.Join(dir, "closeme.bin")
		Expect(os.WriteFile(path, []byte("abc"), 0o644)).To(Succeed())

		s, err := file.Open(path, libstm.ModeRead, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Close()).To(Succeed())
		Expect(s.Close()).To(Succeed())
	})
})
