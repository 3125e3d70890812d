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

package memory_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
	"github.com/vampirefrog/streamio/stream/memory"
)

func TestMemory(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "stream/memory")
}

var _ = Describe("memory.Stream", func() {

	It("TC-MEM-001: round-trips a write then a read from the start", func() {
		s := memory.NewDynamic(nil)
		defer s.Close()

		n, err := s.Write([]byte("hello world"))
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(11))

		_, err = s.Seek(0, libstm.SeekStart)
		Expect(err).NotTo(HaveOccurred())

		buf := make([]byte, 11)
		n, err = s.Read(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(11))
		Expect(string(buf)).To(Equal("hello world"))
	})

	It("TC-MEM-002: grows past initial capacity on write", func() {
		s := memory.NewDynamic(nil)
		defer s.Close()

		big := make([]byte, 5000)
		for i := range big {
			big[i] = byte(i % 251)
		}
		n, err := s.Write(big)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(5000))
		Expect(s.Bytes()).To(Equal(big))
	})

	It("TC-MEM-003: rejects writes past capacity on a static buffer", func() {
		s := memory.NewStatic(4)
		defer s.Close()

		_, err := s.Write([]byte("abcde"))
		Expect(err).To(HaveOccurred())
		Expect(liberr.Is(err, liberr.NoSpace)).To(BeTrue())
	})

	It("TC-MEM-004: clamps Seek to the logical length", func() {
		s := memory.NewDynamic([]byte("abc"))
		defer s.Close()

		pos, err := s.Seek(100, libstm.SeekStart)
		Expect(err).NotTo(HaveOccurred())
		Expect(pos).To(Equal(int64(3)))
	})

	It("TC-MEM-005: rejects a negative resulting seek position", func() {
		s := memory.NewDynamic([]byte("abc"))
		defer s.Close()

		_, err := s.Seek(-1, libstm.SeekStart)
		Expect(err).To(HaveOccurred())
		Expect(liberr.Is(err, liberr.OutOfRange)).To(BeTrue())
	})

	It("TC-MEM-006: Mmap returns a sub-slice aliasing the buffer", func() {
		s := memory.NewDynamic([]byte("0123456789"))
		defer s.Close()

		region, err := s.Mmap(2, 4, libstm.ProtRead)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(region)).To(Equal("2345"))
		Expect(s.Munmap()).To(Succeed())
	})

	It("TC-MEM-007: Truncate shrinks and then grows the content", func() {
		s := memory.NewDynamic([]byte("abcdef"))
		defer s.Close()

		Expect(s.Truncate(3)).To(Succeed())
		Expect(s.Bytes()).To(Equal([]byte("abc")))

		_, _ = s.Seek(0, libstm.SeekEnd)
		Expect(s.Truncate(10)).To(Succeed())
		Expect(s.Bytes()).To(HaveLen(10))
	})

	It("TC-MEM-008: Close is idempotent", func() {
		s := memory.NewDynamic(nil)
		Expect(s.Close()).To(Succeed())
		Expect(s.Close()).To(Succeed())
	})

	It("TC-MEM-009: operations fail after Close", func() {
		s := memory.NewDynamic(nil)
		Expect(s.Close()).To(Succeed())

		_, err := s.Write([]byte("x"))
		Expect(err).To(HaveOccurred())
	})

	It("TC-MEM-010: a borrowed buffer does not grow", func() {
		buf := make([]byte, 4)
		s := memory.NewBorrowed(buf)
		defer s.Close()

		_, err := s.Write([]byte("abcde"))
		Expect(err).To(HaveOccurred())
		Expect(liberr.Is(err, liberr.NoSpace)).To(BeTrue())
	})
})
