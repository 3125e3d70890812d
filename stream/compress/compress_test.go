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

package compress_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
	"github.com/vampirefrog/streamio/stream/compress"
	"github.com/vampirefrog/streamio/stream/compress/helper"
	"github.com/vampirefrog/streamio/stream/memory"
)

func TestCompress(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "stream/compress")
}

var allAlgos = []compress.Algorithm{
	compress.Gzip, compress.Bzip2, compress.XZ, compress.Zstd, compress.LZ4,
}

var _ = Describe("compress round trip", func() {
	for _, algo := range allAlgos {
		algo := algo
		It("TC-CMP-001/"+algo.String()+": compress then decompress returns the original bytes", func() {
			original := []byte("the quick brown fox jumps over the lazy dog, repeated many times. " +
				"the quick brown fox jumps over the lazy dog, repeated many times.")

			packed, err := helper.Compress(algo, original)
			Expect(err).NotTo(HaveOccurred())
			Expect(packed).NotTo(Equal(original))

			unpacked, err := helper.Decompress(algo, packed)
			Expect(err).NotTo(HaveOccurred())
			Expect(unpacked).To(Equal(original))
		})
	}
})

var _ = Describe("magic detection", func() {
	It("TC-CMP-002: detects gzip from its magic header, not a file extension", func() {
		packed, err := helper.Compress(compress.Gzip, []byte("payload"))
		Expect(err).NotTo(HaveOccurred())

		src := memory.NewBorrowed(packed)
		defer src.Close()

		algo, err := compress.Detect(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(algo).To(Equal(compress.Gzip))
	})

	It("TC-CMP-003: restores the original position around the peek", func() {
		packed, err := helper.Compress(compress.Zstd, []byte("payload"))
		Expect(err).NotTo(HaveOccurred())

		src := memory.NewBorrowed(packed)
		defer src.Close()

		_, _ = src.Seek(3, 0)
		pos0, _ := src.Tell()

		_, err = compress.Detect(src)
		Expect(err).NotTo(HaveOccurred())

		pos1, _ := src.Tell()
		Expect(pos1).To(Equal(pos0))
	})

	It("TC-CMP-004: returns None for uncompressed data", func() {
		algo := compress.DetectOnly([]byte("plain text, not compressed at all"))
		Expect(algo).To(Equal(compress.None))
	})
})

var _ = Describe("NewAutoOrPassthrough", func() {
	It("TC-CMP-005: passes through uncompressed content unchanged", func() {
		original := []byte("not compressed")
		src := newNonSeekable(original)

		s, algo, err := compress.NewAutoOrPassthrough(src, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(algo).To(Equal(compress.None))
		defer s.Close()

		got := make([]byte, len(original))
		n, err := s.Read(got)
		Expect(err).NotTo(HaveOccurred())
		Expect(got[:n]).To(Equal(original[:n]))
	})
})

// nonSeekable wraps an in-memory buffer as a forward-only Stream, for
// exercising the non-seekable detection fallback without a real pipe.
type nonSeekable struct {
	libstm.Base
	mem *memory.Stream
}

func newNonSeekable(data []byte) *nonSeekable {
	return &nonSeekable{
		Base: libstm.NewBase(libstm.CapRead),
		mem:  memory.NewBorrowed(data),
	}
}

func (n *nonSeekable) Read(p []byte) (int, error) {
	if err := n.CheckRead(); err != nil {
		return 0, err
	}
	return n.mem.Read(p)
}

func (n *nonSeekable) Write(p []byte) (int, error) {
	return 0, liberr.New(liberr.NotWritable, "nonSeekable is read-only")
}

func (n *nonSeekable) Seek(offset int64, whence libstm.Whence) (int64, error) {
	return 0, liberr.New(liberr.NotSeekable, "nonSeekable has no seek support")
}

func (n *nonSeekable) Tell() (int64, error) {
	return 0, liberr.New(liberr.NotSeekable, "nonSeekable has no seek support")
}

func (n *nonSeekable) Size() (int64, error) {
	return 0, liberr.New(liberr.Unsupported, "nonSeekable has no size support")
}

func (n *nonSeekable) Mmap(start, length int64, prot libstm.Prot) ([]byte, error) {
	return nil, liberr.New(liberr.Unsupported, "nonSeekable does not support mmap")
}

func (n *nonSeekable) Munmap() error {
	return liberr.New(liberr.Unsupported, "nonSeekable does not support mmap")
}

func (n *nonSeekable) Truncate(size int64) error {
	return liberr.New(liberr.Unsupported, "nonSeekable does not support truncate")
}

func (n *nonSeekable) Flush() error {
	return nil
}

func (n *nonSeekable) Close() error {
	n.MarkClosed()
	return n.mem.Close()
}
