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

package stream_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	liberr "github.com/vampirefrog/streamio/errors"
	libstm "github.com/vampirefrog/streamio/stream"
)

func TestStream(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "stream")
}

var _ = Describe("Capability", func() {
	It("TC-CAP-001: Has reports set bits only", func() {
		c := libstm.CapRead | libstm.CapSeekAbs
		Expect(c.Has(libstm.CapRead)).To(BeTrue())
		Expect(c.Has(libstm.CapWrite)).To(BeFalse())
	})

	It("TC-CAP-002: Intersect keeps only bits present on both sides", func() {
		a := libstm.CapRead | libstm.CapWrite | libstm.CapSeekAbs
		b := libstm.CapRead | libstm.CapSeekAbs | libstm.CapFlush
		got := libstm.Intersect(a, b)
		Expect(got.Has(libstm.CapRead)).To(BeTrue())
		Expect(got.Has(libstm.CapSeekAbs)).To(BeTrue())
		Expect(got.Has(libstm.CapWrite)).To(BeFalse())
		Expect(got.Has(libstm.CapFlush)).To(BeFalse())
	})
})

var _ = Describe("Base", func() {
	It("TC-BASE-001: gates operations on granted capabilities", func() {
		b := libstm.NewBase(libstm.CapRead)
		Expect(b.CheckRead()).To(Succeed())
		Expect(b.CheckWrite()).To(HaveOccurred())
	})

	It("TC-BASE-002: CheckSeek maps whence to the matching capability bit", func() {
		b := libstm.NewBase(libstm.CapSeekAbs)
		Expect(b.CheckSeek(libstm.SeekStart)).To(Succeed())
		err := b.CheckSeek(libstm.SeekCurrent)
		Expect(err).To(HaveOccurred())
		Expect(liberr.Is(err, liberr.NotSeekable)).To(BeTrue())
	})

	It("TC-BASE-003: every operation fails once closed", func() {
		b := libstm.NewBase(libstm.CapRead | libstm.CapWrite)
		Expect(b.MarkClosed()).To(BeTrue())
		Expect(b.CheckRead()).To(HaveOccurred())
		Expect(b.CheckWrite()).To(HaveOccurred())
	})

	It("TC-BASE-004: MarkClosed reports false on a second call", func() {
		b := libstm.NewBase(0)
		Expect(b.MarkClosed()).To(BeTrue())
		Expect(b.MarkClosed()).To(BeFalse())
	})
})
