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

// Package allformats registers every archive.Reader this module ships
// against the archive package's dispatch table. Importing it for side
// effect (as the walker package does) is the one-line way to get
// auto-detecting archive support without
// naming each format subpackage.
package allformats

import (
	libarc "github.com/vampirefrog/streamio/stream/archive"
	libsvz "github.com/vampirefrog/streamio/stream/archive/sevenzip"
	libtar "github.com/vampirefrog/streamio/stream/archive/tar"
	libzip "github.com/vampirefrog/streamio/stream/archive/zip"
)

func init() {
	libarc.Register(libarc.TarUSTAR, libtar.Open)
	libarc.Register(libarc.TarPAX, libtar.Open)
	libarc.Register(libarc.Zip, libzip.Open)
	libarc.Register(libarc.SevenZip, libsvz.Open)
}
