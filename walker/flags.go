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

package walker

// Flags controls how far the walker looks past the raw filesystem.
type Flags struct {
	// FollowSymlinks causes symlinked files and directories to be
	// traversed as though they were the real thing. Off by default to
	// avoid walk cycles.
	FollowSymlinks bool

	// ExpandArchives recurses into the entries of any archive the
	// walker recognizes (tar, zip, 7z), yielding them as though they
	// were files at "<archive path>/<entry name>".
	ExpandArchives bool

	// DecompressFiles transparently unwraps a recognized compression
	// codec before the file (or, combined with ExpandArchives, the
	// archive inside it) is handed to the callback.
	DecompressFiles bool

	// IncludeDirs yields directory entries (both real ones and
	// archive-internal ones) to the callback in addition to files.
	IncludeDirs bool

	// MaxDepth caps how many archive/compression layers deep the walker
	// yields content for a single source file; non-directory content
	// found deeper than that is skipped, not yielded. Zero means
	// unlimited.
	MaxDepth int
}
