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

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	liberr "github.com/vampirefrog/streamio/errors"
	libarc "github.com/vampirefrog/streamio/stream/archive"
	// allformats registers every archive format this module ships a
	// reader for; Walk's ExpandArchives flag depends on that
	// registration having happened, so the walker carries the import
	// itself rather than relying on a caller to remember it.
	_ "github.com/vampirefrog/streamio/stream/archive/allformats"
	libcmp "github.com/vampirefrog/streamio/stream/compress"
	libfile "github.com/vampirefrog/streamio/stream/file"
	libmem "github.com/vampirefrog/streamio/stream/memory"
	libstm "github.com/vampirefrog/streamio/stream"
)

// Callback is invoked once per entry the walk produces. Returning stop
// true ends the entire walk immediately (including any outstanding
// parent directories and archives); a non-nil error always ends the
// walk and is returned from Walk unchanged.
type Callback func(Entry) (stop bool, err error)

// Walk traverses root, a file or a directory, expanding archives and
// stripping compression layers according to flags, calling fn once per
// entry in depth-first order: directory entries sorted by name, archive
// entries in the order the archive stores them.
//
// An earlier version of this walker discarded the stop/error result of
// its own recursive calls when descending into a subdirectory, so a
// callback's request to stop (or its error) only reached the immediate
// parent and silently vanished above that. Every recursive call here
// propagates its (stop, err) result the same way a leaf callback
// invocation would.
func Walk(root string, flags Flags, fn Callback) error {
	fi, err := os.Lstat(root)
	if err != nil {
		return liberr.Wrap(liberr.NotFound, err, "stat walk root")
	}

	if fi.IsDir() {
		_, err := walkDir(root, "", 0, flags, fn)
		return err
	}

	_, err = visitFile(root, path.Base(filepath.ToSlash(root)), 0, flags, fn)
	return err
}

func walkDir(osPath, virtualPath string, depth int, flags Flags, fn Callback) (bool, error) {
	des, err := os.ReadDir(osPath)
	if err != nil {
		return false, liberr.Wrap(liberr.IO, err, "read directory")
	}
	sort.Slice(des, func(i, j int) bool { return des[i].Name() < des[j].Name() })

	for _, de := range des {
		childOS := filepath.Join(osPath, de.Name())
		childVirtual := virtualPath + "/" + de.Name()
		if virtualPath == "" {
			childVirtual = de.Name()
		}

		info, err := de.Info()
		if err != nil {
			return false, liberr.Wrap(liberr.IO, err, "lstat entry")
		}

		if info.Mode()&os.ModeSymlink != 0 {
			if !flags.FollowSymlinks {
				continue
			}
			resolved, err := os.Stat(childOS)
			if err != nil {
				return false, liberr.Wrap(liberr.NotFound, err, "resolve symlink")
			}
			info = resolved
		}

		if info.IsDir() {
			if flags.IncludeDirs {
				stop, err := fn(Entry{Path: childVirtual, IsDir: true, ModTime: info.ModTime(), Depth: depth})
				if err != nil {
					return false, err
				}
				if stop {
					return true, nil
				}
			}
			stop, err := walkDir(childOS, childVirtual, depth, flags, fn)
			if err != nil {
				return false, err
			}
			if stop {
				return true, nil
			}
			continue
		}

		stop, err := visitFile(childOS, childVirtual, depth, flags, fn)
		if err != nil {
			return false, err
		}
		if stop {
			return true, nil
		}
	}

	return false, nil
}

func visitFile(osPath, virtualPath string, depth int, flags Flags, fn Callback) (bool, error) {
	f, err := libfile.Open(osPath, libstm.ModeRead, 0)
	if err != nil {
		return false, liberr.Wrap(liberr.IO, err, "open file")
	}
	return visitStream(libstm.Stream(f), virtualPath, depth, flags, fn)
}

// visitStream is the recursive core: it unwraps compression, then
// archive layers, yielding the final content to fn. s is always closed
// before visitStream returns, satisfying the walker's "owns every
// yielded stream" invariant.
func visitStream(s libstm.Stream, virtualPath string, depth int, flags Flags, fn Callback) (bool, error) {
	if flags.MaxDepth > 0 && depth > flags.MaxDepth {
		_ = s.Close()
		return false, nil
	}

	if flags.DecompressFiles {
		// Archive entries and decoded content cannot seek; materialize
		// them so the magic probe can look at them too.
		if flags.ExpandArchives && !s.Capabilities().Has(libstm.CapSeekAbs) {
			seekable, _, err := ensureSeekable(s)
			if err != nil {
				return false, err
			}
			s = seekable
		}
		algo, derr := detectCompress(s)
		if derr != nil {
			_ = s.Close()
			return false, derr
		}
		if !algo.IsNone() {
			dec, err := libcmp.NewDecoder(s, algo, true)
			if err != nil {
				_ = s.Close()
				return false, err
			}
			return visitStream(libstm.Stream(dec), stripExtension(virtualPath, algo.Extension()), depth+1, flags, fn)
		}
	}

	if flags.ExpandArchives {
		seekable, size, aerr := ensureSeekable(s)
		if aerr != nil {
			_ = s.Close()
			return false, aerr
		}
		s = seekable

		algo, derr := libarc.Detect(s)
		if derr != nil {
			_ = s.Close()
			return false, derr
		}
		if !algo.IsNone() {
			return visitArchive(s, algo, size, virtualPath, depth, flags, fn)
		}
	}

	size, _ := s.Size()
	stop, err := fn(Entry{
		Path:    virtualPath,
		Size:    size,
		ModTime: modTimeOf(s),
		Depth:   depth,
		Stream:  s,
	})
	if cerr := s.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return stop, err
}

// modTimeOf recovers a ModTime from backends that expose one (the file
// backend, via Stat); it returns the zero value for anything else rather
// than fail the walk over a diagnostic nicety.
func modTimeOf(s libstm.Stream) time.Time {
	if fs, ok := s.(*libfile.Stream); ok {
		if info, err := fs.Stat(); err == nil {
			return info.ModTime()
		}
	}
	return time.Time{}
}

func visitArchive(s libstm.Stream, algo libarc.Algorithm, size int64, virtualPath string, depth int, flags Flags, fn Callback) (bool, error) {
	cur, err := libarc.Open(algo, s, size)
	if err != nil {
		_ = s.Close()
		return false, err
	}
	defer cur.Close()

	for {
		ent, nerr := cur.Next()
		if nerr == io.EOF {
			break
		}
		if nerr != nil {
			return false, nerr
		}

		childVirtual := virtualPath + "/" + strings.TrimPrefix(ent.Name, "/")

		if ent.Kind == libarc.KindDir {
			if flags.IncludeDirs {
				stop, err := fn(Entry{Path: childVirtual, IsDir: true, ModTime: ent.ModTime, Depth: depth + 1})
				if err != nil {
					return false, err
				}
				if stop {
					return true, nil
				}
			}
			continue
		}

		es := cur.EntryStream()
		// visitStream may recurse further (a tar inside this zip, a
		// gzip inside that tar); its result must propagate exactly
		// like a direct callback invocation would.
		stop, err := visitStream(es, childVirtual, depth+1, flags, fn)
		if err != nil {
			return false, err
		}
		if stop {
			return true, nil
		}
	}

	return false, nil
}

func detectCompress(s libstm.Stream) (libcmp.Algorithm, error) {
	if s.Capabilities().Has(libstm.CapSeekAbs) {
		return libcmp.Detect(s)
	}
	return libcmp.None, nil
}

// ensureSeekable returns a seekable view of s (materializing into memory
// if necessary) along with its total size, for formats (zip, 7z) whose
// directory structure requires random access.
func ensureSeekable(s libstm.Stream) (libstm.Stream, int64, error) {
	if s.Capabilities().Has(libstm.CapSeekAbs) {
		size, err := s.Size()
		if err != nil {
			return nil, 0, err
		}
		return s, size, nil
	}

	mem := libmem.NewDynamic(nil)
	if _, err := libstm.CopyAll(mem, s); err != nil {
		_ = s.Close()
		return nil, 0, liberr.Wrap(liberr.IO, err, "materialize non-seekable source")
	}
	_ = s.Close()
	return libstm.Stream(mem), int64(len(mem.Bytes())), nil
}

func stripExtension(virtualPath, ext string) string {
	if ext == "" {
		return virtualPath
	}
	return strings.TrimSuffix(virtualPath, ext)
}
