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

// Command streamcat walks a path, transparently decompressing and
// expanding archives along the way, and prints what it finds. It exists mainly to exercise walker, stream/compress, and
// stream/archive together end to end.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vampirefrog/streamio/walker"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("streamcat failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "streamcat [path]",
		Short: "Walk a path, expanding archives and decompressing transparently",
		Args:  cobra.ExactArgs(1),
		RunE:  runWalk,
	}

	root.PersistentFlags().Bool("archives", true, "expand recognized archives (tar, zip, 7z)")
	root.PersistentFlags().Bool("decompress", true, "transparently decompress recognized codecs")
	root.PersistentFlags().Bool("dirs", false, "include directory entries in the output")
	root.PersistentFlags().Bool("follow-symlinks", false, "follow symlinks during traversal")
	root.PersistentFlags().String("log-level", "info", "logrus level: debug, info, warn, error")

	_ = viper.BindPFlags(root.PersistentFlags())
	viper.SetEnvPrefix("STREAMCAT")
	viper.AutomaticEnv()

	return root
}

func runWalk(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)

	flags := walker.Flags{
		ExpandArchives:  viper.GetBool("archives"),
		DecompressFiles: viper.GetBool("decompress"),
		IncludeDirs:     viper.GetBool("dirs"),
		FollowSymlinks:  viper.GetBool("follow-symlinks"),
	}

	return walker.Walk(args[0], flags, func(e walker.Entry) (bool, error) {
		if e.IsDir {
			fmt.Printf("%s/\n", e.Path)
			return false, nil
		}

		log.WithFields(logrus.Fields{"path": e.Path, "size": e.Size}).Debug("visiting entry")
		fmt.Printf("%s\t%d\n", e.Path, e.Size)
		return false, nil
	})
}
