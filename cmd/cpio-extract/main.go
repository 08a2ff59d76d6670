/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

// Command cpio-extract extracts a newc CPIO archive into a target
// directory, or with --debug prints its parsed entries instead.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/holocm/rpmkit/cpio"
	"github.com/holocm/rpmkit/internal/common"
	"github.com/ogier/pflag"
	"github.com/sirupsen/logrus"
)

func main() {
	targetDir := pflag.StringP("extract-dir", "e", "", "directory to extract into")
	debug := pflag.Bool("debug", false, "print parsed entries instead of extracting")
	pflag.Parse()
	if *debug {
		common.Logger.SetLevel(logrus.DebugLevel)
	}

	if pflag.NArg() != 1 {
		fail(fmt.Errorf("usage: cpio-extract <path> -e <target-dir> [--debug]"))
	}
	path := pflag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		fail(err)
	}
	defer f.Close()

	rd := cpio.NewReader(f)

	if *debug {
		for {
			e, err := rd.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				fail(err)
			}
			fmt.Printf("%s\tmode=%o\tuid=%d\tgid=%d\tsize=%d\n", e.Name, e.Mode, e.UID, e.GID, e.FileSize)
			if e.IsTrailer() {
				return
			}
			if err := rd.SkipPayload(e); err != nil {
				fail(err)
			}
		}
	}

	if *targetDir == "" {
		fail(fmt.Errorf("usage: cpio-extract <path> -e <target-dir> [--debug]"))
	}
	if err := cpio.Extract(rd, *targetDir, cpio.ExtractOptions{CreatesDir: true, ChangeOwner: true}); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
