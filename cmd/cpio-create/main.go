/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

// Command cpio-create bundles the given files into a newc CPIO archive.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/holocm/rpmkit/cpio"
	"github.com/ogier/pflag"
)

func main() {
	outFile := pflag.String("file", "", "path of the archive to create")
	pflag.Parse()

	if *outFile == "" || pflag.NArg() == 0 {
		fail(fmt.Errorf("usage: cpio-create --file <out> <path>..."))
	}

	tmpPath := *outFile + ".tmp-" + uuid.NewString()
	out, err := os.Create(tmpPath)
	if err != nil {
		fail(err)
	}
	defer os.Remove(tmpPath)

	b := cpio.NewBuilder(out)
	for _, path := range pflag.Args() {
		if err := b.AddRaw(path); err != nil {
			out.Close()
			fail(err)
		}
	}
	if err := b.Finalize(); err != nil {
		out.Close()
		fail(err)
	}
	if err := out.Close(); err != nil {
		fail(err)
	}
	if err := os.Rename(tmpPath, *outFile); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
