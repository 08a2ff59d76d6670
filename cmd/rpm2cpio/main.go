/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

// Command rpm2cpio decompresses an RPM's payload to a raw newc CPIO file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/holocm/rpmkit/rpm"
	"github.com/ogier/pflag"
)

func main() {
	output := pflag.String("output", "", "path to write the decompressed CPIO archive to")
	pflag.Parse()

	if pflag.NArg() != 1 || *output == "" {
		fail(fmt.Errorf("usage: rpm2cpio <rpm-path> --output <path>"))
	}
	rpmPath := pflag.Arg(0)

	in, err := os.Open(rpmPath)
	if err != nil {
		fail(err)
	}
	defer in.Close()

	c, err := rpm.Open(in)
	if err != nil {
		fail(err)
	}

	payload, err := c.PayloadReader(in)
	if err != nil {
		fail(err)
	}
	defer payload.Close()

	out, err := os.Create(*output)
	if err != nil {
		fail(err)
	}
	defer out.Close()

	if _, err := io.Copy(out, payload); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
