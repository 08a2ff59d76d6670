/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

// Command rpm-info prints formatted metadata about an RPM package.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/holocm/rpmkit/internal/common"
	"github.com/holocm/rpmkit/rpm"
	"github.com/ogier/pflag"
	"github.com/sirupsen/logrus"
)

func main() {
	debug := pflag.Bool("debug", false, "enable debug logging")
	pflag.Parse()
	if *debug {
		common.Logger.SetLevel(logrus.DebugLevel)
	}

	if pflag.NArg() != 1 {
		fail(fmt.Errorf("usage: rpm-info <path> [--debug]"))
	}
	path := pflag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		fail(err)
	}
	defer f.Close()

	c, err := rpm.Open(f)
	if err != nil {
		fail(err)
	}

	fmt.Printf("Lead:\n")
	fmt.Printf("  Version:  %s\n", c.Lead.Version)
	fmt.Printf("  Kind:     %s\n", c.Lead.Kind)
	fmt.Printf("  Name:     %s\n", c.Lead.NameVersionRelease)
	fmt.Println()
	fmt.Printf("Metadata:\n")
	printField(c, "Name", rpm.TagName)
	printField(c, "Version", rpm.TagVersion)
	printField(c, "Release", rpm.TagRelease)
	printField(c, "Summary", rpm.TagSummary)
	printField(c, "License", rpm.TagLicense)
	printField(c, "Vendor", rpm.TagVendor)
	printField(c, "Group", rpm.TagGroup)
	printField(c, "Os", rpm.TagOs)
	printField(c, "Arch", rpm.TagArch)
	printField(c, "Size", rpm.TagSize)
	printField(c, "BuildTime", rpm.TagBuildTime)
	fmt.Printf("  PayloadOffset: %d\n", c.PayloadOffset())

	if *debug {
		payload, err := c.PayloadReader(f)
		if err != nil {
			fail(err)
		}
		defer payload.Close()
		sum, err := hashPayload(payload)
		if err != nil {
			fail(err)
		}
		fmt.Printf("  PayloadXXHash: %016x\n", sum)
	}
}

// hashPayload is a debug-only aid for spotting payload differences across
// rebuilds; it is never part of the on-wire format.
func hashPayload(r io.Reader) (uint64, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

func printField(c *rpm.Container, label string, tag uint32) {
	v, ok := c.Metadata.Values[tag]
	if !ok {
		return
	}
	s, ok := v.AsString()
	if !ok {
		return
	}
	fmt.Printf("  %-10s %s\n", label+":", s)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
