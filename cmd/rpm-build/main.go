/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

// Command rpm-build turns a declarative TOML package definition into a
// complete RPM: it assembles a newc CPIO payload from the definition's
// file/directory/symlink entries, compresses it, fills in the signature and
// metadata tag stores, and writes lead+stores+payload atomically.
package main

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/holocm/rpmkit/cpio"
	"github.com/holocm/rpmkit/internal/buildconfig"
	"github.com/holocm/rpmkit/internal/common"
	"github.com/holocm/rpmkit/rpm"
	"github.com/ogier/pflag"
	"github.com/sirupsen/logrus"
)

func main() {
	defFlag := pflag.String("def", "", "path of the TOML package definition to build")
	output := pflag.String("output", "", "path of the RPM to write (default: <name>-<version>-<release>.rpm)")
	compressor := pflag.String("compressor", "gzip", "payload compressor: gzip, bzip2, zstd, xz, or lzma")
	arch := pflag.Uint("arch-id", 1, "numeric architecture id to store in the lead and ARCH tag")
	debug := pflag.Bool("debug", false, "enable debug logging")
	pflag.Parse()
	if *debug {
		common.Logger.SetLevel(logrus.DebugLevel)
	}

	if *defFlag == "" {
		fail(fmt.Errorf("usage: rpm-build --def <definition.toml> [--output <path>] [--compressor <name>]"))
	}
	defPath := *defFlag

	f, err := os.Open(defPath)
	if err != nil {
		fail(err)
	}
	def, err := buildconfig.Parse(f, filepath.Dir(defPath))
	f.Close()
	if err != nil {
		fail(err)
	}

	payload, uncompressedSize, err := buildPayload(def)
	if err != nil {
		fail(err)
	}

	meta := rpm.NewTagStore[rpm.MetadataNamespace]()
	meta.Values[rpm.TagName] = rpm.NewString(def.Package.Name)
	meta.Values[rpm.TagVersion] = rpm.NewString(def.Package.Version)
	meta.Values[rpm.TagRelease] = rpm.NewString(fmt.Sprintf("%d", def.Package.Release))
	if def.Package.Summary != "" {
		meta.Values[rpm.TagSummary] = rpm.NewI18nString(def.Package.Summary)
	}
	if def.Package.Description != "" {
		meta.Values[rpm.TagDescription] = rpm.NewI18nString(def.Package.Description)
	}
	if def.Package.License != "" {
		meta.Values[rpm.TagLicense] = rpm.NewString(def.Package.License)
	}
	meta.Values[rpm.TagOs] = rpm.NewString("linux")
	meta.Values[rpm.TagArch] = rpm.NewInt32(int32(*arch))
	meta.Values[rpm.TagSize] = rpm.NewInt32(int32(uncompressedSize))
	meta.Values[rpm.TagBuildTime] = rpm.NewInt32(int32(time.Now().Unix()))
	meta.Values[rpm.TagPayloadFormat] = rpm.NewString("cpio")
	meta.Values[rpm.TagPayloadCompressor] = rpm.NewString(*compressor)

	var metaBuf bytes.Buffer
	if err := rpm.WriteStore[rpm.MetadataNamespace](&metaBuf, meta); err != nil {
		fail(err)
	}

	sha1Sum := sha1.Sum(metaBuf.Bytes())
	md5Sum := md5.Sum(metaBuf.Bytes())

	sig := rpm.NewTagStore[rpm.SignatureNamespace]()
	sig.Values[rpm.SigTagPayloadSize] = rpm.NewInt32(int32(payload.Len()))
	sig.Values[rpm.SigTagSize] = rpm.NewInt32(int32(metaBuf.Len() + payload.Len()))
	sig.Values[rpm.SigTagSHA1] = rpm.NewString(hex.EncodeToString(sha1Sum[:]))
	sig.Values[rpm.SigTagMD5] = rpm.NewBin(md5Sum[:])

	lead := rpm.NewLead(
		fmt.Sprintf("%s-%s-%d", def.Package.Name, def.Package.Version, def.Package.Release),
		uint16(*arch), 1, rpm.KindBinaryPackage,
	)

	container := &rpm.Container{Lead: lead, Signature: sig, Metadata: meta}

	outPath := *output
	if outPath == "" {
		outPath = fmt.Sprintf("%s-%s-%d.rpm", def.Package.Name, def.Package.Version, def.Package.Release)
	}
	if err := writeAtomically(outPath, container, payload.Bytes()); err != nil {
		fail(err)
	}
}

// buildPayload assembles a newc CPIO archive from the definition's entries,
// in sorted path order for reproducibility, and returns it alongside its
// uncompressed byte length.
func buildPayload(def *buildconfig.Definition) (*bytes.Buffer, int, error) {
	var archive bytes.Buffer
	b := cpio.NewBuilder(&archive)

	type pending struct {
		path string
		add  func() error
	}
	var entries []pending

	for _, d := range def.Directory {
		d := d
		entries = append(entries, pending{path: d.Path, add: func() error {
			mode, err := buildconfig.ParseMode(d.Mode, 0755)
			if err != nil {
				return err
			}
			b.AddEntry(cpio.Entry{
				Name:  "." + d.Path,
				Mode:  0o040000 | mode,
				UID:   d.Owner,
				GID:   d.Group,
				Nlink: 2,
				Mtime: uint32(time.Now().Unix()),
			}, readCloserOf(nil))
			return nil
		}})
	}

	for _, fsec := range def.File {
		fsec := fsec
		entries = append(entries, pending{path: fsec.Path, add: func() error {
			mode, err := buildconfig.ParseMode(fsec.Mode, 0644)
			if err != nil {
				return err
			}
			content, err := buildconfig.ReadFileContent(fsec)
			if err != nil {
				return err
			}
			e := cpio.Entry{
				Name:     "." + fsec.Path,
				Mode:     0o100000 | mode,
				UID:      fsec.Owner,
				GID:      fsec.Group,
				Nlink:    1,
				Mtime:    uint32(time.Now().Unix()),
				FileSize: uint32(len(content)),
			}
			b.AddEntry(e, readCloserOf(content))
			return nil
		}})
	}

	for _, s := range def.Symlink {
		s := s
		entries = append(entries, pending{path: s.Path, add: func() error {
			b.AddEntry(cpio.Entry{
				Name:     "." + s.Path,
				Mode:     0o120000 | 0777,
				Nlink:    1,
				Mtime:    uint32(time.Now().Unix()),
				FileSize: uint32(len(s.Target)),
			}, readCloserOf([]byte(s.Target)))
			return nil
		}})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].path < entries[j].path })
	for _, p := range entries {
		if err := p.add(); err != nil {
			return nil, 0, err
		}
	}

	if err := b.Finalize(); err != nil {
		return nil, 0, err
	}
	return &archive, archive.Len(), nil
}

// readCloserOf returns an open func suitable for cpio.Builder.AddEntry that
// serves content from an in-memory byte slice.
func readCloserOf(content []byte) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(content)), nil
	}
}

func writeAtomically(path string, c *rpm.Container, payload []byte) error {
	tmpPath := path + ".tmp-" + uuid.NewString()
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("rpm-build: creating temporary file: %w", err)
	}
	defer os.Remove(tmpPath)

	if err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}

	pw, err := c.PayloadWriter(f)
	if err != nil {
		f.Close()
		return err
	}
	if _, err := pw.Write(payload); err != nil {
		pw.Close()
		f.Close()
		return fmt.Errorf("rpm-build: writing payload: %w", err)
	}
	if err := pw.Close(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
