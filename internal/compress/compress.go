/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

// Package compress dispatches the RPM payload compressor by name, the way
// the PayloadCompressor metadata tag names it on the wire: "gzip", "bzip2",
// "zstd", "xz", or "lzma". Dispatch is by name string, never by a Go type
// switch, matching spec.md §4.D/§6.
package compress

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os/exec"

	"github.com/holocm/rpmkit/internal/common"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// Open returns a streaming decompressor for the named compressor, reading
// from r. The caller must Close the result.
func Open(name string, r io.Reader) (io.ReadCloser, error) {
	switch name {
	case "gzip":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compress: opening gzip payload: %w", err)
		}
		return gr, nil
	case "bzip2":
		return io.NopCloser(bzip2.NewReader(r)), nil
	case "zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compress: opening zstd payload: %w", err)
		}
		return zr.IOReadCloser(), nil
	case "xz":
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compress: opening xz payload: %w", err)
		}
		return io.NopCloser(xr), nil
	case "lzma":
		lr, err := lzma.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compress: opening lzma payload: %w", err)
		}
		return io.NopCloser(lr), nil
	default:
		return nil, fmt.Errorf("compress: unknown payload compressor %q: %w", name, common.ErrUnsupported)
	}
}

// Create returns a streaming compressor for the named compressor, writing
// to w. The caller must Close the result to flush trailing state.
func Create(name string, w io.Writer) (io.WriteCloser, error) {
	switch name {
	case "gzip":
		return gzip.NewWriter(w), nil
	case "bzip2":
		return newBzip2Writer(w)
	case "zstd":
		return zstd.NewWriter(w)
	case "xz":
		return xz.NewWriter(w)
	case "lzma":
		return lzma.NewWriter(w)
	default:
		return nil, fmt.Errorf("compress: unknown payload compressor %q: %w", name, common.ErrUnsupported)
	}
}

// bzip2Writer shells out to the bzip2 binary, the way the teacher's own
// payload writer shells out to xz: the standard library only implements a
// bzip2 reader, not a writer.
type bzip2Writer struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	done  chan error
}

func newBzip2Writer(w io.Writer) (io.WriteCloser, error) {
	cmd := exec.Command("bzip2", "--compress", "--stdout")
	cmd.Stdout = w
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("compress: preparing bzip2 subprocess: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("compress: starting bzip2 subprocess: %w", err)
	}
	done := make(chan error, 1)
	bw := &bzip2Writer{cmd: cmd, stdin: stdin, done: done}
	go func() { done <- cmd.Wait() }()
	return bw, nil
}

func (b *bzip2Writer) Write(p []byte) (int, error) {
	return b.stdin.Write(p)
}

func (b *bzip2Writer) Close() error {
	if err := b.stdin.Close(); err != nil {
		return fmt.Errorf("compress: closing bzip2 stdin: %w", err)
	}
	if err := <-b.done; err != nil {
		return fmt.Errorf("compress: bzip2 subprocess failed: %w", err)
	}
	return nil
}
