/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package rpm

import (
	"bytes"
	"fmt"
	"io"

	"github.com/holocm/rpmkit/internal/compress"
	"github.com/holocm/rpmkit/internal/wire"
)

// Container owns one Lead, the two tag stores, and the byte offset marking
// the start of the compressed CPIO payload (spec.md §3 "Container").
type Container struct {
	Lead       *Lead
	Signature  *TagStore[SignatureNamespace]
	Metadata   *TagStore[MetadataNamespace]
	payloadOff int64
}

// countingReader wraps an io.Reader and tracks the total number of bytes
// read through it, so Open can align to 8-byte boundaries measured from the
// start of the file (spec.md §4.D step 3).
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// Open implements spec.md §4.D's open(path): read and validate the lead,
// read the signature store, align to 8 bytes, read the metadata store,
// align to 8 bytes again, and capture the resulting position as the
// payload offset.
func Open(r io.Reader) (*Container, error) {
	cr := &countingReader{r: r}

	lead, err := ReadLead(cr)
	if err != nil {
		return nil, err
	}

	sig, err := ReadStore[SignatureNamespace](cr)
	if err != nil {
		return nil, err
	}
	if err := wire.AlignSkip(cr, int(cr.n), 8); err != nil {
		return nil, fmt.Errorf("rpm: aligning after signature store: %w", err)
	}

	meta, err := ReadStore[MetadataNamespace](cr)
	if err != nil {
		return nil, err
	}
	if err := wire.AlignSkip(cr, int(cr.n), 8); err != nil {
		return nil, fmt.Errorf("rpm: aligning after metadata store: %w", err)
	}

	return &Container{
		Lead:       lead,
		Signature:  sig,
		Metadata:   meta,
		payloadOff: cr.n,
	}, nil
}

// PayloadOffset returns the byte offset, from the start of the file, at
// which the compressed CPIO payload begins.
func (c *Container) PayloadOffset() int64 {
	return c.payloadOff
}

// payloadCompressorName looks up the PayloadCompressor metadata tag,
// defaulting to "gzip" as spec.md §4.D/§6 specifies.
func (c *Container) payloadCompressorName() string {
	if v, ok := c.Metadata.Values[TagPayloadCompressor]; ok {
		if s, ok := v.AsString(); ok && s != "" {
			return s
		}
	}
	return "gzip"
}

// PayloadReader seeks src to the captured payload offset and wraps the
// remainder in the streaming decompressor matching the PayloadCompressor
// metadata tag (spec.md §4.D "Payload read").
func (c *Container) PayloadReader(src io.ReadSeeker) (io.ReadCloser, error) {
	if _, err := src.Seek(c.payloadOff, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rpm: seeking to payload offset: %w", err)
	}
	name := c.payloadCompressorName()
	rc, err := compress.Open(name, src)
	if err != nil {
		return nil, err
	}
	return rc, nil
}

// WriteTo implements spec.md §4.D's "Write head": emit the lead, then the
// signature store, then the metadata store, each via WriteStore (which
// self-pads to 8 bytes), and records the resulting position as the payload
// offset so a subsequent PayloadWriter call appends at the right place.
func (c *Container) WriteTo(w io.Writer) error {
	var head bytes.Buffer
	if err := c.Lead.WriteTo(&head); err != nil {
		return err
	}
	if err := WriteStore[SignatureNamespace](&head, c.Signature); err != nil {
		return err
	}
	if err := WriteStore[MetadataNamespace](&head, c.Metadata); err != nil {
		return err
	}
	if _, err := w.Write(head.Bytes()); err != nil {
		return fmt.Errorf("rpm: writing container head: %w", err)
	}
	c.payloadOff = int64(head.Len())
	return nil
}

// PayloadWriter wraps sink in the streaming compressor matching the
// PayloadCompressor metadata tag (spec.md §4.D "Payload write"). The
// caller must close the returned writer to flush the compressor.
func (c *Container) PayloadWriter(sink io.Writer) (io.WriteCloser, error) {
	return compress.Create(c.payloadCompressorName(), sink)
}
