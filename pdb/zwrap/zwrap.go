// Package zwrap takes a file pointer or a block of bytes and optionally
// wraps it so reading gives the decompressed contents. Upon calling
// Close, the decompressor will be closed, followed by the underlying
// file.
package zwrap

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
)

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying ReadCloser.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Compressed says if reads are being decompressed.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Wrap takes a source like a file pointer and wraps it in a gzip
// reader. It fails if the source is not gzipped.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	var fpz FpGzip
	var err error
	fpz.fp = fp
	fpz.zrdr, err = gzip.NewReader(fpz.fp)
	return &fpz, err
}

// ReadSeekCloser is a file we can rewind if it turns out not to be
// compressed.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary.
// If you pass in something which can seek, you get back a ReadCloser
// which cannot seek.
func WrapMaybe(fpIn ReadSeekCloser) (*FpGzip, error) {
	if out, err := Wrap(fpIn); err == nil {
		return out, nil
	}
	_, err := fpIn.Seek(0, io.SeekStart)
	return &FpGzip{fp: fpIn}, err
}

// gzMagic starts every gzip stream.
var gzMagic = []byte{0x1f, 0x8b}

// IsGzip looks at the first two bytes.
func IsGzip(b []byte) bool { return bytes.HasPrefix(b, gzMagic) }

// WrapBytes is for a whole file that is already in memory or mapped. If
// it starts like a gzip file, it must be one.
func WrapBytes(b []byte) (*FpGzip, error) {
	src := io.NopCloser(bytes.NewReader(b))
	if !IsGzip(b) {
		return &FpGzip{fp: src}, nil
	}
	return Wrap(src)
}
