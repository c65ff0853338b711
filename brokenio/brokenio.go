// Package brokenio wraps a reader so that reading goes wrong, for
// testing code that reads files.
// Typical use: you have a reader from a file or a decompressor. You write
// rdr = brokenio.NewReader(rdr).FailAfter(100) and everything works as
// before until 100 bytes have gone through. Then Read returns ErrBroken.
// Empty makes the first read return io.EOF, which is what one sees on a
// zero length file.
package brokenio

import (
	"errors"
	"fmt"
	"io"
)

var ErrBroken = errors.New("brokenio: artificial read failure")

// Reader is an io.Reader with failures. The zero failAt means "never".
type Reader struct {
	rdr     io.Reader
	failAt  int
	doFail  bool
	empty   bool
	nCalled int
	nByte   int
}

// NewReader wraps rIn. Nothing fails until you ask for it.
func NewReader(rIn io.Reader) *Reader { return &Reader{rdr: rIn} }

// FailAfter makes reading fail once n bytes have been delivered.
func (r *Reader) FailAfter(n int) *Reader {
	r.failAt, r.doFail = n, true
	return r
}

// Empty makes the first read look like the end of an empty file.
func (r *Reader) Empty() *Reader {
	r.empty = true
	return r
}

// Read passes reads through, counting calls and bytes, until it is
// time to fail. A read that would cross the failure point is cut short
// and comes back with the error.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.empty {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.doFail {
		left := r.failAt - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err := r.rdr.Read(p)
	r.nByte += n
	if err == nil && r.doFail && r.nByte >= r.failAt {
		err = fmt.Errorf("after %d bytes: %w", r.nByte, ErrBroken)
	}
	return n, err
}

// NByte is how much has gone through.
func (r *Reader) NByte() int { return r.nByte }

// NCalled is the number of calls to Read.
func (r *Reader) NCalled() int { return r.nCalled }
