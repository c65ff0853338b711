// Test Zwrap
package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrew-torda/ssdssp/pdb/zwrap"
)

const says = "andrewsays"

// both of these are "andrewsayshello\n", but the first is compressed.
type gztest struct {
	data    []byte
	gzipped bool
}

var gztests = []gztest{
	{[]byte{
		0x1f, 0x8b, 0x08, 0x00, 0xb6, 0xf1, 0xa0, 0x5b, 0x00, 0x03,
		0x4b, 0xcc, 0x4b, 0x29, 0x4a, 0x2d, 0x2f, 0x4e, 0xac, 0x2c,
		0xce, 0x48, 0xcd, 0xc9, 0xc9, 0x07, 0x00, 0x44, 0xa8, 0x66,
		0x89, 0x0f, 0x00, 0x00, 0x00},
		true,
	},
	{[]byte{
		0x61, 0x6e, 0x64, 0x72, 0x65, 0x77, 0x73, 0x61,
		0x79, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x0a},
		false,
	},
}

// writeToTmp writes bytes to a temporary file and returns it rewound.
func writeToTmp(t *testing.T, data []byte) *os.File {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "del_me_testing")
	if err := os.WriteFile(fname, data, 0o600); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	return fp
}

func checkRead(t *testing.T, r io.Reader) {
	t.Helper()
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if !bytes.HasPrefix(b, []byte(says)) {
		t.Errorf("wrong string: %q", b)
	}
}

func TestWrap(t *testing.T) {
	for _, x := range gztests {
		fp := writeToTmp(t, x.data)
		r, err := zwrap.Wrap(fp)
		if err != nil {
			if x.gzipped {
				t.Error("Fail on correctly gzipped file")
			}
			fp.Close()
			continue
		}
		if !x.gzipped {
			t.Error("no error on file that is not compressed")
		}
		checkRead(t, r)
		if err := r.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

// WrapMaybe should not fail since it guesses if the file is compressed.
func TestWrapMaybe(t *testing.T) {
	for _, x := range gztests {
		fp := writeToTmp(t, x.data)
		r, err := zwrap.WrapMaybe(fp)
		if err != nil {
			t.Fatalf("Fail on file where compressed was %v", x.gzipped)
		}
		if r.Compressed() != x.gzipped {
			t.Errorf("compressed %t, want %t", r.Compressed(), x.gzipped)
		}
		checkRead(t, r)
		if err := r.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

func TestWrapBytes(t *testing.T) {
	for _, x := range gztests {
		if zwrap.IsGzip(x.data) != x.gzipped {
			t.Errorf("IsGzip wrong for compressed = %t", x.gzipped)
		}
		r, err := zwrap.WrapBytes(x.data)
		if err != nil {
			t.Fatal(err)
		}
		checkRead(t, r)
		r.Close()
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(says + " more"))
	zw.Close()
	r, err := zwrap.WrapBytes(buf.Bytes())
	if err != nil || !r.Compressed() {
		t.Fatalf("fresh gzip data not recognised %v", err)
	}
	checkRead(t, r)

	if _, err := zwrap.WrapBytes([]byte{0x1f, 0x8b, 0, 0}); err == nil {
		t.Error("broken gzip header should give an error")
	}
	if r, err := zwrap.WrapBytes(nil); err != nil || r.Compressed() {
		t.Error("empty input should be read as plain")
	}
}
