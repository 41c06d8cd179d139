package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// openContainer opens an OOXML zip container. The stock Deflate
// decompressor is swapped for the klauspost implementation; office archives
// are deflate-heavy and decompression dominates extraction time.
func openContainer(r *bytes.Reader) (*zip.Reader, error) {
	zr, err := zip.NewReader(r, r.Size())
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
	return zr, nil
}

// decodePart unmarshals one named XML part of the container into v.
func decodePart(zr *zip.Reader, name string, v any) error {
	f, err := zr.Open(name)
	if err != nil {
		return fmt.Errorf("open part %s: %w", name, err)
	}
	defer f.Close()

	if err := xml.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode part %s: %w", name, err)
	}
	return nil
}
