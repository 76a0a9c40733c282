// Package source opens dump inputs, decompressing them by file extension.
package source

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const (
	Stdin         = "-"
	ExtensionZstd = ".zst"
	ExtensionGzip = ".gz"
)

type (
	readCloser struct {
		io.Reader
		closers []func() error
	}
)

func (rc readCloser) Close() error {
	var first error
	for _, closer := range rc.closers {
		if err := closer(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open returns the raw dump bytes of path. "-" reads standard input.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		err := errors.Wrap(err, "source.Open error")
		return nil, err
	}
	rc, err := Wrap(file, filepath.Ext(path))
	if err != nil {
		_ = file.Close()
		err := errors.Wrapf(err, "source.Open error: %s", path)
		return nil, err
	}
	return rc, nil
}

// Wrap decompresses r according to the file extension ext. The returned
// closer also closes r.
func Wrap(r io.ReadCloser, ext string) (io.ReadCloser, error) {
	switch strings.ToLower(ext) {
	case ExtensionZstd:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			err := errors.Wrap(err, "source.Wrap error: zstd")
			return nil, err
		}
		closeDecoder := func() error {
			decoder.Close()
			return nil
		}
		return readCloser{Reader: decoder, closers: []func() error{closeDecoder, r.Close}}, nil
	case ExtensionGzip:
		decoder, err := gzip.NewReader(r)
		if err != nil {
			err := errors.Wrap(err, "source.Wrap error: gzip")
			return nil, err
		}
		return readCloser{Reader: decoder, closers: []func() error{decoder.Close, r.Close}}, nil
	default:
		return r, nil
	}
}

// TrimExtension strips a compression extension and the dump extension from
// the base name of path.
func TrimExtension(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{ExtensionZstd, ExtensionGzip} {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			base = base[:len(base)-len(ext)]
			break
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// MatchesExtension reports whether path is a dump with extension ext,
// optionally compressed.
func MatchesExtension(path string, ext string) bool {
	name := strings.ToLower(filepath.Base(path))
	ext = strings.ToLower(ext)
	for _, suffix := range []string{ext, ext + ExtensionZstd, ext + ExtensionGzip} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
