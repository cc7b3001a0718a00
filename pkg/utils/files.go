package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
	"github.com/cespare/xxhash"
)

// LoadFile loads the given file and performs decompression if
// necessary. Archives are expected to hold the image as their first
// entry.
func LoadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var decoder io.Reader
	switch filepath.Ext(filename) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		var zipReader *zip.Reader
		zipReader, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		decoder, err = zipReader.File[0].Open()
	case ".7z":
		var szReader *sevenzip.Reader
		szReader, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		decoder, err = szReader.File[0].Open()
	default:
		// plain image, return the data as is
		return data, nil
	}

	if err != nil {
		return nil, err
	}

	return io.ReadAll(decoder)
}

// Hash returns the xxhash-64 digest of the given data as a hex string,
// used to identify ROM images in logs.
func Hash(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
