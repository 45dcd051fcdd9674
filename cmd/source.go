package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/lldef/grammar"
	"github.com/arr-ai/lldef/parse"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// readSource reads the grammar file at path, or stdin for "" and "-".
// Compressed sources are decompressed.
func readSource(path string, stdin io.Reader) ([]byte, error) {
	var buf []byte
	var err error
	switch path {
	case "", "-":
		buf, err = io.ReadAll(stdin)
	default:
		buf, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading grammar: %w", err)
	}
	return decompress(buf)
}

func decompress(buf []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(buf, gzipMagic):
		logrus.Debug("grammar source is gzip compressed")
		r, err := gzip.NewReader(bytes.NewReader(buf))
		if err != nil {
			return nil, fmt.Errorf("reading gzip grammar: %w", err)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading gzip grammar: %w", err)
		}
		return out, nil
	case bytes.HasPrefix(buf, zstdMagic):
		logrus.Debug("grammar source is zstd compressed")
		d, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer d.Close()
		out, err := d.DecodeAll(buf, nil)
		if err != nil {
			return nil, fmt.Errorf("reading zstd grammar: %w", err)
		}
		return out, nil
	}
	return buf, nil
}

func loadGrammar(c *cli.Context) (*grammar.Grammar, error) {
	setVerbosity(c)
	src, err := readSource(grammarPath(c), os.Stdin)
	if err != nil {
		return nil, err
	}
	return grammar.Load(src)
}

func loadItems(c *cli.Context) ([]parse.Item, error) {
	setVerbosity(c)
	src, err := readSource(grammarPath(c), os.Stdin)
	if err != nil {
		return nil, err
	}
	return parse.Extract(src)
}
