package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonv/codec"
	"github.com/signadot/jsonv/stream"
	"github.com/signadot/jsonv/value"

	"github.com/scott-cotton/cli"
)

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getDocs decodes every top level value in path, "-" meaning the command
// input.
func getDocs(cc *cli.Context, path string) ([]*value.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return decodeDocs(d)
}

func decodeDocs(d []byte) ([]*value.Node, error) {
	dec, err := stream.NewDecoder(bytes.NewReader(d))
	if err != nil {
		return nil, err
	}
	return codec.DecodeAll(dec, false)
}

// getDoc decodes path, which must hold exactly one value.
func getDoc(cc *cli.Context, path string) (*value.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return codec.Unmarshal(d)
}

// encodeDocs writes docs to w as root values of one encoder, so they are
// separated by the formatter's line break. A final line break is added.
func encodeDocs(cfg *MainConfig, w io.Writer, docs []*value.Node) error {
	f, err := cfg.formatter()
	if err != nil {
		return err
	}
	enc, err := stream.NewEncoder(w, cfg.streamOpts(w, f)...)
	if err != nil {
		return err
	}
	for i, doc := range docs {
		if err := codec.Encode(enc, doc); err != nil {
			return fmt.Errorf("error encoding document %d: %w", i, err)
		}
	}
	if len(docs) == 0 {
		return nil
	}
	if err := enc.WriteRaw(f.LineBreakString()); err != nil {
		return err
	}
	return enc.Flush()
}
