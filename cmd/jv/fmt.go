package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func fmtMain(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if cfg.Write {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		args = []string{"-"}
	}
	for _, file := range args {
		if err := fmtFile(cfg, cc, cc.Out, file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, w io.Writer, file string) error {
	in, err := readArg(cc, file)
	if err != nil {
		return err
	}
	docs, err := decodeDocs(in)
	if err != nil {
		return err
	}
	if !cfg.Write || file == "-" {
		return encodeDocs(cfg.MainConfig, w, docs)
	}
	buf := bytes.NewBuffer(nil)
	if err := encodeDocs(cfg.MainConfig, buf, docs); err != nil {
		return err
	}
	if bytes.Equal(buf.Bytes(), in) {
		return nil
	}
	st, err := os.Stat(file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, buf.Bytes(), st.Mode().Perm()); err != nil {
		return err
	}
	theLog.Info("formatted", "file", file)
	return nil
}
