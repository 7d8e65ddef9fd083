package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/signadot/jsonv/profile"
)

const lsName = "jv-lsp"

var (
	version = "0.0.1"
)

type Config struct {
	Gops    bool   `cli:"name=gops desc='start a gops diagnostics agent'"`
	Log     string `cli:"name=log desc='write debug logs to the given file'"`
	Profile string `cli:"name=p aliases=profile desc='formatter profile from the config file'"`
	Config  string `cli:"name=config desc='config file (default ./jv.yaml or ~/.config/jv/jv.yaml)'"`

	Command *cli.Command
}

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, lsName).
		WithSynopsis("jv-lsp [opts]").
		WithDescription("jv-lsp is a language server for JSON documents, speaking LSP on stdio.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

func serve(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("gops agent failed: %w", err)
		}
		defer agent.Close()
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	pc, err := profile.Load(cfg.Config)
	if err != nil {
		return err
	}
	p, err := pc.Get(cfg.Profile)
	if err != nil {
		return err
	}
	if _, err := p.Formatter(); err != nil {
		return err
	}

	ctx := context.Background()
	server := NewServer(p, logger)
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  cc.In,
		write: cc.Out,
	})
	ctx, conn, client := protocol.NewServer(ctx, server, stream, logger)
	server.client = client
	logger.Info("serving", zap.String("config", pc.File), zap.String("profile", cfg.Profile))
	select {
	case <-conn.Done():
	case <-ctx.Done():
	}
	return conn.Err()
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewDevelopmentConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
