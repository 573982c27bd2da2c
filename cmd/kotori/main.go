package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/catatsuy/kotori"
	"github.com/catatsuy/kotori/internal/config"
	"github.com/catatsuy/kotori/internal/server"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := &cli.Command{
		Name:      "kotori",
		Usage:     "serves statically configured routes through a prefix-trie dispatcher",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			serveCommand(stderr),
			routesCommand(stdout),
		},
	}
	if err := cmd.Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "kotori: %v\n", err)
		return 1
	}
	return 0
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      "config",
		Aliases:   []string{"c"},
		Usage:     "TOML file with listener settings and routes; the demo routes are used when omitted",
		TakesFile: true,
	}
}

func serveCommand(stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "accept connections and answer them from the route table",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "address to listen on, overriding the config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error, overriding the config file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			if cmd.IsSet("listen") {
				cfg.Listen = cmd.String("listen")
			}
			if cmd.IsSet("log-level") {
				cfg.LogLevel = cmd.String("log-level")
			}

			logger, err := newLogger(stderr, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			table := kotori.NewSync()
			table.Use(server.AccessLog(logger))
			if err := server.Install(table, cfg.Routes); err != nil {
				return err
			}
			logger.Info("routes installed", zap.Strings("routes", table.Routes()))

			srv := server.New(table,
				server.WithLogger(logger),
				server.WithReadTimeout(cfg.ReadTimeout.Duration),
			)
			return srv.ListenAndServe(ctx, cfg.Listen)
		},
	}
}

func routesCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "routes",
		Usage: "print the configured route keys and the trie they build",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "tree",
				Usage: "also print the trie",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			table := kotori.NewSync()
			if err := server.Install(table, cfg.Routes); err != nil {
				return err
			}
			for _, key := range table.Routes() {
				fmt.Fprintln(stdout, key)
			}
			if cmd.Bool("tree") {
				fmt.Fprintln(stdout)
				fmt.Fprint(stdout, table)
			}
			return nil
		},
	}
}

func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}
