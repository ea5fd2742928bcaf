package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/message"

	"ratgen/internal/config"
	ratgenapi "ratgen/pkg/ratgen"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	cfg, err := config.ParseEnv()
	if err != nil {
		return err
	}

	switch args[0] {
	case "cross":
		return runCross(ctx, cfg, args[1:], out, errOut)
	case "colony":
		return runColony(ctx, cfg, args[1:], out, errOut)
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: ratgenctl <cross|colony> [flags]", msg)
}

// bindStoreFlags registers the flags every store-backed command shares.
func bindStoreFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.StoreKind, "store", cfg.StoreKind, "store backend: memory|sqlite")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "sqlite database path")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log progress to stderr")
}

// parseInterspersed lets positional arguments appear before, between or
// after flags.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func newLogger(cfg config.Config, errOut io.Writer) *log.Logger {
	if !cfg.Verbose || errOut == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(errOut, "", 0)
}

func newPrinter(cfg config.Config) (*message.Printer, error) {
	tag, err := cfg.Language()
	if err != nil {
		return nil, err
	}
	return message.NewPrinter(tag), nil
}

func openClient(ctx context.Context, cfg config.Config, logger *log.Logger) (*ratgenapi.Client, error) {
	client, err := ratgenapi.New(ratgenapi.Options{StoreKind: cfg.StoreKind, DBPath: cfg.DBPath})
	if err != nil {
		return nil, err
	}
	if err := client.Init(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	logger.Printf("store=%s db_path=%s", cfg.StoreKind, cfg.DBPath)
	return client, nil
}
