package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"ratgen/internal/config"
	"ratgen/internal/model"
)

func runColony(ctx context.Context, cfg config.Config, args []string, out, errOut io.Writer) error {
	if len(args) == 0 {
		return colonyUsageError("missing colony command")
	}
	switch args[0] {
	case "add":
		return runColonyAdd(ctx, cfg, args[1:], out, errOut)
	case "list":
		return runColonyList(ctx, cfg, args[1:], out, errOut)
	case "show":
		return runColonyShow(ctx, cfg, args[1:], out, errOut)
	case "remove":
		return runColonyRemove(ctx, cfg, args[1:], out, errOut)
	case "import":
		return runColonyImport(ctx, cfg, args[1:], out, errOut)
	default:
		return colonyUsageError(fmt.Sprintf("unknown colony command: %s", args[0]))
	}
}

// requirePersistentStore rejects colony changes that would be lost when the
// process exits.
func requirePersistentStore(cfg config.Config) error {
	if cfg.StoreKind == "memory" {
		return colonyUsageError("colony changes need a persistent store; use --store sqlite")
	}
	return nil
}

func colonyUsageError(msg string) error {
	return fmt.Errorf("%s\nusage: ratgenctl colony <add|list|show|remove|import> [flags]", msg)
}

func runColonyAdd(ctx context.Context, cfg config.Config, args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("colony add", flag.ContinueOnError)
	fs.SetOutput(errOut)
	bindStoreFlags(fs, &cfg)
	name := fs.String("name", "", "animal name")
	sex := fs.String("sex", model.SexUnknown, "sex: male|female|unknown")
	genotype := fs.String("genotype", "", "genotype, e.g. 'A/a; P/p'")
	notes := fs.String("notes", "", "free-form notes")
	if _, err := parseInterspersed(fs, args); err != nil {
		return err
	}

	if err := requirePersistentStore(cfg); err != nil {
		return err
	}
	client, err := openClient(ctx, cfg, newLogger(cfg, errOut))
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	animal, err := client.AddAnimal(ctx, model.Animal{Name: *name, Sex: *sex, Genotype: *genotype, Notes: *notes})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "added name=%s sex=%s genotype=%q\n", animal.Name, animal.Sex, animal.Genotype)
	return err
}

func runColonyList(ctx context.Context, cfg config.Config, args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("colony list", flag.ContinueOnError)
	fs.SetOutput(errOut)
	bindStoreFlags(fs, &cfg)
	jsonOut := fs.Bool("json", false, "emit colony as JSON")
	if _, err := parseInterspersed(fs, args); err != nil {
		return err
	}

	client, err := openClient(ctx, cfg, newLogger(cfg, errOut))
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	animals, err := client.ListAnimals(ctx)
	if err != nil {
		return err
	}
	if *jsonOut {
		if animals == nil {
			animals = []model.Animal{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(animals)
	}
	if len(animals) == 0 {
		_, err := fmt.Fprintln(out, "no animals found")
		return err
	}
	for _, a := range animals {
		if _, err := fmt.Fprintf(out, "name=%s sex=%s genotype=%q\n", a.Name, a.Sex, a.Genotype); err != nil {
			return err
		}
	}
	return nil
}

func runColonyShow(ctx context.Context, cfg config.Config, args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("colony show", flag.ContinueOnError)
	fs.SetOutput(errOut)
	bindStoreFlags(fs, &cfg)
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return colonyUsageError("colony show expects one NAME")
	}

	client, err := openClient(ctx, cfg, newLogger(cfg, errOut))
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	animal, err := client.GetAnimal(ctx, positional[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(animal)
}

func runColonyRemove(ctx context.Context, cfg config.Config, args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("colony remove", flag.ContinueOnError)
	fs.SetOutput(errOut)
	bindStoreFlags(fs, &cfg)
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return colonyUsageError("colony remove expects one NAME")
	}

	if err := requirePersistentStore(cfg); err != nil {
		return err
	}
	client, err := openClient(ctx, cfg, newLogger(cfg, errOut))
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.RemoveAnimal(ctx, positional[0]); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "removed name=%s\n", positional[0])
	return err
}

func runColonyImport(ctx context.Context, cfg config.Config, args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("colony import", flag.ContinueOnError)
	fs.SetOutput(errOut)
	bindStoreFlags(fs, &cfg)
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return colonyUsageError("colony import expects one roster FILE")
	}

	if err := requirePersistentStore(cfg); err != nil {
		return err
	}
	logger := newLogger(cfg, errOut)
	client, err := openClient(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	n, err := client.ImportRoster(ctx, positional[0])
	if err != nil {
		return err
	}
	logger.Printf("roster=%s imported=%d", positional[0], n)
	_, err = fmt.Fprintf(out, "imported animals=%d\n", n)
	return err
}
