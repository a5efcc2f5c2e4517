package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dragalert/go-layout"
	"github.com/dragalert/go-layout/internal/config"
	"github.com/dragalert/go-layout/internal/store"
	"go.uber.org/zap"
)

// CLI runs layoutc commands against the given streams
type CLI struct {
	stdin  io.Reader
	stdout io.Writer
	log    *zap.Logger
}

// Render reads a stored layout from the file or stdin and writes it in the configured format.
func (c *CLI) Render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	configPath := fs.String("config", config.FileName, "config file")
	format := fs.String("format", "", "output format, overrides config")
	out := fs.String("o", "", "output file, stdout by default")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.config(*configPath, *format)
	if err != nil {
		return err
	}

	data, err := c.read(fs.Arg(0))
	if err != nil {
		return err
	}

	elements, err := layout.DecodeLayout(data)
	if err != nil {
		return err
	}

	w := c.stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}

		defer f.Close()
		w = f
	}

	return c.write(w, cfg, elements)
}

// Put validates the layout and saves it to the database under the name.
func (c *CLI) Put(args []string) error {
	fs := flag.NewFlagSet("put", flag.ContinueOnError)
	dbPath := fs.String("db", "", "database file")
	name := fs.String("name", "", "layout name")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dbPath == "" || *name == "" {
		return errors.New("-db and -name are required")
	}

	data, err := c.read(fs.Arg(0))
	if err != nil {
		return err
	}

	elements, err := layout.DecodeLayout(data)
	if err != nil {
		return err
	}

	return c.withStore(*dbPath, func(ctx context.Context, s *store.Store) error {
		if err := s.Put(ctx, *name, elements); err != nil {
			return err
		}

		c.log.Debug("layout saved", zap.String("name", *name), zap.Int("elements", len(elements)))
		return nil
	})
}

// Get renders the layout saved in the database.
func (c *CLI) Get(args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	dbPath := fs.String("db", "", "database file")
	name := fs.String("name", "", "layout name")
	configPath := fs.String("config", config.FileName, "config file")
	format := fs.String("format", "", "output format, overrides config")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dbPath == "" || *name == "" {
		return errors.New("-db and -name are required")
	}

	cfg, err := c.config(*configPath, *format)
	if err != nil {
		return err
	}

	return c.withStore(*dbPath, func(ctx context.Context, s *store.Store) error {
		elements, err := s.Get(ctx, *name)
		if err != nil {
			return err
		}

		return c.write(c.stdout, cfg, elements)
	})
}

// List prints names of the saved layouts with the time of the last change.
func (c *CLI) List(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	dbPath := fs.String("db", "", "database file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dbPath == "" {
		return errors.New("-db is required")
	}

	return c.withStore(*dbPath, func(ctx context.Context, s *store.Store) error {
		entries, err := s.List(ctx)
		if err != nil {
			return err
		}

		for _, e := range entries {
			fmt.Fprintf(c.stdout, "%s\t%s\n", e.Name, e.UpdatedAt.UTC().Format(time.RFC3339))
		}

		return nil
	})
}

func (c *CLI) Remove(args []string) error {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	dbPath := fs.String("db", "", "database file")
	name := fs.String("name", "", "layout name")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dbPath == "" || *name == "" {
		return errors.New("-db and -name are required")
	}

	return c.withStore(*dbPath, func(ctx context.Context, s *store.Store) error {
		return s.Delete(ctx, *name)
	})
}

func (c *CLI) config(path, format string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if format != "" {
		cfg.Format = format
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// read returns content of the file, or stdin when name is empty or "-"
func (c *CLI) read(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(c.stdin)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	return data, nil
}

func (c *CLI) withStore(path string, fn func(context.Context, *store.Store) error) error {
	ctx := context.Background()

	s, err := store.Open(ctx, path)
	if err != nil {
		return err
	}

	defer s.Close()

	return fn(ctx, s)
}

func (c *CLI) write(w io.Writer, cfg *config.Config, elements []layout.PlacedElement) error {
	opts := append(cfg.BuilderOptions(), layout.WithLogger(c.log))
	nodes := layout.NewBuilder(opts...).BuildTree(elements)

	switch cfg.Format {
	case "html":
		if err := layout.NewHTMLRenderer(cfg.HTMLOptions()...).Render(w, nodes); err != nil {
			return err
		}

		_, err := fmt.Fprintln(w)
		return err
	case "tree":
		return layout.Fprint(w, nodes, cfg.Indent)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	case "text":
		_, err := fmt.Fprintln(w, layout.String(nodes))
		return err
	default:
		return layout.NewJSXRenderer(cfg.JSXOptions()...).Render(w, nodes, cfg.Indent)
	}
}
