package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/go-leo/solid/catalog"
	"github.com/go-leo/solid/filter"
	"github.com/go-leo/solid/journal"
	"github.com/go-leo/solid/specification"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:     "solid",
		Usage:    "Filter products with specifications and keep a journal",
		Version:  Version,
		Metadata: map[string]interface{}{},
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", EnvVars: []string{"SOLID_VERBOSE"}, Usage: "Log at debug level"},
		},
		Before: func(c *cli.Context) error {
			logger, err := newLogger(c.Bool("verbose"))
			if err != nil {
				return err
			}
			c.App.Metadata[loggerKey] = logger
			return nil
		},
		After: func(c *cli.Context) error {
			// syncing stderr fails on some terminals
			_ = loggerFrom(c).Sync()
			return nil
		},
		Commands: []*cli.Command{
			productsCmd(),
			journalCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// productsCmd creates the products command.
func productsCmd() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "List the products that match every given filter",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "catalog", Aliases: []string{"c"}, EnvVars: []string{"SOLID_CATALOG"}, Usage: "YAML or JSON catalog file (defaults to the demo products)"},
			&cli.StringFlag{Name: "color", Usage: "red|green|blue"},
			&cli.StringFlag{Name: "size", Usage: "small|medium|large"},
			&cli.StringFlag{Name: "name", Usage: "Exact product name"},
			&cli.StringSliceFlag{Name: "where", Usage: "field=value, field is a struct field or spec tag (repeatable)"},
			&cli.IntFlag{Name: "limit", Usage: "Print at most this many products, 0 for all"},
			&cli.BoolFlag{Name: "json", Usage: "Print JSON instead of YAML"},
		},
		Action: func(c *cli.Context) error {
			products, err := loadProducts(c.String("catalog"))
			if err != nil {
				return err
			}
			spec, err := productSpec(c)
			if err != nil {
				return err
			}

			seq := filter.Slice(c.Context, products, spec, filter.Logger(loggerFrom(c)))
			if limit := c.Int("limit"); limit > 0 {
				seq = filter.Chain(seq, filter.Take[catalog.Product](limit))
			}
			matched := slices.Collect(seq)
			if matched == nil {
				matched = []catalog.Product{}
			}

			format := catalog.FormatYAML
			if c.Bool("json") {
				format = catalog.FormatJSON
			}
			return catalog.Encode(c.App.Writer, format, matched)
		},
	}
}

func loadProducts(path string) ([]catalog.Product, error) {
	if path == "" {
		return catalog.Demo(), nil
	}
	return catalog.Load(path)
}

// productSpec builds the conjunction of the filter flags. A flag counts once it is set, even to
// an empty value. No flags matches every product.
func productSpec(c *cli.Context) (specification.Specification[catalog.Product], error) {
	var specs []specification.Specification[catalog.Product]
	if c.IsSet("color") {
		color, err := catalog.ParseColor(c.String("color"))
		if err != nil {
			return nil, err
		}
		specs = append(specs, catalog.ColorIs(color))
	}
	if c.IsSet("size") {
		size, err := catalog.ParseSize(c.String("size"))
		if err != nil {
			return nil, err
		}
		specs = append(specs, catalog.SizeIs(size))
	}
	if c.IsSet("name") {
		specs = append(specs, catalog.NameIs(c.String("name")))
	}
	for _, where := range c.StringSlice("where") {
		field, value, ok := strings.Cut(where, "=")
		if !ok {
			return nil, fmt.Errorf("where %q: want field=value", where)
		}
		spec, err := specification.FieldEqual[catalog.Product](strings.TrimSpace(field), value)
		if err != nil {
			return nil, fmt.Errorf("where %q: %w", where, err)
		}
		specs = append(specs, spec)
	}
	return specification.Conjunction(specs...), nil
}

// journalCmd creates the journal command.
func journalCmd() *cli.Command {
	return &cli.Command{
		Name:  "journal",
		Usage: "Keep numbered entries in a text or JSON file",
		Subcommands: []*cli.Command{
			journalAddCmd(),
			journalListCmd(),
			journalRemoveCmd(),
		},
	}
}

func journalFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Value:   "journal.txt",
		EnvVars: []string{"SOLID_JOURNAL"},
		Usage:   "Journal file, a .json file also keeps entry ids",
	}
}

// journalAddCmd creates the journal add command.
func journalAddCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Append an entry",
		ArgsUsage: "<text>",
		Flags:     []cli.Flag{journalFileFlag()},
		Action: func(c *cli.Context) error {
			text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if text == "" {
				return errors.New("journal add: text is required")
			}
			m := journal.NewManager(journal.Logger(loggerFrom(c)))
			path := c.String("file")
			j, err := loadJournal(m, path)
			if err != nil {
				return err
			}
			entry := j.AddEntry(text)
			if err := saveJournal(m, j, path); err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, entry)
			return err
		},
	}
}

// journalListCmd creates the journal list command.
func journalListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print every entry",
		Flags: []cli.Flag{journalFileFlag()},
		Action: func(c *cli.Context) error {
			m := journal.NewManager(journal.Logger(loggerFrom(c)))
			j, err := loadJournal(m, c.String("file"))
			if err != nil {
				return err
			}
			if j.Len() == 0 {
				return nil
			}
			_, err = fmt.Fprintln(c.App.Writer, j)
			return err
		},
	}
}

// journalRemoveCmd creates the journal remove command.
func journalRemoveCmd() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "Remove the entry at a zero-based position",
		ArgsUsage: "<position>",
		Flags:     []cli.Flag{journalFileFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("journal remove: exactly one position is required")
			}
			pos, err := strconv.Atoi(c.Args().First())
			if err != nil {
				return fmt.Errorf("journal remove: invalid position %q", c.Args().First())
			}
			m := journal.NewManager(journal.Logger(loggerFrom(c)))
			path := c.String("file")
			j, err := loadJournal(m, path)
			if err != nil {
				return err
			}
			if err := j.RemoveEntry(pos); err != nil {
				return err
			}
			return saveJournal(m, j, path)
		},
	}
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// loadJournal starts a new journal when path does not exist yet.
func loadJournal(m *journal.Manager, path string) (*journal.Journal, error) {
	load := m.LoadFromFile
	if isJSON(path) {
		load = m.LoadJSON
	}
	j, err := load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return journal.New(), nil
	}
	return j, err
}

func saveJournal(m *journal.Manager, j *journal.Journal, path string) error {
	if isJSON(path) {
		return m.SaveJSON(j, path)
	}
	return m.SaveToFile(j, path)
}
