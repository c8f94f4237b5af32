// texkit - markup preprocessor CLI
//
// Usage:
//
//	texkit fmt [--set k=v]... [text]   Normalize an argument list
//	texkit render <manifest.yaml>      Render a YAML manifest to markup
//	texkit scan <file>                 List macro invocations in a document
//	texkit version                     Print version info
//
// fmt reads from stdin when no text is given.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/texkit/texkit/texarg"
	"github.com/texkit/texkit/texscan"
)

const version = "0.1.0"

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// Config is the optional YAML configuration file.
type Config struct {
	// DefaultOptions is argument text merged into every list that fmt
	// normalizes, before any --set updates.
	DefaultOptions string `yaml:"default_options"`
}

type cliContext struct {
	log zerolog.Logger
	cfg Config
}

type rootCmd struct {
	Debug  bool   `help:"Enable debug logging."`
	Config string `help:"Path to a YAML config file." type:"path"`

	Fmt     fmtCmd     `cmd:"" help:"Parse and normalize an argument list."`
	Render  renderCmd  `cmd:"" help:"Render a YAML document manifest to markup."`
	Scan    scanCmd    `cmd:"" help:"List macro invocations in a document."`
	Version versionCmd `cmd:"" help:"Print version info."`
}

type fmtCmd struct {
	Set  []string `help:"Argument text merged into the list after parsing (repeatable)." short:"s"`
	Text []string `arg:"" optional:"" help:"Argument text; reads stdin when omitted."`
}

func (c *fmtCmd) Run(ctx *cliContext) error {
	text := strings.Join(c.Text, " ")
	if len(c.Text) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	arg, err := texarg.Parse(strings.TrimSpace(text))
	if err != nil {
		return err
	}
	ctx.log.Debug().Int("entries", arg.Len()).Msg("parsed argument list")

	if ctx.cfg.DefaultOptions != "" {
		if err := arg.UpdateText(ctx.cfg.DefaultOptions); err != nil {
			return fmt.Errorf("apply default options: %w", err)
		}
	}
	for _, update := range c.Set {
		if err := arg.UpdateText(update); err != nil {
			return fmt.Errorf("apply %q: %w", update, err)
		}
	}

	fmt.Println(arg)
	return nil
}

type renderCmd struct {
	Path string `arg:"" help:"Manifest file." type:"existingfile"`
}

func (c *renderCmd) Run(ctx *cliContext) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	node, err := m.Build()
	if err != nil {
		return err
	}
	ctx.log.Debug().Str("path", c.Path).Msg("rendered manifest")

	fmt.Println(node)
	return nil
}

type scanCmd struct {
	Path string `arg:"" help:"Document file." type:"existingfile"`
}

func (c *scanCmd) Run(ctx *cliContext) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	invs, err := texscan.Scan(string(data))
	if err != nil {
		return err
	}
	ctx.log.Debug().Int("invocations", len(invs)).Msg("scanned document")

	for _, inv := range invs {
		var groups []string
		for _, g := range inv.Groups {
			if g.Optional {
				groups = append(groups, "["+g.Raw+"]")
			} else {
				groups = append(groups, "{"+g.Raw+"}")
			}
		}
		fmt.Printf("%d\t\\%s%s\n", inv.Offset, inv.Name, strings.Join(groups, ""))
	}
	return nil
}

type versionCmd struct{}

func (c *versionCmd) Run(ctx *cliContext) error {
	fmt.Println("texkit " + version)
	return nil
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func main() {
	var cli rootCmd
	kctx := kong.Parse(&cli,
		kong.Name("texkit"),
		kong.Description("Parse, normalize, and render LaTeX-style markup."),
		kong.UsageOnError(),
	)

	log := newLogger(cli.Debug)

	cfg, err := loadConfig(cli.Config)
	if err == nil {
		err = kctx.Run(&cliContext{log: log, cfg: cfg})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("texkit: "+err.Error()))
		os.Exit(1)
	}
}
