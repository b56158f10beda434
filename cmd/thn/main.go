package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/thn/internal"
	"github.com/starford/thn/internal/apperr"
	"github.com/starford/thn/internal/capture"
	"github.com/starford/thn/internal/mcpserver"
	"github.com/starford/thn/internal/output"
	"github.com/starford/thn/internal/vault"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var errMemoRequired = errors.New("memo content required")

// app carries the process streams so commands can be driven from tests.
type app struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	printer *output.Printer
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		printer: output.NewPrinter(stdout, output.IsTTY(stdout)).WithStderr(stderr, output.IsTTY(stderr)),
	}
}

// setup applies the global flags shared by every command.
func (a *app) setup(cmd *cli.Command) {
	mode := cmd.String("color")
	a.printer = output.NewPrinter(a.stdout, output.ResolveColorMode(mode, output.IsTTY(a.stdout))).
		WithStderr(a.stderr, output.ResolveColorMode(mode, output.IsTTY(a.stderr)))
}

// loadConfig reads the config file named by --config and builds the
// logger used by the command.
func (a *app) loadConfig(cmd *cli.Command) (*internal.Config, *slog.Logger, error) {
	cfg, err := internal.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(a.stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	return cfg, logger, nil
}

// openService loads the config and returns a capture service for a
// validated vault.
func (a *app) openService(cmd *cli.Command) (*capture.Service, *internal.Config, *slog.Logger, error) {
	cfg, logger, err := a.loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := vault.Validate(cfg.Vault.Path); err != nil {
		return nil, nil, nil, err
	}
	return capture.NewService(cfg.Vault.Path, capture.WithLogger(logger)), cfg, logger, nil
}

func (a *app) runCapture(ctx context.Context, cmd *cli.Command) error {
	a.setup(cmd)

	text := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return errMemoRequired
	}

	svc, _, _, err := a.openService(cmd)
	if err != nil {
		return err
	}
	res, err := svc.Capture(ctx, text)
	if err != nil {
		return err
	}

	rel, relErr := filepath.Rel(svc.Root(), res.Path)
	if relErr != nil {
		rel = res.Path
	}
	a.printer.Success("%s", res.Line)
	a.printer.Muted("→ %s", filepath.ToSlash(rel))
	return nil
}

func (a *app) runInit(_ context.Context, cmd *cli.Command) error {
	a.setup(cmd)

	input := cmd.Args().First()
	if input == "" {
		fmt.Fprint(a.stdout, "Vault path: ")
		line, err := bufio.NewReader(a.stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read vault path: %w", err)
		}
		input = line
	}

	path, err := vault.ExpandPath(input)
	if err != nil {
		return err
	}
	if abs, absErr := filepath.Abs(path); absErr == nil {
		path = abs
	}
	if err := vault.Validate(path); err != nil {
		return err
	}

	configPath := cmd.String("config")
	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotConfigured) {
			return err
		}
		cfg = internal.NewDefaultConfig()
	}
	cfg.Vault.Path = path

	if err := internal.SaveConfig(configPath, cfg); err != nil {
		return err
	}

	a.printer.Success("vault configured: %s", path)
	a.printer.Muted("config written to %s", configPath)
	return nil
}

func (a *app) runShowConfig(_ context.Context, cmd *cli.Command) error {
	a.setup(cmd)

	cfg, logger, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	set := capture.NewService(cfg.Vault.Path, capture.WithLogger(logger)).Settings()

	a.printer.KeyValue("config_file", cmd.String("config"))
	a.printer.KeyValue("vault_path", cfg.Vault.Path)
	a.printer.KeyValue("daily_folder", set.Folder)
	a.printer.KeyValue("daily_format", set.Format)
	a.printer.KeyValue("insert_after", set.InsertAfter)
	return nil
}

func (a *app) runServe(ctx context.Context, cmd *cli.Command) error {
	a.setup(cmd)

	cfg, _, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func (a *app) runMCP(_ context.Context, cmd *cli.Command) error {
	// stdout carries the protocol; logs go to stderr.
	svc, _, _, err := a.openService(cmd)
	if err != nil {
		return err
	}
	return mcpserver.New(svc, version).ServeStdio()
}

func newCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "thn",
		Usage:     "Append memos to Obsidian daily notes (Thino compatible)",
		ArgsUsage: "<memo...>",
		Version:   version,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Action:    a.runCapture,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "Path to config file",
				DefaultText: "$XDG_CONFIG_HOME/thn/config.yaml",
				Value:       internal.DefaultConfigPath(),
				Sources:     cli.EnvVars("THN_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "Colorize output: auto, always or never",
				Value: "auto",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Append a memo to today's daily note",
				ArgsUsage: "<memo...>",
				Action:    a.runCapture,
			},
			{
				Name:      "init",
				Usage:     "Set the vault path (prompts when PATH is omitted)",
				ArgsUsage: "[PATH]",
				Action:    a.runInit,
			},
			{
				Name:   "config",
				Usage:  "Show the current configuration",
				Action: a.runShowConfig,
			},
			{
				Name:   "serve",
				Usage:  "Run the local HTTP capture server",
				Action: a.runServe,
			},
			{
				Name:   "mcp",
				Usage:  "Run the MCP server on stdio",
				Action: a.runMCP,
			},
		},
	}
}

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := newCommand(a).Run(context.Background(), os.Args); err != nil {
		a.printer.Error(err)
		os.Exit(1)
	}
}
