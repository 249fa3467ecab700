// Command pdftables converts PDF documents through the PDFTables
// service.
//
// Usage:
//
//	pdftables convert document.pdf --output tables.csv
//	pdftables convert document.pdf --format xlsx-single --output book.xlsx
//	pdftables remaining
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/sensiblecode/pdftables-go/pkg/config"
	"github.com/sensiblecode/pdftables-go/pkg/logger"
	"github.com/sensiblecode/pdftables-go/pkg/pdfcheck"
	"github.com/sensiblecode/pdftables-go/pkg/pdftables"
)

// CLI defines the command-line interface.
type CLI struct {
	Convert   ConvertCmd   `cmd:"" help:"Convert a PDF document."`
	Remaining RemainingCmd `cmd:"" help:"Show the remaining pages quota."`
	Version   VersionCmd   `cmd:"" help:"Show version information."`

	APIKey   string `name:"api-key" help:"API key (defaults to PDFTABLES_API_KEY)."`
	APIURL   string `name:"api-url" help:"Custom API base URL."`
	Config   string `short:"c" help:"Path to config file." type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info"`
}

// loadConfig merges the config file with command-line overrides.
func (cli *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	if cli.APIKey != "" {
		cfg.APIKey = cli.APIKey
	}
	if cli.APIURL != "" {
		cfg.APIURL = cli.APIURL
	}
	return cfg, nil
}

func (cli *CLI) newClient(cfg *config.Config) (*pdftables.Client, error) {
	return pdftables.New(cfg.APIKey, cfg.ClientOptions()...)
}

// ConvertCmd converts a PDF document.
type ConvertCmd struct {
	Input string `arg:"" help:"Path to the input PDF." type:"path"`

	Output    string `short:"o" help:"Output path (stdout when omitted)." type:"path"`
	Format    string `short:"f" help:"Output format (csv, html, xml, xlsx, xlsx-single, xlsx-multiple)."`
	Extractor string `help:"Extraction algorithm (standard, ai-1, ai-2)."`
	Extract   string `help:"AI extract mode (tables, tables-paragraphs)."`
	Timeout   int    `help:"Per-request timeout override in seconds." default:"0"`
	Check     bool   `help:"Verify the input parses as a PDF before uploading."`
}

func (c *ConvertCmd) Run(cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}
	if c.Extractor != "" {
		cfg.Extractor = c.Extractor
	}
	if c.Extract != "" {
		cfg.Extract = c.Extract
	}

	client, err := cli.newClient(cfg)
	if err != nil {
		return err
	}

	var format pdftables.Format
	if c.Format != "" {
		if format, err = pdftables.ParseFormat(c.Format); err != nil {
			return err
		}
	}

	if c.Check {
		info, err := pdfcheck.Check(c.Input)
		if err != nil {
			return err
		}
		slog.Debug("input verified", "pages", info.Pages, "bytes", info.Size)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []pdftables.RequestOption
	if c.Timeout > 0 {
		opts = append(opts, pdftables.WithRequestTimeout(time.Duration(c.Timeout)*time.Second))
	}

	start := time.Now()
	body, err := client.Convert(ctx, c.Input, c.Output, format, opts...)
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = os.Stdout.Write(body)
		return err
	}

	outPath, _, _ := pdftables.ResolveOutput(c.Output, format)
	slog.Info("converted", "input", c.Input, "output", outPath, "took", time.Since(start).Round(time.Millisecond))
	return nil
}

// RemainingCmd shows the remaining pages quota.
type RemainingCmd struct{}

func (c *RemainingCmd) Run(cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}

	client, err := cli.newClient(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	n, err := client.Remaining(ctx)
	if err != nil {
		return err
	}
	fmt.Println(n)
	return nil
}

// VersionCmd shows version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	version := "dev"
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			version = info.Main.Version
		}
	}
	fmt.Printf("pdftables %s\n", version)
	return nil
}

func main() {
	_ = config.LoadDotEnv()

	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("pdftables"),
		kong.Description("Convert PDF documents to CSV, HTML, XML or XLSX via pdftables.com."),
		kong.UsageOnError(),
	)

	logger.Init(cli.LogLevel)

	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
