package main

import (
	"io"
	"time"

	"github.com/alecthomas/kong"
)

// CLI defines the command-line and environment configuration.
type CLI struct {
	Addr     string        `help:"HTTP listen address." default:":8000" env:"EORTOLOGIO_ADDR"`
	BaseURL  string        `help:"Upstream site base URL." name:"base-url" default:"https://www.eortologio.net" env:"EORTOLOGIO_BASE_URL"`
	Timeout  time.Duration `help:"Upstream fetch timeout." default:"15s" env:"EORTOLOGIO_TIMEOUT"`
	CacheTTL time.Duration `help:"Lifetime of cached extractions." name:"cache-ttl" default:"6h" env:"EORTOLOGIO_CACHE_TTL"`
	RPS      float64       `help:"Maximum upstream requests per second." default:"2" env:"EORTOLOGIO_RPS"`
	Warm     bool          `help:"Prefetch all twelve months at startup." env:"EORTOLOGIO_WARM"`
	Debug    bool          `help:"Enable debug logging." env:"EORTOLOGIO_DEBUG"`
}

// parseCLI parses args into a CLI, applying defaults and environment
// variables.
func parseCLI(args []string, stdout, stderr io.Writer) (*CLI, error) {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("eortologiod"),
		kong.Description("Greek nameday API server backed by eortologio.net."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}
	return cli, nil
}
