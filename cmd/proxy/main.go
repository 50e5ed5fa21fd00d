// Command proxy relays Bedrock clients of an older protocol to a current
// server, rewriting block, item and entity ids on the way.
package main

import (
	"flag"
	"fmt"
	"os"

	"gophertunnel_proxy/internal/app"
	"gophertunnel_proxy/internal/auth"
	"gophertunnel_proxy/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON configuration file")
		listen     = flag.String("listen", "", "address clients connect to")
		debug      = flag.Bool("debug", false, "log packets passing through")
		offline    = flag.Bool("offline", false, "disable Xbox Live authentication")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <host:port | realm_code>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %s\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if flag.NArg() > 0 {
		cfg.Remote = flag.Arg(0)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	cfg.Debug = cfg.Debug || *debug
	cfg.Offline = cfg.Offline || *offline

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %s\n", err)
		flag.Usage()
		os.Exit(2)
	}

	var creds app.Credentials
	if !cfg.Offline {
		src, err := auth.TokenSource(cfg.TokenCache)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting account token: %s\n", err)
			os.Exit(1)
		}
		creds.Source = src
	}

	app.New(cfg, creds).Run()
}
