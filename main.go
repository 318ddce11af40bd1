package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aarrwnh/arraylist/console"
	"github.com/convox/logger"
	"github.com/spf13/cobra"
)

var (
	configFile string
	capacity   int
	limit      int
	path       string
	ws         bool
	address    string
	certPath   string
	keyPath    string
	noTitle    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "arraylist",
		Short:        "interactive resizable array console",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "YAML config file")
	flags.IntVar(&capacity, "capacity", console.DefaultConfig().Capacity, "initial list capacity")
	flags.IntVar(&limit, "limit", console.DefaultLimit, "max items printed by a listing")
	flags.StringVarP(&path, "path", "p", "", "file or directory to load on start")
	flags.BoolVar(&ws, "ws", false, "accept commands over websockets")
	flags.StringVarP(&address, "addr", "a", console.DefaultAddress, "websocket listen address")
	flags.StringVar(&certPath, "cert", "", "path to SSL/TLS certificate file")
	flags.StringVar(&keyPath, "key", "", "path to SSL/TLS private key file")
	flags.BoolVar(&noTitle, "no-title", false, "do not update the terminal title")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logger.New("ns=arraylist").At("run")

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return log.Error(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	app, err := console.NewApp(cfg, os.Stdin, os.Stdout, cancel)
	if err != nil {
		return log.Error(err)
	}

	if cfg.Websocket.Enabled {
		go func() {
			if err := console.StartWebsocket(ctx, app, cfg.Websocket); err != nil {
				cancel()
			}
		}()
	}

	go app.Start()

	select {
	case <-ctx.Done():
		log.Logf("state=exit")
	case sig := <-interrupt:
		log.Logf("signal=%v", sig)
	}

	return nil
}

// resolveConfig layers the flags the user set over the config file, or
// over the defaults when no file is given.
func resolveConfig(cmd *cobra.Command) (*console.Config, error) {
	cfg := console.DefaultConfig()
	if configFile != "" {
		loaded, err := console.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		cfg.Capacity = capacity
	}
	if flags.Changed("limit") {
		cfg.Limit = limit
	}
	if flags.Changed("path") {
		cfg.File = path
	}
	if flags.Changed("ws") {
		cfg.Websocket.Enabled = ws
	}
	if flags.Changed("addr") {
		cfg.Websocket.Address = address
	}
	if flags.Changed("cert") {
		cfg.Websocket.Cert = certPath
	}
	if flags.Changed("key") {
		cfg.Websocket.Key = keyPath
	}
	if noTitle {
		cfg.Title = false
	}

	return cfg, cfg.Validate()
}
