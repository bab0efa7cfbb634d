// Command ignite-server runs the ignitedb TCP server: one listening socket,
// one request serviced per connection, backed by either the primary
// append-only engine or the bbolt-backed baseline store.
package main

import (
	"fmt"
	"os"

	"github.com/iamNilotpal/ignitedb/internal/server"
	"github.com/iamNilotpal/ignitedb/internal/store"
	"github.com/iamNilotpal/ignitedb/pkg/logger"
	"github.com/iamNilotpal/ignitedb/pkg/options"
	"github.com/urfave/cli/v2"
)

func main() {
	var addr, engine, dir string

	app := &cli.App{
		Name:  "ignite-server",
		Usage: "run the ignitedb key/value server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "address to listen on",
				Value:       "127.0.0.1:4000",
				Destination: &addr,
			},
			&cli.StringFlag{
				Name:        "engine",
				Usage:       "backend to use: kvs (primary) or sled (baseline); inferred from the data directory if omitted",
				Destination: &engine,
			},
			&cli.StringFlag{
				Name:        "dir",
				Usage:       "data directory",
				Value:       mustGetwd(),
				Destination: &dir,
			},
		},
		Action: func(c *cli.Context) error {
			return run(addr, store.Name(engine), dir)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(addr string, engineName store.Name, dir string) error {
	log := logger.New("ignite-server")

	opts := options.NewDefaultOptions()
	options.WithDataDir(dir)(&opts)

	backend, err := store.Open(engineName, &opts, log)
	if err != nil {
		return err
	}
	defer backend.Close()

	srv := server.New(addr, backend, log)
	return srv.Run()
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
