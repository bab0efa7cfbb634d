// Command ignite-cli is a thin wrapper over pkg/client for issuing set, get,
// and rm commands against a running ignitedb server.
package main

import (
	"fmt"
	"os"

	"github.com/iamNilotpal/ignitedb/pkg/client"
	"github.com/urfave/cli/v2"
)

func main() {
	var addr string

	app := &cli.App{
		Name:  "ignite-cli",
		Usage: "talk to an ignitedb server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "server address",
				Value:       "127.0.0.1:4000",
				Destination: &addr,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "set",
				Usage:     "store a key/value pair",
				ArgsUsage: "<key> <value>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("usage: ignite-cli set <key> <value>", 1)
					}
					if err := client.New(addr).Set(c.Args().Get(0), c.Args().Get(1)); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "look up a key",
				ArgsUsage: "<key>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("usage: ignite-cli get <key>", 1)
					}
					value, found, err := client.New(addr).Get(c.Args().Get(0))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					if !found {
						fmt.Println("Key not found")
						return nil
					}
					fmt.Println(value)
					return nil
				},
			},
			{
				Name:      "rm",
				Usage:     "remove a key",
				ArgsUsage: "<key>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("usage: ignite-cli rm <key>", 1)
					}
					if err := client.New(addr).Remove(c.Args().Get(0)); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
