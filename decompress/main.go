package main

import (
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/fumin/arith"
)

func main() {
	app := cli.App{
		Usage:     "Decompress a stream produced by the compress command",
		ArgsUsage: "[FILE]",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return arith.Decompress(os.Stdout, os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	err = arith.Decompress(os.Stdout, f)
	return multierror.Append(err, f.Close()).ErrorOrNil()
}
