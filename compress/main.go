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
		Usage:     "Compress a byte stream with static-model arithmetic coding",
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
		return arith.Compress(os.Stdout, os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	err = arith.Compress(os.Stdout, f)
	return multierror.Append(err, f.Close()).ErrorOrNil()
}
