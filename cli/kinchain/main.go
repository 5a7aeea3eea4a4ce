// Package main is the kinchain command itself.
package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	kinchaincli "go.viam.com/kinchain/cli"
)

func main() {
	app := kinchaincli.NewApp(os.Stdout, os.Stderr, zap.NewNop().Sugar())
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
