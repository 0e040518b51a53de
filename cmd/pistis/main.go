// pistis is a command line front end for the identity and provenance
// registry. It operates directly on a local database, which makes it useful
// for bootstrapping deployments, inspecting state and replaying recorded
// system actions.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var app *cli.App

// Commonly used command line flags.
var (
	datadirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory for the registry database (omit for in-memory)",
	}
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output JSON instead of human-readable format",
	}
)

func init() {
	app = cli.NewApp()
	app.Name = "pistis"
	app.Usage = "identity and provenance registry tool"
	app.Flags = []cli.Flag{
		datadirFlag,
		configFlag,
		verbosityFlag,
	}
	app.Before = setupLogging
	app.Commands = []*cli.Command{
		commandExec,
		commandNameHash,
		commandOwner,
		commandResolve,
		commandBusiness,
		commandProducts,
		commandProduct,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) error {
	usecolor := isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("TERM") != "dumb"
	output := io.Writer(os.Stderr)
	if usecolor {
		output = colorable.NewColorableStderr()
	}
	level := log.FromLegacyLevel(ctx.Int(verbosityFlag.Name))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(output, level, usecolor)))
	return nil
}

// Fatalf formats a message to standard error and exits the program.
func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// mustPrintJSON prints the JSON encoding of the given object and exits the
// program with an error message when marshaling fails.
func mustPrintJSON(jsonObject interface{}) {
	str, err := json.MarshalIndent(jsonObject, "", "  ")
	if err != nil {
		Fatalf("Failed to marshal JSON object: %v", err)
	}
	fmt.Println(string(str))
}
