package main

import (
	"fmt"
	"log"
	"os"
	"revlist/harness"
	"revlist/options"
	"revlist/util"
	"strings"

	"github.com/urfave/cli/v2"
)

const VERSION = "1.0.0"

func main() {
	cli.AppHelpTemplate = fmt.Sprintf(
		`NAME:
   revlist - 1.0.0 - Verify node ownership of a singly linked list through insert, remove and reverse scenarios.

USAGE:
   revlist [optional flags]

OPTIONS:
   --include value, -i value   patterns of scenario names to run, comma delimited, may contain any glob pattern
   --exclude value, -e value   patterns of scenario names to skip, comma delimited, may contain any glob pattern
   --size value, -n value      number of elements used by the reverse round trip scenario (default: 1000)
   --parallel value, -p value  number of scenarios to run at once, live node checks only run when this is 1 (default: 1)
   --script value, -s value    path to an operation script to replay as the 'script' scenario
   --report value, -o value    path of a JSON report file. its directory will be created if does not exist
   --print                     print the list after every step (default: false)
   --verbose, --vv             verbose logging (default: false)
   --help, -h                  show help (default: false)
   --version, -v               print the version (default: false)

SCENARIOS:
   %v

   Node lifetime counters are only compiled in with -tags nodetrack.

EXIT CODES:
  0    Success
  201  Script path is invalid
  202  Report path is invalid
  203  Invalid argument
  204  Invalid scenario pattern
  205  Malformed script
  206  Scenario failed
  207  Nodes were never released
  208  No scenario selected
  1    Any other error
`, strings.Join(append(harness.ScenarioNames(), "script"), ", "))

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
	app := &cli.App{
		Name:    "revlist",
		Usage:   "Verify node ownership of a singly linked list through insert, remove and reverse scenarios.",
		Flags:   options.Flags,
		Version: VERSION,
		Action: func(ctx *cli.Context) error {
			opts, err := options.ParseOptions(ctx)
			if err != nil {
				return err
			}
			return harness.Run(opts)
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Printf("failed: %v", err)
		if errorWithCode, isWithCode := err.(*util.ErrorWithCode); isWithCode {
			os.Exit(errorWithCode.StatusCode)
		}
		os.Exit(1)
	}
}
