package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"tosstrades/cmd"
)

func main() {
	// optional .env, for GEMINI_API_KEY
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns immediately
// otherwise.
func completion() {
	inputs := predict.Files("*.txt")
	selectors := map[string]complete.Predictor{
		"t": predict.Set{"symbol", "date"},
		"p": predict.Set{"month", "day"},
	}
	aggregate := &complete.Command{Flags: selectors, Args: inputs}

	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"parse": {
				Flags: map[string]complete.Predictor{"o": predict.Files("*.json")},
				Args:  inputs,
			},
			"compact": {
				Flags: map[string]complete.Predictor{
					"o": predict.Files("*.json"),
					"t": selectors["t"],
					"p": selectors["p"],
				},
				Args: inputs,
			},
			"run": {
				Flags: map[string]complete.Predictor{
					"raws":   predict.Dirs("*"),
					"parsed": predict.Dirs("*"),
					"out":    predict.Dirs("*"),
				},
			},
			"show":   aggregate,
			"assist": aggregate,
		},
		Flags: map[string]complete.Predictor{
			"policy-file": predict.Files("*.yaml"),
		},
	}
	c.Complete("tts")
}
