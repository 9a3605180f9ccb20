package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&loginCmd{}, "")
	subcommands.Register(&swimmersCmd{}, "")
	subcommands.Register(&teamsCmd{}, "")
	subcommands.Register(&meetsCmd{}, "")
	subcommands.Register(&timesCmd{}, "")
	subcommands.Register(&logTimeCmd{}, "")
	subcommands.Register(&bestCmd{}, "")
	subcommands.Register(&qualifyCmd{}, "")
	subcommands.Register(&standardsCmd{}, "")
	subcommands.Register(&importStandardsCmd{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
