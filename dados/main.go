// Command dados fetches Brazilian hydrology and power-sector open data.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/dadosbr/dadosbr/cmd"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Complete(name)

	cfg, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.SetFlags(flag.CommandLine, cfg)
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			cmd.Sync()
			os.Exit(code)
		}
	}

	status := commander.Execute(context.Background())
	cmd.Sync()
	os.Exit(int(status))
}

func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
