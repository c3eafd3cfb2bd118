package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/dadosbr/dadosbr"
)

// hostsCmd lists the institutions and the address of their API.
type hostsCmd struct{}

func (*hostsCmd) Name() string     { return "hosts" }
func (*hostsCmd) Synopsis() string { return "list the supported institutions and their API address" }
func (*hostsCmd) Usage() string {
	return `dados hosts [<institution>...]

  Lists the supported institutions (all by default) and the address of their API.
`
}

func (*hostsCmd) SetFlags(f *flag.FlagSet) {}

func (*hostsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		for _, inst := range dadosbr.Institutions {
			names = append(names, inst.String())
		}
	}

	var b strings.Builder
	b.WriteString("# Institutions\n\n")
	for _, name := range names {
		host, ok := dadosbr.LookupHost(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown institution %q\n", name)
			return subcommands.ExitUsageError
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", strings.ToLower(name), host)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
