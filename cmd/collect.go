package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"github.com/dadosbr/dadosbr"
	"github.com/dadosbr/dadosbr/export"
	"github.com/dadosbr/dadosbr/renderer"
)

// collectCmd implements the "collect" command.
type collectCmd struct {
	output  string
	maxRows int
}

func (*collectCmd) Name() string     { return "collect" }
func (*collectCmd) Synopsis() string { return "collect the data of a product" }
func (*collectCmd) Usage() string {
	return `dados collect [-o <file>] <institution> <product> [<station>...]

  Collects a product. For ANA the product is vazao, chuva or cota and at least
  one station code is required: the result is a daily table with one column per
  station. For ONS, ANEEL and CCEE every CSV file of the product is downloaded
  and concatenated.

  With -o the result is written to a .csv, .parquet (ANA only) or .md file
  instead of being printed.
`
}

func (c *collectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (.csv, .parquet or .md).")
	f.IntVar(&c.maxRows, "n", 50, "Maximum number of catalog rows to print (0 for all).")
}

func (c *collectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: collect requires an institution and a product")
		return subcommands.ExitUsageError
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	ds, err := newClient().CollectData(ctx, f.Arg(0), f.Arg(1), f.Args()[2:])
	if errors.Is(err, dadosbr.ErrInvalidArgument) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error collecting %s %s: %v\n", f.Arg(0), f.Arg(1), err)
		return subcommands.ExitFailure
	}
	if ds == nil {
		fmt.Fprintf(os.Stderr, "Warning: no data for %s %s\n", f.Arg(0), f.Arg(1))
		return subcommands.ExitSuccess
	}

	if c.output == "" {
		printMarkdown(renderer.DatasetMarkdown(ds, c.maxRows))
		return subcommands.ExitSuccess
	}

	if strings.EqualFold(filepath.Ext(c.output), ".md") {
		err = os.WriteFile(c.output, []byte(renderer.DatasetMarkdown(ds, 0)), 0o644)
	} else {
		err = export.WriteFile(c.output, ds.Matrix, ds.Table)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
