package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dadosbr/dadosbr"
	"github.com/dadosbr/dadosbr/renderer"
)

// stationsCmd implements the "stations" command.
type stationsCmd struct {
	measurement string
	state       string
	city        string
}

func (*stationsCmd) Name() string     { return "stations" }
func (*stationsCmd) Synopsis() string { return "list the ANA stations of a measurement type" }
func (*stationsCmd) Usage() string {
	return `dados stations -type <vazao|chuva|cota> [-state <state>] [-city <city>]

  Lists the ANA stations measuring a type, optionally filtered by state and city.
  State and city are matched exactly, as the inventory spells them (e.g. "MINAS GERAIS").
`
}

func (c *stationsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.measurement, "type", "", "Measurement type: vazao (flow), chuva (rainfall) or cota (gauge level).")
	f.StringVar(&c.state, "state", "", "State name filter.")
	f.StringVar(&c.city, "city", "", "City name filter.")
}

func (c *stationsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	stations, err := newClient().ListStations(ctx, c.measurement, c.state, c.city)
	if errors.Is(err, dadosbr.ErrInvalidArgument) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing stations: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StationsMarkdown(stations))
	return subcommands.ExitSuccess
}
