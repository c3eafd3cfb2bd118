package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dadosbr/dadosbr/renderer"
)

// productsCmd implements the "products" command.
type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the products of an institution" }
func (*productsCmd) Usage() string {
	return `dados products <institution>

  Lists the products published by an institution (ana, ons, aneel or ccee).
  For ANA they are the measurement types: vazao, chuva and cota.
`
}

func (*productsCmd) SetFlags(f *flag.FlagSet) {}

func (*productsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: products requires exactly one institution")
		return subcommands.ExitUsageError
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	institution := f.Arg(0)
	products := newClient().ListProducts(ctx, institution)
	printMarkdown(renderer.ProductsMarkdown(institution, products))
	return subcommands.ExitSuccess
}
