// Package main provides the strided command line tool. It builds arange
// arrays and prints the layouts that slicing, reshaping, broadcasting,
// permuting and dot products produce.
package main

import (
	"context"

	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(NewCLI().ExecuteContext(context.Background()))
}
