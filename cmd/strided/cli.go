package main

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/born-ml/strided/internal/envconfig"
	"github.com/born-ml/strided/tensor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

// appendEnvDocs adds the configuration variables to the usage text of cmd.
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI creates the root command with all subcommands.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "strided",
		Short:         "Inspect strided array layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: envconfig.LogLevel()})
			tensor.SetLogger(slog.New(h))
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			tensor.SetLogger(nil)
		},
	}
	rootCmd.PersistentFlags().String("dtype", "float64", "Element type used to print values (float16, float32, float64, int32, int64, uint8)")

	envVars := envconfig.AsMap()
	envs := []envconfig.EnvVar{envVars["STRIDED_DEBUG"], envVars["STRIDED_LOG_LEVEL"]}

	cmds := []*cobra.Command{
		newSliceCmd(),
		newReshapeCmd(),
		newBroadcastCmd(),
		newPermuteCmd(),
		newDotCmd(),
	}
	for _, cmd := range cmds {
		appendEnvDocs(cmd, envs)
	}

	rootCmd.AddCommand(newVersionCmd(), newEnvCmd())
	rootCmd.AddCommand(cmds...)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "strided version %s\n", version)
		},
	}
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List configuration variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars := envconfig.AsMap()
			var data [][]string
			for _, name := range slices.Sorted(maps.Keys(vars)) {
				v := vars[name]
				data = append(data, []string{v.Name, fmt.Sprint(v.Value), v.Description})
			}
			renderTable(cmd.OutOrStdout(), []string{"NAME", "VALUE", "DESCRIPTION"}, data)
			return nil
		},
	}
}

func newSliceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slice SELECTORS",
		Short: "Slice an arange array",
		Example: `  strided slice --shape 2,3,4 '1, .., ::-2'
  strided slice --shape 4 'newaxis, 1:'`,
		Args: cobra.ExactArgs(1),
		RunE: guard(SliceHandler),
	}
	cmd.Flags().String("shape", "", "Shape of the source array (e.g. 2,3,4)")
	cmd.Flags().String("order", "C", "Memory order of the source array (C or F)")
	return cmd
}

func newReshapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reshape",
		Short: "Reshape an arange array and report whether it was copied",
		Args:  cobra.NoArgs,
		RunE:  guard(ReshapeHandler),
	}
	cmd.Flags().String("shape", "", "Shape of the source array")
	cmd.Flags().String("to", "", "Target shape; one entry may be -1")
	cmd.Flags().String("order", "C", "Memory order of the source array and the reshape (C or F)")
	cmd.Flags().Bool("transpose", false, "Reshape the transposed source")
	return cmd
}

func newBroadcastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Broadcast an arange array to a larger shape",
		Args:  cobra.NoArgs,
		RunE:  guard(BroadcastHandler),
	}
	cmd.Flags().String("shape", "", "Shape of the source array")
	cmd.Flags().String("to", "", "Target shape")
	cmd.Flags().String("order", "C", "Memory order of the source array (C or F)")
	return cmd
}

func newPermuteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permute",
		Short: "Reorder the axes of an arange array",
		Args:  cobra.NoArgs,
		RunE:  guard(PermuteHandler),
	}
	cmd.Flags().String("shape", "", "Shape of the source array")
	cmd.Flags().String("axes", "", "New axis order (e.g. 2,0,1); empty reverses the axes")
	return cmd
}

func newDotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Multiply two arange arrays",
		Args:  cobra.NoArgs,
		RunE:  guard(DotHandler),
	}
	cmd.Flags().String("lhs", "", "Shape of the left operand")
	cmd.Flags().String("rhs", "", "Shape of the right operand")
	return cmd
}

// guard turns panics raised by array contract violations into command
// errors.
func guard(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
					return
				}
				err = errors.Errorf("%v", r)
			}
		}()
		return run(cmd, args)
	}
}
