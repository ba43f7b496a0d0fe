package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	flowscribe "github.com/flowscribe/flowscribe"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flowscribe",
		Short:         "Read, validate and rewrite flow documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd(), newFmtCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate flow files and report humanized diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := flowscribe.DefaultReader()
			for _, name := range args {
				if !flowscribe.IsFlowsFile(name) {
					return fmt.Errorf("%s: not a flows file", name)
				}
				if _, err := reader.ReadFile(cmd.Context(), name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
			}
			return nil
		},
	}
}

func newFmtCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Round-trip a flow file through the canonical writer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flows, err := flowscribe.DefaultReader().ReadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if write {
				return flowscribe.DumpFile(flows.Flows(), args[0])
			}
			text, err := flowscribe.Dump(flows.Flows())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place")
	return cmd
}
