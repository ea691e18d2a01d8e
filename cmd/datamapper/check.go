package main

import (
	"fmt"

	"datamapper/internal/check"

	"github.com/spf13/cobra"
)

func (a *app) checkCmd() *cobra.Command {
	var (
		file    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "check --file FILE [--verbose]",
		Short: "Run a YAML file of conversion checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return fmt.Errorf("%w: --file is required", errUsage)
			}

			f, err := check.LoadFile(file)
			if err != nil {
				return err
			}

			_, diags := check.Run(f, a.factory)

			out := cmd.OutOrStdout()
			if verbose {
				for _, d := range diags.Infos {
					fmt.Fprintln(out, "ok   ", d.String())
				}
			}
			for _, d := range diags.Warnings {
				fmt.Fprintln(out, "warn ", d.String())
			}
			for _, d := range diags.Errors {
				fmt.Fprintln(out, "FAIL ", d.String())
			}
			fmt.Fprintln(out, diags.Summary())

			if diags.HasErrors() {
				return fmt.Errorf("%d checks failed", len(diags.Errors))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML check file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print passed checks")

	return cmd
}
