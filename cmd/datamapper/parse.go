package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func (a *app) parseCmd(format bool) *cobra.Command {
	var (
		kindName string
		dump     bool
	)

	cmd := &cobra.Command{
		Use:   "parse --kind KIND [--dump] VALUE...",
		Short: "Parse values with the mapper of a kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.parse(cmd, args, kindName, format, dump)
		},
	}

	if format {
		cmd.Use = "format --kind KIND VALUE..."
		cmd.Short = "Parse values, then format them for display"
	} else {
		cmd.Flags().BoolVar(&dump, "dump", false, "dump parsed values")
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "mapper kind")

	return cmd
}

func (a *app) parse(cmd *cobra.Command, args []string, kindName string, format, dump bool) error {
	kind, err := kindFlag(kindName)
	if err != nil {
		return err
	}

	m, err := a.factory.ForKind(kind)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	failed := 0
	for _, raw := range args {
		v, ok, err := m.TryParsePropValue(raw)
		switch {
		case err != nil:
			return fmt.Errorf("%q: %w", raw, err)
		case !ok:
			failed++
			fmt.Fprintf(out, "%q\tinvalid\n", raw)
		case format:
			fmt.Fprintf(out, "%q\t%s\n", raw, m.ConvertValueToString(v))
		default:
			fmt.Fprintf(out, "%q\t%T\t%v\n", raw, v, v)
		}

		if dump && ok {
			spew.Fdump(out, v)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d values not parsed as %s", failed, len(args), kind.Name())
	}

	return nil
}
