package main

import (
	"fmt"
	"os"

	"datamapper/internal/analyze"

	"github.com/spf13/cobra"
)

type enumsFlags struct {
	patterns   []string
	typeName   string
	pkgName    string
	importPath string
	output     string
}

func (a *app) enumsCmd() *cobra.Command {
	var fl enumsFlags

	cmd := &cobra.Command{
		Use:   "enums --pkg PATTERN [--type NAME] [--output FILE]",
		Short: "Generate enum registrations for the constants of a package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(fl.patterns) == 0 {
				return fmt.Errorf("%w: --pkg is required", errUsage)
			}

			src, err := a.renderEnums(fl)
			if err != nil {
				return err
			}

			if fl.output == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}

			if err := os.WriteFile(fl.output, src, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", fl.output, err)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&fl.patterns, "pkg", "p", nil, "package patterns to scan")
	flags.StringVarP(&fl.typeName, "type", "t", "", "only this enum type")
	flags.StringVar(&fl.pkgName, "package", "enums", "package clause of the generated file")
	flags.StringVar(&fl.importPath, "import", "", "import path of the generated file's package")
	flags.StringVarP(&fl.output, "output", "o", "", "output file, stdout when empty")

	return cmd
}

func (a *app) renderEnums(fl enumsFlags) ([]byte, error) {
	set, err := analyze.NewAnalyzer("").LoadPackages(fl.patterns...)
	if err != nil {
		return nil, err
	}

	a.log.WithField("enums", len(set.Enums)).Debug("scanned packages")

	var ids []analyze.TypeID
	if fl.typeName != "" {
		for id := range set.Enums {
			if id.Name == fl.typeName {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf("enum %s not found in %v", fl.typeName, fl.patterns)
		}
	}

	return analyze.Render(set, analyze.RenderOptions{Package: fl.pkgName, ImportPath: fl.importPath}, ids...)
}
