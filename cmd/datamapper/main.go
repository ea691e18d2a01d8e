// Package main provides the CLI entrypoint for datamapper.
//
// datamapper exercises the property data mappers from the command line:
//   - parse: parse raw values with the mapper of a kind
//   - format: parse, then render values as the mapper displays them
//   - check: run a YAML file of expectations
//   - enums: generate mapper.RegisterEnum calls for the enums of a package
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"datamapper/internal/config"
	"datamapper/internal/match"
	"datamapper/mapper"
	"datamapper/primitive"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app is the state shared by the subcommands, set up before any of them runs.
type app struct {
	configPath string
	envFile    string
	logLevel   string

	log     *logrus.Logger
	factory *mapper.Factory
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{log: logrus.New()}
	a.log.SetOutput(stderr)

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		return 2
	default:
		a.log.WithError(err).Error(cmd.Name() + " failed")
		return 1
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "datamapper",
		Short: "Parse and format property values with data mappers",
		Long:  "Parse and format property values with data mappers.\n\nKinds: " + strings.Join(kindNames(), ", "),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n%s", cmd.Long, cmd.UsageString())
			return fmt.Errorf("%w: a command is required", errUsage)
		},
		PersistentPreRunE: func(*cobra.Command, []string) error { return a.setup() },
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&a.envFile, "env", "", ".env file with DATAMAPPER_* overrides")
	flags.StringVar(&a.logLevel, "log-level", "", "log level, overrides config")

	root.AddCommand(a.parseCmd(false), a.parseCmd(true), a.checkCmd(), a.enumsCmd())

	return root
}

// setup loads the configuration and builds the factory.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}

	a.log.SetLevel(cfg.Level())
	if a.logLevel != "" {
		lvl, err := logrus.ParseLevel(a.logLevel)
		if err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		a.log.SetLevel(lvl)
	}

	a.factory = mapper.NewFactory(cfg.MapperOptions(a.log)...)

	return nil
}

func kindNames() []string {
	names := make([]string, 0, primitive.KindTotal-1)
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		names = append(names, strings.ToLower(k.Name()))
	}

	return names
}

// kindFlag resolves the --kind value, suggesting the closest kind on a typo.
func kindFlag(name string) (primitive.KindEnum, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: --kind is required", errUsage)
	}

	kind, ok := primitive.ParseKind(name)
	if ok {
		return kind, nil
	}

	if hint, found := match.Closest(name, kindNames()); found {
		return 0, fmt.Errorf("%w: unknown kind %q, did you mean %q?", errUsage, name, hint)
	}

	return 0, fmt.Errorf("%w: unknown kind %q, want one of: %s", errUsage, name, strings.Join(kindNames(), ", "))
}
