// Package cli implements the passgen command line front end.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passform/passform-go/internal/crypto"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

var errSeedNeedsMath = errors.New("--seed requires --source math")

type sourceFlags struct {
	name string
	seed uint64
}

func (sf *sourceFlags) resolve() (crypto.Source, error) {
	if sf.seed != 0 {
		if strings.ToLower(sf.name) != "math" {
			return nil, errSeedNeedsMath
		}
		return crypto.NewSeededSource(sf.seed), nil
	}
	return crypto.SourceByName(sf.name)
}

// NewRootCmd builds the passgen command tree.
func NewRootCmd() *cobra.Command {
	sf := &sourceFlags{}

	rootCmd := &cobra.Command{
		Use:           "passgen",
		Short:         "generate random passwords",
		Long:          "passgen generates random passwords from selected character classes (uppercase, lowercase, numbers, symbols).",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	defaultSource := os.Getenv("RANDOM_SOURCE")
	if defaultSource == "" {
		defaultSource = "crypto"
	}

	rootCmd.PersistentFlags().StringVar(&sf.name, "source", defaultSource, "random source: crypto or math (env RANDOM_SOURCE)")
	rootCmd.PersistentFlags().Uint64Var(&sf.seed, "seed", 0, "seed for the math source (0 means unseeded)")

	rootCmd.AddCommand(newGenerateCmd(sf))
	rootCmd.AddCommand(newInteractiveCmd(sf))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "passgen %s\n", Version)
			return nil
		},
	}
}
