package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/form"
)

func newGenerateCmd(sf *sourceFlags) *cobra.Command {
	var (
		length  string
		classes crypto.Classes
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "generate one password",
		Example: "  passgen generate -l 12 --upper --lower --numbers\n" +
			"  passgen generate -l 20 -ULns",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := sf.resolve()
			if err != nil {
				return err
			}

			f := form.New()
			f.SetLength(length)
			for _, c := range []crypto.Class{crypto.Upper, crypto.Lower, crypto.Number, crypto.Symbol} {
				if classes.Enabled(c) {
					f.Toggle(c)
				}
			}

			if err := f.Submit(src); err != nil {
				return err
			}

			password, _ := f.Password()
			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		},
	}

	cmd.Flags().StringVarP(&length, "length", "l", "", fmt.Sprintf("password length (%d-%d)", form.MinLength, form.MaxLength))
	cmd.Flags().BoolVarP(&classes.Upper, "upper", "U", false, "include uppercase letters")
	cmd.Flags().BoolVarP(&classes.Lower, "lower", "L", false, "include lowercase letters")
	cmd.Flags().BoolVarP(&classes.Numbers, "numbers", "n", false, "include numbers")
	cmd.Flags().BoolVarP(&classes.Symbols, "symbols", "s", false, "include symbols")

	return cmd
}
