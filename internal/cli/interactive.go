package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/form"
)

const interactiveHelp = `commands:
  length <n>       set the password length
  toggle <class>   flip upper, lower, numbers or symbols
  generate         generate a password
  reset            clear everything
  show             print the form
  quit             leave`

func newInteractiveCmd(sf *sourceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "fill in the password form step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := sf.resolve()
			if err != nil {
				return err
			}
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), src)
		},
	}
}

// runInteractive drives a form from line commands until quit or EOF.
func runInteractive(r io.Reader, w io.Writer, src crypto.Source) error {
	f := form.New()
	scanner := bufio.NewScanner(r)

	fmt.Fprintln(w, "=== Password Generator ===")
	fmt.Fprintln(w, interactiveHelp)

	for {
		fmt.Fprint(w, "passgen> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "length":
			f.SetLength(strings.Join(fields[1:], " "))
		case "toggle":
			if len(fields) < 2 {
				fmt.Fprintln(w, "usage: toggle <class>")
				continue
			}
			c, err := crypto.ParseClass(fields[1])
			if err != nil {
				fmt.Fprintf(w, "error: %v: %q\n", err, fields[1])
				continue
			}
			f.Toggle(c)
			fmt.Fprintf(w, "%s: %s\n", c, onOff(f.Classes().Enabled(c)))
		case "generate":
			if err := f.Submit(src); err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
				continue
			}
			password, _ := f.Password()
			fmt.Fprintf(w, "Result: %s\n", password)
		case "reset":
			f.Reset()
			fmt.Fprintln(w, "form cleared")
		case "show":
			printForm(w, f)
		case "help":
			fmt.Fprintln(w, interactiveHelp)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(w, "unknown command %q, type help\n", fields[0])
		}
	}
}

func printForm(w io.Writer, f *form.Form) {
	fmt.Fprintf(w, "length:  %s\n", f.Length())
	cs := f.Classes()
	for _, c := range []crypto.Class{crypto.Lower, crypto.Upper, crypto.Number, crypto.Symbol} {
		fmt.Fprintf(w, "%-8s %s\n", c.String()+":", onOff(cs.Enabled(c)))
	}
	if password, ok := f.Password(); ok {
		fmt.Fprintf(w, "Result: %s\n", password)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
