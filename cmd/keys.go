package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"tedit/pkg/input"
	"tedit/pkg/term"
)

// keysCmd is a decoding diagnostic: it puts the terminal in raw mode and
// prints every decoded key until 'q'. Useful for checking what byte
// sequences a terminal actually sends.
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print decoded keys until 'q' is pressed",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		if !xterm.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("stdin is not a terminal")
		}

		sess, err := term.Open(os.Stdin, os.Stdout, cfg.EscapeWait)
		if err != nil {
			return err
		}
		defer sess.Restore()

		fmt.Print("Press keys to see how they decode; 'q' quits.\r\n")

		decoder := input.NewDecoder(sess)
		for {
			key, err := decoder.ReadKey()
			if err != nil {
				return err
			}
			// Raw mode leaves OPOST off, so lines need an explicit \r.
			fmt.Printf("%s\r\n", key)
			if key.Kind == input.Printable && key.Ch == 'q' {
				return nil
			}
		}
	},
}
