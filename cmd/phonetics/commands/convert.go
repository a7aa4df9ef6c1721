package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		from, to   string
		noBrackets bool
	)
	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Re-spell transcriptions in another notation",
		Long: `Decode each argument (or each stdin line when no arguments are given)
in the source notation and print it in the target notation. Syllables are
separated by whitespace.`,
		Example: `  phonetics convert --from ipa --to kirshenbaum "[tʰaː]"
  echo "S_wi:" | phonetics convert --from x-sampa --to ipa`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dec, err := a.codec(from, a.cfg.Notation, true)
			if err != nil {
				return err
			}
			enc, err := a.codec(to, a.cfg.OutputNotation, !noBrackets)
			if err != nil {
				return err
			}

			convert := func(text string) error {
				seq, err := dec.DecodeSequence(text)
				if err != nil {
					return err
				}
				out, err := enc.EncodeSequence(seq)
				if err != nil {
					return err
				}
				a.logger.Debug("converted", "from", dec.Notation(), "to", enc.Notation(), "syllables", len(seq))
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

				return err
			}

			if len(args) > 0 {
				for _, text := range args {
					if err := convert(text); err != nil {
						return err
					}
				}

				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for line := 1; sc.Scan(); line++ {
				text := strings.TrimSpace(sc.Text())
				if text == "" {
					continue
				}
				if err := convert(text); err != nil {
					return fmt.Errorf("line %d: %w", line, err)
				}
			}

			return sc.Err()
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "source notation (default from config)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "target notation (default from config)")
	cmd.Flags().BoolVar(&noBrackets, "no-brackets", false, "omit the surrounding [ ]")

	return cmd
}
