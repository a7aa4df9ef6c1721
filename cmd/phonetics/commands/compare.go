package commands

import (
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phonetics/align"
	"github.com/katalvlaran/phonetics/syllable"
	"github.com/katalvlaran/phonetics/transcription"
)

type compareReport struct {
	A        string       `json:"a" yaml:"a"`
	B        string       `json:"b" yaml:"b"`
	Distance float64      `json:"distance" yaml:"distance"`
	Pairs    []pairReport `json:"pairs,omitempty" yaml:"pairs,omitempty"`
}

type pairReport struct {
	A    string  `json:"a" yaml:"a"`
	B    string  `json:"b" yaml:"b"`
	Cost float64 `json:"cost" yaml:"cost"`
}

func (r compareReport) header() []string {
	return []string{"a", "b", "cost"}
}

func (r compareReport) rows() [][]string {
	rows := make([][]string, 0, len(r.Pairs)+1)
	for _, p := range r.Pairs {
		rows = append(rows, []string{p.A, p.B, formatCost(p.Cost)})
	}

	return append(rows, []string{r.A, r.B, formatCost(r.Distance)})
}

func formatCost(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}

	return strconv.FormatFloat(d, 'f', 3, 64)
}

func newCompareReport(c *transcription.Codec, a, b syllable.Sequence, opts align.Options) (compareReport, error) {
	opts.ReturnPath = true
	opts.MemoryMode = align.FullMatrix
	dist, path, err := align.Sequences(a, b, &opts)
	if err != nil {
		return compareReport{}, err
	}
	textA, err := c.EncodeSequence(a)
	if err != nil {
		return compareReport{}, err
	}
	textB, err := c.EncodeSequence(b)
	if err != nil {
		return compareReport{}, err
	}

	r := compareReport{A: textA, B: textB, Distance: dist}
	for _, at := range path {
		sa, err := c.Encode(a[at.I])
		if err != nil {
			return compareReport{}, err
		}
		sb, err := c.Encode(b[at.J])
		if err != nil {
			return compareReport{}, err
		}
		cost, _, err := align.Syllables(a[at.I], b[at.J], &align.Options{
			Window: -1, SlopePenalty: opts.SlopePenalty, ToneWeight: opts.ToneWeight,
		})
		if err != nil {
			return compareReport{}, err
		}
		r.Pairs = append(r.Pairs, pairReport{A: sa, B: sb, Cost: cost})
	}

	return r, nil
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		notation, format string
		opts             = align.DefaultOptions()
	)
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Align two transcriptions and report their distance",
		Long: `Decode both arguments as syllable sequences and align them with dynamic
time warping. Syllables are compared phone by phone using a weighted feature
distance plus the tone difference.`,
		Example: `  phonetics compare "[stɹɔŋ]" "[stɹɒŋ]"
  phonetics compare --window 1 --format table "[ba na na]" "[ba na]"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec(notation, a.cfg.Notation, true)
			if err != nil {
				return err
			}
			seqA, err := c.DecodeSequence(args[0])
			if err != nil {
				return err
			}
			seqB, err := c.DecodeSequence(args[1])
			if err != nil {
				return err
			}
			report, err := newCompareReport(c, seqA, seqB, opts)
			if err != nil {
				return err
			}
			a.logger.Debug("compared", "distance", report.Distance, "pairs", len(report.Pairs))
			if format == "" {
				format = a.cfg.Format
			}

			return output(cmd.OutOrStdout(), format, report)
		},
	}
	cmd.Flags().StringVarP(&notation, "notation", "n", "", "input notation (default from config)")
	cmd.Flags().StringVarP(&format, "format", "o", "", "output format: yaml, json or table (default from config)")
	cmd.Flags().IntVar(&opts.Window, "window", opts.Window, "Sakoe-Chiba band half-width, -1 for none")
	cmd.Flags().Float64Var(&opts.SlopePenalty, "slope-penalty", opts.SlopePenalty, "cost added to each insertion or deletion")
	cmd.Flags().Float64Var(&opts.ToneWeight, "tone-weight", opts.ToneWeight, "weight of the tone difference")

	return cmd
}
