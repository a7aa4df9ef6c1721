package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phonetics/phone"
	"github.com/katalvlaran/phonetics/syllable"
	"github.com/katalvlaran/phonetics/transcription"
)

type describeReport struct {
	Input     string           `json:"input" yaml:"input"`
	Notation  string           `json:"notation" yaml:"notation"`
	Syllables []syllableReport `json:"syllables" yaml:"syllables"`
}

type syllableReport struct {
	Text   string        `json:"text" yaml:"text"`
	Tone   string        `json:"tone,omitempty" yaml:"tone,omitempty"`
	Phones []phoneReport `json:"phones" yaml:"phones"`
}

// phoneReport flattens phone.Features into names so that zero-valued
// feature names (bilabial, front, ...) are never dropped by omitempty.
type phoneReport struct {
	Part        string  `json:"part" yaml:"part"`
	Kind        string  `json:"kind" yaml:"kind"`
	Description string  `json:"description" yaml:"description"`
	Phonation   string  `json:"phonation" yaml:"phonation"`
	Nasal       string  `json:"nasalization" yaml:"nasalization"`
	Length      float64 `json:"length" yaml:"length"`

	Height      string `json:"height,omitempty" yaml:"height,omitempty"`
	Backness    string `json:"backness,omitempty" yaml:"backness,omitempty"`
	Roundedness string `json:"roundedness,omitempty" yaml:"roundedness,omitempty"`
	RColored    bool   `json:"r_colored,omitempty" yaml:"r_colored,omitempty"`

	Manner    string `json:"manner,omitempty" yaml:"manner,omitempty"`
	Place     string `json:"place,omitempty" yaml:"place,omitempty"`
	Secondary string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Release   string `json:"release,omitempty" yaml:"release,omitempty"`
	VOT       string `json:"vot,omitempty" yaml:"vot,omitempty"`
	Mechanism string `json:"mechanism,omitempty" yaml:"mechanism,omitempty"`
}

func newPhoneReport(part syllable.Part, p phone.Phone) phoneReport {
	f := p.Features()
	r := phoneReport{
		Part:        part.String(),
		Kind:        f.Kind.String(),
		Description: p.Description(),
		Phonation:   f.Phonation.String(),
		Nasal:       f.Nasalization.String(),
		Length:      f.Length,
	}
	if f.Kind == phone.VowelKind {
		r.Height = phone.HeightName(f.Height)
		r.Backness = phone.BacknessName(f.Backness)
		r.Roundedness = f.Roundedness.String()
		r.RColored = f.RColored

		return r
	}
	r.Manner = f.Manner.String()
	r.Place = f.Place.String()
	if f.HasSecondary() {
		r.Secondary = f.Secondary.String()
	}
	if f.Affricate {
		r.Release = f.ReleasePlace.String() + " " + f.ReleaseManner.String()
	}
	r.VOT = f.VOT.String()
	r.Mechanism = f.Mechanism.String()

	return r
}

func newDescribeReport(c *transcription.Codec, input string, seq syllable.Sequence) (describeReport, error) {
	out := describeReport{Input: input, Notation: c.Notation().String()}
	for _, s := range seq {
		text, err := c.Encode(s)
		if err != nil {
			return describeReport{}, err
		}
		sr := syllableReport{Text: text}
		if !s.Tone().IsZero() {
			sr.Tone = s.Tone().String()
		}
		for i, p := range s.All() {
			part, err := s.PartOf(i)
			if err != nil {
				return describeReport{}, err
			}
			sr.Phones = append(sr.Phones, newPhoneReport(part, p))
		}
		out.Syllables = append(out.Syllables, sr)
	}

	return out, nil
}

func (r describeReport) header() []string {
	return []string{"#", "syllable", "part", "description"}
}

func (r describeReport) rows() [][]string {
	var rows [][]string
	for i, s := range r.Syllables {
		for k, p := range s.Phones {
			n, text := "", ""
			if k == 0 {
				n, text = strconv.Itoa(i+1), s.Text
				if s.Tone != "" {
					text += " " + s.Tone
				}
			}
			rows = append(rows, []string{n, text, p.Part, p.Description})
		}
	}

	return rows
}

func newDescribeCmd(a *app) *cobra.Command {
	var notation, format string
	cmd := &cobra.Command{
		Use:   "describe <text>",
		Short: "Print the feature analysis of a transcription",
		Example: `  phonetics describe "[kʰaŋ˥˩]"
  phonetics describe --notation x-sampa --format json "S_wi:"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec(notation, a.cfg.Notation, true)
			if err != nil {
				return err
			}
			seq, err := c.DecodeSequence(args[0])
			if err != nil {
				return err
			}
			report, err := newDescribeReport(c, args[0], seq)
			if err != nil {
				return err
			}
			if format == "" {
				format = a.cfg.Format
			}

			return output(cmd.OutOrStdout(), format, report)
		},
	}
	cmd.Flags().StringVarP(&notation, "notation", "n", "", "input notation (default from config)")
	cmd.Flags().StringVarP(&format, "format", "o", "", "output format: yaml, json or table (default from config)")

	return cmd
}
