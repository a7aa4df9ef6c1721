// Package commands implements the phonetics command tree.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phonetics/internal/config"
	"github.com/katalvlaran/phonetics/internal/logging"
	"github.com/katalvlaran/phonetics/transcription"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

// Execute runs the root command with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "phonetics",
		Short: "Phonetic transcription toolkit",
		Long: `phonetics - convert, analyse and compare phonetic transcriptions.

Supported notations:
  ipa          Unicode International Phonetic Alphabet
  kirshenbaum  ASCII IPA with <tag> modifiers
  x-sampa      Extended SAMPA

Defaults are read from $PHONETICS_CONFIG or the OS config directory:
  macOS:   ~/Library/Application Support/phonetics/config.yaml
  Linux:   ~/.config/phonetics/config.yaml
  Windows: %AppData%/phonetics/config.yaml

Examples:
  phonetics convert --from ipa --to x-sampa "[ʃʷiː]"
  phonetics describe --format table "[kʰaŋ˥˩]"
  phonetics compare "[stɹɔŋ]" "[stɹɒŋ]"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $PHONETICS_CONFIG or the OS config dir)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		newConvertCmd(a),
		newDescribeCmd(a),
		newCompareCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	level, err := logging.Resolve(cfg.LogLevel, a.verbose)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), level)
	a.logger.Debug("config loaded", "source", cfg.Source(), "level", level)

	return nil
}

// codec builds a codec for the notation named by flag, falling back to def.
func (a *app) codec(flag, def string, brackets bool) (*transcription.Codec, error) {
	name := flag
	if name == "" {
		name = def
	}
	n, err := transcription.ParseNotation(name)
	if err != nil {
		return nil, err
	}

	return transcription.NewCodec(n,
		transcription.WithBrackets(brackets),
		transcription.WithNormalization(a.cfg.Form()),
		transcription.WithLogger(a.logger),
	)
}
