// SPDX-License-Identifier: MIT
// Package: phonetics/transcription
//
// options.go - functional options for Codec.
//
// Contract:
//   - Option constructors panic on meaningless input (nil logger, a
//     normalization form other than NFC/NFD); Decode/Encode never panic.
//   - Defaults: brackets on, NFC output, logging discarded.

package transcription

import (
	"log/slog"

	"golang.org/x/text/unicode/norm"
)

// Option customizes a Codec.
type Option func(*codecConfig)

type codecConfig struct {
	brackets bool
	form     norm.Form
	logger   *slog.Logger
}

func newCodecConfig(opts ...Option) codecConfig {
	cfg := codecConfig{
		brackets: true,
		form:     norm.NFC,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// WithBrackets controls whether Encode wraps its output in [ ].
func WithBrackets(on bool) Option {
	return func(c *codecConfig) { c.brackets = on }
}

// WithNormalization selects the Unicode form of encoded output.
func WithNormalization(f norm.Form) Option {
	if f != norm.NFC && f != norm.NFD {
		panic("transcription: WithNormalization accepts norm.NFC or norm.NFD")
	}

	return func(c *codecConfig) { c.form = f }
}

// WithLogger routes debug traces of every decode and encode to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("transcription: WithLogger(nil)")
	}

	return func(c *codecConfig) { c.logger = l }
}
