// SPDX-License-Identifier: MIT
// Package: phonetics/transcription
//
// codec.go - the public Codec and package-level helpers.

package transcription

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/phonetics/errs"
	"github.com/katalvlaran/phonetics/syllable"
)

// Codec converts between syllables and one notation. A Codec is immutable
// and safe for concurrent use.
type Codec struct {
	table *table
	cfg   codecConfig
}

// NewCodec returns a codec for n.
func NewCodec(n Notation, opts ...Option) (*Codec, error) {
	if !n.valid() {
		return nil, errs.Newf(errs.KindValue, "unknown notation %d", int(n))
	}

	return &Codec{table: tables[n], cfg: newCodecConfig(opts...)}, nil
}

// Notation returns the codec's notation.
func (c *Codec) Notation() Notation { return c.table.notation }

// Decode parses one syllable. The text may be enclosed in [ ]; other
// delimiters are refused. Failures are DecodingFailed errors whose cause
// names the offending symbol or rule.
func (c *Codec) Decode(text string) (*syllable.Syllable, error) {
	s, err := c.table.decode(text)
	if err != nil {
		c.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "decode failed",
			slog.String("notation", c.table.notation.String()),
			slog.String("text", text),
			slog.Any("error", err))

		return nil, errs.Wrap(errs.KindDecodingFailed, err, fmt.Sprintf("%s %q", c.table.notation, text))
	}
	c.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "decoded",
		slog.String("notation", c.table.notation.String()),
		slog.String("text", text),
		slog.Int("phones", s.Len()))

	return s, nil
}

// Encode spells s, bracketed and NFC-normalized unless configured otherwise.
// Phones the notation cannot spell fail with EncodingFailed.
func (c *Codec) Encode(s *syllable.Syllable) (string, error) {
	out, err := c.encodeBare(s)
	if err != nil {
		return "", err
	}

	return c.finish(out), nil
}

// DecodeSequence parses whitespace-separated syllables. One [ ] pair around
// the whole text is removed first.
func (c *Codec) DecodeSequence(text string) (syllable.Sequence, error) {
	body := strings.TrimSpace(text)
	if inner, ok := strings.CutPrefix(body, "["); ok {
		if inner, ok = strings.CutSuffix(inner, "]"); ok && !strings.Contains(inner, "]") {
			body = inner
		}
	}
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return nil, errs.Wrap(errs.KindDecodingFailed, errs.New(errs.KindValue, "empty transcription"),
			fmt.Sprintf("%s %q", c.table.notation, text))
	}
	seq := make(syllable.Sequence, 0, len(fields))
	for _, f := range fields {
		s, err := c.Decode(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, s)
	}

	return seq, nil
}

// EncodeSequence spells each syllable and joins them with spaces.
func (c *Codec) EncodeSequence(seq syllable.Sequence) (string, error) {
	parts := make([]string, len(seq))
	for i, s := range seq {
		out, err := c.encodeBare(s)
		if err != nil {
			return "", err
		}
		parts[i] = out
	}

	return c.finish(strings.Join(parts, " ")), nil
}

func (c *Codec) encodeBare(s *syllable.Syllable) (string, error) {
	if s == nil {
		return "", errs.New(errs.KindValue, "nil syllable")
	}
	if s.PartLen(syllable.Nucleus) == 0 {
		return "", errs.New(errs.KindValue, "syllable has no nucleus")
	}
	out, err := c.table.encode(s)
	if err != nil {
		c.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "encode failed",
			slog.String("notation", c.table.notation.String()),
			slog.Any("error", err))

		return "", errs.Wrap(errs.KindEncodingFailed, err, c.table.notation.String())
	}
	c.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "encoded",
		slog.String("notation", c.table.notation.String()),
		slog.String("text", out))

	return out, nil
}

func (c *Codec) finish(s string) string {
	if c.cfg.brackets {
		s = "[" + s + "]"
	}

	return c.cfg.form.String(s)
}

// Decode parses text in notation n with a one-off codec.
func Decode(text string, n Notation, opts ...Option) (*syllable.Syllable, error) {
	c, err := NewCodec(n, opts...)
	if err != nil {
		return nil, err
	}

	return c.Decode(text)
}

// Encode spells s in notation n with a one-off codec.
func Encode(s *syllable.Syllable, n Notation, opts ...Option) (string, error) {
	c, err := NewCodec(n, opts...)
	if err != nil {
		return "", err
	}

	return c.Encode(s)
}
