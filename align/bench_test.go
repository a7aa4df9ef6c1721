package align_test

import (
	"testing"

	"github.com/katalvlaran/phonetics/align"
	"github.com/katalvlaran/phonetics/syllable"
	"github.com/katalvlaran/phonetics/transcription"
)

func benchSequences(b *testing.B) (syllable.Sequence, syllable.Sequence) {
	b.Helper()
	c, err := transcription.NewCodec(transcription.IPA)
	if err != nil {
		b.Fatal(err)
	}
	x, err := c.DecodeSequence("[stɹɛŋkθs pɑ lə ma ta ki]")
	if err != nil {
		b.Fatal(err)
	}
	y, err := c.DecodeSequence("[stɹɪŋks pa la mə da ki tu]")
	if err != nil {
		b.Fatal(err)
	}

	return x, y
}

func BenchmarkSequences_FullMatrix(b *testing.B) {
	x, y := benchSequences(b)
	opts := align.DefaultOptions()
	opts.ReturnPath = true
	b.ReportAllocs()
	for b.Loop() {
		_, _, _ = align.Sequences(x, y, &opts)
	}
}

func BenchmarkSequences_TwoRows(b *testing.B) {
	x, y := benchSequences(b)
	opts := align.DefaultOptions()
	opts.MemoryMode = align.TwoRows
	b.ReportAllocs()
	for b.Loop() {
		_, _, _ = align.Sequences(x, y, &opts)
	}
}
