package transcription_test

import (
	"testing"

	"github.com/katalvlaran/phonetics/transcription"
)

func BenchmarkDecode(b *testing.B) {
	for _, n := range transcription.Notations() {
		text := map[transcription.Notation]string{
			transcription.IPA:         "[stɹɛ̃ŋkθsː˥˩]",
			transcription.Kirshenbaum: "[strE~NkTs:<5><1>]",
			transcription.XSAMPA:      "[str\\E~NkTs:_T_B]",
		}[n]
		c, err := transcription.NewCodec(n)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(n.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := c.Decode(text); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	s, err := transcription.Decode("[stɹɛ̃ŋkθsː˥˩]", transcription.IPA)
	if err != nil {
		b.Fatal(err)
	}
	for _, n := range transcription.Notations() {
		c, err := transcription.NewCodec(n)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(n.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := c.Encode(s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
