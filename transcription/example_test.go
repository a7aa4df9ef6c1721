package transcription_test

import (
	"fmt"

	"github.com/katalvlaran/phonetics/transcription"
)

func ExampleCodec_Decode() {
	c, err := transcription.NewCodec(transcription.IPA)
	if err != nil {
		panic(err)
	}
	s, err := c.Decode("[kʰaŋ˥˩]")
	if err != nil {
		panic(err)
	}
	for _, p := range s.Phones() {
		fmt.Println(p.Description())
	}
	fmt.Println(s.Tone())
	// Output:
	// voiceless moderately aspirated velar stop
	// open front unrounded vowel
	// modal velar nasal
	// {2,0,-2}
}

func ExampleCodec_Encode() {
	ipa, _ := transcription.NewCodec(transcription.IPA)
	s, err := ipa.Decode("ʃʷiː")
	if err != nil {
		panic(err)
	}
	for _, n := range transcription.Notations() {
		out, err := transcription.Encode(s, n)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-11s %s\n", n, out)
	}
	// Output:
	// ipa         [ʃʷiː]
	// kirshenbaum [S<w>i:]
	// x-sampa     [S_wi:]
}
