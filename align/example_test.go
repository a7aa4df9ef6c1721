package align_test

import (
	"fmt"

	"github.com/katalvlaran/phonetics/align"
	"github.com/katalvlaran/phonetics/transcription"
)

// ExampleSyllables aligns a syllable with a variant carrying an extra onset
// consonant and prints which phones were paired.
func ExampleSyllables() {
	a, _ := transcription.Decode("[ta]", transcription.IPA)
	b, _ := transcription.Decode("[sta]", transcription.IPA)

	opts := align.DefaultOptions()
	opts.ReturnPath = true

	_, path, err := align.Syllables(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(path)
	// Output:
	// [{0 0} {0 1} {1 2}]
}

// ExampleOptions_window shows that a zero band forbids any stretching.
func ExampleOptions_window() {
	a, _ := transcription.Decode("[pa]", transcription.IPA)
	b, _ := transcription.Decode("[pʰaː]", transcription.IPA)

	opts := align.DefaultOptions()
	opts.Window = 0
	opts.ToneWeight = 0

	dist, _, _ := align.Syllables(a, b, &opts)
	fmt.Printf("distance=%.3f\n", dist)
	// Output:
	// distance=0.583
}
