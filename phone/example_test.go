package phone_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/phonetics/errs"
	"github.com/katalvlaran/phonetics/phone"
)

func ExampleNewConsonant() {
	k, err := phone.NewConsonant(phone.Stop, phone.Velar, phone.Voiceless, phone.StronglyAspirated)
	if err != nil {
		panic(err)
	}
	fmt.Println(k.Description())

	err = k.SetPhonation(phone.Modal)
	fmt.Println(errors.Is(err, errs.ErrImpossibleArticulation), k.Phonation())
	// Output:
	// voiceless strongly aspirated velar stop
	// true voiceless
}

func ExampleVowel_Raise() {
	v := phone.Schwa()
	for v.Raise(1) == nil {
	}
	fmt.Println(v.Description())
	// Output: close central unrounded vowel
}
