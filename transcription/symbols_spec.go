// SPDX-License-Identifier: MIT
// Package: phonetics/transcription
//
// symbols_spec.go - data-only registry of symbols for every notation.
//
// Contract:
//   - No behavior lives here: only tables consumed by tables.go.
//   - A spelling lists alternatives separated by single spaces; the first is
//     canonical (used by Encode), the rest are accepted by Decode only.
//     An empty spelling means the notation has no symbol for the entry.
//   - Mark order in the marks table is the canonical output order.
//
// AI-Hints:
//   - Add a symbol by adding a row; tables.go panics at init on any
//     spelling that collides within one notation.
//   - X-SAMPA spells marks with no standard form as _{xx}; braces keep their
//     tails from colliding with base symbols.

package transcription

import (
	"strings"

	"github.com/katalvlaran/phonetics/phone"
)

// spelling holds the alternatives for IPA, Kirshenbaum and X-SAMPA.
type spelling [numNotations][]string

func sp(ipa, kirshenbaum, xsampa string) spelling {
	return spelling{strings.Fields(ipa), strings.Fields(kirshenbaum), strings.Fields(xsampa)}
}

// canonical returns the output spelling in n, or "" when n has none.
func (s spelling) canonical(n Notation) string {
	if len(s[n]) == 0 {
		return ""
	}

	return s[n][0]
}

type consonantSymbol struct {
	manner    phone.Manner
	place     phone.Place
	secondary phone.Place
	voiced    bool
	mechanism phone.Mechanism
	spell     spelling
}

func pulmonic(m phone.Manner, p phone.Place, voiced bool, s spelling) consonantSymbol {
	return consonantSymbol{manner: m, place: p, secondary: p, voiced: voiced, spell: s}
}

func coarticulated(m phone.Manner, p, secondary phone.Place, voiced bool, s spelling) consonantSymbol {
	return consonantSymbol{manner: m, place: p, secondary: secondary, voiced: voiced, spell: s}
}

func nonPulmonic(mech phone.Mechanism, m phone.Manner, p phone.Place, voiced bool, s spelling) consonantSymbol {
	return consonantSymbol{manner: m, place: p, secondary: p, voiced: voiced, mechanism: mech, spell: s}
}

const (
	voiceless = false
	voiced    = true
)

var consonantSymbols = []consonantSymbol{
	// Stops.
	pulmonic(phone.Stop, phone.Bilabial, voiceless, sp("p", "p", "p")),
	pulmonic(phone.Stop, phone.Bilabial, voiced, sp("b", "b", "b")),
	pulmonic(phone.Stop, phone.ApicalAlveolar, voiceless, sp("t", "t", "t")),
	pulmonic(phone.Stop, phone.ApicalAlveolar, voiced, sp("d", "d", "d")),
	pulmonic(phone.Stop, phone.ApicalRetroflex, voiceless, sp("ʈ", "t.", "t`")),
	pulmonic(phone.Stop, phone.ApicalRetroflex, voiced, sp("ɖ", "d.", "d`")),
	pulmonic(phone.Stop, phone.Palatal, voiceless, sp("c", "c", "c")),
	pulmonic(phone.Stop, phone.Palatal, voiced, sp("ɟ", "J", `J\`)),
	pulmonic(phone.Stop, phone.Velar, voiceless, sp("k", "k", "k")),
	pulmonic(phone.Stop, phone.Velar, voiced, sp("ɡ g", "g", "g")),
	pulmonic(phone.Stop, phone.Uvular, voiceless, sp("q", "q", "q")),
	pulmonic(phone.Stop, phone.Uvular, voiced, sp("ɢ", "G", `G\`)),
	pulmonic(phone.Stop, phone.Epiglottal, voiceless, sp("ʡ", `?"`, `>\`)),
	pulmonic(phone.Stop, phone.Glottal, voiceless, sp("ʔ", "?", "?")),

	// Nasals.
	pulmonic(phone.Nasal, phone.Bilabial, voiced, sp("m", "m", "m")),
	pulmonic(phone.Nasal, phone.Labiodental, voiced, sp("ɱ", "M", "F")),
	pulmonic(phone.Nasal, phone.ApicalAlveolar, voiced, sp("n", "n", "n")),
	pulmonic(phone.Nasal, phone.ApicalRetroflex, voiced, sp("ɳ", "n.", "n`")),
	pulmonic(phone.Nasal, phone.Palatal, voiced, sp("ɲ", "n^", "J")),
	pulmonic(phone.Nasal, phone.Velar, voiced, sp("ŋ", "N", "N")),
	pulmonic(phone.Nasal, phone.Uvular, voiced, sp("ɴ", `n"`, `N\`)),

	// Trills and flaps.
	pulmonic(phone.Trill, phone.Bilabial, voiced, sp("ʙ", "b<trl>", `B\`)),
	pulmonic(phone.Trill, phone.ApicalAlveolar, voiced, sp("r", "r<trl>", "r")),
	pulmonic(phone.Trill, phone.Uvular, voiced, sp("ʀ", `r"`, `R\`)),
	pulmonic(phone.Flap, phone.Labiodental, voiced, sp("ⱱ", "", "")),
	pulmonic(phone.Flap, phone.ApicalAlveolar, voiced, sp("ɾ", "*", "4")),
	pulmonic(phone.Flap, phone.ApicalRetroflex, voiced, sp("ɽ", "*.", "r`")),

	// Sibilant fricatives.
	pulmonic(phone.SibilantFricative, phone.ApicalAlveolar, voiceless, sp("s", "s", "s")),
	pulmonic(phone.SibilantFricative, phone.ApicalAlveolar, voiced, sp("z", "z", "z")),
	pulmonic(phone.SibilantFricative, phone.LaminalPalatoAlveolar, voiceless, sp("ʃ", "S", "S")),
	pulmonic(phone.SibilantFricative, phone.LaminalPalatoAlveolar, voiced, sp("ʒ", "Z", "Z")),
	pulmonic(phone.SibilantFricative, phone.ApicalRetroflex, voiceless, sp("ʂ", "s.", "s`")),
	pulmonic(phone.SibilantFricative, phone.ApicalRetroflex, voiced, sp("ʐ", "z.", "z`")),
	pulmonic(phone.SibilantFricative, phone.AlveoloPalatal, voiceless, sp("ɕ", "s^", `s\`)),
	pulmonic(phone.SibilantFricative, phone.AlveoloPalatal, voiced, sp("ʑ", "z^", `z\`)),

	// Non-sibilant fricatives.
	pulmonic(phone.NonSibilantFricative, phone.Bilabial, voiceless, sp("ɸ", "P", `p\`)),
	pulmonic(phone.NonSibilantFricative, phone.Bilabial, voiced, sp("β", "B", "B")),
	pulmonic(phone.NonSibilantFricative, phone.Labiodental, voiceless, sp("f", "f", "f")),
	pulmonic(phone.NonSibilantFricative, phone.Labiodental, voiced, sp("v", "v", "v")),
	pulmonic(phone.NonSibilantFricative, phone.ApicalDental, voiceless, sp("θ", "T", "T")),
	pulmonic(phone.NonSibilantFricative, phone.ApicalDental, voiced, sp("ð", "D", "D")),
	pulmonic(phone.NonSibilantFricative, phone.Palatal, voiceless, sp("ç", "C", "C")),
	pulmonic(phone.NonSibilantFricative, phone.Palatal, voiced, sp("ʝ", `C"`, `j\`)),
	pulmonic(phone.NonSibilantFricative, phone.Velar, voiceless, sp("x", "x", "x")),
	pulmonic(phone.NonSibilantFricative, phone.Velar, voiced, sp("ɣ", "Q", "G")),
	pulmonic(phone.NonSibilantFricative, phone.Uvular, voiceless, sp("χ", "X", "X")),
	pulmonic(phone.NonSibilantFricative, phone.Uvular, voiced, sp("ʁ", `g"`, "R")),
	pulmonic(phone.NonSibilantFricative, phone.Pharyngeal, voiceless, sp("ħ", "H", `X\`)),
	pulmonic(phone.NonSibilantFricative, phone.Pharyngeal, voiced, sp("ʕ", `H"`, `?\`)),
	pulmonic(phone.NonSibilantFricative, phone.Epiglottal, voiceless, sp("ʜ", "H.", `H\`)),
	pulmonic(phone.NonSibilantFricative, phone.Epiglottal, voiced, sp("ʢ", `Q"`, `<\`)),
	pulmonic(phone.NonSibilantFricative, phone.Glottal, voiceless, sp("h", "h", "h")),
	pulmonic(phone.NonSibilantFricative, phone.Glottal, voiced, sp("ɦ", `h"`, `h\`)),

	// Approximants.
	pulmonic(phone.Approximant, phone.Labiodental, voiced, sp("ʋ", `v"`, `v\ P`)),
	pulmonic(phone.Approximant, phone.ApicalAlveolar, voiced, sp("ɹ", "r", `r\`)),
	pulmonic(phone.Approximant, phone.ApicalRetroflex, voiced, sp("ɻ", "r.", "r\\`")),
	pulmonic(phone.Approximant, phone.Palatal, voiced, sp("j", "j", "j")),
	pulmonic(phone.Approximant, phone.Velar, voiced, sp("ɰ", `j"`, `M\`)),
	coarticulated(phone.Approximant, phone.Velar, phone.Bilabial, voiced, sp("w", "w", "w")),
	coarticulated(phone.Approximant, phone.Velar, phone.Bilabial, voiceless, sp("ʍ", "W", "W")),
	coarticulated(phone.Approximant, phone.Palatal, phone.Bilabial, voiced, sp("ɥ", `w"`, "H")),

	// Laterals.
	pulmonic(phone.LateralApproximant, phone.ApicalAlveolar, voiced, sp("l", "l", "l")),
	pulmonic(phone.LateralApproximant, phone.ApicalRetroflex, voiced, sp("ɭ", "l.", "l`")),
	pulmonic(phone.LateralApproximant, phone.Palatal, voiced, sp("ʎ", "l^", "L")),
	pulmonic(phone.LateralApproximant, phone.Velar, voiced, sp("ʟ", "L", `L\`)),
	pulmonic(phone.LateralFricative, phone.ApicalAlveolar, voiceless, sp("ɬ", "s<lat>", "K")),
	pulmonic(phone.LateralFricative, phone.ApicalAlveolar, voiced, sp("ɮ", "z<lat>", `K\`)),
	pulmonic(phone.LateralFlap, phone.ApicalAlveolar, voiced, sp("ɺ", "*<lat>", `l\`)),

	// Implosives.
	nonPulmonic(phone.Implosive, phone.Stop, phone.Bilabial, voiced, sp("ɓ", "", "")),
	nonPulmonic(phone.Implosive, phone.Stop, phone.ApicalAlveolar, voiced, sp("ɗ", "", "")),
	nonPulmonic(phone.Implosive, phone.Stop, phone.Palatal, voiced, sp("ʄ", "", "")),
	nonPulmonic(phone.Implosive, phone.Stop, phone.Velar, voiced, sp("ɠ", "", "")),
	nonPulmonic(phone.Implosive, phone.Stop, phone.Uvular, voiced, sp("ʛ", "", "")),

	// Clicks.
	nonPulmonic(phone.Click, phone.Stop, phone.Bilabial, voiceless, sp("ʘ", "", `O\`)),
	nonPulmonic(phone.Click, phone.Stop, phone.ApicalDental, voiceless, sp("ǀ", "", `|\`)),
	nonPulmonic(phone.Click, phone.Stop, phone.ApicalAlveolar, voiceless, sp("ǃ", "", `!\`)),
	nonPulmonic(phone.Click, phone.Stop, phone.LaminalPalatoAlveolar, voiceless, sp("ǂ", "", `=\`)),
	nonPulmonic(phone.Click, phone.LateralApproximant, phone.ApicalAlveolar, voiceless, sp("ǁ", "", `|\|\`)),
}

type vowelSymbol struct {
	height, backness float64
	rounded          bool
	rhotic           bool
	spell            spelling
}

func vowel(h, b float64, rounded bool, s spelling) vowelSymbol {
	return vowelSymbol{height: h, backness: b, rounded: rounded, spell: s}
}

const (
	unrounded = false
	rounded   = true
)

// Rhotic vowel symbols are decode-only: encoding spells them as vowel + r-color mark.
var vowelSymbols = []vowelSymbol{
	vowel(phone.Close, phone.Front, unrounded, sp("i", "i", "i")),
	vowel(phone.Close, phone.Front, rounded, sp("y", "y", "y")),
	vowel(phone.Close, phone.Central, unrounded, sp("ɨ", `i"`, "1")),
	vowel(phone.Close, phone.Central, rounded, sp("ʉ", `u"`, "}")),
	vowel(phone.Close, phone.Back, unrounded, sp("ɯ", "u-", "M")),
	vowel(phone.Close, phone.Back, rounded, sp("u", "u", "u")),
	vowel(phone.NearClose, phone.NearFront, unrounded, sp("ɪ", "I", "I")),
	vowel(phone.NearClose, phone.NearFront, rounded, sp("ʏ", "I.", "Y")),
	vowel(phone.NearClose, phone.NearBack, rounded, sp("ʊ", "U", "U")),
	vowel(phone.CloseMid, phone.Front, unrounded, sp("e", "e", "e")),
	vowel(phone.CloseMid, phone.Front, rounded, sp("ø", "Y", "2")),
	vowel(phone.CloseMid, phone.Central, unrounded, sp("ɘ", `e"`, `@\`)),
	vowel(phone.CloseMid, phone.Central, rounded, sp("ɵ", `o"`, "8")),
	vowel(phone.CloseMid, phone.Back, unrounded, sp("ɤ", "o-", "7")),
	vowel(phone.CloseMid, phone.Back, rounded, sp("o", "o", "o")),
	vowel(phone.Mid, phone.Central, unrounded, sp("ə", "@", "@")),
	vowel(phone.OpenMid, phone.Front, unrounded, sp("ɛ", "E", "E")),
	vowel(phone.OpenMid, phone.Front, rounded, sp("œ", "E.", "9")),
	vowel(phone.OpenMid, phone.Central, unrounded, sp("ɜ", `V"`, "3")),
	vowel(phone.OpenMid, phone.Central, rounded, sp("ɞ", `O"`, `3\`)),
	vowel(phone.OpenMid, phone.Back, unrounded, sp("ʌ", "V", "V")),
	vowel(phone.OpenMid, phone.Back, rounded, sp("ɔ", "O", "O")),
	vowel(phone.NearOpen, phone.Front, unrounded, sp("æ", "&", "{")),
	vowel(phone.NearOpen, phone.Central, unrounded, sp("ɐ", "a#", "6")),
	vowel(phone.Open, phone.Front, unrounded, sp("a", "a", "a")),
	vowel(phone.Open, phone.Front, rounded, sp("ɶ", "a.", "&")),
	vowel(phone.Open, phone.Back, unrounded, sp("ɑ", "A", "A")),
	vowel(phone.Open, phone.Back, rounded, sp("ɒ", "A.", "Q")),

	{height: phone.Mid, backness: phone.Central, rhotic: true, spell: sp("ɚ", "", "@`")},
	{height: phone.OpenMid, backness: phone.Central, rhotic: true, spell: sp("ɝ", "", "3`")},
}

// mark identifies a modifier. Declaration order is output order.
type mark int

const (
	markDental mark = iota
	markApical
	markLaminal
	markLinguolabial
	markBridge
	markAdvanced
	markRetracted
	markRaised
	markLowered
	markMoreRounded
	markLessRounded
	markVoiceless
	markVoiced
	markBreathy
	markSlack
	markStiff
	markCreaky
	markFaucalized
	markSyllabic
	markNonSyllabic
	markNasalized
	markStronglyNasalized
	markExtraShort
	markCompressed
	markGlottalClosure
	markHarsh
	markStrident
	markEjective
	markImplosive
	markClick
	markLabialized
	markPalatalized
	markVelarized
	markUvularized
	markPharyngealized
	markUnaspirated
	markWeaklyAspirated
	markAspirated
	markStronglyAspirated
	markModeratelyVoiced
	markWeaklyVoiced
	markRhotic
	markLong
	markHalfLong

	numMarks
)

type markClass int

const (
	classPlace markClass = iota
	classManner
	classRounding
	classVoicing
	classQuality
	classSyllabicity
	classNasal
	classMechanism
	classSecondary
	classVOT
	classRhotic
	classLength
)

type markSymbol struct {
	class markClass
	spell spelling

	phonation    phone.Phonation
	nasalization phone.Nasalization
	roundedness  phone.Roundedness
	mechanism    phone.Mechanism
	place        phone.Place
	vot          phone.VOT
}

var markSymbols = [numMarks]markSymbol{
	markDental:       {class: classPlace, spell: sp("̪", "[", "_d")},
	markApical:       {class: classPlace, spell: sp("̺", "<apc>", "_a")},
	markLaminal:      {class: classPlace, spell: sp("̻", "<lmn>", "_m")},
	markLinguolabial: {class: classPlace, spell: sp("̼", "<lgl>", "_N")},
	markBridge:       {class: classPlace, spell: sp("͆", "<bdg>", "_{bd}")},
	markAdvanced:     {class: classPlace, spell: sp("̟ ˖", "<adv>", "_+")},
	markRetracted:    {class: classPlace, spell: sp("̠ ˗", "<rtr>", "_-")},

	markRaised:  {class: classManner, spell: sp("̝ ˔", "<rai>", "_r")},
	markLowered: {class: classManner, spell: sp("̞ ˕", "<low>", "_o")},

	markMoreRounded: {class: classRounding, roundedness: phone.Exolabial, spell: sp("̹", "<rnd>", "_O")},
	markLessRounded: {class: classRounding, roundedness: phone.Unrounded, spell: sp("̜", "<unr>", "_c")},
	markCompressed:  {class: classRounding, roundedness: phone.Endolabial, spell: sp("ᵝ", "<cmp>", "_{cp}")},

	markVoiceless: {class: classVoicing, phonation: phone.Voiceless, spell: sp("̥ ̊", "<vls>", "_0")},
	markVoiced:    {class: classVoicing, phonation: phone.Modal, spell: sp("̬", "<vcd>", "_v")},

	markBreathy:        {class: classQuality, phonation: phone.Breathy, spell: sp("̤", "<brth>", "_t")},
	markSlack:          {class: classQuality, phonation: phone.Slack, spell: sp("͉", "<slk>", "_{sl}")},
	markStiff:          {class: classQuality, phonation: phone.Stiff, spell: sp("͈", "<stf>", "_{st}")},
	markCreaky:         {class: classQuality, phonation: phone.Creaky, spell: sp("̰", "<crk>", "_k")},
	markFaucalized:     {class: classQuality, phonation: phone.Faucalized, spell: sp("͇", "<fcl>", "_{fc}")},
	markGlottalClosure: {class: classQuality, phonation: phone.GlottalClosure, spell: sp("ˀ", "<glc>", "_{gc}")},
	markHarsh:          {class: classQuality, phonation: phone.Harsh, spell: sp("ꜝ", "<hsh>", "_{hr}")},
	markStrident:       {class: classQuality, phonation: phone.Strident, spell: sp("ꜞ", "<std>", "_{sd}")},

	markSyllabic:    {class: classSyllabicity, spell: sp("̩ ̍", "-", "= _=")},
	markNonSyllabic: {class: classSyllabicity, spell: sp("̯ ̑", "<nsy>", "_^")},

	markNasalized:         {class: classNasal, nasalization: phone.Nasalized, spell: sp("̃", "~", "~ _~")},
	markStronglyNasalized: {class: classNasal, nasalization: phone.StronglyNasalized, spell: sp("͋", "~~", "_{sn}")},

	markEjective:  {class: classMechanism, mechanism: phone.Ejective, spell: sp("ʼ", "`", "_>")},
	markImplosive: {class: classMechanism, mechanism: phone.Implosive, spell: sp("", "<imp>", "_<")},
	markClick:     {class: classMechanism, mechanism: phone.Click, spell: sp("", "!", "")},

	markLabialized:     {class: classSecondary, place: phone.Bilabial, spell: sp("ʷ", "<w>", "_w")},
	markPalatalized:    {class: classSecondary, place: phone.Palatal, spell: sp("ʲ", "<pal>", "_j '")},
	markVelarized:      {class: classSecondary, place: phone.Velar, spell: sp("ˠ", "<vel>", "_G")},
	markUvularized:     {class: classSecondary, place: phone.Uvular, spell: sp("ʶ", "<uvl>", "_{uv}")},
	markPharyngealized: {class: classSecondary, place: phone.Pharyngeal, spell: sp("ˤ", "<phr>", `_?\`)},

	markUnaspirated:       {class: classVOT, vot: phone.NotAspirated, spell: sp("˭", "<unasp>", "_{ua}")},
	markWeaklyAspirated:   {class: classVOT, vot: phone.WeaklyAspirated, spell: sp("⁽ʰ⁾", "<wh>", "_{wh}")},
	markAspirated:         {class: classVOT, vot: phone.ModeratelyAspirated, spell: sp("ʰ", "<h>", "_h")},
	markStronglyAspirated: {class: classVOT, vot: phone.StronglyAspirated, spell: sp("ʰʰ", "<hh>", "_{sh}")},
	markModeratelyVoiced:  {class: classVOT, vot: phone.ModeratelyVoiced, spell: sp("ˬ", "<mvd>", "_{mv}")},
	markWeaklyVoiced:      {class: classVOT, vot: phone.WeaklyVoiced, spell: sp("˳", "<wvd>", "_{wv}")},

	markRhotic: {class: classRhotic, spell: sp("˞", "<r>", "`")},

	markExtraShort: {class: classLength, spell: sp("̆", "<xsh>", "_X")},
	markHalfLong:   {class: classLength, spell: sp("ˑ", "<hlg>", `:\`)},
	markLong:       {class: classLength, spell: sp("ː :", ":", ":")},
}

// Tone marks, indexed by pitch + 2.
var toneSymbols = [5]spelling{
	sp("˩", "<1>", "_B"),
	sp("˨", "<2>", "_L"),
	sp("˧", "<3>", "_M"),
	sp("˦", "<4>", "_H"),
	sp("˥", "<5>", "_T"),
}

var tieSymbol = sp("͡ ͜", "_", ")")

// bracketPair is an opening and closing delimiter.
type bracketPair struct{ open, close string }

// Delimiters Decode refuses: phonemic slashes, optional parentheses and
// orthographic angle brackets. Kirshenbaum tags and X-SAMPA symbols use some
// of these characters, so the lists differ.
var rejectedBrackets = [numNotations][]bracketPair{
	IPA:         {{"/", "/"}, {"(", ")"}, {"⟨", "⟩"}, {"{", "}"}, {"<", ">"}},
	Kirshenbaum: {{"/", "/"}, {"(", ")"}, {"⟨", "⟩"}},
	XSAMPA:      {{"/", "/"}, {"⟨", "⟩"}},
}

// placeRoute spells a place with a base symbol from another place plus
// diacritics.
type placeRoute struct {
	anchor phone.Place
	marks  markSet
}

func route(anchor phone.Place, marks ...mark) placeRoute {
	return placeRoute{anchor: anchor, marks: newMarkSet(marks...)}
}

// Alternative spellings per place, preferred first. The direct spelling at
// the place itself is always tried before these.
var placeRoutes = map[phone.Place][]placeRoute{
	phone.Labiodental:           {route(phone.Bilabial, markDental)},
	phone.Dentolabial:           {route(phone.Labiodental, markBridge), route(phone.Bilabial, markBridge)},
	phone.Bidental:              {route(phone.Labiodental, markDental, markBridge), route(phone.Bilabial, markDental, markBridge)},
	phone.ApicalLinguolabial:    {route(phone.ApicalAlveolar, markLinguolabial)},
	phone.LaminalLinguolabial:   {route(phone.ApicalAlveolar, markLinguolabial, markLaminal)},
	phone.ApicalLowerLip:        {route(phone.ApicalAlveolar, markLinguolabial, markAdvanced)},
	phone.LaminalLowerLip:       {route(phone.ApicalAlveolar, markLinguolabial, markAdvanced, markLaminal)},
	phone.Interdental:           {route(phone.ApicalDental, markBridge), route(phone.ApicalAlveolar, markDental, markBridge)},
	phone.ApicalDental:          {route(phone.ApicalAlveolar, markDental)},
	phone.LaminalDental:         {route(phone.ApicalDental, markLaminal), route(phone.ApicalAlveolar, markDental, markLaminal)},
	phone.LaminalAlveolar:       {route(phone.ApicalAlveolar, markLaminal)},
	phone.ApicalPalatoAlveolar:  {route(phone.LaminalPalatoAlveolar, markApical), route(phone.ApicalAlveolar, markRetracted)},
	phone.LaminalPalatoAlveolar: {route(phone.ApicalAlveolar, markRetracted, markLaminal)},
	phone.ApicalRetroflex:       {route(phone.ApicalAlveolar, markRetracted, markApical)},
	phone.LaminalRetroflex:      {route(phone.ApicalRetroflex, markLaminal)},
	phone.SubapicalRetroflex:    {route(phone.ApicalRetroflex, markRetracted)},
	phone.AlveoloPalatal:        {route(phone.Palatal, markAdvanced), route(phone.LaminalPalatoAlveolar, markRetracted)},
	phone.Palatal:               {route(phone.Velar, markAdvanced)},
	phone.Velar:                 {route(phone.Palatal, markRetracted), route(phone.Uvular, markAdvanced)},
	phone.Uvular:                {route(phone.Velar, markRetracted)},
	phone.Pharyngeal:            {route(phone.Epiglottal, markAdvanced)},
	phone.Epiglottal:            {route(phone.Pharyngeal, markRetracted)},
}

// mannerShift spells manner `to` with a base symbol of manner `from` plus a
// raising or lowering mark.
type mannerShift struct {
	from phone.Manner
	mark mark
	to   phone.Manner
}

var mannerShifts = []mannerShift{
	{phone.Approximant, markRaised, phone.NonSibilantFricative},
	{phone.LateralApproximant, markRaised, phone.LateralFricative},
	{phone.NonSibilantFricative, markLowered, phone.Approximant},
	{phone.LateralFricative, markLowered, phone.LateralApproximant},
}

// Manners tried, in order, for the second symbol of a tie-bar spelling of a
// secondary articulation.
var tiedMannerPreference = []phone.Manner{
	phone.Approximant, phone.NonSibilantFricative, phone.SibilantFricative, phone.Stop,
	phone.Nasal, phone.Trill, phone.Flap, phone.LateralApproximant, phone.LateralFricative, phone.LateralFlap,
}

// Longest length Encode spells; beyond it output would be mostly length marks.
const maxEncodedLength = 8.0
