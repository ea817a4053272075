// Package jaso implements search-as-you-type matching for Korean text by
// comparing strings at the level of individual consonants and vowels.
//
// "강나" matches "강남구" because ㄱㅏㅇㄴㅏ is a substring of ㄱㅏㅇㄴㅏㅁㄱㅜ,
// even though 나 is not a substring of 남.
package jaso

import (
	"slices"
	"strings"
	"unicode"
)

const (
	syllableFirst = 0xAC00 // 가
	syllableLast  = 0xD7A3 // 힣

	leadStride  = 588 // vowels * tails
	vowelStride = 28  // tails
)

var (
	leads = []rune{
		'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ',
		'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
	vowels = []rune{
		'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ',
		'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ',
	}
	// tails[0] is the empty final consonant.
	tails = []rune{
		0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
		'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
)

// Decompose removes all whitespace from text and replaces every Hangul
// syllable with its lead consonant, vowel and optional tail consonant.
// Other characters are kept as they are.
func Decompose(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if r < syllableFirst || r > syllableLast {
			b.WriteRune(r)
			continue
		}
		s := r - syllableFirst
		b.WriteRune(leads[s/leadStride])
		b.WriteRune(vowels[(s%leadStride)/vowelStride])
		if t := tails[s%vowelStride]; t != 0 {
			b.WriteRune(t)
		}
	}
	return b.String()
}

// Match reports whether the decomposed query occurs in the decomposed
// target. An empty or blank query matches everything. Latin text is
// compared case-sensitively.
func Match(query, target string) bool {
	return strings.Contains(Decompose(target), Decompose(query))
}

// Filter returns the items matching query, in their original order.
func Filter(query string, items []string) []string {
	return FilterFunc(query, items, func(s string) string { return s })
}

// FilterFunc returns the items whose text, as produced by text, matches
// query. Order is preserved. A blank query returns a copy of items.
func FilterFunc[T any](query string, items []T, text func(T) string) []T {
	q := Decompose(query)
	if q == "" {
		return slices.Clone(items)
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(Decompose(text(item)), q) {
			out = append(out, item)
		}
	}
	return out
}
