package service

import "strings"

var abbreviationStrip = strings.NewReplacer("-", "", ".", "", "+", "", "(", "", ")", "", " ", "")

// Abbreviate turns a display name into the short code used as the vendor
// order number prefix: punctuation from "-.+()" and spaces are removed, the
// rest is upper-cased and cut to three characters.
func Abbreviate(name string) string {
	r := []rune(strings.ToUpper(abbreviationStrip.Replace(name)))
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}
