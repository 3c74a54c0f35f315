package service

import (
	"regexp"
	"strings"
)

var keyJunkRe = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeText collapses all runs of whitespace (tabs, newlines, NBSP) into
// single spaces and trims the ends. Empty and all-space input comes back "".
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeKey lowercases, replaces every run of non-alphanumeric runes with
// a single underscore and trims underscores. "SDG Target (short)" and
// "sdg target short" collapse to the same key.
func NormalizeKey(s string) string {
	s = strings.ToLower(s)
	s = keyJunkRe.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
