package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters and control characters are removed. The result is NFC-normalized
// and trimmed, and may be empty.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = norm.NFC.String(name)
	name = fileNameReplacer.Replace(name)
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	return strings.Trim(strings.TrimSpace(name), ".")
}

// FileNameOr sanitizes name and returns fallback when nothing usable remains.
func FileNameOr(name, fallback string) string {
	if cleaned := SanitizeFileName(name); cleaned != "" {
		return cleaned
	}
	return fallback
}
