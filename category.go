package zakat

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatCategoryName turns a camelCase key into a Title Case label by
// inserting a space before every uppercase letter and capitalizing the
// first character: "otherInvestments" becomes "Other Investments".
func FormatCategoryName(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if 'A' <= r && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	out := b.String()
	first, size := utf8.DecodeRuneInString(out)
	if size == 0 {
		return out
	}
	return string(unicode.ToUpper(first)) + out[size:]
}
