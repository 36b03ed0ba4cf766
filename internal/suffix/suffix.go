// Package suffix recognizes generational suffixes (Jr, Sr, II-V, 2nd...)
// and produces their canonical printed form.
package suffix

import (
	"strings"

	"github.com/dbryar/humanname/internal/segment"
)

var numericSuffixes = map[string]struct{}{
	"2": {}, "3": {}, "4": {}, "5": {},
	"2nd": {}, "3rd": {}, "4th": {}, "5th": {},
	"2ND": {}, "3RD": {}, "4TH": {}, "5TH": {},
	"I": {}, "II": {}, "III": {}, "IV": {}, "V": {},
	"i": {}, "ii": {}, "iii": {}, "iv": {}, "v": {},
}

var abbreviationSuffixes = map[string]struct{}{
	"Jr": {}, "Jnr": {}, "Sr": {}, "Snr": {},
}

// IsSuffix reports whether part represents a generational suffix. A part
// whose CanonicalForm already carries Namecase's trailing period ("Jr.")
// is still recognized.
func IsSuffix(part segment.NamePart) bool {
	namecased := part.CanonicalForm

	switch {
	case part.IsNamelike() || part.IsInitials():
		if _, ok := numericSuffixes[part.Word]; ok {
			return true
		}
		_, ok := abbreviationSuffixes[strings.TrimSuffix(namecased, ".")]
		return ok
	case part.Category == segment.CategoryAbbreviation:
		if namecased == "" || !strings.HasSuffix(namecased, ".") {
			return false
		}
		_, ok := abbreviationSuffixes[namecased[:len(namecased)-1]]
		return ok
	default:
		return false
	}
}

// Namecase returns the canonical printed form of a generational suffix
// part: numeric forms are upper-cased ("iii" -> "III", "2nd" -> "2ND"),
// abbreviations get a trailing period ("Jr.").
func Namecase(part segment.NamePart) string {
	if part.Category == segment.CategoryAbbreviation {
		return part.CanonicalForm
	}
	if _, ok := numericSuffixes[part.Word]; ok {
		return strings.ToUpper(part.Word)
	}
	return part.CanonicalForm + "."
}
