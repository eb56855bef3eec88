package cli

import (
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLocale maps a user-supplied code like "en-us" onto the
// lang_<code>.yml naming convention ("en_US"). Codes that do not parse
// as a language tag, or that carry no explicit region, pass through
// verbatim so file-name-exact codes keep working.
func NormalizeLocale(code string) string {
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return code
	}
	base, baseConf := tag.Base()
	region, regionConf := tag.Region()
	if baseConf != language.Exact || regionConf != language.Exact {
		return code
	}
	return base.String() + "_" + region.String()
}
