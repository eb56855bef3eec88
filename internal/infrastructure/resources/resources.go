// Package resources carries files compiled into the localetool binary.
package resources

import _ "embed"

// LocaleTemplate is the starting point for a new lang_<code>.yml file.
//
//go:embed lang_template.yml
var LocaleTemplate []byte
