package oidc

import (
	"strings"

	"golang.org/x/text/language"
)

// Locales is the space delimited list of language tags
// from the ui_locales request parameter.
// Unparsable tags are silently dropped.
type Locales []language.Tag

func (l *Locales) UnmarshalText(text []byte) error {
	locales := strings.Split(string(text), " ")
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err == nil && !tag.IsRoot() {
			*l = append(*l, tag)
		}
	}
	return nil
}

func (l Locales) MarshalText() ([]byte, error) {
	return []byte(strings.Join(l.Strings(), " ")), nil
}

// Strings returns the BCP 47 representation of every tag.
func (l Locales) Strings() []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, len(l))
	for i, tag := range l {
		out[i] = tag.String()
	}
	return out
}
