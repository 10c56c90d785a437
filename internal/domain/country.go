package domain

import "strings"

type Country struct {
	Name       string
	Capital    string
	FlagURL    string
	Region     string
	Population int64
}

// Valid reports whether the record carries the fields the quiz needs to ask about it.
func (c Country) Valid() bool {
	return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.Capital) != ""
}
