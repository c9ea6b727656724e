package domain

import "strings"

type ID string

func (vo ID) String() string {
	return string(vo)
}

func (vo ID) IsEmpty() bool {
	return vo == ""
}

type Name string

func (vo Name) String() string {
	return string(vo)
}

// IsBlank reports whether the name is empty or whitespace only.
func (vo Name) IsBlank() bool {
	return strings.TrimSpace(string(vo)) == ""
}
