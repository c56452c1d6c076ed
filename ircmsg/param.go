package ircmsg

import "strings"

// Param is a single command parameter: either a plain string, or a
// comma-delimited list (as used by JOIN's channel/key arguments). Per
// spec.md §4.1 step 5: a non-trailing token containing ',' becomes a list
// with empty entries discarded, otherwise it is a plain string.
type Param struct {
	list []string // len >= 1 for a String param (list[0] holds it); len >= 0 for a List param
	List bool
}

// NewStringParam builds a plain (non-list) parameter.
func NewStringParam(s string) Param {
	return Param{list: []string{s}}
}

// NewListParam builds a comma-list parameter.
func NewListParam(items []string) Param {
	return Param{list: items, List: true}
}

// ParseParamToken classifies a single non-trailing token per the comma rule.
func ParseParamToken(token string) Param {
	if !strings.Contains(token, ",") {
		return NewStringParam(token)
	}

	parts := strings.Split(token, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			items = append(items, p)
		}
	}
	return NewListParam(items)
}

// String returns the single string value of a non-list param.
func (p Param) String() string {
	if len(p.list) == 0 {
		return ""
	}
	return p.list[0]
}

// Items returns the list entries of a list param (or a 1-element slice
// holding the plain string, if not a list).
func (p Param) Items() []string {
	return p.list
}

// Wire renders the param back to wire form: a plain string as-is, or a
// list joined by commas.
func (p Param) Wire() string {
	return strings.Join(p.list, ",")
}
