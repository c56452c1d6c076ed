package ircmsg

import (
	"sort"
	"strings"
)

// Tags is a mapping of IRCv3 message-tag keys to an optional value. A tag
// present with no value (`key` or `key=`) is stored with a nil pointer, so
// callers can tell "no value" apart from a non-empty value; an empty
// value is not distinguished from a missing '='.
type Tags map[string]*string

// ParseTags parses the portion of a line between the leading '@' and the
// space that ends the tags segment (neither character included).
func ParseTags(raw string) Tags {
	tags := make(Tags)
	if raw == "" {
		return tags
	}

	for _, entry := range strings.Split(raw, ";") {
		if entry == "" {
			continue
		}

		key, value, hasValue := strings.Cut(entry, "=")
		if !hasValue || value == "" {
			// Per spec.md §4.1 step 2: "An empty value and a missing '='
			// both map to 'no value'."
			tags[key] = nil
			continue
		}

		v := value
		tags[key] = &v
	}

	return tags
}

// String renders the tags segment including the leading '@' and trailing
// space, or the empty string if there are no tags.
func (t Tags) String() string {
	if len(t) == 0 {
		return ""
	}

	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('@')

	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}

		b.WriteString(k)
		if v := t[k]; v != nil {
			b.WriteByte('=')
			b.WriteString(*v)
		}
	}
	b.WriteByte(' ')

	return b.String()
}
