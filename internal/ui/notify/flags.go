package notify

import (
	"net/url"
	"strings"
)

// Flags holds the decoded query parameters of the current page load.
type Flags map[string]string

// ParseFlags decodes location.search. Keys without "=" map to "". Pairs with
// an empty key or a malformed escape are dropped. A repeated key keeps its
// last value.
func ParseFlags(search string) Flags {
	flags := make(Flags)
	values, _ := url.ParseQuery(strings.TrimPrefix(search, "?"))
	for key, list := range values {
		if key == "" || len(list) == 0 {
			continue
		}
		flags[key] = list[len(list)-1]
	}
	return flags
}

// IsSet reports whether name was sent with the value "1".
func (f Flags) IsSet(name string) bool {
	return f[name] == "1"
}
