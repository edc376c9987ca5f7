package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errUnquotable = errors.New("value contains both ' and \" and cannot be passed to -ldflags")

// shellQuote quotes s for POSIX shells when it contains anything beyond
// a conservative set of safe characters.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, unsafeRune) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// ldflagsQuote quotes one field of a -ldflags string. The go command splits
// that string on spaces and honours '...' or "..." with no escapes inside,
// so a field holding both quote characters cannot be expressed.
func ldflagsQuote(s string) (string, error) {
	switch {
	case s != "" && strings.IndexFunc(s, unsafeRune) < 0:
		return s, nil
	case !strings.ContainsRune(s, '\''):
		return "'" + s + "'", nil
	case !strings.ContainsRune(s, '"'):
		return `"` + s + `"`, nil
	}
	return "", fmt.Errorf("%w: %s", errUnquotable, strconv.Quote(s))
}

// envDelimiter returns a heredoc delimiter that does not occur in s.
func envDelimiter(s string) string {
	delim := "BUILDMETA_EOF"
	for i := 1; strings.Contains(s, delim); i++ {
		delim = "BUILDMETA_EOF_" + strconv.Itoa(i)
	}
	return delim
}

func unsafeRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./:@+=,", r)
}
