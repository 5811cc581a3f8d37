package nfo

import "strings"

// Sanitize turns s into a filename component made only of ASCII letters,
// digits, '.' and '-'. Spaces become '.', apostrophes are dropped, runs of
// '.' collapse and leading/trailing '.' are trimmed. The result may be empty.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastDot := true // suppresses a leading '.'
	for _, r := range s {
		switch {
		case r == ' ' || r == '.':
			if !lastDot {
				b.WriteByte('.')
				lastDot = true
			}
		case r == '\'':
		case r == '-' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
			b.WriteRune(r)
			lastDot = false
		}
	}
	return strings.TrimRight(b.String(), ".")
}

// plain keeps the title readable but strips anything that would leave the
// target directory.
func plain(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("/", "-", "\\", "-", "\x00", "").Replace(s)
	if s == "." || s == ".." {
		return ""
	}
	return s
}
