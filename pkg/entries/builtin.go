package entries

import (
	"regexp"
	"strings"
	"time"
)

// Recognized built-in value kinds are not containers, but they still get a
// fixed set of synthetic entries so that inspection and copying see their
// state uniformly.

// dateEntries produces the synthetic entries for a time value.
func dateEntries(t time.Time) []Entry {
	mk := func(name string, value any) Entry {
		return Entry{Key: StringKey(name), Value: value, Owner: t}
	}
	return []Entry{
		mk("isoString", t.Format(time.RFC3339Nano)),
		mk("timestamp", t.UnixMilli()),
		mk("year", t.Year()),
		mk("month", int(t.Month())),
		mk("day", t.Day()),
		mk("hour", t.Hour()),
		mk("minute", t.Minute()),
		mk("second", t.Second()),
	}
}

// regexpEntries produces the synthetic entries for a compiled pattern.
func regexpEntries(re *regexp.Regexp) []Entry {
	source := re.String()
	mk := func(name string, value any) Entry {
		return Entry{Key: StringKey(name), Value: value, Owner: re}
	}
	out := []Entry{
		mk("source", source),
		mk("groups", re.NumSubexp()),
	}
	if flags := patternFlags(source); flags != "" {
		out = append(out, mk("flags", flags))
	}
	return out
}

// patternFlags extracts the letters of a leading inline flag group such as
// "(?is)". Go patterns carry flags inline rather than as a separate field.
func patternFlags(source string) string {
	if !strings.HasPrefix(source, "(?") {
		return ""
	}
	end := strings.IndexByte(source, ')')
	if end < 0 {
		return ""
	}
	flags := source[2:end]
	if flags == "" || strings.ContainsAny(flags, ":=!<") {
		return "" // a group construct, not a flag group
	}
	return flags
}
