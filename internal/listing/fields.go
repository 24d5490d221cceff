package listing

import (
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Fallback texts used across views when the API omits a field.
const (
	NA          = "N/A"
	Unknown     = "Unknown"
	NotAssigned = "Not Assigned"
)

// DateLayout is how calendar dates are shown in tables.
const DateLayout = "2006-01-02"

// DateTimeLayout is how timestamps are shown in detail views.
const DateTimeLayout = "2006-01-02 15:04"

func missing(v gjson.Result) bool {
	return !v.Exists() || v.Type == gjson.Null
}

// Str returns the trimmed string at path, or fallback when it is absent,
// null or blank.
func Str(item gjson.Result, path, fallback string) string {
	v := item.Get(path)
	if missing(v) {
		return fallback
	}
	s := strings.TrimSpace(v.String())
	if s == "" {
		return fallback
	}
	return s
}

// Int returns the integer at path, accepting numeric strings. Anything else is 0.
func Int(item gjson.Result, path string) int64 {
	v := item.Get(path)
	switch v.Type {
	case gjson.Number:
		return v.Int()
	case gjson.String:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0
		}
		return int64(n)
	default:
		return 0
	}
}

// Float returns the number at path, accepting numeric strings. Anything else is 0.
func Float(item gjson.Result, path string) float64 {
	v := item.Get(path)
	switch v.Type {
	case gjson.Number:
		return v.Float()
	case gjson.String:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Bool returns the boolean at path. Only an absent or null value yields
// fallback; an explicit false stays false.
func Bool(item gjson.Result, path string, fallback bool) bool {
	v := item.Get(path)
	switch v.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return fallback
	}
}

// Time parses the timestamp at path. The zero time is returned when the
// value is absent or unparseable.
func Time(item gjson.Result, path string) time.Time {
	v := item.Get(path)
	if missing(v) {
		return time.Time{}
	}
	if v.Type == gjson.Number {
		return time.UnixMilli(v.Int()).UTC()
	}
	s := strings.TrimSpace(v.String())
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.000Z0700", DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// Date formats the timestamp at path as a calendar date, or returns fallback.
func Date(item gjson.Result, path, fallback string) string {
	t := Time(item, path)
	if t.IsZero() {
		return fallback
	}
	return t.Format(DateLayout)
}

// DateTime formats the timestamp at path with minutes, or returns fallback.
func DateTime(item gjson.Result, path, fallback string) string {
	t := Time(item, path)
	if t.IsZero() {
		return fallback
	}
	return t.Format(DateTimeLayout)
}

// Media resolves a media path returned by the API against base. Absolute
// URLs are kept as they are. An absent path yields NA.
func Media(base string, item gjson.Result, path string) string {
	p := Str(item, path, "")
	if p == "" {
		return NA
	}
	return ResolveMedia(base, p)
}

// ResolveMedia joins an API media path with the API base URL.
func ResolveMedia(base, p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(p, "/")
}

// Strings returns the non-blank strings of the array at path.
func Strings(item gjson.Result, path string) []string {
	var out []string
	item.Get(path).ForEach(func(_, v gjson.Result) bool {
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
		return true
	})
	return out
}
