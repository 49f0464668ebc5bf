package kickbase

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// object is a decoded upstream JSON object. Every accessor takes an ordered
// key list: the first key present with a non-null value wins.
type object map[string]any

var urlSchemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)

func asObject(raw any) (object, bool) {
	switch typed := raw.(type) {
	case map[string]any:
		return object(typed), true
	case object:
		return typed, true
	default:
		return nil, false
	}
}

func (o object) lookup(keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := o[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

// str returns the first non-blank scalar rendered as text.
func (o object) str(keys ...string) string {
	for _, key := range keys {
		value, ok := o[key]
		if !ok || value == nil {
			continue
		}
		if text, ok := toText(value); ok && text != "" {
			return text
		}
	}
	return ""
}

func (o object) int64(keys ...string) int64 {
	value, ok := o.optionalInt64(keys...)
	if !ok {
		return 0
	}
	return value
}

func (o object) optionalInt64(keys ...string) (int64, bool) {
	for _, key := range keys {
		value, ok := o[key]
		if !ok || value == nil {
			continue
		}
		if n, ok := toInt64(value); ok {
			return n, true
		}
	}
	return 0, false
}

// amount is an int64 clamped at zero, used for money fields.
func (o object) amount(keys ...string) int64 {
	return max(o.int64(keys...), 0)
}

func (o object) boolean(keys ...string) bool {
	value, ok := o.lookup(keys...)
	if !ok {
		return false
	}
	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		return err == nil && parsed
	default:
		n, ok := toInt64(typed)
		return ok && n != 0
	}
}

func (o object) child(keys ...string) (object, bool) {
	value, ok := o.lookup(keys...)
	if !ok {
		return nil, false
	}
	return asObject(value)
}

func (o object) list(keys ...string) ([]any, bool) {
	value, ok := o.lookup(keys...)
	if !ok {
		return nil, false
	}
	items, ok := value.([]any)
	return items, ok
}

func (o object) timestamp(keys ...string) *time.Time {
	value, ok := o.lookup(keys...)
	if !ok {
		return nil
	}
	if text, ok := value.(string); ok {
		text = strings.TrimSpace(text)
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05Z0700", "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, text); err == nil {
				parsed = parsed.UTC()
				return &parsed
			}
		}
		return nil
	}
	if seconds, ok := toInt64(value); ok && seconds > 0 {
		parsed := time.Unix(seconds, 0).UTC()
		return &parsed
	}
	return nil
}

func toText(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed), true
	case json.Number:
		return typed.String(), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32), true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case int32:
		return strconv.FormatInt(int64(typed), 10), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

func toInt64(value any) (int64, bool) {
	switch typed := value.(type) {
	case json.Number:
		if n, err := typed.Int64(); err == nil {
			return n, true
		}
		f, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(typed)
	case float32:
		return floatToInt64(float64(typed))
	case int:
		return int64(typed), true
	case int64:
		return typed, true
	case int32:
		return int64(typed), true
	case string:
		text := strings.TrimSpace(typed)
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return n, true
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	default:
		return 0, false
	}
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(math.Round(f)), true
}

// resolveImage prefixes relative asset paths with the CDN base. Values that
// already carry a scheme are returned untouched.
func resolveImage(base, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if urlSchemeRegex.MatchString(raw) {
		return raw
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(raw, "/")
}
