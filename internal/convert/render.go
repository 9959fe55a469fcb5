package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/onepif2kdbx/internal/onepif"
)

// emptyPlaceholder is how old 1Password versions store an empty string.
const emptyPlaceholder = "\x10"

func normalize(s string) string {
	if s == emptyPlaceholder {
		return ""
	}
	return s
}

// renderScalar returns the string form of a scalar JSON value.
func renderScalar(raw json.RawMessage) (string, error) {
	s, ok := onepif.ScalarString(raw)
	if !ok {
		return "", fmt.Errorf("%w: expected a scalar value, got %s", onepif.ErrMalformedInput, jsonKind(raw))
	}
	return normalize(s), nil
}

// renderDate renders a unix timestamp as a local calendar date.
func renderDate(raw json.RawMessage) (string, error) {
	ts, err := decodeInt(raw)
	if err != nil {
		return "", err
	}
	return time.Unix(ts, 0).Local().Format(time.DateOnly), nil
}

// renderMonthYear renders year*100+month, e.g. 202303 -> "Mar 2023".
func renderMonthYear(raw json.RawMessage) (string, error) {
	v, err := decodeInt(raw)
	if err != nil {
		return "", err
	}
	month := v % 100
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: month %d out of range in %d", onepif.ErrMalformedInput, month, v)
	}
	return fmt.Sprintf("%s %d", time.Month(month).String()[:3], v/100), nil
}

// addressLines задает порядок строк адреса
var addressLines = []string{"street", "city", "zip", "state", "region", "country"}

// renderAddress joins the non-empty address parts with newlines, country upper-cased.
func renderAddress(raw json.RawMessage) (string, error) {
	var addr map[string]json.RawMessage
	if err := json.Unmarshal(raw, &addr); err != nil || addr == nil {
		return "", fmt.Errorf("%w: expected an address object, got %s", onepif.ErrMalformedInput, jsonKind(raw))
	}

	var b strings.Builder
	for _, key := range addressLines {
		part, ok := onepif.ScalarString(addr[key])
		if !ok || part == "" {
			continue
		}
		if key == "country" {
			part = strings.ToUpper(part)
		}
		b.WriteString(part)
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String()), nil
}

func decodeInt(raw json.RawMessage) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: expected a number, got %s", onepif.ErrMalformedInput, jsonKind(raw))
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: expected a number, got %s", onepif.ErrMalformedInput, jsonKind(raw))
	}
	return int64(f), nil
}

// jsonKind names the JSON type of raw without revealing the value itself.
func jsonKind(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
