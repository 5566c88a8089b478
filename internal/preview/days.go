package preview

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	MinDays     = 2
	MaxDays     = 6
	DefaultDays = 4
)

// Days is the requested number of training days per week. Zero means
// unset. The form posts it as a string, so it decodes from either a JSON
// number or a numeric string; anything else decodes to zero.
type Days int

// ParseDays reads the leading integer of value the way the form's
// parseInt does ("5", " 5 ", "5 days" are all 5). Unparseable input is 0.
func ParseDays(value string) Days {
	value = strings.TrimSpace(value)
	end := 0
	if end < len(value) && (value[end] == '-' || value[end] == '+') {
		end++
	}
	digits := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0
	}
	return Days(n)
}

// Supported reports whether d falls inside the table's day range.
func (d Days) Supported() bool {
	return d >= MinDays && d <= MaxDays
}

// Normalize returns d when supported and DefaultDays otherwise.
func (d Days) Normalize() int {
	if d.Supported() {
		return int(d)
	}
	return DefaultDays
}

// UnmarshalJSON accepts numbers, numeric strings and null. It never
// returns an error so a bad day count cannot fail a whole submission.
func (d *Days) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*d = 0
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*d = ParseDays(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	*d = Days(math.Trunc(f))
	return nil
}
