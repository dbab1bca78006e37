// Package coords converts aeronautical coordinate strings to decimal degrees.
package coords

import (
	"strconv"
	"strings"
)

// Parse converts a coordinate string to signed decimal degrees.
//
// Two input forms are accepted: a plain decimal number ("37.4625") and the
// hemisphere-prefixed sexagesimal form used by UBIKAIS ("N37-27-45.0023",
// minutes and seconds optional). South and west negate the value. The second
// return value is false when the input is empty or unparsable; malformed
// input never causes an error or panic.
func Parse(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	hemi := s[0]
	switch hemi {
	case 'N', 'S', 'E', 'W':
		return parseSexagesimal(s[1:], hemi == 'S' || hemi == 'W')
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseSexagesimal(s string, negate bool) (float64, bool) {
	parts := strings.Split(s, "-")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, false
	}

	var deg, min, sec float64
	var err error

	if deg, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return 0, false
	}
	if len(parts) > 1 {
		if min, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return 0, false
		}
	}
	if len(parts) > 2 {
		if sec, err = strconv.ParseFloat(parts[2], 64); err != nil {
			return 0, false
		}
	}

	dec := deg + min/60 + sec/3600
	if negate {
		dec = -dec
	}
	return dec, true
}
