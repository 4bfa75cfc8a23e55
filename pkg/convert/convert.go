// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert parses loosely typed query values without surfacing errors.

Callers that must reject malformed input (path identifiers, strict filters)
use the request helpers instead.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD parses str as an int, returning def when it is blank or malformed.
func ToIntD(str string, def int) int {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return def
}

// ToBool parses "true", "1", "false", "0" and friends. Anything else is false.
func ToBool(s string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(s))
	return v
}
