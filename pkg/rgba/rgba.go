// Package rgba converts hex color triplets into CSS rgba() values.
package rgba

import (
	"fmt"
	"strconv"
	"strings"
)

// ToRgba converts a 6-digit hex triplet (with or without a leading '#') and an
// alpha value into "rgba(r, g, b, alpha)".
//
// 3-digit shorthand is not supported. Malformed input is the caller's
// responsibility; unparseable channels come out as 0.
func ToRgba(hex string, alpha float64) string {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	value, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		value = 0
	}

	r := (value >> 16) & 0xff
	g := (value >> 8) & 0xff
	b := value & 0xff

	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}
