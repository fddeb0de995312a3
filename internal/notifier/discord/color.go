package discord

import (
	"strconv"
	"strings"

	"github.com/aleister1102/discohook/internal/common/errorwrapper"
)

// ParseColor decodes a six digit hex color, with or without a leading '#',
// into the decimal integer Discord expects.
func ParseColor(code string) (int, error) {
	hex := strings.TrimPrefix(code, "#")
	if len(hex) != 6 {
		return 0, errorwrapper.NewValidationError("color", code, "color must have exactly 6 hex digits")
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errorwrapper.NewValidationErrorWithCause("color", code, "color is not valid hexadecimal", err)
	}
	return int(value), nil
}
