package valueobject

import "regexp"

var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// IsHexColor reports whether color is a #RGB or #RRGGBB string.
func IsHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}
