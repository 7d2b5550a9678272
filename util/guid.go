package util

import (
	"regexp"
	"strings"

	"gitee.com/kxapp/kxapp-common/httpz"
	"github.com/google/uuid"
)

var guidPattern = regexp.MustCompile(`^[0-9A-F]{12}$`)

/*
*
DeviceGUID returns the 12 hex digit device identifier sent as the guid
field on every store request. Derived from the primary MAC address when
the platform exposes one, otherwise synthesized from a random UUID; the
store only checks the shape, not the value.
*/
func DeviceGUID() string {
	mac := httpz.GetMacAddress()
	if g := NormalizeGUID(mac); g != "" {
		return g
	}
	return randomGUID()
}

// NormalizeGUID strips separators from a MAC style string and upper
// cases it. Returns "" when the result is not exactly 12 hex digits.
func NormalizeGUID(mac string) string {
	g := strings.ToUpper(mac)
	g = strings.NewReplacer(":", "", "-", "", ".", "").Replace(g)
	if !guidPattern.MatchString(g) {
		return ""
	}
	return g
}

func IsValidGUID(guid string) bool {
	return guidPattern.MatchString(guid)
}

func randomGUID() string {
	u := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return u[:12]
}
