package itunes

import (
	"os"
	"time"
)

/*
*
dynamicHeaders builds the per request headers every store call carries:
fixed configurator user agent, client timestamp and the local time zone.
The store wants the IANA zone name, which the runtime only knows through
TZ; a fixed region stands in when it is unset.
*/
func dynamicHeaders() map[string]string {
	tz := os.Getenv("TZ")
	if tz == "" {
		tz = "Asia/Bangkok"
	}
	return map[string]string{
		HeaderUserAgent:      StoreUserAgent,
		HeaderAccept:         "*/*",
		HeaderClientTime:     time.Now().UTC().Format(time.RFC3339),
		HeaderClientTimeZone: tz,
	}
}

// authHeaders are attached to every authenticated commerce call. The
// storefront header is advisory and skipped when no code is known.
func authHeaders(dsPersonId string, storefront string) map[string]string {
	headers := map[string]string{
		HeaderXDsid:      dsPersonId,
		HeaderICloudDsid: dsPersonId,
	}
	if storefront != "" {
		headers[HeaderStoreFront] = storefront
	}
	return headers
}
