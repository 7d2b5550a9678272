package itunes

import (
	"net/http"
	"strings"
	"time"

	"gitee.com/kxapp/kxapp-common/errorz"
	"gitee.com/kxapp/kxapp-common/httpz"
	log "github.com/sirupsen/logrus"
)

const headerStorefrontToken = "x-apple-store-front"

/*
*
DetectStorefront resolves the region code required by some endpoints to
localize their results. The probe result is cached for fifteen minutes;
freshness is checked lazily on each call, there is no timer. A response
without the storefront header yields "" without error - the storefront
is advisory and callers proceed without the header.
*/
func (c *Client) DetectStorefront() (string, *errorz.StatusError) {
	if c.cfg.Storefront != "" {
		return c.cfg.Storefront, nil
	}
	if c.storefront != "" && time.Since(c.storefrontAt) < storefrontTTL {
		return c.storefront, nil
	}

	response := httpz.NewHttpRequestBuilder(http.MethodGet, c.cfg.StorefrontURL).
		AddHeaders(dynamicHeaders()).
		Request(c.httpClient)
	if response.HasError() {
		return "", errorz.NewNetworkError(response.Error)
	}

	raw := response.Header.Get(headerStorefrontToken)
	if raw == "" {
		log.Debug("storefront probe returned no storefront header")
		return "", nil
	}
	// the header carries platform variants after the first semicolon
	code := strings.TrimSpace(strings.SplitN(raw, ";", 2)[0])
	c.storefront = code
	c.storefrontAt = time.Now()
	return code, nil
}

// LastStorefront returns the cached code without probing, "" when the
// cache is cold.
func (c *Client) LastStorefront() string {
	if c.cfg.Storefront != "" {
		return c.cfg.Storefront
	}
	return c.storefront
}
