package itunes

import (
	"net/http"

	"gitee.com/kxapp/kxapp-common/errorz"
	"gitee.com/kxapp/kxapp-common/httpz"
)

// PurchaseHistory fetches the account's purchase records. The endpoint
// takes no body, only the authorization headers.
func (c *Client) PurchaseHistory() (Document, *errorz.StatusError) {
	storefront, e := c.DetectStorefront()
	if e != nil {
		return nil, e
	}

	response := httpz.NewHttpRequestBuilder(http.MethodPost, c.cfg.HistoryURL).
		AddHeaders(dynamicHeaders()).
		AddHeaders(authHeaders(c.dsPersonId, storefront)).
		Request(c.httpClient)
	parsed, e := parseStoreResponse(response)
	if e != nil {
		return nil, e
	}
	return parsed.Doc, nil
}
