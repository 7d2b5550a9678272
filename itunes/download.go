package itunes

import (
	"fmt"
	"net/http"

	"gitee.com/kxapp/kxapp-common/errorz"
	"gitee.com/kxapp/kxapp-common/httpz"
	beans "github.com/appuploader/itunes-service-v3/model"
	"howett.net/plist"
)

/*
*
Download resolves the signed package url and license data for an item
the account owns. externalVersionId selects a historical version, ""
requests the current one. Failure is reported in the result's
FailureType, identical to the sign in classification.
*/
func (c *Client) Download(adamId string, externalVersionId string) (*beans.DownloadResult, *errorz.StatusError) {
	storefront, e := c.DetectStorefront()
	if e != nil {
		return nil, e
	}

	payload := Document{
		"creditDisplay": "",
		"guid":          c.guid,
		"salableAdamId": adamId,
	}
	if externalVersionId != "" {
		payload["externalVersionId"] = externalVersionId
	}
	body, e := encodePlist(payload)
	if e != nil {
		return nil, e
	}

	requestURL := fmt.Sprintf("%s?guid=%s", c.cfg.DownloadURL, c.guid)
	response := httpz.NewHttpRequestBuilder(http.MethodPost, requestURL).
		AddHeaders(dynamicHeaders()).
		AddHeaders(authHeaders(c.dsPersonId, storefront)).
		SetHeader(HeaderContentType, ContentTypeApplePlist).
		AddBody(body).
		Request(c.httpClient)
	if response.HasError() {
		return nil, errorz.NewNetworkError(response.Error)
	}

	var result beans.DownloadResult
	if _, err := plist.Unmarshal(response.Body, &result); err != nil {
		return nil, errorz.NewParseDataError(err)
	}
	return &result, nil
}
