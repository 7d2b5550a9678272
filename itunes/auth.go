package itunes

import (
	"fmt"
	"net/http"
	"strings"

	"gitee.com/kxapp/kxapp-common/errorz"
	"gitee.com/kxapp/kxapp-common/httpz"
	beans "github.com/appuploader/itunes-service-v3/model"
	log "github.com/sirupsen/logrus"
)

/*
*
Authenticate signs in to the fast native endpoint. The flow is a two
state machine: the first call uses attempt 4; when the account has two
factor enabled the store answers with failureType invalidSecondFactor
and the caller must prompt for a code and call again with it, which
resubmits as attempt 2 with the code appended to the password - that is
the wire convention of this endpoint, not a bug. No pending state is
held between the two calls beyond the shared cookie jar.

Sign in failures are returned as AuthResult, not as errors; only
transport failures, undecodable bodies and a locked account (HTTP 423)
surface as StatusError.
*/
func (c *Client) Authenticate(email string, password string, code string) (*beans.AuthResult, *errorz.StatusError) {
	email = strings.ToLower(email)
	c.username = email

	attempt := AttemptInitial
	wirePassword := password
	if code != "" {
		attempt = AttemptSecondFactor
		wirePassword = password + code
	}
	payload := Document{
		"appleId":       email,
		"attempt":       attempt,
		"createSession": "true",
		"guid":          c.guid,
		"password":      wirePassword,
		"rmp":           0,
		"why":           "signIn",
	}
	body, e := encodePlist(payload)
	if e != nil {
		return nil, e
	}

	// idmsa style challenges want their continuation tokens echoed back
	// on the code retry
	challengeHeaders := map[string]string{}
	if attempt == AttemptSecondFactor {
		if c.scnt != "" {
			challengeHeaders[HeaderScnt] = c.scnt
		}
		if c.authToken != "" {
			challengeHeaders[HeaderXAppleIDSession] = c.authToken
		}
	}

	requestURL := fmt.Sprintf("%s?guid=%s", c.cfg.AuthURL, c.guid)
	response := httpz.NewHttpRequestBuilder(http.MethodPost, requestURL).
		AddHeaders(dynamicHeaders()).
		AddHeaders(challengeHeaders).
		SetHeader(HeaderContentType, ContentTypeApplePlist).
		AddBody(body).
		Request(c.httpClient)
	if response.HasError() {
		return nil, errorz.NewNetworkError(response.Error)
	}

	switch response.Status {
	case http.StatusLocked:
		return nil, &errorz.StatusError{Status: http.StatusLocked, Body: AccountLockedMessage}
	case http.StatusConflict:
		// idmsa style challenge: the continuation tokens arrive as headers
		c.scnt = response.Header.Get(HeaderScnt)
		c.authToken = response.Header.Get(HeaderXAppleIDSession)
		c.saveSession()
		return &beans.AuthResult{
			FailureType:          "MFA_REQUIRED",
			CustomerMessage:      "Two-factor authentication required",
			RequiresSecondFactor: true,
		}, nil
	}

	parsed, e := parseStoreResponse(response)
	if e != nil {
		return nil, e
	}

	if parsed.IsFailure() {
		failureType := parsed.FailureType()
		message := parsed.stringField("failureMessage")
		if message == "" {
			message = parsed.CustomerMessage()
		}
		log.Debugf("sign in for %s failed with %s", email, failureType)
		return &beans.AuthResult{
			FailureType:          failureType,
			CustomerMessage:      message,
			AuthType:             parsed.stringField("authType"),
			RequiresSecondFactor: failureType == FailureInvalidSecondFactor,
		}, nil
	}

	// the cookie jar is authoritative for dsPersonId; some code paths of
	// the endpoint set it only as a cookie, the body value is a fallback
	dsid := c.cookieValue(cookieDsPersonId)
	if dsid == "" {
		dsid = parsed.stringField(FieldDsPersonId)
	}
	c.dsPersonId = dsid
	c.saveSession()
	return &beans.AuthResult{
		Success:    true,
		DsPersonId: dsid,
		AuthType:   parsed.stringField("authType"),
	}, nil
}
