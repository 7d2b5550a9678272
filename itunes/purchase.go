package itunes

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"gitee.com/kxapp/kxapp-common/errorz"
	"gitee.com/kxapp/kxapp-common/httpz"
	beans "github.com/appuploader/itunes-service-v3/model"
	log "github.com/sirupsen/logrus"
)

type followUpKind int

const (
	noAction followUpKind = iota
	submitButtonParams
	submitBuyParams
	submitGenericForm
)

// followUpAction is one transition of the buy dialog machine: where to
// POST next and with which pre-encoded form body. Decided once per
// iteration, in strict priority order.
type followUpAction struct {
	kind   followUpKind
	target string
	form   string
}

var askToBuyPattern = regexp.MustCompile(`(?i)AskToBuy`)

/*
*
Purchase acquires a license for the salable item. The buy endpoint
rarely settles in one round trip; it answers with a dialog describing a
follow up action (age check, ask to buy, buy confirmation) and a
metrics.actionUrl to POST it to. The loop keeps submitting the server
specified parameters until the response carries neither failureType nor
dialog, bounded at eight follow ups. Only protocol level follow ups are
retried - a transport failure anywhere aborts immediately.

The storefront is resolved once at entry and annotates every outcome.
*/
func (c *Client) Purchase(adamId string) (*beans.PurchaseOutcome, *errorz.StatusError) {
	storefront, e := c.DetectStorefront()
	if e != nil {
		return nil, e
	}
	headers := authHeaders(c.dsPersonId, storefront)

	payload := Document{
		"guid":                c.guid,
		"salableAdamId":       adamId,
		"ageCheck":            true,
		"hasBeenAuthedForBuy": true,
		"isInApp":             false,
	}
	body, e := encodePlist(payload)
	if e != nil {
		return nil, e
	}
	entryURL := fmt.Sprintf("%s?guid=%s", c.cfg.BuyURL, c.guid)
	response := httpz.NewHttpRequestBuilder(http.MethodPost, entryURL).
		AddHeaders(dynamicHeaders()).
		AddHeaders(headers).
		SetHeader(HeaderContentType, ContentTypeApplePlist).
		AddBody(body).
		Request(c.httpClient)
	parsed, e := parseStoreResponse(response)
	if e != nil {
		return nil, e
	}
	if parsed.IsSettled() {
		return c.successOutcome(parsed, storefront), nil
	}

	for i := 0; i < maxDialogFollows; i++ {
		action := c.decideFollowUp(parsed, adamId)
		if action.kind == noAction {
			break
		}
		log.Debugf("buy dialog follow up %d kind %d to %s", i+1, action.kind, action.target)
		parsed, e = c.postFollowUp(action, headers)
		if e != nil {
			return nil, e
		}
		if parsed.IsSettled() {
			return c.successOutcome(parsed, storefront), nil
		}
	}

	// a leftover dialog without a failureType is informational, the
	// purchase itself went through
	if !parsed.IsFailure() {
		return c.successOutcome(parsed, storefront), nil
	}
	return c.failureOutcome(parsed, storefront), nil
}

/*
*
decideFollowUp inspects the response in strict priority order and picks
exactly one follow up: the dialog's ok button params verbatim, the buy
params verbatim when the ok button is a Buy, a synthesized generic form
to the server provided actionUrl, or the same generic form to the
default buy endpoint when failureType is 2060 (the server omits the
actionUrl for that specific code).
*/
func (c *Client) decideFollowUp(parsed *StoreResponse, adamId string) followUpAction {
	dialog := parsed.Dialog()
	actionURL := parsed.ActionURL()

	var okButton Document
	if dialog != nil {
		if d, ok := dialog["okButtonAction"].(map[string]any); ok {
			okButton = d
		}
	}
	if okButton != nil {
		if params, ok := okButton["buttonParams"].(string); ok && params != "" {
			return followUpAction{kind: submitButtonParams, target: actionURL, form: params}
		}
		if kind, _ := okButton["kind"].(string); kind == "Buy" {
			if params, ok := okButton["buyParams"].(string); ok && params != "" {
				return followUpAction{kind: submitBuyParams, target: actionURL, form: params}
			}
		}
	}
	if actionURL != "" {
		return followUpAction{kind: submitGenericForm, target: actionURL, form: c.genericBuyForm(adamId)}
	}
	if parsed.FailureType() == FailureMissingActionURL {
		return followUpAction{kind: submitGenericForm, target: "", form: c.genericBuyForm(adamId)}
	}
	return followUpAction{kind: noAction}
}

// genericBuyForm resubmits the fixed confirmation flags of the entry
// request as a form body. Sent unconditionally for every dialog kind,
// matching observed store behavior.
func (c *Client) genericBuyForm(adamId string) string {
	form := url.Values{}
	form.Set("salableAdamId", adamId)
	form.Set("guid", c.guid)
	form.Set("ageCheck", "true")
	form.Set("isInApp", "false")
	form.Set("hasBeenAuthedForBuy", "true")
	return form.Encode()
}

func (c *Client) postFollowUp(action followUpAction, headers map[string]string) (*StoreResponse, *errorz.StatusError) {
	response := httpz.NewHttpRequestBuilder(http.MethodPost, c.resolveActionURL(action.target)).
		AddHeaders(dynamicHeaders()).
		AddHeaders(headers).
		SetHeader(HeaderContentType, ContentTypeFormEncoded).
		AddBody(action.form).
		Request(c.httpClient)
	return parseStoreResponse(response)
}

// resolveActionURL fixes up server provided follow up targets: an empty
// target falls back to the buy endpoint, a schemeless one gets https.
func (c *Client) resolveActionURL(target string) string {
	if target == "" {
		return c.cfg.BuyURL
	}
	if !strings.HasPrefix(target, "http") {
		return "https://" + target
	}
	return target
}

func (c *Client) successOutcome(parsed *StoreResponse, storefront string) *beans.PurchaseOutcome {
	return &beans.PurchaseOutcome{
		Success:    true,
		Storefront: storefront,
		Response:   parsed.Doc,
	}
}

/*
*
failureOutcome normalizes the terminal failure. Family age check and
ask to buy dialogs are surfaced with fixed codes and a remediation
message since their raw failureType values are meaningless to callers;
everything else passes through untouched.
*/
func (c *Client) failureOutcome(parsed *StoreResponse, storefront string) *beans.PurchaseOutcome {
	outcome := &beans.PurchaseOutcome{
		Storefront: storefront,
		Response:   parsed.Doc,
	}
	dialogId := parsed.DialogId()
	switch {
	case dialogId == DialogIdFamilyAgeCheck:
		outcome.FailureCode = FailureCodeFamilyAgeCheck
		outcome.CustomerMessage = FamilyRemediationMessage
	case askToBuyPattern.MatchString(dialogId):
		outcome.FailureCode = FailureCodeAskToBuy
		outcome.CustomerMessage = FamilyRemediationMessage
	default:
		outcome.FailureCode = parsed.FailureType()
		outcome.CustomerMessage = parsed.CustomerMessage()
		if outcome.CustomerMessage == "" {
			outcome.CustomerMessage = "Purchase failed"
		}
	}
	return outcome
}
