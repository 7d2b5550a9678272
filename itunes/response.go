package itunes

import (
	"fmt"

	"gitee.com/kxapp/kxapp-common/errorz"
	"gitee.com/kxapp/kxapp-common/httpz"
)

// StoreResponse is the decoded result document of a store call. The
// presence of a failureType field marks a failure, absence success.
type StoreResponse struct {
	Status int
	Doc    Document
}

func parseStoreResponse(res *httpz.HttpResponse) (*StoreResponse, *errorz.StatusError) {
	if res.HasError() {
		return nil, errorz.NewNetworkError(res.Error)
	}
	doc, e := decodeBody(res.Header.Get(HeaderContentType), res.Body)
	if e != nil {
		return nil, e
	}
	return &StoreResponse{Status: res.Status, Doc: doc}, nil
}

func (r *StoreResponse) IsFailure() bool {
	return r.FailureType() != ""
}

// IsSettled reports the terminal success condition of the buy loop:
// no failure and no further dialog to follow.
func (r *StoreResponse) IsSettled() bool {
	return r.FailureType() == "" && r.Dialog() == nil
}

func (r *StoreResponse) FailureType() string {
	return r.stringField(FieldFailureType)
}

func (r *StoreResponse) CustomerMessage() string {
	return r.stringField(FieldCustomerMessage)
}

func (r *StoreResponse) Dialog() Document {
	return r.dictField(FieldDialog)
}

func (r *StoreResponse) Metrics() Document {
	return r.dictField(FieldMetrics)
}

func (r *StoreResponse) ActionURL() string {
	if m := r.Metrics(); m != nil {
		if s, ok := m[FieldActionURL].(string); ok {
			return s
		}
	}
	return ""
}

func (r *StoreResponse) DialogId() string {
	if m := r.Metrics(); m != nil {
		if s, ok := m[FieldDialogId].(string); ok {
			return s
		}
	}
	return ""
}

func (r *StoreResponse) stringField(name string) string {
	if r == nil || r.Doc == nil {
		return ""
	}
	switch v := r.Doc[name].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		// a few revisions of the endpoint send numeric failure codes
		return fmt.Sprintf("%v", v)
	}
}

func (r *StoreResponse) dictField(name string) Document {
	if r == nil || r.Doc == nil {
		return nil
	}
	if d, ok := r.Doc[name].(map[string]any); ok {
		return d
	}
	return nil
}
