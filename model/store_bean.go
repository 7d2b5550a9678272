package beans

// AuthResult is the caller facing outcome of a sign in attempt. Sign in
// failures are expected outcomes the caller branches on, not errors.
type AuthResult struct {
	Success              bool   `json:"success"`
	DsPersonId           string `json:"dsPersonId,omitempty"`
	FailureType          string `json:"failureType,omitempty"`
	CustomerMessage      string `json:"customerMessage,omitempty"`
	RequiresSecondFactor bool   `json:"requiresSecondFactor"`
	AuthType             string `json:"authType,omitempty"`
}

// PurchaseOutcome is the terminal result of the buy dialog loop.
// FailureCode carries the normalized code (ACCOUNT_FAMILY_AGE_CHECK,
// ACCOUNT_ASK_TO_BUY) or the raw failureType when no normalization
// applies. Storefront is the region code used for the attempt.
type PurchaseOutcome struct {
	Success         bool           `json:"success"`
	Storefront      string         `json:"storefrontUsed,omitempty"`
	FailureCode     string         `json:"failureCode,omitempty"`
	CustomerMessage string         `json:"customerMessage,omitempty"`
	Response        map[string]any `json:"response,omitempty"`
}

type DownloadResult struct {
	FailureType     string          `plist:"failureType,omitempty" json:"failureType,omitempty"`
	CustomerMessage string          `plist:"customerMessage,omitempty" json:"customerMessage,omitempty"`
	Items           []*DownloadItem `plist:"songList,omitempty" json:"songList,omitempty"`
}

type DownloadItem struct {
	MD5        string         `plist:"md5,omitempty" json:"md5,omitempty"`
	URL        string         `plist:"URL,omitempty" json:"URL,omitempty"`
	ArtworkURL string         `plist:"artworkURL,omitempty" json:"artworkURL,omitempty"`
	Sinfs      []*Sinf        `plist:"sinfs,omitempty" json:"sinfs,omitempty"`
	Metadata   map[string]any `plist:"metadata,omitempty" json:"metadata,omitempty"`
}

// Sinf is the per item license blob attached to a download result.
type Sinf struct {
	ID   int64  `plist:"id" json:"id"`
	Sinf []byte `plist:"sinf" json:"sinf"`
}

func (r *DownloadResult) First() *DownloadItem {
	if len(r.Items) == 0 {
		return nil
	}
	return r.Items[0]
}
