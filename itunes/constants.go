package itunes

// HTTP headers
const (
	HeaderUserAgent        = "User-Agent"
	HeaderContentType      = "Content-Type"
	HeaderAccept           = "Accept"
	HeaderXDsid            = "X-Dsid"
	HeaderICloudDsid       = "iCloud-DSID"
	HeaderStoreFront       = "X-Apple-Store-Front"
	HeaderClientTime       = "X-Apple-I-Client-Time"
	HeaderClientTimeZone   = "X-Apple-I-TimeZone"
	HeaderScnt             = "scnt"
	HeaderXAppleIDSession  = "X-Apple-ID-Session-Id"
	ContentTypeApplePlist  = "application/x-apple-plist"
	ContentTypeFormEncoded = "application/x-www-form-urlencoded"
)

// The store expects a device configurator agent on every request.
const StoreUserAgent = "Configurator/2.15 (Macintosh; OS X 11.0.0; 16G29) AppleWebKit/2603.3.8"

// Sign in attempt discriminators, wire values of the fast endpoint.
const (
	AttemptInitial      = 4
	AttemptSecondFactor = 2
)

// Response document fields
const (
	FieldFailureType     = "failureType"
	FieldCustomerMessage = "customerMessage"
	FieldDialog          = "dialog"
	FieldMetrics         = "metrics"
	FieldActionURL       = "actionUrl"
	FieldDialogId        = "dialogId"
	FieldDsPersonId      = "dsPersonId"
)

// Failure taxonomy
const (
	FailureInvalidSecondFactor = "invalidSecondFactor"
	// failureType 2060 arrives without an actionUrl; the follow up goes to
	// the default buy endpoint instead.
	FailureMissingActionURL = "2060"

	DialogIdFamilyAgeCheck = "MZCommerce.FamilyAgeCheck"

	FailureCodeFamilyAgeCheck = "ACCOUNT_FAMILY_AGE_CHECK"
	FailureCodeAskToBuy       = "ACCOUNT_ASK_TO_BUY"
)

// Remediation shown for family/age-check and ask-to-buy terminals.
const FamilyRemediationMessage = "Apple requires Family/Age verification for this account. Complete the check, or initiate a free purchase for this app through the App Store on a device signed in to the correct country, then retry."

const AccountLockedMessage = "Account locked. Please visit iforgot.apple.com to unlock."

const cookieDsPersonId = "dsPersonId"

// The dialog loop never follows more than this many server actions.
const maxDialogFollows = 8
