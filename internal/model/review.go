package model

// IconCategory is the iconographic category of a transaction on the review screen
type IconCategory string

const (
	CategoryDefaultAccount         IconCategory = "default_account"
	CategoryCreateApplication      IconCategory = "create_application"
	CategoryModifyApplication      IconCategory = "modify_application"
	CategoryDeleteApplication      IconCategory = "delete_application"
	CategoryGenericApplicationCall IconCategory = "application_call"
	CategoryCreateAsset            IconCategory = "create_asset"
	CategoryModifyAsset            IconCategory = "modify_asset"
	CategoryDeleteAsset            IconCategory = "delete_asset"
)

// Icon names of the glyphs shipped with the UI
const (
	IconAccountDefault  = "account-default"
	IconApplicationCall = "application-call"
	IconCreate          = "create"
	IconModify          = "modify"
	IconDelete          = "delete"
)

var categoryIcons = map[IconCategory]string{
	CategoryDefaultAccount:         IconAccountDefault,
	CategoryCreateApplication:      IconCreate,
	CategoryModifyApplication:      IconModify,
	CategoryDeleteApplication:      IconDelete,
	CategoryGenericApplicationCall: IconApplicationCall,
	CategoryCreateAsset:            IconCreate,
	CategoryModifyAsset:            IconModify,
	CategoryDeleteAsset:            IconDelete,
}

// Icon returns the glyph for the category. Unknown categories get the default account glyph.
func (c IconCategory) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return IconAccountDefault
}

// TransactionReview is everything the sign-review screen shows for one transaction
type TransactionReview struct {
	Index        int           `json:"index"`
	ID           string        `json:"id,omitempty"`
	Kind         Kind          `json:"kind,omitempty"`
	Category     IconCategory  `json:"category"`
	Icon         string        `json:"icon"`
	Label        string        `json:"label"`
	OnCompletion string        `json:"on_complete,omitempty"` // application calls only
	From         DisplayParty  `json:"from"`
	To           *DisplayParty `json:"to,omitempty"` // set only for the default category
	Amount       string        `json:"amount,omitempty"`
	Fee          string        `json:"fee,omitempty"`
	Note         string        `json:"note,omitempty"`
	Error        string        `json:"error,omitempty"` // decoding failure, the review is degraded
}

// ReviewRequest represents request for POST /transactions/review
type ReviewRequest struct {
	Transactions []string `json:"transactions" binding:"required"` // base64 msgpack
}

// ReviewResponse represents response for POST /transactions/review
type ReviewResponse struct {
	Reviews []TransactionReview `json:"reviews"`
}
