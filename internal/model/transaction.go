package model

// Kind is the top-level type of a transaction
type Kind string

const (
	KindPayment         Kind = "pay"
	KindAssetTransfer   Kind = "axfer"
	KindApplicationCall Kind = "appl"
	KindAssetConfig     Kind = "acfg"
	KindOther           Kind = "other"
)

// OnComplete is the lifecycle action taken on an application after the call
type OnComplete int

const (
	OnCompleteNoOp OnComplete = iota
	OnCompleteOptIn
	OnCompleteCloseOut
	OnCompleteClearState
	OnCompleteUpdateApplication
	OnCompleteDeleteApplication
)

// String returns the on-chain name of the action
func (o OnComplete) String() string {
	switch o {
	case OnCompleteNoOp:
		return "noop"
	case OnCompleteOptIn:
		return "optin"
	case OnCompleteCloseOut:
		return "closeout"
	case OnCompleteClearState:
		return "clearstate"
	case OnCompleteUpdateApplication:
		return "update"
	case OnCompleteDeleteApplication:
		return "delete"
	default:
		return "unknown"
	}
}

// AssetConfigAction tells what an asset configuration transaction does.
// It is decided once while parsing and never inferred from field shapes later.
type AssetConfigAction int

const (
	AssetConfigUnknown AssetConfigAction = iota
	AssetConfigCreate
	AssetConfigUpdate
	AssetConfigDelete
)

// String returns a lowercase name for the action
func (a AssetConfigAction) String() string {
	switch a {
	case AssetConfigCreate:
		return "create"
	case AssetConfigUpdate:
		return "update"
	case AssetConfigDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// AssetConfigActionOf decides the action from the presence of an asset id and of asset params.
// An id without params destroys the asset, params without an id create one.
func AssetConfigActionOf(hasAssetID, hasParams bool) AssetConfigAction {
	switch {
	case !hasAssetID && hasParams:
		return AssetConfigCreate
	case hasAssetID && hasParams:
		return AssetConfigUpdate
	case hasAssetID && !hasParams:
		return AssetConfigDelete
	default:
		return AssetConfigUnknown
	}
}

// ApplicationCall holds fields of an application call transaction
type ApplicationCall struct {
	ApplicationID *uint64 // nil when the call creates the application
	OnComplete    OnComplete
}

// AssetConfig holds fields of an asset configuration transaction
type AssetConfig struct {
	Action    AssetConfigAction
	AssetID   *uint64 // nil when the transaction creates the asset
	AssetName *string
}

// Transaction is a decoded transaction ready for review.
// Application is set only for KindApplicationCall, AssetConfig only for KindAssetConfig.
type Transaction struct {
	ID       string
	Kind     Kind
	Sender   []byte // 32-byte public key
	Receiver []byte // 32-byte public key, nil when the kind has no receiver
	Amount   uint64 // microAlgos or asset base units
	Fee      uint64 // microAlgos
	Note     []byte

	Application *ApplicationCall
	AssetConfig *AssetConfig
}

// IsApplicationCall reports whether the transaction calls an application
func (t Transaction) IsApplicationCall() bool {
	return t.Kind == KindApplicationCall
}

// IsAssetConfig reports whether the transaction configures an asset
func (t Transaction) IsAssetConfig() bool {
	return t.Kind == KindAssetConfig
}
