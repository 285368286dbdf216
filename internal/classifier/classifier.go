// Package classifier decides how a transaction is presented on the sign-review screen.
//
// All functions are pure: they read the transaction and the account directory
// they are given, keep no state between calls and never fail. Shapes they do
// not recognise degrade to the default account category.
package classifier

import (
	"strconv"

	"github.com/AlexZinkM/algo-wallet/internal/common"
	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/algorand/go-algorand-sdk/v2/types"
)

// AddressEncoder turns a raw public key into its canonical address string
type AddressEncoder interface {
	Encode(publicKey []byte) (string, error)
}

// Trimmer shortens addresses and names for display
type Trimmer interface {
	TrimAddress(address string) string
	TrimName(name string) string
}

// AlgorandEncoder encodes 32-byte keys as checksummed Algorand addresses
type AlgorandEncoder struct{}

// Encode returns the address for publicKey or an error when it is not 32 bytes
func (AlgorandEncoder) Encode(publicKey []byte) (string, error) {
	return types.EncodeAddress(publicKey)
}

// OptionsTrimmer trims with fixed thresholds
type OptionsTrimmer struct {
	Options common.TrimOptions
}

// TrimAddress shortens an address
func (t OptionsTrimmer) TrimAddress(address string) string {
	return common.TrimAccountAddress(address, t.Options)
}

// TrimName truncates an account name
func (t OptionsTrimmer) TrimName(name string) string {
	return common.TrimAccountName(name, t.Options)
}

// Classifier maps transactions to icon categories, labels and parties
type Classifier struct {
	encoder AddressEncoder
	trimmer Trimmer
}

// New creates a Classifier. Nil collaborators fall back to the Algorand encoder and default trimming.
func New(encoder AddressEncoder, trimmer Trimmer) *Classifier {
	if encoder == nil {
		encoder = AlgorandEncoder{}
	}
	if trimmer == nil {
		trimmer = OptionsTrimmer{Options: common.DefaultTrimOptions()}
	}
	return &Classifier{encoder: encoder, trimmer: trimmer}
}

// NewDefault creates a Classifier with the Algorand encoder and the given trim thresholds
func NewDefault(opts common.TrimOptions) *Classifier {
	return New(AlgorandEncoder{}, OptionsTrimmer{Options: opts})
}

// ClassifyIcon determines the icon category. Application calls and asset
// configurations are checked before the generic account fallback.
func (c *Classifier) ClassifyIcon(txn model.Transaction) model.IconCategory {
	switch txn.Kind {
	case model.KindApplicationCall:
		return classifyApplicationCall(txn.Application)
	case model.KindAssetConfig:
		return classifyAssetConfig(txn.AssetConfig)
	default:
		return model.CategoryDefaultAccount
	}
}

func classifyApplicationCall(app *model.ApplicationCall) model.IconCategory {
	if app == nil || app.ApplicationID == nil {
		return model.CategoryCreateApplication
	}

	switch app.OnComplete {
	case model.OnCompleteUpdateApplication:
		return model.CategoryModifyApplication
	case model.OnCompleteDeleteApplication:
		return model.CategoryDeleteApplication
	default:
		return model.CategoryGenericApplicationCall
	}
}

func classifyAssetConfig(cfg *model.AssetConfig) model.IconCategory {
	if cfg == nil {
		return model.CategoryDefaultAccount
	}

	switch cfg.Action {
	case model.AssetConfigCreate:
		return model.CategoryCreateAsset
	case model.AssetConfigUpdate:
		return model.CategoryModifyAsset
	case model.AssetConfigDelete:
		return model.CategoryDeleteAsset
	default:
		return model.CategoryDefaultAccount
	}
}

// ClassifyLabel returns the text shown next to the icon. It follows the same
// decision tree as ClassifyIcon; for the default category it describes the receiver.
func (c *Classifier) ClassifyLabel(txn model.Transaction, directory model.AccountDirectory) string {
	switch c.ClassifyIcon(txn) {
	case model.CategoryCreateApplication:
		return "Create Application"
	case model.CategoryModifyApplication, model.CategoryDeleteApplication, model.CategoryGenericApplicationCall:
		return "Application #" + strconv.FormatUint(*txn.Application.ApplicationID, 10)
	case model.CategoryCreateAsset:
		if name := txn.AssetConfig.AssetName; name != nil && *name != "" {
			return `Create "` + *name + `" Asset`
		}
		return "Create Asset"
	case model.CategoryModifyAsset, model.CategoryDeleteAsset:
		// update and delete share one label; only the icon differs
		if txn.AssetConfig.AssetID == nil {
			return ""
		}
		return "Asset Configuration - " + strconv.FormatUint(*txn.AssetConfig.AssetID, 10)
	default:
		if txn.IsAssetConfig() {
			// asset configuration whose action could not be decided
			return ""
		}
		return c.ResolveParty(txn.Receiver, directory).Label
	}
}

// ResolveParty describes the account behind publicKey. A missing key or one
// that cannot be encoded yields an unknown party with an empty label.
func (c *Classifier) ResolveParty(publicKey []byte, directory model.AccountDirectory) model.DisplayParty {
	if len(publicKey) == 0 {
		return model.DisplayParty{}
	}

	address, err := c.encoder.Encode(publicKey)
	if err != nil || address == "" {
		return model.DisplayParty{}
	}

	account, found := directory.Lookup(address)
	trimmedAddress := c.trimmer.TrimAddress(address)

	if found && account.Name != "" {
		return model.DisplayParty{
			Label:          c.trimmer.TrimName(account.Name),
			IsKnownAccount: true,
			SecondaryLabel: &trimmedAddress,
		}
	}

	return model.DisplayParty{
		Label:          trimmedAddress,
		IsKnownAccount: found,
	}
}
