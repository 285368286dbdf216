package classifier

import (
	"encoding/base64"
	"strconv"
	"unicode/utf8"

	"github.com/AlexZinkM/algo-wallet/internal/common"
	"github.com/AlexZinkM/algo-wallet/internal/model"
)

// Review combines icon, label and parties into the review of one transaction.
// The receiver is only described for the default category; application and
// asset configuration transactions show their label in its place.
func (c *Classifier) Review(txn model.Transaction, directory model.AccountDirectory) model.TransactionReview {
	category := c.ClassifyIcon(txn)

	review := model.TransactionReview{
		ID:       txn.ID,
		Kind:     txn.Kind,
		Category: category,
		Icon:     category.Icon(),
		Label:    c.ClassifyLabel(txn, directory),
		From:     c.ResolveParty(txn.Sender, directory),
		Amount:   formatAmount(txn),
		Fee:      common.MicroAlgosToAlgos(txn.Fee),
		Note:     formatNote(txn.Note),
	}

	if txn.IsApplicationCall() && txn.Application != nil {
		review.OnCompletion = txn.Application.OnComplete.String()
	}

	if category == model.CategoryDefaultAccount && !txn.IsAssetConfig() {
		to := c.ResolveParty(txn.Receiver, directory)
		review.To = &to
	}

	return review
}

func formatAmount(txn model.Transaction) string {
	switch txn.Kind {
	case model.KindPayment:
		return common.MicroAlgosToAlgos(txn.Amount)
	case model.KindAssetTransfer:
		// asset decimals are not part of the transaction
		return strconv.FormatUint(txn.Amount, 10)
	default:
		return ""
	}
}

func formatNote(note []byte) string {
	if len(note) == 0 {
		return ""
	}
	if utf8.Valid(note) {
		return string(note)
	}
	return base64.StdEncoding.EncodeToString(note)
}
