package wallet

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/algo-wallet/internal/classifier"
	"github.com/AlexZinkM/algo-wallet/internal/model"
	"github.com/AlexZinkM/algo-wallet/internal/parser"
)

// MaxGroupSize is the largest atomic transaction group the ledger accepts
const MaxGroupSize = 16

// ErrNoTransactions is returned when a review request carries no transactions
var ErrNoTransactions = errors.New("no transactions to review")

// ReviewTransactions decodes and reviews a group of base64 msgpack transactions.
// A transaction that cannot be decoded gets a degraded review carrying the
// decoding error; it never fails the rest of the group.
func ReviewTransactions(c *classifier.Classifier, dir model.AccountDirectory, encoded []string) ([]model.TransactionReview, error) {
	if len(encoded) == 0 {
		return nil, ErrNoTransactions
	}
	if len(encoded) > MaxGroupSize {
		return nil, fmt.Errorf("too many transactions: a group holds at most %d", MaxGroupSize)
	}

	reviews := make([]model.TransactionReview, 0, len(encoded))
	for i, raw := range encoded {
		txn, err := parser.DecodeBase64(raw)
		if err != nil {
			reviews = append(reviews, model.TransactionReview{
				Index:    i,
				Category: model.CategoryDefaultAccount,
				Icon:     model.CategoryDefaultAccount.Icon(),
				Error:    err.Error(),
			})
			continue
		}

		review := c.Review(txn, dir)
		review.Index = i
		reviews = append(reviews, review)
	}

	return reviews, nil
}
