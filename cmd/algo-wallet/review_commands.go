package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlexZinkM/algo-wallet/internal/classifier"
	"github.com/AlexZinkM/algo-wallet/internal/config"
	"github.com/AlexZinkM/algo-wallet/internal/model"
	"github.com/AlexZinkM/algo-wallet/wallet"

	"github.com/itchyny/gojq"
	"github.com/urfave/cli/v2"
)

func reviewCommand() *cli.Command {
	return &cli.Command{
		Name:  "review",
		Usage: "Review a group of encoded transactions before signing",
		Description: `Prints one JSON review per transaction.

Examples:
  algo-wallet review --txn gqNzaWfEQ...
  algo-wallet review --file group.txt --jq '.category == "create_asset"'`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "txn",
				Aliases: []string{"t"},
				Usage:   "Base64 msgpack transaction (repeatable)",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "File with one base64 transaction per line ('-' for stdin)",
			},
			&cli.StringSliceFlag{
				Name:  "jq",
				Usage: "jq filter applied to each review; all filters must return true for a review to be printed",
			},
		},
		Action: func(c *cli.Context) error {
			if err := loadConfig(c); err != nil {
				return err
			}

			encoded := c.StringSlice("txn")
			if path := c.String("file"); path != "" {
				fromFile, err := readTransactions(path)
				if err != nil {
					return err
				}
				encoded = append(encoded, fromFile...)
			}
			if len(encoded) == 0 {
				return fmt.Errorf("at least one transaction is required (--txn or --file)")
			}

			filters, err := compileJQFilters(c.StringSlice("jq"))
			if err != nil {
				return err
			}

			directory, err := wallet.LoadDirectory(config.GetAccountsFilePath())
			if err != nil {
				return err
			}

			reviews, err := wallet.ReviewTransactions(classifier.NewDefault(config.Get().TrimOptions()), directory, encoded)
			if err != nil {
				return err
			}

			selected, err := filterReviews(reviews, filters)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			for _, review := range selected {
				if err := enc.Encode(review); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// readTransactions reads one encoded transaction per non-empty line
func readTransactions(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open transactions file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return scanTransactions(r)
}

func scanTransactions(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return out, nil
}

func compileJQFilters(filters []string) ([]*gojq.Code, error) {
	compiled := make([]*gojq.Code, len(filters))
	for i, filter := range filters {
		query, err := gojq.Parse(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to parse jq filter %q: %w", filter, err)
		}
		compiled[i], err = gojq.Compile(query)
		if err != nil {
			return nil, fmt.Errorf("failed to compile jq filter %q: %w", filter, err)
		}
	}
	return compiled, nil
}

// filterReviews keeps the reviews for which every filter yields true
func filterReviews(reviews []model.TransactionReview, filters []*gojq.Code) ([]model.TransactionReview, error) {
	if len(filters) == 0 {
		return reviews, nil
	}

	var out []model.TransactionReview
	for _, review := range reviews {
		ok, err := matchesAll(review, filters)
		if err != nil {
			return nil, fmt.Errorf("review %d: %w", review.Index, err)
		}
		if ok {
			out = append(out, review)
		}
	}
	return out, nil
}

func matchesAll(review model.TransactionReview, filters []*gojq.Code) (bool, error) {
	// gojq works on plain JSON values, not structs
	raw, err := json.Marshal(review)
	if err != nil {
		return false, err
	}
	var input map[string]any
	if err := json.Unmarshal(raw, &input); err != nil {
		return false, err
	}

	for _, code := range filters {
		iter := code.Run(input)
		v, ok := iter.Next()
		if !ok {
			return false, nil
		}
		if err, isErr := v.(error); isErr {
			return false, fmt.Errorf("jq filter failed: %w", err)
		}
		if matched, isBool := v.(bool); !isBool || !matched {
			return false, nil
		}
	}
	return true, nil
}
