package utils

import (
	"fmt"
	"strconv"
	"strings"

	"paynowbot/models"
)

// SplitArgsQuoted splits a command string into arguments, treating quoted substrings as single arguments.
func SplitArgsQuoted(input string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false
	var quoteChar rune

	for _, r := range input {
		switch {
		case r == '"' || r == '\'':
			if !inQuotes {
				inQuotes = true
				quoteChar = r
			} else if r == quoteChar {
				inQuotes = false
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
			} else {
				current.WriteRune(r)
			}
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	return args
}

// ParseSaleArguments parses inline slash-command text.
// Format: <amount> <operator> "<customer_or_table>" [company]
func ParseSaleArguments(text string) (*models.SaleRequest, error) {
	parts := SplitArgsQuoted(text)

	if len(parts) < 3 {
		return nil, fmt.Errorf("invalid format. Usage: <amount> <operator> \"<customer or table>\" [company]")
	}

	amountStr := strings.TrimSpace(parts[0])
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount '%s'. Please provide a valid number", amountStr)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}

	operator := strings.TrimSpace(parts[1])
	if operator == "" {
		return nil, fmt.Errorf("operator name cannot be empty")
	}

	customer := strings.TrimSpace(parts[2])
	if customer == "" {
		return nil, fmt.Errorf("customer or table name cannot be empty")
	}

	company := ""
	if len(parts) > 3 {
		company = strings.TrimSpace(parts[3])
	}

	return &models.SaleRequest{
		BaseAmount:   amount,
		OperatorName: operator,
		CustomerName: customer,
		Company:      company,
	}, nil
}
