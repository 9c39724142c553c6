package loan

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Parse decodes JSON bytes into a loan list.
func Parse(data []byte) ([]Loan, error) {
	if len(data) == 0 {
		return []Loan{}, nil
	}
	var loans []Loan
	if err := json.Unmarshal(data, &loans); err != nil {
		return nil, fmt.Errorf("parsing loans JSON: %w", err)
	}
	if loans == nil {
		return []Loan{}, nil
	}
	return loans, nil
}

// Marshal encodes a loan list to JSON bytes.
func Marshal(loans []Loan) ([]byte, error) {
	if loans == nil {
		loans = []Loan{}
	}
	data, err := json.Marshal(loans)
	if err != nil {
		return nil, fmt.Errorf("encoding loans: %w", err)
	}
	return data, nil
}
