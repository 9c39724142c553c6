package catalog

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Parse decodes JSON bytes into a book list.
func Parse(data []byte) ([]Book, error) {
	if len(data) == 0 {
		return []Book{}, nil
	}
	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parsing books JSON: %w", err)
	}
	if books == nil {
		return []Book{}, nil
	}
	return books, nil
}

// Marshal encodes a book list to JSON bytes.
func Marshal(books []Book) ([]byte, error) {
	if books == nil {
		books = []Book{}
	}
	data, err := json.Marshal(books)
	if err != nil {
		return nil, fmt.Errorf("encoding books: %w", err)
	}
	return data, nil
}
