package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

type parsedOrder struct {
	OrderItems []ParsedOrderItem `json:"orderItems"`
}

type extractedMenu struct {
	Products []ExtractedProduct `json:"products"`
}

// ParseOrderItems decodes the interpreter's JSON envelope.
// Items with a blank name are dropped; quantity floors at 1.
func ParseOrderItems(rawJSON string) ([]ParsedOrderItem, error) {
	var parsed parsedOrder
	if err := json.Unmarshal([]byte(rawJSON), &parsed); err != nil {
		return nil, errors.New("invalid interpreter JSON output")
	}

	items := make([]ParsedOrderItem, 0, len(parsed.OrderItems))

	for _, it := range parsed.OrderItems {
		it.ItemName = strings.TrimSpace(it.ItemName)
		if it.ItemName == "" {
			continue
		}
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		items = append(items, it)
	}

	return items, nil
}

// ParseExtractedProducts decodes the extractor's JSON envelope.
// An empty product list is a valid result, not an error.
func ParseExtractedProducts(rawJSON string) ([]ExtractedProduct, error) {
	var parsed extractedMenu
	if err := json.Unmarshal([]byte(rawJSON), &parsed); err != nil {
		return nil, errors.New("invalid extractor JSON output")
	}

	return parsed.Products, nil
}
