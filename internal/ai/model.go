package ai

// ParsedOrderItem is one line the model understood from the order text.
type ParsedOrderItem struct {
	ItemName        string `json:"item"`
	Quantity        int    `json:"quantity"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// ExtractedProduct is one candidate product read off a menu image.
// Optional fields stay nil when the model could not discern them.
type ExtractedProduct struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
}
