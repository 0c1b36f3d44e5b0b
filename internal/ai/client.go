package ai

import "context"

// OrderInterpreter turns free-text order descriptions into structured items.
type OrderInterpreter interface {
	InterpretOrder(ctx context.Context, orderText string) ([]ParsedOrderItem, error)
}

// MenuExtractor turns a photographed menu into candidate products.
// The image arrives as a data URI carrying MIME type and base64 payload.
type MenuExtractor interface {
	ExtractMenu(ctx context.Context, imageDataURI string, contextPrompt string) ([]ExtractedProduct, error)
}
