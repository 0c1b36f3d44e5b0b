package ai

import "fmt"

func BuildOrderInterpretPrompt(orderText string) string {
	return `
You are a restaurant order extraction engine.

Your task:
- Convert the customer's order text into STRICT JSON.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.
- Use the dish name exactly as the customer said it.
- Quantity defaults to 1 when not stated.

If you cannot extract anything, return this exact JSON:
{
  "orderItems": []
}

Required JSON schema:
{
  "orderItems": [
    {
      "item": "string",
      "quantity": number,
      "specialRequests": "string (optional)"
    }
  ]
}

ORDER TEXT:
` + orderText
}

func BuildMenuExtractPrompt(contextPrompt string) string {
	prompt := `
You are a menu digitization engine looking at a photographed restaurant menu.

Your task:
- List every distinct product you can read on the menu as STRICT JSON.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- Omit price, category or description when you cannot read them.

If the image contains no menu items, return this exact JSON:
{
  "products": []
}

Required JSON schema:
{
  "products": [
    {
      "name": "string",
      "price": number,
      "category": "string",
      "description": "string"
    }
  ]
}`

	if contextPrompt != "" {
		prompt += fmt.Sprintf("\n\nADDITIONAL CONTEXT FROM THE ADMIN:\n%s", contextPrompt)
	}

	return prompt
}
