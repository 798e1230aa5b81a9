package schema

import "github.com/jricekitchen/order-backend/internal/pricing"

// Field describes one order form field: its constraints plus the display
// metadata the frontend renders from. Pure data, no behavior.
type Field struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Required    bool     `json:"required"`
	Pattern     string   `json:"pattern,omitempty"`
	Minimum     int      `json:"minimum,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	EnumTitles  []string `json:"enumTitles,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Autofocus   bool     `json:"autofocus,omitempty"`
}

// NamePattern is the shape accepted for the customer name field.
const NamePattern = "^[A-Za-z ]+$"

// Fields returns the order form schema.
func Fields() []Field {
	return []Field{
		{
			Name:     "option",
			Type:     "string",
			Title:    "Choose your option",
			Required: true,
			Enum:     []string{pricing.OptionOnePlate, pricing.OptionTwoLitres},
			EnumTitles: []string{
				"One plate with 2 piece chicken (£7)",
				"2 Litres with 12 piece chicken (£32)",
			},
		},
		{
			Name:     "quantity",
			Type:     "number",
			Title:    "How many?",
			Required: true,
			Minimum:  1,
		},
		{
			Name:      "name",
			Type:      "string",
			Title:     "Your name",
			Required:  true,
			Pattern:   NamePattern,
			Autofocus: true,
		},
		{
			Name:        "phone",
			Type:        "string",
			Title:       "Your phone number",
			Required:    true,
			Placeholder: "e.g. 07712345678",
		},
		{
			Name:        "pickup",
			Type:        "string",
			Title:       "Preferred pickup location in MDX",
			Required:    true,
			Placeholder: "e.g. MDX House, Sheppard Library (Basement), etc.",
		},
	}
}
