package recipes

import (
	"fmt"      // String templating
	"net/url"  // Percent-encoding for image queries
	"strings"  // String manipulation
)

// Recipe is one generated recipe suggestion
type Recipe struct {
	Title        string `json:"title"`        // Templated recipe title
	Image        string `json:"image"`        // Image search URL built from the ingredient phrase
	Link         string `json:"link"`         // Placeholder link
	Instructions string `json:"instructions"` // Templated instructions referencing the ingredient phrase
}

// imageURL builds an image search URL from the encoded ingredient phrase and a style keyword
func imageURL(encodedPhrase, style string) string {
	return "https://source.unsplash.com/800x600/?" + encodedPhrase + "," + url.QueryEscape(style)
}

// Normalize reduces a pantry payload to the canonical ingredient phrase.
// Lists are joined on commas from their non-empty stringified elements;
// anything else is stringified directly. The result is split on commas,
// each part trimmed, empty parts dropped, and the remainder rejoined.
// An empty result defaults to "food".
func Normalize(pantry any) string {
	var raw string
	switch v := pantry.(type) {
	case nil:
		raw = "" // Absent payload
	case []any:
		// Join non-empty stringified elements with commas
		parts := make([]string, 0, len(v))
		for _, x := range v {
			if x == nil || x == "" {
				continue // Skip empty elements
			}
			parts = append(parts, fmt.Sprint(x))
		}
		raw = strings.Join(parts, ",")
	case string:
		raw = v
	default:
		raw = fmt.Sprint(v) // Coerce scalars to string
	}
	// Split on commas, trim each part, drop empty parts, rejoin
	cleaned := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			cleaned = append(cleaned, part)
		}
	}
	phrase := strings.Join(cleaned, ",")
	if phrase == "" {
		phrase = "food" // Default phrase when nothing usable was supplied
	}
	return phrase
}

// Generate derives exactly three recipe suggestions from a pantry payload.
// The diet parameter is accepted for API compatibility and currently does
// not alter the output.
func Generate(pantry any, diet string) ([]Recipe, error) {
	_ = diet // Documented no-op

	phrase := Normalize(pantry)     // Canonical ingredient phrase
	q := url.QueryEscape(phrase)    // Encoded once for all image URLs

	// Three deterministic variants with unique instructions
	sample := []Recipe{
		{
			Title:        fmt.Sprintf("Creative Dish with %s", phrase),
			Image:        imageURL(q, "food"),
			Link:         "#",
			Instructions: fmt.Sprintf("Use %s in a creative way. Mix, cook, and enjoy a delicious %s dish!", phrase, phrase),
		},
		{
			Title:        fmt.Sprintf("Fusion %s Curry", phrase),
			Image:        imageURL(q, "curry"),
			Link:         "#",
			Instructions: fmt.Sprintf("Cook %s with spices and herbs to make a flavorful curry.", phrase),
		},
		{
			Title:        fmt.Sprintf("Healthy %s Salad", phrase),
			Image:        imageURL(q, "salad"),
			Link:         "#",
			Instructions: fmt.Sprintf("Combine %s with fresh veggies and dressing for a healthy salad.", phrase),
		},
	}
	return sample, nil
}
