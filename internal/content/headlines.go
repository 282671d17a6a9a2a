package content

import (
	"errors" // Error values

	"pantry_chef/internal/utils" // Random sampling helpers
)

// Fixed pool of food news headlines
var headlinePool = []string{
	"Mediterranean diet proven to boost focus.",
	"Dark chocolate linked to heart health.",
	"Green tea trend skyrockets worldwide.",
	"Lab-grown meat gains regulatory momentum.",
	"AI predicts food waste can be cut by 40%.",
}

// ErrNotEnoughHeadlines is returned if the pool ever holds fewer than three entries
var ErrNotEnoughHeadlines = errors.New("not enough headlines to sample")

// Headlines returns three distinct headlines drawn from the fixed pool
func Headlines() ([]string, error) {
	if len(headlinePool) < 3 {
		return nil, ErrNotEnoughHeadlines // Guard, unreachable with the fixed pool
	}
	return utils.RandomSample(headlinePool, 3), nil
}
