// internal/catalog/keywords.go
package catalog

import (
	"strings"

	"github.com/javajoker/shopsmart-backend/internal/models"
)

type synonymGroup struct {
	key      string
	synonyms []string
}

// Ordered so that keyword expansion is deterministic.
var synonymTable = []synonymGroup{
	{"phone", []string{"mobile", "smartphone", "cell"}},
	{"laptop", []string{"computer", "notebook", "pc"}},
	{"headphones", []string{"earbuds", "headset", "earphones"}},
	{"watch", []string{"timepiece", "smartwatch", "wearable"}},
	{"camera", []string{"photography", "photo", "lens"}},
	{"fitness", []string{"exercise", "workout", "health", "gym"}},
	{"gaming", []string{"game", "gamer", "play"}},
	{"wireless", []string{"bluetooth", "cordless"}},
	{"smart", []string{"intelligent", "connected", "iot"}},
}

// ExtractQueryKeywords splits query on whitespace and expands every token
// that contains a synonym group's key or one of its synonyms into the whole
// group. The result holds each keyword once, in first-seen order.
func ExtractQueryKeywords(query string) []string {
	tokens := strings.Fields(strings.ToLower(query))

	keywords := make([]string, 0, len(tokens))
	seen := make(map[string]bool)
	add := func(word string) {
		if !seen[word] {
			seen[word] = true
			keywords = append(keywords, word)
		}
	}

	for _, token := range tokens {
		add(token)
	}
	for _, token := range tokens {
		for _, group := range synonymTable {
			if !group.matches(token) {
				continue
			}
			add(group.key)
			for _, synonym := range group.synonyms {
				add(synonym)
			}
		}
	}
	return keywords
}

func (g synonymGroup) matches(token string) bool {
	if strings.Contains(token, g.key) {
		return true
	}
	for _, synonym := range g.synonyms {
		if strings.Contains(token, synonym) {
			return true
		}
	}
	return false
}

// MatchKeywords keeps the products whose combined title, description and
// category text contains at least one keyword.
func MatchKeywords(products []models.Product, keywords []string) []models.Product {
	matches := make([]models.Product, 0)
	if len(keywords) == 0 {
		return matches
	}

	for _, product := range products {
		text := strings.ToLower(product.Title + " " + product.Description + " " + product.Category)
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				matches = append(matches, product)
				break
			}
		}
	}
	return matches
}
