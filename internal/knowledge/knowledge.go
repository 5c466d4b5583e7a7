// Package knowledge serves the static gardening knowledge base. Articles
// live in memory; search matches title, excerpt, and tags the same way the
// storefront page filters them.
package knowledge

import "strings"

type Article struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	ReadTime string   `json:"readTime"`
}

type Base struct {
	articles []Article
}

func NewBase() *Base {
	return &Base{articles: articles}
}

// Search filters by free-text term and category. Empty term matches all;
// category "All" or "" matches all categories.
func (b *Base) Search(term, category string) []Article {
	term = strings.ToLower(term)

	matched := make([]Article, 0, len(b.articles))
	for _, a := range b.articles {
		if category != "" && category != "All" && a.Category != category {
			continue
		}
		if term != "" && !matchesTerm(a, term) {
			continue
		}
		matched = append(matched, a)
	}
	return matched
}

func (b *Base) Get(id string) (Article, bool) {
	for _, a := range b.articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

func (b *Base) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range b.articles {
		if !seen[a.Category] {
			seen[a.Category] = true
			out = append(out, a.Category)
		}
	}
	return out
}

func matchesTerm(a Article, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Excerpt), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
