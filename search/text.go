package search

import "strings"

// Priority orders matches; lower sorts first.
type Priority int

const (
	// PriorityPrefix is given to product names starting with the query, and to
	// every record when the query is empty.
	PriorityPrefix Priority = iota
	// PriorityProductName is given when the query occurs inside the product name.
	PriorityProductName
	// PriorityTitle is given when the query occurs only in the title.
	PriorityTitle
	// PriorityNone is the fallback for records no rule applies to.
	PriorityNone
)

func (p Priority) String() string {
	switch p {
	case PriorityPrefix:
		return "prefix"
	case PriorityProductName:
		return "product-name"
	case PriorityTitle:
		return "title"
	default:
		return "none"
	}
}

// NormalizeQuery trims surrounding whitespace and lower-cases the query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// matches reports whether a record matches. All arguments are lower-cased.
func matches(titleLower, productLower, queryLower string) bool {
	return queryLower == "" ||
		strings.Contains(titleLower, queryLower) ||
		strings.Contains(productLower, queryLower)
}

// rank assigns the tie-break priority of a match. All arguments are lower-cased.
// The first rule that applies wins.
func rank(titleLower, productLower, queryLower string) Priority {
	switch {
	case queryLower == "":
		return PriorityPrefix
	case strings.HasPrefix(productLower, queryLower):
		return PriorityPrefix
	case strings.Contains(productLower, queryLower):
		return PriorityProductName
	case strings.Contains(titleLower, queryLower):
		return PriorityTitle
	default:
		return PriorityNone
	}
}
