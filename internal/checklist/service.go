// Package checklist converts shopping lists to and from markdown task lists.
//
//	# Shopping List
//
//	- [ ] Milk x2
//	- [x] Bread
package checklist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"shopping-list/internal/model"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Regex pattern: captures indent, checkbox state, and text
	// Example: "  - [x] Milk x2" → groups: ["  ", "x", "Milk x2"]
	CheckboxPattern = `(?m)^(\s*)[-*] \[([ xX])\] (.+)$`
	// QuantityPattern splits a trailing "x2" / "×2" quantity from the name.
	QuantityPattern = `^(.+?)\s+[x×](\d{1,4})$`

	DefaultTitle = "Shopping List"
)

type Service interface {
	// Parse extracts all checkbox entries from markdown content
	Parse(content string) []Entry

	// GetStats calculates checklist statistics
	GetStats(content string) ChecklistStats

	// Render writes items as a markdown task list under a heading
	Render(title string, items []model.ShoppingItem) string
}

type service struct {
	pattern  *regexp.Regexp
	quantity *regexp.Regexp
	fenced   *regexp.Regexp
}

func New() Service {
	return &service{
		pattern:  regexp.MustCompile(CheckboxPattern),
		quantity: regexp.MustCompile(QuantityPattern),
		// Fences only count at the start of a line, so backticks inside item names survive.
		fenced: regexp.MustCompile("(?ms)^[ \t]*```.*?^[ \t]*```[^\n]*$"),
	}
}

// sanitizeContent removes fenced code blocks before checkbox parsing
// Prevents matching fake checkboxes in code examples
func (s *service) sanitizeContent(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return s.fenced.ReplaceAllString(content, "")
}

// Parse extracts all checkboxes from markdown
func (s *service) Parse(content string) []Entry {
	sanitized := s.sanitizeContent(content)

	matches := s.pattern.FindAllStringSubmatch(sanitized, -1)
	entries := make([]Entry, 0, len(matches))

	for i, match := range matches {
		if len(match) != 4 {
			continue
		}

		entry := Entry{
			Line:      i,
			Name:      strings.TrimSpace(match[3]),
			Purchased: strings.ToLower(match[2]) == "x",
			RawLine:   match[0],
		}
		if q := s.quantity.FindStringSubmatch(entry.Name); q != nil {
			if n, err := strconv.Atoi(q[2]); err == nil {
				entry.Name = strings.TrimSpace(q[1])
				entry.Quantity = n
			}
		}
		entries = append(entries, entry)
	}

	return entries
}

// GetStats calculates checklist statistics
func (s *service) GetStats(content string) ChecklistStats {
	entries := s.Parse(content)

	stats := ChecklistStats{Total: len(entries)}
	for _, e := range entries {
		if e.Purchased {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

// Render writes one checkbox per item, in the given order.
// Quantity 1 is left implicit unless the name itself ends like a quantity.
// Control characters in names are written as spaces so every item stays on one line.
func (s *service) Render(title string, items []model.ShoppingItem) string {
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, it := range items {
		box := CheckboxUnchecked
		if it.Purchased {
			box = CheckboxChecked
		}
		name := strings.Map(func(r rune) rune {
			if unicode.IsControl(r) {
				return ' '
			}
			return r
		}, it.Name)
		b.WriteString(box)
		b.WriteByte(' ')
		b.WriteString(name)
		if it.Quantity != 1 || s.quantity.MatchString(name) {
			fmt.Fprintf(&b, " x%d", it.Quantity)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
