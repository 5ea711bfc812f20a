package generator

import (
	"context"
	"log/slog"
	"strings"
)

// StaticExpander expands queries without the assistant: the query is
// split into words and widened with a small synonym table.
type StaticExpander struct{}

// ExpandQuery splits the query into keywords and appends synonyms.
func (StaticExpander) ExpandQuery(ctx context.Context, query string) ([]string, error) {
	words := strings.Fields(strings.ToLower(query))
	seen := make(map[string]struct{}, len(words))
	var keywords []string

	add := func(word string) {
		if _, ok := seen[word]; ok {
			return
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}

	for _, word := range words {
		add(word)
		for _, synonym := range synonyms[word] {
			add(synonym)
		}
	}
	return keywords, nil
}

var synonyms = map[string][]string{
	"write":   {"writing", "copywriting"},
	"writing": {"copywriting"},
	"video":   {"editing", "animation"},
	"image":   {"design", "logo"},
	"code":    {"coding", "programming"},
	"coding":  {"programming"},
	"voice":   {"audio", "speech"},
	"seo":     {"marketing"},
}

// Fallback tries the primary expander and falls back to the static
// one when it fails.
type Fallback struct {
	primary  Expander
	fallback Expander
	logger   *slog.Logger
}

// NewFallback wraps primary with a static fallback.
func NewFallback(primary Expander, logger *slog.Logger) *Fallback {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fallback{primary: primary, fallback: StaticExpander{}, logger: logger}
}

// ExpandQuery delegates to the primary expander, switching to the
// fallback on any error.
func (f *Fallback) ExpandQuery(ctx context.Context, query string) ([]string, error) {
	keywords, err := f.primary.ExpandQuery(ctx, query)
	if err == nil {
		return keywords, nil
	}
	f.logger.Warn("assistant expansion failed, using static expander", "error", err)
	return f.fallback.ExpandQuery(ctx, query)
}

var (
	_ Expander = StaticExpander{}
	_ Expander = (*Fallback)(nil)
)
