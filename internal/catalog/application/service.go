// Package application implements catalog discovery: search, trending,
// similar tools, and the smaller flag-gated browse helpers.
package application

import (
	"context"
	"log/slog"
	"math/rand"
	"sort"
	"strings"

	"github.com/creatorhub/creatorhub/internal/catalog/domain"
	featuresDomain "github.com/creatorhub/creatorhub/internal/features/domain"
	"github.com/creatorhub/creatorhub/internal/shared/infrastructure/eventbus"
)

// DefaultSimilarLimit caps the similar-tools result set.
const DefaultSimilarLimit = 5

// DefaultTrendingLimit caps the trending result set when the caller
// passes a non-positive limit.
const DefaultTrendingLimit = 10

// Event types published by the catalog.
const (
	EventSearchPerformed = "catalog.search_performed"
	EventToolViewed      = "catalog.tool_viewed"
)

// FlagChecker reports whether an optional capability is active.
type FlagChecker interface {
	IsEnabled(id string) bool
}

// QueryExpander turns a free-text query into search keywords. The
// assistant-backed implementation lives in the generator package.
type QueryExpander interface {
	ExpandQuery(ctx context.Context, query string) ([]string, error)
}

// Service answers catalog queries. Discovery operations check their
// feature flag and fall back to plain behavior (or empty results)
// when the flag is off.
type Service struct {
	tools    domain.ToolRepository
	flags    FlagChecker
	expander QueryExpander
	events   eventbus.Publisher
	logger   *slog.Logger
}

// NewService creates the catalog service. expander may be nil, in
// which case search never attempts query expansion.
func NewService(tools domain.ToolRepository, flags FlagChecker, expander QueryExpander, events eventbus.Publisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if events == nil {
		events = eventbus.NoopPublisher{}
	}
	return &Service{tools: tools, flags: flags, expander: expander, events: events, logger: logger}
}

// Get returns the tool by id, or nil when it does not exist.
func (s *Service) Get(ctx context.Context, id string) (*domain.Tool, error) {
	return s.tools.Get(ctx, id)
}

// Search finds tools matching the query. With the assisted-search flag
// on and an expander configured, the query is first expanded into
// keywords; expansion failures fall back to the plain substring match
// over name, company, description, and category.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Tool, error) {
	terms := []string{query}
	if s.flags.IsEnabled(featuresDomain.FeatureAISearch) && s.expander != nil {
		keywords, err := s.expander.ExpandQuery(ctx, query)
		if err != nil {
			s.logger.Warn("query expansion failed, using plain search", "query", query, "error", err)
		} else if len(keywords) > 0 {
			terms = keywords
		}
	}

	tools, err := s.tools.List(ctx)
	if err != nil {
		return nil, err
	}

	var matched []domain.Tool
	for _, tool := range tools {
		if matchesAny(tool, terms) {
			matched = append(matched, tool)
		}
	}

	s.publish(ctx, eventbus.NewEvent(EventSearchPerformed, "", map[string]any{
		"query":   query,
		"results": len(matched),
	}))
	return matched, nil
}

// Trending returns the most-viewed tools, highest first.
func (s *Service) Trending(ctx context.Context, limit int) ([]domain.Tool, error) {
	if !s.flags.IsEnabled(featuresDomain.FeatureTrendingTools) {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	tools, err := s.tools.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tools, func(i, j int) bool {
		return tools[i].Views > tools[j].Views
	})
	if len(tools) > limit {
		tools = tools[:limit]
	}
	return tools, nil
}

// SimilarTools returns other tools in the same category as the given
// tool, capped at DefaultSimilarLimit.
func (s *Service) SimilarTools(ctx context.Context, toolID string) ([]domain.Tool, error) {
	if !s.flags.IsEnabled(featuresDomain.FeatureSimilarTools) {
		return nil, nil
	}

	tool, err := s.tools.Get(ctx, toolID)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, nil
	}

	peers, err := s.tools.ListByCategory(ctx, tool.Category)
	if err != nil {
		return nil, err
	}

	similar := make([]domain.Tool, 0, DefaultSimilarLimit)
	for _, peer := range peers {
		if peer.ID == toolID {
			continue
		}
		similar = append(similar, peer)
		if len(similar) == DefaultSimilarLimit {
			break
		}
	}
	return similar, nil
}

// SurpriseMe returns a random tool, or nil when the catalog is empty.
func (s *Service) SurpriseMe(ctx context.Context) (*domain.Tool, error) {
	if !s.flags.IsEnabled(featuresDomain.FeatureSurpriseMe) {
		return nil, nil
	}

	tools, err := s.tools.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(tools) == 0 {
		return nil, nil
	}

	pick := tools[rand.Intn(len(tools))]
	return &pick, nil
}

// PopularSearches returns the curated list of popular search terms.
func (s *Service) PopularSearches() []string {
	if !s.flags.IsEnabled(featuresDomain.FeaturePopularSearches) {
		return nil
	}
	return []string{
		"Video Editing", "Copywriting", "Logo Design",
		"SEO", "Coding Assistant", "Voice Cloning", "Avatar",
	}
}

// RelatedCategories returns categories adjacent to the given one.
func (s *Service) RelatedCategories(category string) []string {
	if !s.flags.IsEnabled(featuresDomain.FeatureRelatedCategories) {
		return nil
	}
	return relatedCategories[category]
}

// RecordView bumps the tool's view counter and emits an analytics
// event. The event is best-effort; counter failures are returned.
func (s *Service) RecordView(ctx context.Context, toolID string) error {
	if err := s.tools.IncrementViews(ctx, toolID); err != nil {
		return err
	}
	s.publish(ctx, eventbus.NewEvent(EventToolViewed, "", map[string]any{
		"tool_id": toolID,
	}))
	return nil
}

func (s *Service) publish(ctx context.Context, event eventbus.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish catalog event", "type", event.Type, "error", err)
	}
}

func matchesAny(tool domain.Tool, terms []string) bool {
	haystack := strings.ToLower(strings.Join([]string{
		tool.Name, tool.Company, tool.Description, tool.Category,
	}, "\n"))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" && strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

var relatedCategories = map[string][]string{
	"Text & Writing": {"Marketing", "SEO", "Email Assistant"},
	"Image & Design": {"Video Editing", "Logo Design", "3D Modeling"},
	"Video":          {"Audio & Speech", "Animation", "Avatars"},
	"Marketing":      {"Social Media", "Copywriting", "Analytics"},
	"Coding":         {"Productivity", "Startup Tools", "No-Code"},
}
