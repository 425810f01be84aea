package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/opsdesk/finassist-cli/internal/core/domain"
	"github.com/opsdesk/finassist-cli/internal/core/ports/driven"
	"github.com/opsdesk/finassist-cli/internal/core/ports/driving"
	"github.com/opsdesk/finassist-cli/internal/logger"
)

// Ensure AssistantService implements the interface.
var _ driving.AssistantService = (*AssistantService)(nil)

// Default result sizes, matching the upstream assistant's behaviour.
const (
	defaultSourceLimit = 10
	defaultMaxSteps    = 8

	// minStatisticalSteps is the threshold below which the curated
	// template library is consulted as a fallback.
	minStatisticalSteps = 3
)

// AssistantService evaluates queries against the loaded manual corpus.
// It holds no per-query state: every intermediate value lives in the
// call, so concurrent Answer calls against one immutable snapshot are
// safe.
type AssistantService struct {
	corpusStore   driven.CorpusStore
	templateStore driven.TemplateStore
	configStore   driven.ConfigStore
}

// NewAssistantService creates a new assistant service.
// The templateStore and configStore parameters are optional (can be nil).
func NewAssistantService(
	corpusStore driven.CorpusStore,
	templateStore driven.TemplateStore,
	configStore driven.ConfigStore,
) *AssistantService {
	return &AssistantService{
		corpusStore:   corpusStore,
		templateStore: templateStore,
		configStore:   configStore,
	}
}

// Answer evaluates one query to completion.
func (s *AssistantService) Answer(ctx context.Context, query string, opts domain.AnswerOptions) (*domain.Answer, error) {
	logger.Section("Answer Evaluation")
	logger.Debug("Query: %q", query)

	corpus, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSourceLimit
	}
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}

	tokens := Tokenize(query)
	hints := DeriveHints(tokens)
	intent := ClassifyIntent(query)
	logger.Debug("Tokens: %v", tokens)
	logger.Info("Intent: %s", intent)

	// Empty or garbage queries produce no tokens; that is a valid
	// "no match" answer, not an error.
	if len(tokens) == 0 {
		logger.Debug("No usable tokens, returning empty answer")
		return &domain.Answer{Intent: intent}, nil
	}

	// Fixed enquiry routes bypass the statistical pipeline.
	if card, fired, routeErr := RouteEnquiry(query, hints, corpus, s.configStore); fired {
		if routeErr != nil {
			logger.Warn("Enquiry route fired but no reference booklet found")
			return nil, routeErr
		}
		logger.Info("Fixed enquiry route: %s", card.MenuCode)
		return &domain.Answer{Intent: intent, Enquiry: card}, nil
	}

	ranked := s.topSources(corpus, tokens, hints, intent, limit)
	logger.Debug("Ranked sources: %d", len(ranked))
	for i, c := range ranked {
		logger.Debug("  [%d] chunk %s -> %s (page %d)", i+1, c.ID, c.Document, c.Page)
	}

	menus := ExtractMenuCodes(ranked, tokens)
	steps := ExtractSteps(query, ranked, maxSteps, intent)
	logger.Debug("Menus: %d, steps: %d", len(menus), len(steps))

	answer := &domain.Answer{
		MenuCandidates: menus,
		Steps:          steps,
		Sources:        make([]domain.SourceRef, 0, len(ranked)),
		Intent:         intent,
	}
	for _, c := range ranked {
		answer.Sources = append(answer.Sources, domain.SourceRef{
			Document: c.Document,
			Page:     c.Page,
			Text:     c.Text,
		})
	}

	if len(steps) < minStatisticalSteps {
		answer.Fallback = s.fallbackTemplate(ctx, query)
	}

	return answer, nil
}

// Library lists loaded manuals, filtered by a case-insensitive name
// substring and sorted by name.
func (s *AssistantService) Library(ctx context.Context, filter string) ([]domain.DocumentMeta, error) {
	corpus, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	f := strings.ToLower(strings.TrimSpace(filter))
	out := make([]domain.DocumentMeta, 0, len(corpus.Documents))
	for _, m := range corpus.Documents {
		if f == "" || strings.Contains(strings.ToLower(m.Document), f) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Document < out[j].Document
	})
	return out, nil
}

// snapshot fetches the corpus and translates "nothing loaded" into the
// retryable not-ready signal.
func (s *AssistantService) snapshot(ctx context.Context) (*domain.Corpus, error) {
	if s.corpusStore == nil {
		return nil, domain.ErrCorpusNotReady
	}
	corpus, err := s.corpusStore.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("corpus snapshot: %w", err)
	}
	if corpus.Empty() {
		return nil, domain.ErrCorpusNotReady
	}
	return corpus, nil
}

// topSources scans the corpus and returns the ranked, deduplicated
// source chunks for the query. Filter first, base score, topic boosts,
// intent penalty, then rank.
func (s *AssistantService) topSources(corpus *domain.Corpus, tokens []string, hints domain.TopicHints, intent domain.Intent, limit int) []domain.Chunk {
	scored := make([]ScoredChunk, 0, 64)
	for _, c := range corpus.Chunks {
		if !DocumentAdmissible(c.Document, hints) {
			continue
		}

		score := ScoreChunk(tokens, c.Text, c.Document)
		if score <= 0 {
			continue
		}

		score += topicBoost(hints, c.Document, c.Text)
		score += intentPenalty(intent, c.Text)

		scored = append(scored, ScoredChunk{Chunk: c, Score: score})
	}
	return RankUnique(scored, limit)
}

// fallbackTemplate consults the curated library when statistical step
// extraction came up short. No library or no match is fine.
func (s *AssistantService) fallbackTemplate(ctx context.Context, query string) *domain.TemplateEntry {
	if s.templateStore == nil {
		return nil
	}
	items, err := s.templateStore.Templates(ctx)
	if err != nil {
		logger.Warn("Template library unavailable: %v", err)
		return nil
	}
	tpl := MatchTemplate(query, items)
	if tpl != nil {
		logger.Info("Template fallback: %s", tpl.TitleSecondary)
	}
	return tpl
}
