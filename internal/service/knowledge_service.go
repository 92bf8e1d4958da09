package service

import (
	"os"
	"path/filepath"
	"strings"

	"mockmate/internal/models"

	"go.uber.org/zap"
)

// KnowledgeService owns the in-memory knowledge base: one topic document per
// domain, split into heading-delimited sections at load time. The map is
// built once and never written afterwards, so concurrent reads need no
// locking.
type KnowledgeService struct {
	kb     map[string][]models.Section
	logger *zap.Logger
}

// NewKnowledgeService loads <dir>/<domain>/topics.md for every known domain.
// Domains without a topic document are omitted from the knowledge base, not
// treated as errors.
func NewKnowledgeService(dir string, logger *zap.Logger) *KnowledgeService {
	s := &KnowledgeService{
		kb:     make(map[string][]models.Section),
		logger: logger,
	}

	for _, domain := range models.Domains() {
		path := filepath.Join(dir, domain, "topics.md")
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("Could not load topics for domain",
				zap.String("domain", domain),
				zap.Error(err),
			)
			continue
		}
		s.kb[domain] = splitTopicDocument(string(raw), domain)
		logger.Info("Loaded domain", zap.String("domain", domain),
			zap.Int("sections", len(s.kb[domain])))
	}

	logger.Info("Knowledge base loaded", zap.Int("domains", len(s.kb)))
	return s
}

// NewKnowledgeServiceFromSections builds a knowledge service over a
// pre-split knowledge base. Used by tests to avoid filesystem fixtures.
func NewKnowledgeServiceFromSections(kb map[string][]models.Section, logger *zap.Logger) *KnowledgeService {
	return &KnowledgeService{kb: kb, logger: logger}
}

// KnowledgeBase exposes the loaded sections keyed by domain. Callers must
// treat the result as read-only.
func (s *KnowledgeService) KnowledgeBase() map[string][]models.Section {
	return s.kb
}

// Sections returns the sections for a domain and whether the domain was
// loaded at all.
func (s *KnowledgeService) Sections(domain string) ([]models.Section, bool) {
	sections, ok := s.kb[domain]
	return sections, ok
}

// splitTopicDocument splits markdown on level-2 headings. Each section body
// is prefixed with a domain/section header and keeps its own heading line;
// text before the first heading is dropped.
func splitTopicDocument(content, domain string) []models.Section {
	var sections []models.Section
	var current strings.Builder
	heading := ""
	started := false

	flush := func() {
		if !started {
			return
		}
		body := strings.TrimSpace(current.String())
		if body == "" {
			return
		}
		sections = append(sections, models.Section{
			Name: heading,
			Body: "Domain: " + domain + "\nSection: " + heading + "\n" + body,
		})
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "## ") {
			flush()
			heading = strings.TrimSpace(line[3:])
			started = true
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	flush()

	return sections
}
