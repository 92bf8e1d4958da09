package service

import (
	"os"
	"path/filepath"
	"testing"

	"mockmate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSplitTopicDocument(t *testing.T) {
	content := "# Title\nintro text\n\n## Data Structures\n- arrays\n- trees\n\n## Algorithms\n- sorting\n"
	sections := splitTopicDocument(content, "software_engineering")

	require.Len(t, sections, 2)
	assert.Equal(t, "Data Structures", sections[0].Name)
	assert.Equal(t, "Algorithms", sections[1].Name)

	// Body carries the domain/section header plus the heading line itself.
	assert.Contains(t, sections[0].Body, "Domain: software_engineering\nSection: Data Structures\n")
	assert.Contains(t, sections[0].Body, "## Data Structures")
	assert.Contains(t, sections[0].Body, "- arrays")
	assert.NotContains(t, sections[0].Body, "intro text")
}

func TestSplitTopicDocument_PreambleOnly(t *testing.T) {
	sections := splitTopicDocument("# Title\njust a preamble, no headings\n", "robotics")
	assert.Empty(t, sections)
}

func TestSplitTopicDocument_EmptySectionSkipped(t *testing.T) {
	content := "## Empty\n\n## Full\n- content\n"
	sections := splitTopicDocument(content, "robotics")

	// The heading line itself keeps a section non-empty.
	require.Len(t, sections, 2)
	assert.Equal(t, "Empty", sections[0].Name)
	assert.Equal(t, "Full", sections[1].Name)
}

func TestNewKnowledgeService_MissingDomainSkipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, models.DomainRobotics)
	require.NoError(t, os.MkdirAll(path, 0o755))
	doc := "# Robotics\n\n## Kinematics\n- forward and inverse\n"
	require.NoError(t, os.WriteFile(filepath.Join(path, "topics.md"), []byte(doc), 0o644))

	svc := NewKnowledgeService(dir, zap.NewNop())

	sections, ok := svc.Sections(models.DomainRobotics)
	require.True(t, ok)
	assert.Len(t, sections, 1)

	_, ok = svc.Sections(models.DomainDataScience)
	assert.False(t, ok)
}
