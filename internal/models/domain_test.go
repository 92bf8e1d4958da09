package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain(t *testing.T) {
	assert.Equal(t, DomainSoftwareEngineering, NormalizeDomain("software_engineering"))
	assert.Equal(t, DomainSoftwareEngineering, NormalizeDomain("Software Engineering"))
	assert.Equal(t, DomainAIML, NormalizeDomain("AI/ML"))
	assert.Equal(t, DomainHardwareECE, NormalizeDomain(" Hardware/ECE "))
	assert.Equal(t, DomainRobotics, NormalizeDomain("Robotics"))

	// Unknown values pass through trimmed.
	assert.Equal(t, "basket weaving", NormalizeDomain(" basket weaving "))
}

func TestDomainsAndLabels(t *testing.T) {
	domains := Domains()
	labels := DomainLabels()
	assert.Len(t, domains, 5)
	assert.Len(t, labels, 5)
	assert.Equal(t, DomainSoftwareEngineering, domains[0])
	assert.Equal(t, "Software Engineering", labels[0])

	assert.Equal(t, "AI/ML", DomainLabel(DomainAIML))
	assert.Equal(t, "mystery", DomainLabel("mystery"))

	assert.True(t, KnownDomain(DomainRobotics))
	assert.False(t, KnownDomain("Robotics"))
}
