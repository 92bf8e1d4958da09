package models

import "strings"

// Canonical domain identifiers. Every layer works with these; human-readable
// labels only appear at the API boundary.
const (
	DomainSoftwareEngineering = "software_engineering"
	DomainDataScience         = "data_science"
	DomainAIML                = "ai_ml"
	DomainHardwareECE         = "hardware_ece"
	DomainRobotics            = "robotics"
)

var domainOrder = []string{
	DomainSoftwareEngineering,
	DomainDataScience,
	DomainAIML,
	DomainHardwareECE,
	DomainRobotics,
}

var domainLabels = map[string]string{
	DomainSoftwareEngineering: "Software Engineering",
	DomainDataScience:         "Data Science",
	DomainAIML:                "AI/ML",
	DomainHardwareECE:         "Hardware/ECE",
	DomainRobotics:            "Robotics",
}

// Domains returns the canonical identifiers of all supported practice areas.
func Domains() []string {
	out := make([]string, len(domainOrder))
	copy(out, domainOrder)
	return out
}

// DomainLabels returns the human-readable labels in the same order as Domains.
func DomainLabels() []string {
	out := make([]string, 0, len(domainOrder))
	for _, id := range domainOrder {
		out = append(out, domainLabels[id])
	}
	return out
}

// NormalizeDomain maps either form of a domain name ("Software Engineering",
// "software_engineering") to the canonical identifier. Unknown values pass
// through unchanged so downstream fallbacks can still interpolate them.
func NormalizeDomain(domain string) string {
	trimmed := strings.TrimSpace(domain)
	if _, ok := domainLabels[trimmed]; ok {
		return trimmed
	}

	lowered := strings.ToLower(trimmed)
	lowered = strings.ReplaceAll(lowered, "/", "_")
	lowered = strings.ReplaceAll(lowered, " ", "_")
	if _, ok := domainLabels[lowered]; ok {
		return lowered
	}

	return trimmed
}

// DomainLabel returns the display label for a canonical identifier.
func DomainLabel(domain string) string {
	if label, ok := domainLabels[domain]; ok {
		return label
	}
	return domain
}

// KnownDomain reports whether the identifier names a supported practice area.
func KnownDomain(domain string) bool {
	_, ok := domainLabels[domain]
	return ok
}
