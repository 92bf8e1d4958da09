package dto

type DomainInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type DomainsResponse struct {
	Domains []DomainInfo `json:"domains"`
}

type TopicsResponse struct {
	Domain string   `json:"domain"`
	Label  string   `json:"label"`
	Topics []string `json:"topics"`
}
