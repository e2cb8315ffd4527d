package scoring

import (
	"sort"

	"github.com/abhisek/riskcheck/internal/catalog"
)

// Recommendation is a pre-authored guidance entry surfaced when the
// overall classification is medium or high.
type Recommendation struct {
	ID       string
	Category catalog.CategoryID // empty for the general entry
	Title    string
	Detail   string
	Sources  string
}

// MaxRecommendations caps the number of entries a result can carry.
const MaxRecommendations = 5

// recommendationCatalog holds one entry per category plus a general
// entry, in catalog order. Text and source citations come from the
// published assessment guidance.
var recommendationCatalog = []Recommendation{
	{
		ID:       "governance-framework",
		Category: catalog.CategoryGovernance,
		Title:    "Implement AI Governance Framework",
		Detail:   "Establish formal review processes for AI model selection and prompt engineering decisions. Create an AI steering committee with representatives from development, security, and compliance teams to approve AI integrations before production deployment.",
		Sources:  "Aligned with NIST AI RMF GOVERN function and EU AI Act Article 16 (Quality Management System)",
	},
	{
		ID:       "security-controls",
		Category: catalog.CategoryTechnical,
		Title:    "Enhance Security Controls",
		Detail:   "Implement comprehensive API security measures including regular key rotation, encrypted communications, and detailed access logging. Deploy input validation and prompt sanitization to prevent injection attacks, and establish secure storage for prompt templates and AI configurations.",
		Sources:  "Based on NIST AI RMF MANAGE function and EU AI Act Article 15 (Accuracy, Robustness and Cybersecurity)",
	},
	{
		ID:       "testing-protocols",
		Category: catalog.CategoryOperational,
		Title:    "Establish AI-Specific Testing and Incident Response Protocols",
		Detail:   "Create multi-stage validation processes for AI-generated code including automated security scans and mandatory human review, and pair them with formal incident response procedures covering model failures, prompt injection attempts, and rollback capabilities.",
		Sources:  "Supports NIST AI RMF MEASURE function and EU AI Act Articles 14 (Human Oversight) and 62 (Reporting of Serious Incidents)",
	},
	{
		ID:       "privacy-protection",
		Category: catalog.CategoryPrivacy,
		Title:    "Implement Data Privacy and IP Protection",
		Detail:   "Deploy comprehensive data protection measures including PII detection and anonymization tools, IP scanning for AI-generated code, and strict data handling agreements with AI service providers. Establish clear policies for handling sensitive information in AI workflows.",
		Sources:  "Complies with NIST AI RMF GOVERN-1.6 (Privacy) and EU AI Act Article 10 (Data and Data Governance)",
	},
	{
		ID:      "documentation-transparency",
		Title:   "Improve Documentation and Transparency",
		Detail:  "Maintain comprehensive documentation of all AI models used, including versions, known limitations, and contribution tracking in code repositories. Establish regular third-party assessments and clear disclosure policies for stakeholders about AI usage in your development process.",
		Sources: "Addresses NIST AI RMF MAP function and EU AI Act Article 11 (Technical Documentation)",
	},
}

// selectRecommendations picks the entries for a result. A low overall
// classification gets none. Otherwise the category-keyed entries for
// every category not classified low are included, ordered by that
// category's score descending (catalog order breaks ties), followed by
// the general entry, capped at MaxRecommendations.
func selectRecommendations(overall RiskLevel, cats []CategoryScore) []Recommendation {
	if overall == LevelLow {
		return nil
	}

	scoreByCategory := make(map[catalog.CategoryID]int, len(cats))
	flagged := make(map[catalog.CategoryID]bool, len(cats))
	for _, cs := range cats {
		scoreByCategory[cs.Category] = cs.Score
		if cs.Level != LevelLow {
			flagged[cs.Category] = true
		}
	}

	var picked []Recommendation
	var general []Recommendation
	for _, rec := range recommendationCatalog {
		if rec.Category == "" {
			general = append(general, rec)
			continue
		}
		if flagged[rec.Category] {
			picked = append(picked, rec)
		}
	}

	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(picked, func(i, j int) bool {
		return scoreByCategory[picked[i].Category] > scoreByCategory[picked[j].Category]
	})

	picked = append(picked, general...)
	if len(picked) > MaxRecommendations {
		picked = picked[:MaxRecommendations]
	}
	return picked
}

// priorityNote returns the fixed guidance line shown under the
// recommendation list.
func priorityNote(overall RiskLevel) string {
	switch overall {
	case LevelHigh:
		return "High risk: address the top recommendations immediately. They target the categories where gaps are most likely to cause significant incidents."
	case LevelMedium:
		return "Medium risk: start with the first recommendation to establish foundational controls, then work through the rest over the next quarter."
	default:
		return ""
	}
}
