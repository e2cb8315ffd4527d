// Package report renders a scored assessment as human-readable text or
// a stable JSON document, and parses the answers files accepted by the
// non-interactive CLI path.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/riskcheck/internal/scoring"
)

// Meta identifies the assessment run a report belongs to.
type Meta struct {
	SessionID   string
	Org         string
	GeneratedAt time.Time
}

// Document is the JSON report shape. Field names are part of the
// output contract; changing them breaks downstream consumers.
type Document struct {
	SessionID       string         `json:"session_id"`
	Org             string         `json:"org,omitempty"`
	GeneratedAt     string         `json:"generated_at"`
	Overall         OverallDoc     `json:"overall"`
	Categories      []CategoryDoc  `json:"categories"`
	Recommendations []RecommendDoc `json:"recommendations,omitempty"`
	PriorityNote    string         `json:"priority_note,omitempty"`
}

// OverallDoc is the overall score block of the JSON report.
type OverallDoc struct {
	Score int    `json:"score"`
	Max   int    `json:"max"`
	Level string `json:"level"`
}

// CategoryDoc is one category row of the JSON report.
type CategoryDoc struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Max   int    `json:"max"`
	Level string `json:"level"`
}

// RecommendDoc is one recommendation entry of the JSON report.
type RecommendDoc struct {
	Title   string `json:"title"`
	Detail  string `json:"detail"`
	Sources string `json:"sources"`
}

// JSON renders the result as an indented JSON document.
func JSON(meta Meta, res *scoring.Result) ([]byte, error) {
	doc := Document{
		SessionID:   meta.SessionID,
		Org:         meta.Org,
		GeneratedAt: meta.GeneratedAt.UTC().Format(time.RFC3339),
		Overall: OverallDoc{
			Score: res.Overall,
			Max:   scoring.MaxOverall,
			Level: res.OverallLevel.DisplayName(),
		},
		PriorityNote: res.PriorityNote,
	}
	for _, cs := range res.Categories {
		doc.Categories = append(doc.Categories, CategoryDoc{
			ID:    string(cs.Category),
			Name:  cs.Name,
			Score: cs.Score,
			Max:   cs.Max,
			Level: cs.Level.DisplayName(),
		})
	}
	for _, rec := range res.Recommendations {
		doc.Recommendations = append(doc.Recommendations, RecommendDoc{
			Title:   rec.Title,
			Detail:  rec.Detail,
			Sources: rec.Sources,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// barWidth is the width of the ASCII score bars in the text report.
const barWidth = 20

// Text renders the result as a plain-text report.
func Text(meta Meta, res *scoring.Result) string {
	var b strings.Builder

	b.WriteString("AI Development Readiness Assessment\n")
	b.WriteString("====================================\n")
	if meta.Org != "" {
		fmt.Fprintf(&b, "Organization:  %s\n", meta.Org)
	}
	fmt.Fprintf(&b, "Session:       %s\n", meta.SessionID)
	fmt.Fprintf(&b, "Generated:     %s\n\n", meta.GeneratedAt.UTC().Format(time.RFC3339))

	fmt.Fprintf(&b, "Overall risk:  %s (%d/%d)\n\n", res.OverallLevel.DisplayName(), res.Overall, scoring.MaxOverall)

	b.WriteString("Categories\n----------\n")
	for _, cs := range res.Categories {
		filled := cs.Score * barWidth / cs.Max
		bar := strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled)
		fmt.Fprintf(&b, "%-14s [%s] %d/%d  %s\n", cs.Tenet, bar, cs.Score, cs.Max, cs.Level.DisplayName())
	}

	if len(res.Recommendations) > 0 {
		b.WriteString("\nRecommendations\n---------------\n")
		for i, rec := range res.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n   %s\n   Sources: %s\n", i+1, rec.Title, rec.Detail, rec.Sources)
		}
	}
	if res.PriorityNote != "" {
		fmt.Fprintf(&b, "\n%s\n", res.PriorityNote)
	}

	return b.String()
}
