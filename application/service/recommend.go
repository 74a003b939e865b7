package service

import (
	"encoding/json"
	"strings"

	"github.com/clerkd/clerkd/domain/assist"
)

// recommendationOutput is the JSON shape the recommendation prompt asks for.
type recommendationOutput struct {
	Recommendations []struct {
		ProductID string  `json:"product_id"`
		Reason    string  `json:"recommendation_reason"`
		Score     float64 `json:"confidence_score"`
	} `json:"recommendations"`
	Explanation string `json:"explanation"`
}

// parseRecommendation extracts the JSON object from model output. Text with
// no parseable object degrades to an explanation-only recommendation rather
// than an error.
func parseRecommendation(text string) assist.Recommendation {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return assist.NewRecommendation(nil, strings.TrimSpace(text))
	}

	var out recommendationOutput
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return assist.NewRecommendation(nil, strings.TrimSpace(text))
	}

	items := make([]assist.RecommendedItem, 0, len(out.Recommendations))
	for _, r := range out.Recommendations {
		if r.ProductID == "" {
			continue
		}
		items = append(items, assist.NewRecommendedItem(r.ProductID, r.Reason, r.Score))
	}

	explanation := out.Explanation
	if explanation == "" {
		explanation = strings.TrimSpace(text)
	}

	return assist.NewRecommendation(items, explanation)
}
