// Package assist holds the query gateway's domain types.
package assist

// Answer is the result of an answered catalog question.
type Answer struct {
	query  string
	answer string
}

// NewAnswer creates an Answer echoing the original query.
func NewAnswer(query, answer string) Answer {
	return Answer{query: query, answer: answer}
}

// Query returns the original user question.
func (a Answer) Query() string { return a.query }

// Text returns the generated answer text.
func (a Answer) Text() string { return a.answer }

// RecommendationRequest describes what the customer is looking for.
// All fields are optional; an empty request asks for general picks.
type RecommendationRequest struct {
	preferences string
	category    string
	budgetMax   int
}

// NewRecommendationRequest creates a RecommendationRequest.
// A budgetMax of zero means no budget cap.
func NewRecommendationRequest(preferences, category string, budgetMax int) RecommendationRequest {
	return RecommendationRequest{
		preferences: preferences,
		category:    category,
		budgetMax:   budgetMax,
	}
}

// Preferences returns the free-text customer preferences.
func (r RecommendationRequest) Preferences() string { return r.preferences }

// Category returns the requested category, if any.
func (r RecommendationRequest) Category() string { return r.category }

// BudgetMax returns the budget cap, or zero when uncapped.
func (r RecommendationRequest) BudgetMax() int { return r.budgetMax }

// RecommendedItem is a single model-suggested product.
type RecommendedItem struct {
	productID  string
	reason     string
	confidence float64
}

// NewRecommendedItem creates a RecommendedItem.
func NewRecommendedItem(productID, reason string, confidence float64) RecommendedItem {
	return RecommendedItem{productID: productID, reason: reason, confidence: confidence}
}

// ProductID returns the suggested product's id.
func (r RecommendedItem) ProductID() string { return r.productID }

// Reason returns why the model suggested the product.
func (r RecommendedItem) Reason() string { return r.reason }

// Confidence returns the model's self-reported confidence score.
func (r RecommendedItem) Confidence() float64 { return r.confidence }

// Recommendation is the parsed recommendation result.
type Recommendation struct {
	items       []RecommendedItem
	explanation string
}

// NewRecommendation creates a Recommendation.
func NewRecommendation(items []RecommendedItem, explanation string) Recommendation {
	return Recommendation{items: items, explanation: explanation}
}

// Items returns the suggested products, possibly empty.
func (r Recommendation) Items() []RecommendedItem { return r.items }

// Explanation returns the model's overall explanation.
func (r Recommendation) Explanation() string { return r.explanation }
