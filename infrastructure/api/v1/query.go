package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clerkd/clerkd/application/service"
	"github.com/clerkd/clerkd/domain/assist"
	"github.com/clerkd/clerkd/infrastructure/api/middleware"
	"github.com/clerkd/clerkd/internal/domain"
)

// QueryRouter serves the gateway's inference-backed endpoints.
type QueryRouter struct {
	assist *service.AssistService
	logger *slog.Logger
}

// NewQueryRouter creates a QueryRouter backed by the assist service.
func NewQueryRouter(assist *service.AssistService, logger *slog.Logger) *QueryRouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryRouter{assist: assist, logger: logger}
}

// Routes returns the chi router for gateway endpoints.
func (rt *QueryRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/query", rt.Query)
	router.Post("/recommendations", rt.Recommend)

	return router
}

// answerResponse is the JSON wire form of an answered query.
type answerResponse struct {
	Query  string `json:"query"`
	Answer string `json:"answer"`
}

// Query handles GET /query.
func (rt *QueryRouter) Query(w http.ResponseWriter, r *http.Request) {
	answer, err := rt.assist.Answer(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		middleware.WriteError(w, r, err, rt.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, answerResponse{
		Query:  answer.Query(),
		Answer: answer.Text(),
	})
}

// recommendationRequest is the JSON wire form of a recommendation ask.
type recommendationRequest struct {
	Preferences string `json:"preferences"`
	Category    string `json:"category"`
	BudgetMax   int    `json:"budget_max"`
}

type recommendedItemResponse struct {
	ProductID  string  `json:"product_id"`
	Reason     string  `json:"recommendation_reason"`
	Confidence float64 `json:"confidence_score"`
}

type recommendationResponse struct {
	Recommendations []recommendedItemResponse `json:"recommendations"`
	Explanation     string                    `json:"explanation"`
}

// Recommend handles POST /recommendations.
func (rt *QueryRouter) Recommend(w http.ResponseWriter, r *http.Request) {
	var body recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		middleware.WriteError(w, r,
			fmt.Errorf("%w: request body is not valid JSON", domain.ErrValidation), rt.logger)
		return
	}

	req := assist.NewRecommendationRequest(body.Preferences, body.Category, body.BudgetMax)
	rec, err := rt.assist.Recommend(r.Context(), req)
	if err != nil {
		middleware.WriteError(w, r, err, rt.logger)
		return
	}

	items := make([]recommendedItemResponse, len(rec.Items()))
	for i, item := range rec.Items() {
		items[i] = recommendedItemResponse{
			ProductID:  item.ProductID(),
			Reason:     item.Reason(),
			Confidence: item.Confidence(),
		}
	}

	middleware.WriteJSON(w, http.StatusOK, recommendationResponse{
		Recommendations: items,
		Explanation:     rec.Explanation(),
	})
}
