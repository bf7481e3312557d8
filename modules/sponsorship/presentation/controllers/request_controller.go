package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/request"
	"github.com/ghazalrb98/sep/modules/sponsorship/presentation/controllers/dtos"
	"github.com/ghazalrb98/sep/modules/sponsorship/presentation/mappers"
	"github.com/ghazalrb98/sep/modules/sponsorship/presentation/viewmodels"
	"github.com/ghazalrb98/sep/modules/sponsorship/services"
	"github.com/ghazalrb98/sep/pkg/application"
	"github.com/ghazalrb98/sep/pkg/middleware"
)

// RequestController is the authenticated sponsorship request API: listing,
// creation, editing, review decisions and budget approval.
type RequestController struct {
	app           application.Application
	requests      *services.RequestService
	reviews       *services.ReviewService
	budgets       *services.BudgetService
	authenticator middleware.Authenticator
	basePath      string
}

func NewRequestController(app application.Application, authenticator middleware.Authenticator) application.Controller {
	return &RequestController{
		app:           app,
		requests:      app.Service(services.RequestService{}).(*services.RequestService),
		reviews:       app.Service(services.ReviewService{}).(*services.ReviewService),
		budgets:       app.Service(services.BudgetService{}).(*services.BudgetService),
		authenticator: authenticator,
		basePath:      "/sponsorship/api",
	}
}

func (c *RequestController) Key() string {
	return c.basePath + "/requests"
}

func (c *RequestController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(
		middleware.Authorize(c.authenticator),
		middleware.RequireAuthorization(),
	)

	router.HandleFunc("/requests", c.List).Methods(http.MethodGet)
	router.HandleFunc("/requests", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/requests/{id}", c.Detail).Methods(http.MethodGet)
	router.HandleFunc("/requests/{id}", c.Edit).Methods(http.MethodPut)
	router.HandleFunc("/requests/{id}/budget", c.SetBudget).Methods(http.MethodPut)
	router.HandleFunc("/requests/{id}/approve", c.Approve).Methods(http.MethodPost)
	router.HandleFunc("/requests/{id}/reject", c.Reject).Methods(http.MethodPost)
}

func (c *RequestController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.requests.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	out := make([]*viewmodels.RequestListItem, 0, len(items))
	for _, item := range items {
		out = append(out, mappers.RequestToListItem(item))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": out})
}

func (c *RequestController) Create(w http.ResponseWriter, r *http.Request) {
	var dto request.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "SPONSORSHIP_INVALID_JSON", "invalid json")
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "SPONSORSHIP_VALIDATION_FAILED", firstValidationMessage(errs))
		return
	}

	created, err := c.requests.Create(r.Context(), &dto)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mappers.RequestToDetail(created, ""))
}

func (c *RequestController) Detail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	item, err := c.requests.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	comment, err := c.reviews.Comment(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.RequestToDetail(item, comment))
}

func (c *RequestController) Edit(w http.ResponseWriter, r *http.Request) {
	var dto request.UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "SPONSORSHIP_INVALID_JSON", "invalid json")
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "SPONSORSHIP_VALIDATION_FAILED", firstValidationMessage(errs))
		return
	}

	updated, err := c.requests.Edit(r.Context(), mux.Vars(r)["id"], &dto)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.RequestToDetail(updated, ""))
}

func (c *RequestController) SetBudget(w http.ResponseWriter, r *http.Request) {
	var dto request.SetBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "SPONSORSHIP_INVALID_JSON", "invalid json")
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "SPONSORSHIP_VALIDATION_FAILED", firstValidationMessage(errs))
		return
	}

	updated, err := c.budgets.SetApprovedBudget(r.Context(), mux.Vars(r)["id"], dto.Amount)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.RequestToDetail(updated, ""))
}

func (c *RequestController) Approve(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, c.reviews.Approve)
}

func (c *RequestController) Reject(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, c.reviews.Reject)
}

func (c *RequestController) decide(
	w http.ResponseWriter,
	r *http.Request,
	decide func(ctx context.Context, id, comment string) (request.Request, error),
) {
	var body dtos.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "SPONSORSHIP_INVALID_JSON", "invalid json")
		return
	}

	id := mux.Vars(r)["id"]
	updated, err := decide(r.Context(), id, body.Comment)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	comment, err := c.reviews.Comment(r.Context(), id)
	if err != nil {
		comment = body.Comment
	}
	writeJSON(w, http.StatusOK, mappers.RequestToDetail(updated, comment))
}
