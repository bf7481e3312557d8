package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/user"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/internet"
	"github.com/ghazalrb98/sep/modules/sponsorship/presentation/controllers/dtos"
	"github.com/ghazalrb98/sep/modules/sponsorship/presentation/mappers"
	"github.com/ghazalrb98/sep/modules/sponsorship/presentation/viewmodels"
	"github.com/ghazalrb98/sep/modules/sponsorship/services"
	"github.com/ghazalrb98/sep/pkg/application"
)

// AuthController serves the login picker and the login exchange. Both are
// reachable without a session.
type AuthController struct {
	app      application.Application
	auth     *services.AuthService
	basePath string
}

func NewAuthController(app application.Application) application.Controller {
	return &AuthController{
		app:      app,
		auth:     app.Service(services.AuthService{}).(*services.AuthService),
		basePath: "/sponsorship/api",
	}
}

func (c *AuthController) Key() string {
	return c.basePath + "/auth"
}

func (c *AuthController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/users", c.Users).Methods(http.MethodGet)
	router.HandleFunc("/login", c.Login).Methods(http.MethodPost)
}

func (c *AuthController) Users(w http.ResponseWriter, r *http.Request) {
	users, err := c.auth.Users(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	out := make([]*viewmodels.User, 0, len(users))
	for _, u := range users {
		out = append(out, mappers.UserToViewModel(u))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": out})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "SPONSORSHIP_INVALID_JSON", "invalid json")
		return
	}

	token, u, err := c.auth.Login(r.Context(), body.Email)
	if err != nil {
		if errors.Is(err, internet.ErrInvalidEmail) {
			writeAPIError(w, r, http.StatusUnprocessableEntity, "SPONSORSHIP_VALIDATION_FAILED", "enter a valid email")
			return
		}
		if errors.Is(err, user.ErrNotFound) {
			writeAPIError(w, r, http.StatusUnauthorized, "UNKNOWN_USER", "no account for this email")
			return
		}
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  mappers.UserToViewModel(u),
	})
}
