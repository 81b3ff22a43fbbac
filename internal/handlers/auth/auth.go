package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/dto"
	"github.com/GlebRadaev/fuelfleet/internal/handlers/apierr"
	pkgauth "github.com/GlebRadaev/fuelfleet/pkg/auth"
	"github.com/GlebRadaev/fuelfleet/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	Register(ctx context.Context, name, login, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
	GenerateToken(userID string) (string, error)
	ValidateToken(token string) (*pkgauth.Claims, error)

	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account and return its token in the Authorization header
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		422		{object}	utils.Response	"Invalid credentials format"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	user, err := h.authService.Register(r.Context(), req.Name, req.Login, req.Email, req.Password)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "User successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with a user account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
	})
}

// ValidateToken godoc
//
//	@Summary		Check a token
//	@Description	Reports whether a token from register or login is still usable and whose it is.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ValidateTokenRequestDTO	true	"Token"
//	@Success		200		{object}	dto.ValidateTokenResponseDTO
//	@Failure		401		{object}	dto.ValidateTokenResponseDTO	"Token expired or invalid"
//	@Failure		422		{object}	utils.Response					"Token missing"
//	@Router			/api/validate-token [post]
func (h *AuthHandler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateTokenRequestDTO
	if err := apierr.Decode(r, &req); err != nil {
		apierr.Respond(w, err)
		return
	}
	claims, err := h.authService.ValidateToken(req.Token)
	if errors.Is(err, pkgauth.ErrTokenExpired) {
		utils.RespondWithJSON(w, http.StatusUnauthorized, dto.ValidateTokenResponseDTO{Error: "Token expired"})
		return
	}
	if err != nil {
		utils.RespondWithJSON(w, http.StatusUnauthorized, dto.ValidateTokenResponseDTO{Error: "Invalid token"})
		return
	}
	expiresAt := time.Unix(claims.ExpiresAt, 0).UTC()
	utils.RespondWithJSON(w, http.StatusOK, dto.ValidateTokenResponseDTO{
		Valid:     true,
		UserID:    claims.UserID,
		ExpiresAt: &expiresAt,
	})
}

// GetUsers godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.UserResponseDTO
//	@Router		/api/users [get]
func (h *AuthHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	response := make([]dto.UserResponseDTO, 0, len(users))
	for _, u := range users {
		response = append(response, dto.NewUserResponse(u))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetUser godoc
//
//	@Summary	Get a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path	string	true	"User id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UserResponseDTO
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/users/{id} [get]
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(*user))
}

// DeleteUser godoc
//
//	@Summary	Remove a user
//	@Tags		Users
//	@Param		id	path	string	true	"User id"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/users/{id} [delete]
func (h *AuthHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		apierr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
