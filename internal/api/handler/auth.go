package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akoval/taskhub/internal/api/response"
	"github.com/akoval/taskhub/internal/domain"
	"github.com/akoval/taskhub/internal/service"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationDetail turns validator errors into a field -> message map
func validationDetail(err error) any {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	detail := make(map[string]string)
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			detail[field] = "field is required"
		case "email":
			detail[field] = "invalid email format"
		case "min":
			detail[field] = "must be at least " + e.Param() + " characters"
		case "max":
			detail[field] = "must be at most " + e.Param() + " characters"
		case "gt":
			detail[field] = "must be greater than " + e.Param()
		case "lt":
			detail[field] = "must be less than " + e.Param()
		default:
			detail[field] = "validation failed on " + e.Tag()
		}
	}
	return detail
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles user registration. The body shape is checked here;
// uniqueness is the service's call.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.UnprocessableEntity(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.UnprocessableEntity(w, validationDetail(err))
		return
	}

	if err := h.authService.Signup(r.Context(), input); err != nil {
		if errors.Is(err, service.ErrDuplicateIdentity) {
			response.BadRequest(w, "Email or username already registered")
			return
		}
		response.InternalError(w, "internal server error")
		return
	}

	response.Message(w, http.StatusCreated, "User created successfully")
}

// Login exchanges form-encoded credentials for an access token. Unknown
// username and wrong password produce the identical response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.UnprocessableEntity(w, "invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		response.UnprocessableEntity(w, "username and password are required")
		return
	}

	token, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid username or password.")
			return
		}
		response.InternalError(w, "internal server error")
		return
	}

	response.JSON(w, http.StatusOK, token)
}

// Logout acknowledges a logout. With stateless tokens there is nothing
// to revoke server-side: the token stays valid until it expires, and the
// client is expected to discard it. The route still sits behind the auth
// guard, so an expired or invalid token gets a 401.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	response.Message(w, http.StatusOK, "Successfully logged out")
}
