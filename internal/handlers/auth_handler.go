package handlers

import (
	"log"

	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	verifier services.CredentialVerifier
	tokens   *services.TokenService
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(verifier services.CredentialVerifier, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{
		verifier: verifier,
		tokens:   tokens,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/login", h.HandleLogin)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type tokenData struct {
	Token string `json:"token"`
}

// HandleLogin verifies the static credential pair and issues a bearer token.
// The token issuer itself performs no credential check, so Verify must pass
// before it is called.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	log.Printf("Login attempt for user: %s", req.Username)
	if !h.verifier.Verify(req.Username, req.Password) {
		log.Printf("Login failed for user: %s. Invalid credentials.", req.Username)
		return unauthorized(c, "Invalid credentials")
	}

	token, err := h.tokens.GenerateAccessToken(req.Username)
	if err != nil {
		log.Printf("Error generating token for user %s: %v", req.Username, err)
		return internalError(c, "Internal server error")
	}

	log.Printf("User %s logged in successfully. JWT generated.", req.Username)
	return okResult(c, tokenData{Token: token}, "Login successful")
}
