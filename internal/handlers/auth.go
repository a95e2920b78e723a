package handlers

import (
	"errors"
	"net/http"

	"todo_service/internal/service"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for register and login.
type authCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

const errMissingCredentials = "Username and password are required"

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authCredentials  true  "Credentials"
// @Success      201   {object}  map[string]int  "id"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input authCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingCredentials})
		return
	}

	id, err := h.services.SignUp(input.Username, input.Password)
	if err != nil {
		// Failed hashing must not register the user with a weak hash.
		if errors.Is(err, service.ErrHashPassword) {
			h.logAndJSONError(c, http.StatusInternalServerError, "Internal server error", "register_hash_failed", err)
			return
		}
		// Store errors (duplicate username above all) propagate their message.
		if h.log != nil {
			h.log.Infow("register_failed", "username", input.Username, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Log in and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]string  "accessToken"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingCredentials})
		return
	}

	token, err := h.services.GenerateToken(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "login_failed", err, "username", input.Username)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
