package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	jwt "github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "anonchat-service"

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// Login registers the user on first contact and returns a JWT carrying
// the username and display name.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and name are required"})
		return
	}

	user, err := h.Storage.SaveUserIfNotExists(req.Username, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	token, err := h.generateJWT(user.Username, user.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "username": user.Username})
}

// generateJWT mints a token with the user's identity claims.
func (h *Handler) generateJWT(username, name string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"name":     name,
		"exp":      time.Now().Add(h.TokenTTL).Unix(),
		"iss":      tokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.JWTSecret)
}

// parseJWT validates a token and returns the username and display name
// claims.
func (h *Handler) parseJWT(tokenString string) (username, name string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return h.JWTSecret, nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}
	username, _ = claims["username"].(string)
	name, _ = claims["name"].(string)
	if username == "" {
		return "", "", errors.New("token missing username claim")
	}
	return username, name, nil
}

// bearerToken extracts the token from the Authorization header, falling
// back to the token query parameter for websocket clients.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// AuthMiddleware rejects requests without a valid token and stores the
// identity claims in the gin context.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}

		username, name, err := h.parseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
			return
		}

		c.Set("username", username)
		c.Set("name", name)
		c.Next()
	}
}
