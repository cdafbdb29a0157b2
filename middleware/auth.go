package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenPrefix is the fixed prefix every credential must carry. The token is
// an access-control placeholder, not a cryptographic boundary: it encodes
// the user id in the clear.
const TokenPrefix = "simple-token-"

var ErrInvalidToken = errors.New("invalid token")

// NewToken builds the credential issued at registration and login.
func NewToken(userID uint) string {
	return TokenPrefix + strconv.FormatUint(uint64(userID), 10)
}

// ParseToken extracts the user id from an Authorization header value. Any
// deviation from "Bearer simple-token-<positive integer>" fails.
func ParseToken(authHeader string) (uint, error) {
	const want = "Bearer " + TokenPrefix
	if !strings.HasPrefix(authHeader, want) {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseUint(authHeader[len(want):], 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// TokenAuth rejects requests without a valid bearer credential and stashes
// the caller's user id under "user_id".
func TokenAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		userID, err := ParseToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
