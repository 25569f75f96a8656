package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avdeev/go-shop-server/internal/auth"
)

// SubjectKey is where AuthRequired stores the token's subject email.
const SubjectKey = "subject"

// AuthRequired rejects requests without a valid bearer token. A bad or
// expired signature, a wrong scheme, or a token without a subject all end
// here with 401; whether the subject still maps to a user is the handler's
// concern.
func AuthRequired(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not authenticated"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not authenticated"})
			return
		}

		email, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "could not validate credentials"})
			return
		}

		c.Set(SubjectKey, email)
		c.Next()
	}
}
