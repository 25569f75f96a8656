package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avdeev/go-shop-server/internal/auth"
	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/middleware"
	"github.com/avdeev/go-shop-server/internal/store"
)

func Register(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name     string `json:"name" binding:"required"`
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not hash password"})
			return
		}

		user, err := store.CreateUser(c.Request.Context(), db, input.Name, input.Email, hash)
		if err != nil {
			if errors.Is(err, database.ErrDuplicateEmail) {
				c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// Login checks credentials and issues the bearer token. The response never
// says whether the email or the password was wrong.
func Login(db *sql.DB, tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		user, err := store.GetUserByEmail(c.Request.Context(), db, input.Email)
		if err != nil || !auth.CheckPassword(user.Password, input.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": database.ErrInvalidCredentials.Error()})
			return
		}

		token, err := tokens.Issue(user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"access_token": token,
			"token_type":   "bearer",
			"user_id":      user.ID,
		})
	}
}

// CurrentUser resolves the token subject set by the auth middleware. A
// subject that no longer maps to a user comes back 404, not 401.
func CurrentUser(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.SubjectKey)

		user, err := store.GetUserByEmail(c.Request.Context(), db, email)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "could not validate credentials"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func GetUser(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user id"})
			return
		}

		user, err := store.GetUser(c.Request.Context(), db, id)
		if err != nil {
			if errors.Is(err, database.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
