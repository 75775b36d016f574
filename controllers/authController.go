package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"civicsync-reporter/middlewares"
	"civicsync-reporter/models"
	"civicsync-reporter/repository"
	"civicsync-reporter/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthController handles registration, login and the current session
type AuthController struct {
	users      repository.UserStore
	jwtSecret  string
	domain     string
	production bool
}

func NewAuthController(users repository.UserStore, jwtSecret, domain string, production bool) *AuthController {
	// For production, don't set domain to allow cross-origin cookies
	if production {
		domain = ""
	}
	return &AuthController{users: users, jwtSecret: jwtSecret, domain: domain, production: production}
}

func userBody(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"createdAt": user.CreatedAt,
	}
}

// RegisterUser handles user registration
func (ac *AuthController) RegisterUser(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required,min=3,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	}

	if err := user.HashPassword(); err != nil {
		slog.Error("hash password", "error", err)
		utils.InternalError(c, "Something went wrong")
		return
	}

	if err := ac.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.Conflict(c, "User with this email or username already exists")
			return
		}
		slog.Error("insert user", "error", err)
		utils.InternalError(c, "Something went wrong")
		return
	}

	c.JSON(http.StatusCreated, userBody(&user))
}

// LoginUser verifies credentials and sets the auth cookie
func (ac *AuthController) LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := ac.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Error("find user", "error", err)
		}
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !user.ComparePassword(input.Password) {
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), ac.jwtSecret)
	if err != nil {
		slog.Error("generate token", "error", err)
		utils.InternalError(c, "Something went wrong")
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middlewares.AuthCookie,
		Value:    token,
		MaxAge:   int(utils.TokenTTL.Seconds()),
		Path:     "/",
		Domain:   ac.domain,
		Secure:   ac.production,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})

	body := userBody(user)
	body["token"] = token
	c.JSON(http.StatusOK, body)
}

// GetMe retrieves the authenticated user's information
func (ac *AuthController) GetMe(c *gin.Context) {
	objectID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		utils.BadRequest(c, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := ac.users.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		slog.Error("find user", "error", err)
		utils.InternalError(c, "Something went wrong")
		return
	}

	c.JSON(http.StatusOK, userBody(user))
}

// LogoutUser clears the auth cookie
func (ac *AuthController) LogoutUser(c *gin.Context) {
	c.SetCookie(middlewares.AuthCookie, "", -1, "/", ac.domain, ac.production, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
