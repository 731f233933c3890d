package auth

import (
	"errors"
	"net/http"

	"github.com/sundayvolley/volleyrank/config"
	"github.com/sundayvolley/volleyrank/internal/middleware"
	"github.com/sundayvolley/volleyrank/pkg/responses"
	"github.com/sundayvolley/volleyrank/pkg/token"
	"github.com/sundayvolley/volleyrank/pkg/validator"
	"github.com/sundayvolley/volleyrank/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

// Register godoc
// @Summary      Register a roster manager
// @Description  Create a manager account with name, email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Manager registration details"
// @Success      201   {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400   {object} responses.ErrorResponse "Validation error or invalid input"
// @Failure      409   {object} responses.ErrorResponse "An account with this email already exists"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if _, err := ac.repo.GetUserByEmail(req.Email); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.SendError(c, http.StatusConflict, "An account with this email already exists", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to hash password", nil)
		return
	}

	u := User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     ManagerRole,
	}

	if err := ac.repo.CreateUser(&u); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create account", err.Error())
		return
	}

	accessToken, err := token.GenerateJWT(u.ID, u.Role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to generate token", nil)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Account registered successfully", AuthResponse{
		AccessToken: accessToken,
		User:        u,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for an access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400  {object} responses.ErrorResponse "Validation error"
// @Failure      401  {object} responses.ErrorResponse "Invalid email or password"
// @Failure      500  {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	u, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.SendError(c, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to look up account", err.Error())
		return
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		responses.SendError(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	accessToken, err := token.GenerateJWT(u.ID, u.Role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to generate token", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", AuthResponse{
		AccessToken: accessToken,
		User:        *u,
	})
}

// Me godoc
// @Summary      Get the current account
// @Description  Return the authenticated manager's account.
// @Tags         Auth
// @Produce      json
// @Success      200  {object} responses.SuccessResponse{data=User}
// @Failure      401  {object} responses.ErrorResponse "Unauthorized"
// @Failure      500  {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/me [get]
// @Security     BearerAuth
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve account", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Account retrieved successfully", u)
}
