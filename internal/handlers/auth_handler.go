package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
	"github.com/BruksfildServices01/barber-marketplace/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db          *gorm.DB
	config      *config.Config
	clock       timezone.Clock
	checkDomain validators.DomainChecker
}

// NewAuthHandler accepts a nil checkDomain, which skips the mail-domain check.
func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	clock timezone.Clock,
	checkDomain validators.DomainChecker,
) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, clock: clock, checkDomain: checkDomain}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserView struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Role   string  `json:"role"`
	Avatar *string `json:"avatar"`
}

type AuthResponse struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

func toUserView(u *models.User) UserView {
	role, _ := account.ParseRole(u.Role)
	return UserView{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Role:   role.String(),
		Avatar: u.Avatar,
	}
}

// --------- Handlers ---------

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, a valid email and a password of at least 6 characters are required.")
		return
	}

	role := account.RoleCustomer
	if strings.TrimSpace(req.Role) != "" {
		r, ok := account.ParseRole(req.Role)
		if !ok || !r.SelfRegistrable() {
			httperr.BadRequest(c, "invalid_role", "Role must be customer or barber.")
			return
		}
		role = r
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.checkDomain != nil && !h.checkDomain(c.Request.Context(), email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		respondError(c, err, "register_failed", "Failed to register")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_taken", "Email is already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err, "register_failed", "Failed to register")
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         role.String(),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_taken", "Email is already registered.")
			return
		}
		respondError(c, err, "register_failed", "Failed to register")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		respondError(c, err, "token_failed", "Failed to register")
		return
	}

	c.JSON(http.StatusCreated, httpresp.Envelope{
		Success: true,
		Data:    AuthResponse{User: toUserView(&user), Token: token},
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		respondError(c, err, "login_failed", "Failed to log in")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		respondError(c, err, "token_failed", "Failed to log in")
		return
	}

	httpresp.OK(c, AuthResponse{User: toUserView(&user), Token: token})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	return IssueToken(h.config.JWTSecret, user, h.clock())
}

// IssueToken signs an HS256 token carrying the user id and role.
func IssueToken(secret string, user *models.User, now time.Time) (string, error) {
	role, _ := account.ParseRole(user.Role)

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": role.String(),
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
