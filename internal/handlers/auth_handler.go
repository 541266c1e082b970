package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ivcho02/mechanic-api/internal/audit"
	"github.com/ivcho02/mechanic-api/internal/config"
	"github.com/ivcho02/mechanic-api/internal/models"
	"github.com/ivcho02/mechanic-api/internal/validators"
)

type AuthHandler struct {
	db      *gorm.DB
	clients ClientStore
	config  *config.Config
	audit   *audit.Dispatcher
	log     *logrus.Logger
}

func NewAuthHandler(
	db *gorm.DB,
	clients ClientStore,
	cfg *config.Config,
	auditDispatcher *audit.Dispatcher,
	log *logrus.Logger,
) *AuthHandler {
	return &AuthHandler{
		db:      db,
		clients: clients,
		config:  cfg,
		audit:   auditDispatcher,
		log:     log,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	// The allow-list only seeds the persisted role; authorization checks
	// read the role column, never the list.
	role := models.RoleCustomer
	if h.config.IsAdminEmail(email) {
		role = models.RoleAdmin
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	// Every customer gets a client stub completed later via the profile
	// form. Failure here is logged, not fatal: the account exists.
	client := clientFromAccount(&user)
	if err := h.clients.CreateClient(c.Request.Context(), client); err != nil {
		h.log.WithError(err).WithField("email", email).Warn("failed to create client profile")
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: user.Email,
	})

	c.JSON(http.StatusCreated, gin.H{
		"user":  userJSON(&user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userJSON(&user),
		"token": token,
	})
}

// clientFromAccount builds the registration stub: owner name from the
// display name, falling back to the email local part; vehicle fields
// stay empty until the profile is completed.
func clientFromAccount(user *models.User) *models.Client {
	ownerName := user.Name
	if ownerName == "" {
		ownerName = user.Email
		if at := strings.Index(ownerName, "@"); at > 0 {
			ownerName = ownerName[:at]
		}
	}
	return &models.Client{
		OwnerName: ownerName,
		Email:     user.Email,
	}
}

func userJSON(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
