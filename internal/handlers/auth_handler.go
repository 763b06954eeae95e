package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/WebCoreServices/customer-portal/internal/audit"
	"github.com/WebCoreServices/customer-portal/internal/auth"
	"github.com/WebCoreServices/customer-portal/internal/httperr"
	"github.com/WebCoreServices/customer-portal/internal/httpresp"
	"github.com/WebCoreServices/customer-portal/internal/models"
	"github.com/WebCoreServices/customer-portal/internal/repository"
)

type AuthHandler struct {
	users     *repository.UserRepository
	policy    auth.Policy
	secretKey string
	audit     *audit.Dispatcher
	log       *zap.Logger
}

func NewAuthHandler(
	users *repository.UserRepository,
	policy auth.Policy,
	secretKey string,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		users:     users,
		policy:    policy,
		secretKey: secretKey,
		audit:     auditDispatcher,
		log:       log,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	var missing []string
	if req.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if req.LastName == "" {
		missing = append(missing, "last_name")
	}
	if req.Username == "" {
		missing = append(missing, "username")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		httperr.BadRequest(c, "missing parameters: "+strings.Join(missing, ","))
		return
	}

	exists, err := h.users.ExistsByUsernameOrEmail(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		h.log.Error("register: user existence check failed", zap.Error(err))
		httperr.Internal(c, "Internal server error")
		return
	}
	if exists {
		httperr.BadRequest(c, "Username or Email are already taken.")
		return
	}

	if msg := h.policy.Validate(req.Password); msg != "" {
		httperr.BadRequest(c, msg)
		return
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		h.log.Error("register: salt generation failed", zap.Error(err))
		httperr.Internal(c, "Internal server error")
		return
	}

	user := models.User{
		ID:           auth.NewID(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: auth.HashPassword(req.Password, salt, h.secretKey),
		Salt:         salt,
	}

	if err := h.users.Insert(c.Request.Context(), &user); err != nil {
		// Unique index is the authoritative duplicate check; the pre-check
		// above can lose a race.
		if httperr.IsBusiness(err, repository.CodeDuplicate) {
			httperr.BadRequest(c, "Username or Email are already taken.")
			return
		}
		h.log.Error("register: insert failed", zap.String("username", req.Username), zap.Error(err))
		httperr.Internal(c, "Failed to insert user into the database.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    user.Username,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: user.ID,
	})

	httpresp.OK(c, gin.H{
		"user": gin.H{
			"user_id":    user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	var missing []string
	if req.Username == "" {
		missing = append(missing, "username")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		httperr.BadRequest(c, "missing parameters: "+strings.Join(missing, ","))
		return
	}

	user, err := h.users.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		h.log.Error("login: lookup failed", zap.Error(err))
		httperr.Internal(c, "Internal server error")
		return
	}
	if user == nil {
		// Same message as a wrong password, the response must not reveal
		// whether the username exists.
		httperr.Unauthorized(c, "username or password incorrect")
		return
	}

	if user.LoginAttempts >= h.policy.MaxLoginAttempts {
		h.audit.Dispatch(audit.Event{
			Actor:    user.Username,
			Action:   audit.ActionUserLocked,
			Entity:   "user",
			EntityID: user.ID,
		})
		httperr.Forbidden(c, "Maximum login attempts exceeded. Your user blocked.")
		return
	}

	candidate := auth.HashPassword(req.Password, user.Salt, h.secretKey)
	if !auth.VerifyHash(candidate, user.PasswordHash) {
		newAttempts := user.LoginAttempts + 1
		if err := h.users.IncrementAttempts(c.Request.Context(), user.ID, newAttempts); err != nil {
			h.log.Error("login: attempt counter update failed", zap.Error(err))
			httperr.Internal(c, "Internal server error")
			return
		}
		h.log.Info("login attempt failed",
			zap.String("username", user.Username),
			zap.Int("attempts", newAttempts),
		)
		h.audit.Dispatch(audit.Event{
			Actor:    user.Username,
			Action:   audit.ActionLoginFailed,
			Entity:   "user",
			EntityID: user.ID,
			Metadata: gin.H{"attempts": newAttempts},
		})
		httperr.Unauthorized(c, "username or password incorrect")
		return
	}

	if err := h.users.ResetAttempts(c.Request.Context(), user.ID); err != nil {
		h.log.Error("login: attempt counter reset failed", zap.Error(err))
		httperr.Internal(c, "Internal server error")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    user.Username,
		Action:   audit.ActionLoginSucceeded,
		Entity:   "user",
		EntityID: user.ID,
	})

	httpresp.OK(c, gin.H{
		"user": gin.H{
			"user_id":    user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
	})
}
