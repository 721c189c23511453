package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/pantry-scheduler/internal/audit"
	"github.com/BruksfildServices01/pantry-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/pantry-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/pantry-scheduler/internal/dto"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/pantry-scheduler/internal/mailer"
	"github.com/BruksfildServices01/pantry-scheduler/internal/session"
	ucUser "github.com/BruksfildServices01/pantry-scheduler/internal/usecase/user"
)

// AuthHandler serves registration, sessions and password recovery.
type AuthHandler struct {
	repo     domain.Repository
	sessions session.Store
	now      func() time.Time
	log      logrus.FieldLogger

	register      *ucUser.Register
	signIn        *ucUser.SignIn
	updateUser    *ucUser.UpdateUser
	requestReset  *ucUser.RequestPasswordReset
	resetPassword *ucUser.ResetPassword
}

type AuthDeps struct {
	Users       domain.Repository
	Issuer      *auth.TokenIssuer
	Sessions    session.Store
	Mailer      mailer.Mailer
	CheckDomain ucUser.DomainChecker
	Audit       audit.Recorder
	Now         func() time.Time
	Log         logrus.FieldLogger
}

func NewAuthHandler(d AuthDeps) *AuthHandler {
	if d.Now == nil {
		d.Now = time.Now
	}
	return &AuthHandler{
		repo:          d.Users,
		sessions:      d.Sessions,
		now:           d.Now,
		log:           d.Log,
		register:      ucUser.NewRegister(d.Users, d.Issuer, d.CheckDomain, d.Audit, d.Log),
		signIn:        ucUser.NewSignIn(d.Users, d.Issuer),
		updateUser:    ucUser.NewUpdateUser(d.Users, d.CheckDomain, d.Audit),
		requestReset:  ucUser.NewRequestPasswordReset(d.Users, d.Mailer, d.Now, d.Log),
		resetPassword: ucUser.NewResetPassword(d.Users, d.Now),
	}
}

// --------- Requests ---------

type registerRequest struct {
	User *ucUser.RegisterInput `json:"user"`
	ucUser.RegisterInput
}

type updateUserRequest struct {
	User *ucUser.UpdateInput `json:"user"`
	ucUser.UpdateInput
}

type credentials struct {
	Email    string `json:"email" form:"user[email]"`
	Password string `json:"password" form:"user[password]"`
}

type signInRequest struct {
	User *credentials `json:"user"`
	credentials
}

type emailOnly struct {
	Email string `json:"email" form:"user[email]"`
}

type passwordRequest struct {
	User *emailOnly `json:"user"`
	emailOnly
}

type resetRequest struct {
	User *ucUser.ResetPasswordInput `json:"user"`
	ucUser.ResetPasswordInput
}

func sessionJSON(s *ucUser.Session) gin.H {
	return gin.H{
		"user":       dto.User(s.User),
		"token":      s.Token,
		"expires_at": s.Principal.ExpiresAt,
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bindBody(c, &req, &req.RegisterInput) {
		return
	}
	in := req.RegisterInput
	if req.User != nil {
		in = *req.User
	}

	s, err := h.register.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, sessionJSON(s))
}

func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.Respond(c, domain.ErrNotFound)
		return
	}

	var req updateUserRequest
	if !bindBody(c, &req, &req.UpdateInput) {
		return
	}
	in := req.UpdateInput
	if req.User != nil {
		in = *req.User
	}

	u, err := h.updateUser.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"user": dto.User(u)})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if !bindBody(c, &req, &req.credentials) {
		return
	}
	in := req.credentials
	if req.User != nil {
		in = *req.User
	}

	s, err := h.signIn.Execute(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, sessionJSON(s))
}

// SignOut revokes the current token until it would have expired anyway.
func (h *AuthHandler) SignOut(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c.Request.Context())
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "you need to sign in before continuing")
		return
	}

	ttl := p.ExpiresAt.Sub(h.now())
	if err := h.sessions.Revoke(c.Request.Context(), p.TokenID, ttl); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.log.WithField("user_id", p.UserID).Info("user signed out")
	httpresp.NoContent(c)
}

func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c.Request.Context())
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "you need to sign in before continuing")
		return
	}

	u, err := h.repo.FindByID(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"user": dto.User(u)})
}

// --------- Password recovery ---------

const resetSentMessage = "If your email address exists in our database, you will receive a password recovery link shortly."

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req passwordRequest
	if !bindBody(c, &req, &req.emailOnly) {
		return
	}
	in := req.emailOnly
	if req.User != nil {
		in = *req.User
	}

	if err := h.requestReset.Execute(c.Request.Context(), in.Email); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": resetSentMessage})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetRequest
	if !bindBody(c, &req, &req.ResetPasswordInput) {
		return
	}
	in := req.ResetPasswordInput
	if req.User != nil {
		in = *req.User
	}

	u, err := h.resetPassword.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"user": dto.User(u)})
}
