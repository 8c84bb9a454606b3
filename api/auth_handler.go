package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/harshityadav/portfolio-backend/auth"
	"github.com/harshityadav/portfolio-backend/database"
	"github.com/harshityadav/portfolio-backend/errs"
	"github.com/harshityadav/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// cookieSettings holds the per-deployment cookie attributes. The session id
// always travels HttpOnly + SameSite=Lax; Secure is flipped on in production.
type cookieSettings struct {
	secure bool
	maxAge time.Duration
}

func (cs cookieSettings) session(id string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(cs.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   cs.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (cs cookieSettings) expired() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cs.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	sessions  *auth.Manager
	cookies   cookieSettings
}

func newAuthHandler(userRepo *database.UserRepo, sessions *auth.Manager, cookies cookieSettings) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		sessions:  sessions,
		cookies:   cookies,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// register creates a user account. The first-ever account bootstraps the
// system: it is promoted to admin and logged in immediately. After that,
// only an authenticated admin may register further accounts.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Username == "" {
			h.responder.WriteError(w, errs.NewValidationError("username", "username is required"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewValidationError("password", "password is required"))
			return
		}

		userCount, err := h.userRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "users", err))
			return
		}
		isFirstUser := userCount == 0

		if !isFirstUser {
			caller, err := resolveSessionUser(h.sessions, h.userRepo, r)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("resolve session", "session", err))
				return
			}
			if caller == nil || !caller.IsAdmin {
				h.responder.WriteError(w, errs.NewApiErr(http.StatusForbidden, "Unauthorized"))
				return
			}
		}

		existing, err := h.userRepo.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusConflict, "Username already exists"))
			return
		}

		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("hashing password"))
			return
		}

		user := models.User{
			Username: req.Username,
			Password: hashed,
			IsAdmin:  req.IsAdmin || isFirstUser, // first user is admin by default
		}
		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		// Auto-login on bootstrap so the fresh install lands in the admin panel.
		if isFirstUser {
			session, err := h.sessions.Create(user.ID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("create", "session", err))
				return
			}
			http.SetCookie(w, h.cookies.session(session.ID))
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, user.Public())
	}
}

// login verifies credentials and establishes a session. Unknown usernames and
// wrong passwords produce the same response.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		user, err := h.userRepo.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		if user != nil {
			match, err := auth.VerifyPassword(req.Password, user.Password)
			if err != nil {
				h.logger.Error().Err(err).Uint("userID", user.ID).Msg("stored password hash is unreadable")
				user = nil
			} else if !match {
				user = nil
			}
		}

		if user == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusUnauthorized, "Invalid username or password"))
			return
		}

		session, err := h.sessions.Create(user.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "session", err))
			return
		}

		http.SetCookie(w, h.cookies.session(session.ID))
		h.responder.WriteJSON(w, user.Public())
	}
}

// logout destroys the session if one exists. Calling it twice is fine.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if err := h.sessions.Destroy(cookie.Value); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("delete", "session", err))
				return
			}
		}

		http.SetCookie(w, h.cookies.expired())
		h.responder.WriteJSON(w, MessageResponse{Message: "Logged out successfully"})
	}
}

// me returns the authenticated user's public fields.
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromCtx(r.Context())
		if user == nil {
			h.responder.WriteError(w, errs.NewUnauthenticatedError("Not authenticated"))
			return
		}
		h.responder.WriteJSON(w, user.Public())
	}
}
