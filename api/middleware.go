package api

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/harshityadav/portfolio-backend/auth"
	"github.com/harshityadav/portfolio-backend/database"
	"github.com/harshityadav/portfolio-backend/errs"
	"github.com/harshityadav/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// sessionCookieName is the cookie that carries the session id.
const sessionCookieName = "portfolio_session"

type authMiddleware struct {
	responder Responder
	sessions  *auth.Manager
	userRepo  *database.UserRepo
}

func newAuthMiddleware(sessions *auth.Manager, userRepo *database.UserRepo) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		sessions:  sessions,
		userRepo:  userRepo,
	}
}

// resolveSessionUser turns the request's session cookie into a user record.
// A nil user with a nil error means the request is anonymous or the session
// has expired; an error means the lookup itself failed.
func resolveSessionUser(sessions *auth.Manager, userRepo *database.UserRepo, r *http.Request) (*models.User, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, nil
	}

	session, err := sessions.Resolve(cookie.Value)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	user, err := userRepo.FindByID(session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// The account was removed while the session was live; treat as anonymous.
		return nil, nil
	}

	return user, nil
}

// authenticate rejects anonymous requests with 401 and attaches the user to
// the request context otherwise.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := resolveSessionUser(m.sessions, m.userRepo, r)
		if err != nil {
			m.responder.WriteError(w, wrapDatabaseError("resolve session", "session", err))
			return
		}
		if user == nil {
			m.responder.WriteError(w, errs.NewUnauthenticatedError("Not authenticated"))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithUser(r.Context(), user)))
	})
}

// requireAdmin layers the admin check on top of authenticate: 401 when
// anonymous, 403 when the session user is not an admin.
func (m authMiddleware) requireAdmin(next http.Handler) http.Handler {
	return m.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromCtx(r.Context())
		if user == nil || !user.IsAdmin {
			m.responder.WriteError(w, errs.NewForbiddenError("Requires admin privileges"))
			return
		}
		next.ServeHTTP(w, r)
	}))
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// LogInternalServerErrors recovers from handler panics and logs every 500
// response with method and path.
func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// HTTPLoggingMiddleware logs every request with a level keyed to the status code.
func HTTPLoggingMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			srw := &statusResponseWriter{ResponseWriter: w, status: 200}

			next.ServeHTTP(srw, r)

			duration := time.Since(start)

			var logEvent *zerolog.Event
			switch {
			case srw.status >= 500:
				logEvent = logger.Error()
			case srw.status >= 400:
				logEvent = logger.Warn()
			default:
				logEvent = logger.Info()
			}

			logEvent.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", srw.status).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("HTTP Request")
		})
	}
}
