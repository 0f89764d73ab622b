package users

import (
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"pet-clinic-admin/internal/middleware"
	"pet-clinic-admin/internal/platform/apperr"
	"pet-clinic-admin/internal/platform/httpjson"
	"pet-clinic-admin/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// AuthOptions configura login/logout por sesión.
type AuthOptions struct {
	Sessions     auth.SessionStore
	CookieName   string
	CookieSecure bool
	TTL          time.Duration

	// LoginLimiter es opcional; envuelve solo POST /login.
	LoginLimiter func(http.Handler) http.Handler
	// OnLogin recibe "success" o "failure" por cada intento. Opcional.
	OnLogin func(result string)
}

func RegisterAuthRoutes(r chi.Router, svc *Service, opts AuthOptions) {
	if opts.CookieName == "" {
		opts.CookieName = "SESSION"
	}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	if opts.OnLogin == nil {
		opts.OnLogin = func(string) {}
	}

	r.Route("/auth", func(ar chi.Router) {
		ar.Get("/login", loginPageHandler())
		if opts.LoginLimiter != nil {
			ar.With(opts.LoginLimiter).Post("/login", loginHandler(svc, opts))
		} else {
			ar.Post("/login", loginHandler(svc, opts))
		}
		ar.Post("/register", createUserHandler(svc))
		ar.Post("/logout", logoutHandler(opts))
		ar.Get("/access-denied", accessDeniedHandler())
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message  string   `json:"message"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Token    string   `json:"token"`
}

func loginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		httpjson.WriteJSON(w, http.StatusOK, httpjson.MessageBody{Message: "Please POST your credentials to this endpoint"})
	}
}

// loginHandler godoc
// @Summary Login
// @Description Acepta JSON {"email","password"} o form username/password. Crea sesión (cookie SESSION) y devuelve además el token para usar como Bearer.
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} loginResponse
// @Failure 401 {object} httpjson.ErrorBody "Invalid email or password"
// @Failure 429 {object} httpjson.ErrorBody
// @Router /api/auth/login [post]
func loginHandler(svc *Service, opts AuthOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, password, err := readCredentials(r)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		u, err := svc.Authenticate(r.Context(), email, password)
		if err != nil {
			opts.OnLogin("failure")
			httpjson.WriteError(w, r, err)
			return
		}
		opts.OnLogin("success")

		token, err := opts.Sessions.Create(r.Context(), u.Email, opts.TTL)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     opts.CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(opts.TTL.Seconds()),
			HttpOnly: true,
			Secure:   opts.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
		httpjson.WriteJSON(w, http.StatusOK, loginResponse{
			Message:  "Login successful",
			Username: u.Email,
			Roles:    authorities(u.Role),
			Token:    token,
		})
	}
}

// readCredentials acepta JSON o form (el frontend manda username/password).
func readCredentials(r *http.Request) (string, string, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var req loginRequest
		if err := httpjson.Decode(r, &req); err != nil {
			return "", "", err
		}
		email := req.Email
		if strings.TrimSpace(email) == "" {
			email = req.Username
		}
		return email, req.Password, nil
	}

	if err := r.ParseForm(); err != nil {
		return "", "", &apperr.Error{Kind: apperr.KindInvalidInput, Message: "Unreadable login form", Err: err}
	}
	email := r.PostForm.Get("username")
	if strings.TrimSpace(email) == "" {
		email = r.PostForm.Get("email")
	}
	return email, r.PostForm.Get("password"), nil
}

// logoutHandler godoc
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} httpjson.MessageBody
// @Router /api/auth/logout [post]
func logoutHandler(opts AuthOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := middleware.TokenFromRequest(r, opts.CookieName); token != "" {
			if err := opts.Sessions.Delete(r.Context(), token); err != nil && !errors.Is(err, auth.ErrSessionNotFound) {
				httpjson.WriteError(w, r, err)
				return
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     opts.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   opts.CookieSecure,
		})
		httpjson.WriteJSON(w, http.StatusOK, httpjson.MessageBody{Message: "Logged out successfully"})
	}
}

func accessDeniedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		httpjson.WriteJSON(w, http.StatusOK, httpjson.MessageBody{Message: "You don't have permission to access this resource"})
	}
}
