package users

import (
	"net/http"
	"time"

	"pet-clinic-admin/internal/middleware"
	"pet-clinic-admin/internal/platform/httpjson"
	"pet-clinic-admin/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.With(middleware.RequireRoles(string(RoleAdmin), string(RoleStaff))).Get("/", listUsersHandler(svc))
		ur.Post("/", createUserHandler(svc))

		ur.Get("/my-info", myInfoHandler(svc))
		ur.Get("/email/{email}", getUserByEmailHandler(svc))

		ur.Get("/{id}", getUserHandler(svc))
		ur.Put("/{id}", updateUserHandler(svc))
		ur.Delete("/{id}", deleteUserHandler(svc))

		ur.Get("/{id}/role", getUserRoleHandler(svc))
		ur.With(middleware.RequireRoles(string(RoleAdmin))).Patch("/{id}/role", updateUserRoleHandler(svc))
	})
}

// userRequest es el cuerpo de alta/edición. En edición, campos ausentes no se tocan.
type userRequest struct {
	Name     *string `json:"user_name" validate:"omitempty,min=2"`
	Password *string `json:"password" validate:"omitempty,min=10"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// userResponse nunca incluye el password.
type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"user_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type userRoleResponse struct {
	ID    int64  `json:"id"`
	Roles string `json:"roles"`
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Param Authorization header string false "Bearer token (o cookie SESSION)"
// @Success 200 {array} userResponse
// @Failure 401 {object} httpjson.ErrorBody
// @Failure 403 {object} httpjson.ErrorBody
// @Router /api/users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toUserResponses(items))
	}
}

// getUserHandler godoc
// @Summary Obtener usuario por id
// @Tags users
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} userResponse
// @Failure 404 {object} httpjson.ErrorBody
// @Router /api/users/{id} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		u, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// getUserByEmailHandler godoc
// @Summary Obtener usuario por email
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} userResponse
// @Failure 404 {object} httpjson.ErrorBody
// @Router /api/users/email/{email} [get]
func getUserByEmailHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByEmail(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// createUserHandler godoc
// @Summary Crear usuario
// @Description Alta de usuario. El rol inicial siempre es OWNER; email y teléfono deben ser únicos.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body userRequest true "Datos del usuario"
// @Success 200 {object} userResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody "email o teléfono en uso"
// @Router /api/users [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := createFromRequest(r, svc)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// createFromRequest se comparte con /api/auth/register.
func createFromRequest(r *http.Request, svc *Service) (User, error) {
	var req userRequest
	if err := httpjson.Decode(r, &req); err != nil {
		return User{}, err
	}
	if err := httpjson.Validate(req); err != nil {
		return User{}, err
	}
	return svc.Create(r.Context(), CreateInput{
		Name:     deref(req.Name),
		Password: deref(req.Password),
		Phone:    deref(req.Phone),
		Email:    deref(req.Email),
	})
}

// updateUserHandler godoc
// @Summary Actualizar usuario
// @Description Update parcial: campos ausentes no se tocan. Un password nuevo se vuelve a hashear.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "ID del usuario"
// @Param payload body userRequest true "Campos a modificar"
// @Success 200 {object} userResponse
// @Failure 404 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody
// @Router /api/users/{id} [put]
func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		var req userRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		if err := httpjson.Validate(req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		u, err := svc.Update(r.Context(), id, UpdateInput{
			Name:     req.Name,
			Password: req.Password,
			Phone:    req.Phone,
			Email:    req.Email,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// deleteUserHandler godoc
// @Summary Borrar usuario
// @Description Falla con 409 si el usuario tiene mascotas, reservas o historias clínicas.
// @Tags users
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} userResponse
// @Failure 404 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody
// @Router /api/users/{id} [delete]
func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		u, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// myInfoHandler godoc
// @Summary Datos del usuario logueado
// @Tags users
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} httpjson.ErrorBody
// @Router /api/users/my-info [get]
func myInfoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		u, err := svc.Current(r.Context(), claims)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// getUserRoleHandler godoc
// @Summary Rol de un usuario
// @Tags users
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} userRoleResponse
// @Failure 404 {object} httpjson.ErrorBody
// @Router /api/users/{id}/role [get]
func getUserRoleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		role, err := svc.GetRole(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, userRoleResponse{ID: id, Roles: string(role)})
	}
}

// updateUserRoleHandler godoc
// @Summary Cambiar rol de un usuario
// @Tags users
// @Produce json
// @Param id path int true "ID del usuario"
// @Param newRole query string true "OWNER, STAFF, DOCTOR o ADMIN"
// @Success 200 {object} userResponse
// @Failure 400 {object} httpjson.ErrorBody "rol inválido"
// @Failure 403 {object} httpjson.ErrorBody
// @Router /api/users/{id}/role [patch]
func updateUserRoleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		newRole, err := httpjson.RequiredQuery(r, "newRole")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		u, err := svc.UpdateRole(r.Context(), id, newRole)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(items []User) []userResponse {
	out := make([]userResponse, 0, len(items))
	for _, u := range items {
		out = append(out, toUserResponse(u))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// authorities arma la lista "ROLE_X" que espera el frontend.
func authorities(role Role) []string {
	return []string{auth.Authority(string(role))}
}
