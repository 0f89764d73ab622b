package pets

import (
	"net/http"

	"pet-clinic-admin/internal/middleware"
	"pet-clinic-admin/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.With(middleware.RequireRoles("ADMIN", "STAFF")).Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		// Mascotas del usuario logueado
		pr.Get("/my-pets", listMyPetsHandler(svc))
		pr.Get("/user/{userId}", listPetsByUserHandler(svc))

		pr.Get("/{id}", getPetHandler(svc))
		pr.Put("/{id}", updatePetHandler(svc))
		pr.Delete("/{id}", deletePetHandler(svc))
	})
}

type petRequest struct {
	Name       *string        `json:"name"`
	BirthDate  *httpjson.Date `json:"birth_date" swaggertype:"string" example:"2021-04-10"`
	Gender     *string        `json:"gender" enums:"MALE,FEMALE"`
	Species    *string        `json:"species"`
	Color      *string        `json:"color"`
	HealthInfo *string        `json:"health_info"`
	UserID     *int64         `json:"user_id"`
}

type petResponse struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	BirthDate  *httpjson.Date `json:"birth_date" swaggertype:"string"`
	Gender     *Gender        `json:"gender"`
	Species    string         `json:"species"`
	Color      string         `json:"color"`
	HealthInfo string         `json:"health_info"`
	UserID     int64          `json:"user_id"`
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func listMyPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		items, err := svc.ListMine(r.Context(), claims)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func listPetsByUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httpjson.IDParam(r, "userId")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		items, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description El user_id tiene que existir. gender acepta MALE/FEMALE sin importar mayúsculas.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota; birth_date en formato YYYY-MM-DD"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 404 {object} httpjson.ErrorBody "user not found"
// @Router /api/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		in := CreateInput{
			BirthDate: req.BirthDate.TimePtr(),
			Gender:    req.Gender,
		}
		if req.Name != nil {
			in.Name = *req.Name
		}
		if req.Species != nil {
			in.Species = *req.Species
		}
		if req.Color != nil {
			in.Color = *req.Color
		}
		if req.HealthInfo != nil {
			in.HealthInfo = *req.HealthInfo
		}
		if req.UserID != nil {
			in.UserID = *req.UserID
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Update parcial: campos ausentes o null no se tocan.
// @Tags pets
// @Accept json
// @Produce json
// @Param id path int true "ID de la mascota"
// @Param payload body petRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 404 {object} httpjson.ErrorBody
// @Router /api/pets/{id} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		var req petRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			Name:       req.Name,
			BirthDate:  req.BirthDate.TimePtr(),
			Gender:     req.Gender,
			Species:    req.Species,
			Color:      req.Color,
			HealthInfo: req.HealthInfo,
			UserID:     req.UserID,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description 409 si la mascota está en una jaula o tiene historias clínicas.
// @Tags pets
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody
// @Router /api/pets/{id} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		p, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	out := petResponse{
		ID:         p.ID,
		Name:       p.Name,
		BirthDate:  httpjson.DatePtr(p.BirthDate),
		Species:    p.Species,
		Color:      p.Color,
		HealthInfo: p.HealthInfo,
		UserID:     p.UserID,
	}
	if p.Gender != "" {
		g := p.Gender
		out.Gender = &g
	}
	return out
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}
