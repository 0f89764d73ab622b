package cages

import (
	"net/http"

	"pet-clinic-admin/internal/middleware"
	"pet-clinic-admin/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	staff := middleware.RequireRoles("ADMIN", "STAFF")

	r.Route("/cages", func(cr chi.Router) {
		cr.With(staff).Get("/", listCagesHandler(svc))
		cr.With(staff).Post("/", createCageHandler(svc))

		cr.With(staff).Get("/status/{status}", listCagesByStatusHandler(svc))
		cr.With(staff).Get("/filter", filterCagesHandler(svc))
		cr.Get("/pet/{petId}", getCageByPetHandler(svc))

		cr.Get("/{id}", getCageHandler(svc))
		cr.With(staff).Put("/{id}", updateCageHandler(svc))
		cr.With(staff).Delete("/{id}", deleteCageHandler(svc))
	})
}

type cageRequest struct {
	Type      *string        `json:"type"`
	Size      *string        `json:"size"`
	Status    *string        `json:"status" enums:"AVAILABLE,OCCUPIED,CLEANING"`
	StartDate *httpjson.Date `json:"start_date" swaggertype:"string"`
	EndDate   *httpjson.Date `json:"end_date" swaggertype:"string"`
	PetID     *int64         `json:"pet_id"`
}

type cageResponse struct {
	ID        int64          `json:"id"`
	Type      string         `json:"type"`
	Size      string         `json:"size"`
	Status    Status         `json:"status"`
	StartDate *httpjson.Date `json:"start_date" swaggertype:"string"`
	EndDate   *httpjson.Date `json:"end_date" swaggertype:"string"`
	PetID     *int64         `json:"pet_id"`
}

func listCagesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toCageResponses(items))
	}
}

func getCageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toCageResponse(c))
	}
}

func getCageByPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := httpjson.IDParam(r, "petId")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		c, err := svc.GetByPet(r.Context(), petID)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toCageResponse(c))
	}
}

// createCageHandler godoc
// @Summary Crear jaula
// @Description type y size obligatorios. Con pet_id queda OCCUPIED, sin pet_id AVAILABLE (status del body se ignora).
// @Tags cages
// @Accept json
// @Produce json
// @Param payload body cageRequest true "Datos de la jaula"
// @Success 200 {object} cageResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 404 {object} httpjson.ErrorBody "pet not found"
// @Router /api/cages [post]
func createCageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cageRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		in := CreateInput{
			StartDate: req.StartDate.TimePtr(),
			EndDate:   req.EndDate.TimePtr(),
			PetID:     req.PetID,
		}
		if req.Type != nil {
			in.Type = *req.Type
		}
		if req.Size != nil {
			in.Size = *req.Size
		}

		c, err := svc.Create(r.Context(), in)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toCageResponse(c))
	}
}

// updateCageHandler godoc
// @Summary Actualizar jaula
// @Description status es obligatorio. start_date, end_date y pet_id se reemplazan siempre: omitirlos los limpia.
// @Tags cages
// @Accept json
// @Produce json
// @Param id path int true "ID de la jaula"
// @Param payload body cageRequest true "Datos de la jaula"
// @Success 200 {object} cageResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 404 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody "pet ya asignado a otra jaula"
// @Router /api/cages/{id} [put]
func updateCageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		var req cageRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		c, err := svc.Update(r.Context(), id, UpdateInput{
			Type:      req.Type,
			Size:      req.Size,
			Status:    req.Status,
			StartDate: req.StartDate.TimePtr(),
			EndDate:   req.EndDate.TimePtr(),
			PetID:     req.PetID,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toCageResponse(c))
	}
}

func deleteCageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		c, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toCageResponse(c))
	}
}

func listCagesByStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByStatus(r.Context(), chi.URLParam(r, "status"))
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toCageResponses(items))
	}
}

// filterCagesHandler godoc
// @Summary Filtrar jaulas por tipo y tamaño
// @Tags cages
// @Produce json
// @Param type query string true "Tipo (sin importar mayúsculas)"
// @Param size query string true "Tamaño (sin importar mayúsculas)"
// @Success 200 {array} cageResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Router /api/cages/filter [get]
func filterCagesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cageType, err := httpjson.RequiredQuery(r, "type")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		size, err := httpjson.RequiredQuery(r, "size")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		items, err := svc.Filter(r.Context(), cageType, size)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toCageResponses(items))
	}
}

func toCageResponse(c Cage) cageResponse {
	return cageResponse{
		ID:        c.ID,
		Type:      c.Type,
		Size:      c.Size,
		Status:    c.Status,
		StartDate: httpjson.DatePtr(c.StartDate),
		EndDate:   httpjson.DatePtr(c.EndDate),
		PetID:     c.PetID,
	}
}

func toCageResponses(items []Cage) []cageResponse {
	out := make([]cageResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCageResponse(c))
	}
	return out
}
