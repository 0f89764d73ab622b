package catalog

import (
	"net/http"

	"pet-clinic-admin/internal/middleware"
	"pet-clinic-admin/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	admin := middleware.RequireRoles("ADMIN")

	r.Route("/services", func(sr chi.Router) {
		sr.Get("/", listServicesHandler(svc))
		sr.With(admin).Post("/", createServiceHandler(svc))

		sr.Get("/{id}", getServiceHandler(svc))
		sr.With(admin).Put("/{id}", updateServiceHandler(svc))
		sr.With(admin).Delete("/{id}", deleteServiceHandler(svc))
	})
}

type serviceRequest struct {
	Name        *string  `json:"service_name"`
	Category    *string  `json:"category" enums:"EMERGENCY,HEALTH,CARE,MEDICAL"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" minimum:"0"`
}

type serviceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"service_name"`
	Category    *Category `json:"category"`
	Description string    `json:"description"`
	Price       *float64  `json:"price"`
}

func listServicesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		out := make([]serviceResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toServiceResponse(o))
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

func getServiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		o, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toServiceResponse(o))
	}
}

// createServiceHandler godoc
// @Summary Alta de servicio del catálogo
// @Tags services
// @Accept json
// @Produce json
// @Param payload body serviceRequest true "Servicio"
// @Success 200 {object} serviceResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 403 {object} httpjson.MessageBody
// @Router /api/services [post]
func createServiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req serviceRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		in := CreateInput{Category: req.Category, Price: req.Price}
		if req.Name != nil {
			in.Name = *req.Name
		}
		if req.Description != nil {
			in.Description = *req.Description
		}

		o, err := svc.Create(r.Context(), in)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toServiceResponse(o))
	}
}

func updateServiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		var req serviceRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		o, err := svc.Update(r.Context(), id, UpdateInput{
			Name:        req.Name,
			Category:    req.Category,
			Description: req.Description,
			Price:       req.Price,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toServiceResponse(o))
	}
}

func deleteServiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		o, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toServiceResponse(o))
	}
}

func toServiceResponse(o Offering) serviceResponse {
	out := serviceResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Price:       o.Price,
	}
	if o.Category != "" {
		c := o.Category
		out.Category = &c
	}
	return out
}
