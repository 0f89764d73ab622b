package records

import (
	"net/http"

	"pet-clinic-admin/internal/middleware"
	"pet-clinic-admin/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	clinical := middleware.RequireRoles("ADMIN", "DOCTOR")

	r.Route("/records", func(rr chi.Router) {
		rr.With(middleware.RequireRoles("ADMIN", "DOCTOR", "STAFF")).Get("/", listRecordsHandler(svc))
		rr.With(clinical).Post("/", createRecordHandler(svc))

		rr.Get("/my-records", listMyRecordsHandler(svc))
		rr.Get("/pet/{petId}", listRecordsByPetHandler(svc))
		rr.Get("/user/{userId}", listRecordsByUserHandler(svc))

		rr.Get("/{id}", getRecordHandler(svc))
		rr.With(clinical).Put("/{id}", updateRecordHandler(svc))
		rr.With(clinical).Delete("/{id}", deleteRecordHandler(svc))
	})
}

type recordRequest struct {
	Diagnosis       *string        `json:"diagnosis"`
	Prescription    *string        `json:"prescription"`
	Notes           *string        `json:"notes"`
	NextMeetingDate *httpjson.Date `json:"next_meeting_date" swaggertype:"string" example:"2025-07-01"`
	PetID           *int64         `json:"pet_id"`
	UserID          *int64         `json:"user_id"`
}

type recordResponse struct {
	ID              int64          `json:"id"`
	Diagnosis       string         `json:"diagnosis"`
	Prescription    string         `json:"prescription"`
	Notes           string         `json:"notes"`
	NextMeetingDate *httpjson.Date `json:"next_meeting_date" swaggertype:"string"`
	PetID           int64          `json:"pet_id"`
	UserID          int64          `json:"user_id"`
}

func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		writeList(w, r, items, err)
	}
}

func listMyRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		items, err := svc.ListMine(r.Context(), claims)
		writeList(w, r, items, err)
	}
}

func listRecordsByPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := httpjson.IDParam(r, "petId")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		items, err := svc.ListByPet(r.Context(), petID)
		writeList(w, r, items, err)
	}
}

func listRecordsByUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httpjson.IDParam(r, "userId")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		items, err := svc.ListByUser(r.Context(), userID)
		writeList(w, r, items, err)
	}
}

func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		m, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toRecordResponse(m))
	}
}

// createRecordHandler godoc
// @Summary Crear historia clínica
// @Description Solo ADMIN o DOCTOR. pet_id y user_id tienen que existir.
// @Tags records
// @Accept json
// @Produce json
// @Param payload body recordRequest true "Historia clínica"
// @Success 200 {object} recordResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 403 {object} httpjson.MessageBody
// @Failure 404 {object} httpjson.ErrorBody
// @Router /api/records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		in := CreateInput{NextMeetingDate: req.NextMeetingDate.TimePtr()}
		if req.Diagnosis != nil {
			in.Diagnosis = *req.Diagnosis
		}
		if req.Prescription != nil {
			in.Prescription = *req.Prescription
		}
		if req.Notes != nil {
			in.Notes = *req.Notes
		}
		if req.PetID != nil {
			in.PetID = *req.PetID
		}
		if req.UserID != nil {
			in.UserID = *req.UserID
		}

		m, err := svc.Create(r.Context(), in)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toRecordResponse(m))
	}
}

func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		var req recordRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		m, err := svc.Update(r.Context(), id, UpdateInput{
			Diagnosis:       req.Diagnosis,
			Prescription:    req.Prescription,
			Notes:           req.Notes,
			NextMeetingDate: req.NextMeetingDate.TimePtr(),
			PetID:           req.PetID,
			UserID:          req.UserID,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toRecordResponse(m))
	}
}

func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		m, err := svc.Delete(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toRecordResponse(m))
	}
}

func writeList(w http.ResponseWriter, r *http.Request, items []MedicalRecord, err error) {
	if err != nil {
		httpjson.WriteError(w, r, err)
		return
	}
	out := make([]recordResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toRecordResponse(m))
	}
	httpjson.WriteJSON(w, http.StatusOK, out)
}

func toRecordResponse(m MedicalRecord) recordResponse {
	return recordResponse{
		ID:              m.ID,
		Diagnosis:       m.Diagnosis,
		Prescription:    m.Prescription,
		Notes:           m.Notes,
		NextMeetingDate: httpjson.DatePtr(m.NextMeetingDate),
		PetID:           m.PetID,
		UserID:          m.UserID,
	}
}
