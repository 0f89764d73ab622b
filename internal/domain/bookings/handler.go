package bookings

import (
	"context"
	"net/http"

	"pet-clinic-admin/internal/middleware"
	"pet-clinic-admin/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	staff := middleware.RequireRoles("ADMIN", "STAFF")

	r.Route("/bookings", func(br chi.Router) {
		br.With(staff).Get("/", listBookingsHandler(svc))
		br.Post("/", createBookingHandler(svc))

		br.Get("/my-bookings", listMyBookingsHandler(svc))
		br.Get("/user/{userId}", listBookingsByUserHandler(svc))
		br.Get("/service/{serviceId}", listBookingsByServiceHandler(svc))

		br.Get("/{id}", getBookingHandler(svc))
		br.Put("/{id}", updateBookingHandler(svc))
		br.With(staff).Delete("/{id}", deleteBookingHandler(svc))

		br.Put("/{id}/cancel", cancelBookingHandler(svc))
		br.Get("/{id}/status", getBookingStatusHandler(svc))
		br.With(staff).Patch("/{id}/status", updateBookingStatusHandler(svc))
	})
}

// bookingRequest: status se ignora en el alta (siempre PENDING).
type bookingRequest struct {
	StartDate *httpjson.Date `json:"start_date" swaggertype:"string" example:"2025-06-01"`
	EndDate   *httpjson.Date `json:"end_date" swaggertype:"string" example:"2025-06-08"`
	Status    *string        `json:"status"`
	Notes     *string        `json:"notes"`
	UserID    *int64         `json:"user_id"`
	ServiceID *int64         `json:"service_id"`
}

type bookingResponse struct {
	ID        int64          `json:"id"`
	StartDate httpjson.Date  `json:"start_date" swaggertype:"string"`
	EndDate   *httpjson.Date `json:"end_date" swaggertype:"string"`
	Status    Status         `json:"status"`
	Notes     string         `json:"notes"`
	UserID    int64          `json:"user_id"`
	ServiceID int64          `json:"service_id"`
}

type bookingStatusResponse struct {
	ID     int64  `json:"id"`
	Status Status `json:"status"`
}

func listBookingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		writeBookings(w, r, items, err)
	}
}

func listMyBookingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		items, err := svc.ListMine(r.Context(), claims)
		writeBookings(w, r, items, err)
	}
}

func listBookingsByUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httpjson.IDParam(r, "userId")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		items, err := svc.ListByUser(r.Context(), userID)
		writeBookings(w, r, items, err)
	}
}

func listBookingsByServiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := httpjson.IDParam(r, "serviceId")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		items, err := svc.ListByService(r.Context(), serviceID)
		writeBookings(w, r, items, err)
	}
}

func getBookingHandler(svc *Service) http.HandlerFunc {
	return byIDHandler(svc.GetByID)
}

func cancelBookingHandler(svc *Service) http.HandlerFunc {
	return byIDHandler(svc.Cancel)
}

// deleteBookingHandler godoc
// @Summary Borrar reserva
// @Description Solo reservas en PENDING; en cualquier otro estado responde 409.
// @Tags bookings
// @Produce json
// @Param id path int true "ID de la reserva"
// @Success 200 {object} bookingResponse
// @Failure 404 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody
// @Router /api/bookings/{id} [delete]
func deleteBookingHandler(svc *Service) http.HandlerFunc {
	return byIDHandler(svc.Delete)
}

// createBookingHandler godoc
// @Summary Crear reserva
// @Description La reserva nace en PENDING aunque se envíe otro status.
// @Tags bookings
// @Accept json
// @Produce json
// @Param payload body bookingRequest true "Reserva"
// @Success 200 {object} bookingResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 404 {object} httpjson.ErrorBody "user or service not found"
// @Router /api/bookings [post]
func createBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookingRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		in := CreateInput{
			StartDate: req.StartDate.TimePtr(),
			EndDate:   req.EndDate.TimePtr(),
		}
		if req.Notes != nil {
			in.Notes = *req.Notes
		}
		if req.UserID != nil {
			in.UserID = *req.UserID
		}
		if req.ServiceID != nil {
			in.ServiceID = *req.ServiceID
		}

		b, err := svc.Create(r.Context(), in)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toBookingResponse(b))
	}
}

func updateBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		var req bookingRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		b, err := svc.Update(r.Context(), id, UpdateInput{
			StartDate: req.StartDate.TimePtr(),
			EndDate:   req.EndDate.TimePtr(),
			Notes:     req.Notes,
			UserID:    req.UserID,
			ServiceID: req.ServiceID,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toBookingResponse(b))
	}
}

func getBookingStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		st, err := svc.GetStatus(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, bookingStatusResponse{ID: id, Status: st})
	}
}

// updateBookingStatusHandler godoc
// @Summary Cambiar estado de la reserva
// @Description No valida transiciones: cualquier estado válido es aceptado.
// @Tags bookings
// @Produce json
// @Param id path int true "ID de la reserva"
// @Param status query string true "PENDING, ACCEPTED, COMPLETED o CANCELLED"
// @Success 200 {object} bookingResponse
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 404 {object} httpjson.ErrorBody
// @Router /api/bookings/{id}/status [patch]
func updateBookingStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		status, err := httpjson.RequiredQuery(r, "status")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		b, err := svc.UpdateStatus(r.Context(), id, status)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toBookingResponse(b))
	}
}

func byIDHandler(fn func(ctx context.Context, id int64) (Booking, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		b, err := fn(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, toBookingResponse(b))
	}
}

func writeBookings(w http.ResponseWriter, r *http.Request, items []Booking, err error) {
	if err != nil {
		httpjson.WriteError(w, r, err)
		return
	}
	out := make([]bookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, toBookingResponse(b))
	}
	httpjson.WriteJSON(w, http.StatusOK, out)
}

func toBookingResponse(b Booking) bookingResponse {
	return bookingResponse{
		ID:        b.ID,
		StartDate: httpjson.NewDate(b.StartDate),
		EndDate:   httpjson.DatePtr(b.EndDate),
		Status:    b.Status,
		Notes:     b.Notes,
		UserID:    b.UserID,
		ServiceID: b.ServiceID,
	}
}
