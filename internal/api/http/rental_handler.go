package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Notes      string `json:"notes"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.CustomerID == "" || req.VehicleID == "" {
		writeBadRequest(w, "customer_id and vehicle_id are required")
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), req.CustomerID, req.VehicleID, req.StartDate, req.EndDate, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

type quoteRequest struct {
	VehicleID string `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Quote prices a prospective rental without persisting anything.
func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.VehicleID == "" || req.StartDate == "" || req.EndDate == "" {
		writeBadRequest(w, "vehicle_id, start_date and end_date are required")
		return
	}

	quote, err := h.rentalSvc.QuoteRental(r.Context(), req.VehicleID, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	detail, err := h.rentalSvc.GetRentalDetail(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.RentalFilter{
		Status:     domain.RentalStatus(q.Get("status")),
		CustomerID: q.Get("customer_id"),
		VehicleID:  q.Get("vehicle_id"),
		FromDate:   q.Get("from_date"),
		ToDate:     q.Get("to_date"),
	}

	rentals, err := h.rentalSvc.ListRentals(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

type returnRequest struct {
	ReturnDate string `json:"return_date"`
	Notes      string `json:"notes"`
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req returnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.ReturnDate == "" {
		writeBadRequest(w, "return_date is required")
		return
	}

	rental, err := h.rentalSvc.ReturnVehicle(r.Context(), id, req.ReturnDate, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rental, err := h.rentalSvc.CancelRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}
