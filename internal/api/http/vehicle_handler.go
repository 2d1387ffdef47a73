package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
	rentalSvc  service.RentalService
}

func NewVehicleHandler(vehicleSvc service.VehicleService, rentalSvc service.RentalService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc, rentalSvc: rentalSvc}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if err := decodeJSON(r, &vehicle); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if err := h.vehicleSvc.CreateVehicle(r.Context(), &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	vehicle, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if err := decodeJSON(r, &vehicle); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	vehicle.ID = mux.Vars(r)["id"]

	if err := h.vehicleSvc.UpdateVehicle(r.Context(), &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.vehicleSvc.DeleteVehicle(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicleType := domain.VehicleType(r.URL.Query().Get("type"))
	status := domain.VehicleStatus(r.URL.Query().Get("status"))

	vehicles, err := h.vehicleSvc.ListVehicles(r.Context(), vehicleType, status)
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		writeBadRequest(w, "start_date and end_date are required")
		return
	}

	result, err := h.rentalSvc.CheckAvailability(r.Context(), id, startDate, endDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
