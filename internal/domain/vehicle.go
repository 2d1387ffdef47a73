package domain

type VehicleType string

const (
	VehicleTypeCar        VehicleType = "CAR"
	VehicleTypeMotorcycle VehicleType = "MOTORCYCLE"
	VehicleTypeBicycle    VehicleType = "BICYCLE"
)

// ValidVehicleType reports whether t is one of the known vehicle types.
func ValidVehicleType(t VehicleType) bool {
	switch t {
	case VehicleTypeCar, VehicleTypeMotorcycle, VehicleTypeBicycle:
		return true
	}
	return false
}

type VehicleStatus string

// Whether a vehicle is currently rented is derived from its active
// rentals, never stored, so the status set only carries states an
// operator declares.
const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

func ValidVehicleStatus(s VehicleStatus) bool {
	return s == VehicleStatusAvailable || s == VehicleStatusMaintenance
}

type Vehicle struct {
	ID          string        `json:"id"`
	Type        VehicleType   `json:"type"`
	Brand       string        `json:"brand"`
	Model       string        `json:"model"`
	Year        int32         `json:"year"`
	Plate       string        `json:"plate"`
	PricePerDay float64       `json:"price_per_day"`
	Status      VehicleStatus `json:"status"`
	Features    string        `json:"features,omitempty"`
	CreatedOn   string        `json:"created_on"`
	UpdatedOn   string        `json:"updated_on"`
}

// VehicleAvailability is the result of an availability probe.
type VehicleAvailability struct {
	VehicleID string `json:"vehicle_id"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
