package domain

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

func ValidRentalStatus(s RentalStatus) bool {
	switch s {
	case RentalStatusActive, RentalStatusCompleted, RentalStatusCancelled:
		return true
	}
	return false
}

// Rental dates travel as plain yyyy-mm-dd calendar dates; there is no
// time-of-day component anywhere in the rental contract. The booked
// interval is half-open: [StartDate, EndDate).
type Rental struct {
	ID               string       `json:"id"`
	CustomerID       string       `json:"customer_id"`
	VehicleID        string       `json:"vehicle_id"`
	StartDate        string       `json:"start_date"`
	EndDate          string       `json:"end_date"`
	Days             int32        `json:"days"`
	TotalPrice       float64      `json:"total_price"`
	Status           RentalStatus `json:"status"`
	ActualReturnDate *string      `json:"actual_return_date,omitempty"`
	Notes            string       `json:"notes,omitempty"`
	CreatedOn        string       `json:"created_on"`
	UpdatedOn        string       `json:"updated_on"`
}

// RentalDetail joins a rental with the customer and vehicle it references.
type RentalDetail struct {
	Rental
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	VehicleBrand  string      `json:"vehicle_brand"`
	VehicleModel  string      `json:"vehicle_model"`
	VehiclePlate  string      `json:"vehicle_plate"`
	VehicleType   VehicleType `json:"vehicle_type"`
}

// RentalQuote prices a prospective rental without persisting anything.
// DiscountAmount and DiscountReason are nil when no discount applies.
type RentalQuote struct {
	VehicleID      string   `json:"vehicle_id"`
	PricePerDay    float64  `json:"price_per_day"`
	Days           int32    `json:"days"`
	TotalPrice     float64  `json:"total_price"`
	DiscountAmount *float64 `json:"discount_amount,omitempty"`
	DiscountReason *string  `json:"discount_reason,omitempty"`
}

// RentalFilter narrows rental listings. Zero values mean "no filter";
// the date bounds apply to the rental start date.
type RentalFilter struct {
	Status     RentalStatus
	CustomerID string
	VehicleID  string
	FromDate   string
	ToDate     string
}
