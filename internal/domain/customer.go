package domain

type Customer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	NationalID   string `json:"national_id"`
	Address      string `json:"address"`
	RegisteredOn string `json:"registered_on"`
	UpdatedOn    string `json:"updated_on"`
}
