package models

type DayAvailability struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Active bool   `json:"active"`
}

type BarberProfile struct {
	ID           string                     `json:"id"`
	FirstName    string                     `json:"first_name"`
	LastName     string                     `json:"last_name"`
	Bio          string                     `json:"bio"`
	Specialties  string                     `json:"specialties"`
	Availability map[string]DayAvailability `json:"availability"`
}
