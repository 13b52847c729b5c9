package models

type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
}

type Shop struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags"`
	IsOpen      bool      `json:"is_open"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	DateApplied string    `json:"date_applied"`
	Services    []Service `json:"services"`
}
