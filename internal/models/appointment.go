package models

type Appointment struct {
	ID           string   `json:"id"`
	ShopID       string   `json:"shop_id"`
	ShopName     string   `json:"shop_name"`
	BarberID     string   `json:"barber_id"`
	BarberName   string   `json:"barber_name"`
	CustomerID   string   `json:"customer_id"`
	CustomerName string   `json:"customer_name"`
	ServiceName  string   `json:"service_name"`
	ServiceNames []string `json:"service_names,omitempty"`
	Price        string   `json:"price"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Status       string   `json:"status"`
}
