package store

import (
	"time"

	domainAppointment "github.com/trimandtone/booking-api/internal/domain/appointment"
	domainShop "github.com/trimandtone/booking-api/internal/domain/shop"
	"github.com/trimandtone/booking-api/internal/models"
)

const (
	defaultShopImage    = "/assets/shops/default.jpg"
	defaultBarberAvatar = "/assets/barbers/default.jpg"
)

func seedShops() []models.Shop {
	return []models.Shop{
		{
			ID:          "1",
			Name:        "The Gentleman's Den",
			Image:       "/assets/shops/gentlemans-den.jpg",
			Rating:      4.9,
			Reviews:     128,
			Location:    "Downtown, Metro City",
			Tags:        []string{"Classic Shave", "Beard Trim", "Premium"},
			IsOpen:      true,
			Status:      string(domainShop.StatusActive),
			OwnerID:     "barber_1",
			OwnerName:   "James Wilson",
			DateApplied: "2024-01-15",
			Services: []models.Service{
				{Name: "Classic Haircut", Price: "$35", Duration: "45 min", Description: "Traditional cut with scissors and clippers"},
				{Name: "Beard Trim & Shape", Price: "$25", Duration: "30 min", Description: "Professional beard grooming"},
				{Name: "Full Service (Cut & Shave)", Price: "$55", Duration: "75 min", Description: "Complete grooming experience"},
				{Name: "Hot Towel Shave", Price: "$30", Duration: "30 min", Description: "Luxurious hot towel treatment"},
			},
		},
		{
			ID:          "2",
			Name:        "Urban Cuts & Co.",
			Image:       "/assets/shops/urban-cuts.jpg",
			Rating:      4.7,
			Reviews:     85,
			Location:    "Westside Arts District",
			Tags:        []string{"Modern Styles", "Hair Tattoo"},
			IsOpen:      true,
			Status:      string(domainShop.StatusActive),
			OwnerID:     "barber_2",
			OwnerName:   "Marcus Chen",
			DateApplied: "2024-02-20",
			Services: []models.Service{
				{Name: "Fade Haircut", Price: "$40", Duration: "35 min", Description: "Clean fade with precision"},
				{Name: "Hair Design", Price: "$60", Duration: "45 min", Description: "Custom hair design"},
				{Name: "Buzz Cut", Price: "$25", Duration: "15 min", Description: "Quick buzz cut"},
				{Name: "Kids Haircut", Price: "$30", Duration: "25 min", Description: "Kid-friendly haircut"},
			},
		},
		{
			ID:          "3",
			Name:        "Blade & Bourbon",
			Image:       "/assets/shops/blade-bourbon.jpg",
			Rating:      4.8,
			Reviews:     210,
			Location:    "Uptown Plaza",
			Tags:        []string{"Luxury", "Drinks Included", "Hot Towel"},
			IsOpen:      false,
			Status:      string(domainShop.StatusActive),
			OwnerID:     "barber_3",
			OwnerName:   "Sarah Jenkins",
			DateApplied: "2024-03-10",
			Services: []models.Service{
				{Name: "Premium Haircut", Price: "$50", Duration: "50 min", Description: "Luxury haircut service"},
				{Name: "Bourbon Shave", Price: "$45", Duration: "40 min", Description: "Shave with bourbon experience"},
				{Name: "Full Luxury Package", Price: "$85", Duration: "90 min", Description: "Complete luxury grooming"},
				{Name: "Beard Grooming", Price: "$35", Duration: "30 min", Description: "Premium beard care"},
			},
		},
	}
}

func seedAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID:           "101",
			ShopID:       "1",
			ShopName:     "The Gentleman's Den",
			BarberID:     "barber_1",
			BarberName:   "James Wilson",
			CustomerID:   "customer_1",
			CustomerName: "Alex M.",
			ServiceName:  "Classic Haircut",
			Price:        "$35",
			Date:         time.Now().Format("2006-01-02"),
			Time:         "14:00",
			Status:       string(domainAppointment.StatusConfirmed),
		},
	}
}

func seedBarberProfile() models.BarberProfile {
	return models.BarberProfile{
		ID:          "1",
		FirstName:   "James",
		LastName:    "Wilson",
		Bio:         "Master Barber with 10 years of experience.",
		Specialties: "Fades, Beards, Hot Towel",
		Availability: map[string]models.DayAvailability{
			"Monday":    {Start: "09:00", End: "17:00", Active: true},
			"Tuesday":   {Start: "09:00", End: "17:00", Active: true},
			"Wednesday": {Start: "09:00", End: "17:00", Active: true},
			"Thursday":  {Start: "09:00", End: "17:00", Active: true},
			"Friday":    {Start: "09:00", End: "17:00", Active: true},
		},
	}
}
