package store

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domainAppointment "github.com/trimandtone/booking-api/internal/domain/appointment"
	domainShop "github.com/trimandtone/booking-api/internal/domain/shop"
	"github.com/trimandtone/booking-api/internal/models"
)

// ======================================================
// STORE
// ======================================================

// Store is the single mutable aggregate behind the marketplace: shops,
// appointments, the barber profile, the credential registry and the current
// session. Every screen-facing operation goes through it. State is process
// local; a restart resets everything to the seed data.
type Store struct {
	mu sync.RWMutex

	admin AdminCredential

	currentUser  *models.User
	shops        []models.Shop
	appointments []models.Appointment
	profile      models.BarberProfile
	registry     []models.Credential
}

// AdminCredential is the bootstrap pair injected at construction. Logging in
// with it yields a synthetic admin identity that never enters the registry.
type AdminCredential struct {
	Email    string
	Password string
}

func New(admin AdminCredential) *Store {
	return &Store{
		admin:        admin,
		shops:        seedShops(),
		appointments: seedAppointments(),
		profile:      seedBarberProfile(),
	}
}

// ======================================================
// INPUTS
// ======================================================

type NewAppointment struct {
	ShopID       string
	ShopName     string
	BarberID     string
	BarberName   string
	CustomerID   string
	CustomerName string
	ServiceName  string
	ServiceNames []string
	Price        string
	Date         string
	Time         string
}

// NewShop carries a shop application. Tags are accepted for shape
// compatibility but discarded: every new application is tagged "New".
type NewShop struct {
	Name        string
	Location    string
	Description string
	OwnerID     string
	OwnerName   string
	Tags        []string
	Services    []models.Service
}

// ProfilePatch is a partial update; nil fields are left untouched. A non-nil
// Availability replaces the whole schedule.
type ProfilePatch struct {
	FirstName    *string
	LastName     *string
	Bio          *string
	Specialties  *string
	Availability map[string]models.DayAvailability
}

// ======================================================
// AUTH
// ======================================================

// Login matches the bootstrap admin pair first, then the signup registry.
// Unknown email and wrong password are indistinguishable: both return nil.
// On success the current session is replaced.
func (s *Store) Login(email, password string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email == s.admin.Email && password == s.admin.Password {
		u := models.User{
			ID:    "admin_1",
			Name:  "System Admin",
			Email: s.admin.Email,
			Role:  models.RoleAdmin,
		}
		s.currentUser = &u
		out := u
		return &out
	}

	for _, cred := range s.registry {
		if cred.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
			continue
		}

		u := models.User{
			ID:    cred.UserID,
			Name:  emailLocalPart(email),
			Email: email,
			Role:  cred.Role,
		}
		if cred.Role == models.RoleBarber {
			u.Avatar = defaultBarberAvatar
		}
		s.currentUser = &u
		out := u
		return &out
	}

	return nil
}

// Signup registers a credential and opens a session. Returns nil when the
// email is already registered. A requested admin role is downgraded to
// customer; admin accounts cannot be self-created.
func (s *Store) Signup(name, email, password, role string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cred := range s.registry {
		if cred.Email == email {
			return nil
		}
	}

	if role == models.RoleAdmin {
		role = models.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil
	}

	id := role + "_" + sanitizeLocalPart(email) + "_" + randomSuffix()

	s.registry = append(s.registry, models.Credential{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		UserID:       id,
	})

	u := models.User{
		ID:    id,
		Name:  name,
		Email: email,
		Role:  role,
	}
	s.currentUser = &u
	out := u
	return &out
}

// Logout clears the current session only; the registry is untouched.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
}

func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return nil
	}
	out := *s.currentUser
	return &out
}

// ======================================================
// APPOINTMENTS
// ======================================================

// AddAppointment appends a booking. The id is generated and the status is
// forced to pending regardless of input. Referenced shop and barber are not
// validated here; that is the callers' concern.
func (s *Store) AddAppointment(in NewAppointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap := models.Appointment{
		ID:           newID(),
		ShopID:       in.ShopID,
		ShopName:     in.ShopName,
		BarberID:     in.BarberID,
		BarberName:   in.BarberName,
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		ServiceName:  in.ServiceName,
		ServiceNames: append([]string(nil), in.ServiceNames...),
		Price:        in.Price,
		Date:         in.Date,
		Time:         in.Time,
		Status:       string(domainAppointment.InitialStatus()),
	}
	s.appointments = append(s.appointments, ap)
	return ap
}

// UpdateAppointmentStatus replaces the status of the matching appointment.
// Unknown ids are a silent no-op. Any status value is written as given; the
// store keeps no transition table.
func (s *Store) UpdateAppointmentStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i].Status = status
			return
		}
	}
}

func (s *Store) GetAppointment(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ap := range s.appointments {
		if ap.ID == id {
			return ap, true
		}
	}
	return models.Appointment{}, false
}

// GetCustomerBookings returns the customer's appointments in insertion order.
func (s *Store) GetCustomerBookings(customerID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if ap.CustomerID == customerID {
			out = append(out, ap)
		}
	}
	return out
}

// GetShopBookings returns the shop's appointments in insertion order.
func (s *Store) GetShopBookings(shopID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if ap.ShopID == shopID {
			out = append(out, ap)
		}
	}
	return out
}

func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Appointment{}, s.appointments...)
}

// ======================================================
// BARBER PROFILE
// ======================================================

// UpdateBarberProfile shallow-merges the patch into the profile singleton and
// returns the result.
func (s *Store) UpdateBarberProfile(patch ProfilePatch) models.BarberProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.FirstName != nil {
		s.profile.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		s.profile.LastName = *patch.LastName
	}
	if patch.Bio != nil {
		s.profile.Bio = *patch.Bio
	}
	if patch.Specialties != nil {
		s.profile.Specialties = *patch.Specialties
	}
	if patch.Availability != nil {
		s.profile.Availability = cloneAvailability(patch.Availability)
	}

	return cloneProfile(s.profile)
}

func (s *Store) BarberProfile() models.BarberProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProfile(s.profile)
}

// ======================================================
// SHOPS
// ======================================================

// AddShop files a shop application: generated id, pending status, zeroed
// rating and reviews, placeholder image, closed, tagged "New", dateApplied
// stamped with today's date.
func (s *Store) AddShop(in NewShop) models.Shop {
	s.mu.Lock()
	defer s.mu.Unlock()

	sh := models.Shop{
		ID:          newID(),
		Name:        in.Name,
		Image:       defaultShopImage,
		Rating:      0,
		Reviews:     0,
		Location:    in.Location,
		Description: in.Description,
		Tags:        []string{"New"},
		IsOpen:      false,
		Status:      string(domainShop.StatusPending),
		OwnerID:     in.OwnerID,
		OwnerName:   in.OwnerName,
		DateApplied: time.Now().Format("2006-01-02"),
		Services:    append([]models.Service(nil), in.Services...),
	}
	s.shops = append(s.shops, sh)
	return sh
}

// ApproveShop activates and opens the matching shop; unknown ids no-op.
func (s *Store) ApproveShop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shops {
		if s.shops[i].ID == id {
			s.shops[i].Status = string(domainShop.StatusActive)
			s.shops[i].IsOpen = true
			return
		}
	}
}

// RejectShop removes the shop entirely; a rejected application leaves no
// trace. Unknown ids no-op.
func (s *Store) RejectShop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shops {
		if s.shops[i].ID == id {
			s.shops = append(s.shops[:i], s.shops[i+1:]...)
			return
		}
	}
}

// SearchShops matches active shops whose name or any tag contains the query,
// case-insensitively. A location other than "" or "all" additionally filters
// by location substring. Pending shops are never returned.
func (s *Store) SearchShops(query, location string) []models.Shop {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	loc := strings.ToLower(location)

	out := []models.Shop{}
	for _, sh := range s.shops {
		if sh.Status != string(domainShop.StatusActive) {
			continue
		}
		if !matchesQuery(sh, q) {
			continue
		}
		if loc != "" && loc != "all" && !strings.Contains(strings.ToLower(sh.Location), loc) {
			continue
		}
		out = append(out, sh)
	}
	return out
}

// GetBarberShop returns the first shop owned by the given barber. The model
// does not prevent multiple shops per owner, but callers assume at most one.
func (s *Store) GetBarberShop(ownerID string) (models.Shop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sh := range s.shops {
		if sh.OwnerID == ownerID {
			return sh, true
		}
	}
	return models.Shop{}, false
}

func (s *Store) GetShop(id string) (models.Shop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sh := range s.shops {
		if sh.ID == id {
			return sh, true
		}
	}
	return models.Shop{}, false
}

func (s *Store) Shops() []models.Shop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Shop{}, s.shops...)
}

// ======================================================
// HELPERS
// ======================================================

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

func sanitizeLocalPart(email string) string {
	return nonAlnum.ReplaceAllString(emailLocalPart(email), "")
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

func matchesQuery(sh models.Shop, q string) bool {
	if strings.Contains(strings.ToLower(sh.Name), q) {
		return true
	}
	for _, tag := range sh.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func cloneAvailability(in map[string]models.DayAvailability) map[string]models.DayAvailability {
	out := make(map[string]models.DayAvailability, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneProfile(p models.BarberProfile) models.BarberProfile {
	p.Availability = cloneAvailability(p.Availability)
	return p
}
