package handlers_test

import (
	"context"
	"fmt"
	"time"

	"oncall/database/repository"
	"oncall/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes that mirror the Mongo implementations'
// semantics: ObjectID hex parsing, match-count checks where the real
// repo checks them, and silent no-ops where it doesn't.

type memBookingRepo struct {
	docs map[string]models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{docs: make(map[string]models.Booking)}
}

func (m *memBookingRepo) Create(ctx context.Context, booking *models.Booking) (string, error) {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	m.docs[booking.ID.Hex()] = *booking
	return booking.ID.Hex(), nil
}

func (m *memBookingRepo) List(ctx context.Context, status string, limit int64) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.docs {
		if status != "" && b.Status != status {
			continue
		}
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *memBookingRepo) Assign(ctx context.Context, bookingID, technicianID string) error {
	if _, err := primitive.ObjectIDFromHex(bookingID); err != nil {
		return fmt.Errorf("booking id %q: %w", bookingID, repository.ErrInvalidID)
	}
	booking, ok := m.docs[bookingID]
	if !ok {
		return fmt.Errorf("booking %s: %w", bookingID, repository.ErrNotFound)
	}
	booking.TechnicianID = technicianID
	booking.Status = models.BookingStatusAssigned
	booking.UpdatedAt = time.Now()
	m.docs[bookingID] = booking
	return nil
}

type memTechnicianRepo struct {
	docs map[string]*models.Technician
}

func newMemTechnicianRepo() *memTechnicianRepo {
	return &memTechnicianRepo{docs: make(map[string]*models.Technician)}
}

func (m *memTechnicianRepo) Create(ctx context.Context, technician *models.Technician) (string, error) {
	technician.ID = primitive.NewObjectID()
	clone := *technician
	m.docs[technician.ID.Hex()] = &clone
	return technician.ID.Hex(), nil
}

func (m *memTechnicianRepo) List(ctx context.Context, limit int64) ([]models.Technician, error) {
	var out []models.Technician
	for _, tech := range m.docs {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, *tech)
	}
	return out, nil
}

func (m *memTechnicianRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("technician id %q: %w", id, repository.ErrInvalidID)
	}
	tech, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("technician %s: %w", id, repository.ErrNotFound)
	}
	clone := *tech
	return &clone, nil
}

func (m *memTechnicianRepo) UpsertLocation(ctx context.Context, id string, lat, lng float64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("technician id %q: %w", id, repository.ErrInvalidID)
	}
	tech, ok := m.docs[id]
	if !ok {
		tech = &models.Technician{ID: oid}
		m.docs[id] = tech
	}
	tech.Lat = lat
	tech.Lng = lng
	return nil
}

func (m *memTechnicianRepo) SetRating(ctx context.Context, id string, avg float64, count int) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("technician id %q: %w", id, repository.ErrInvalidID)
	}
	if tech, ok := m.docs[id]; ok {
		tech.RatingAvg = avg
		tech.RatingCount = count
	}
	return nil
}

type memReviewRepo struct {
	docs []models.Review
}

func (m *memReviewRepo) Create(ctx context.Context, review *models.Review) (string, error) {
	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()
	m.docs = append(m.docs, *review)
	return review.ID.Hex(), nil
}

func (m *memReviewRepo) ListByTechnician(ctx context.Context, technicianID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range m.docs {
		if r.TechnicianID == technicianID {
			out = append(out, r)
		}
	}
	return out, nil
}

type memPaymentRepo struct {
	docs map[string]*models.Payment
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{docs: make(map[string]*models.Payment)}
}

func (m *memPaymentRepo) Create(ctx context.Context, payment *models.Payment) (string, error) {
	payment.ID = primitive.NewObjectID()
	clone := *payment
	m.docs[payment.ID.Hex()] = &clone
	return payment.ID.Hex(), nil
}

func (m *memPaymentRepo) SetIntent(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("payment id %q: %w", id, repository.ErrInvalidID)
	}
	if doc, ok := m.docs[id]; ok {
		doc.Status = models.PaymentStatusPending
		doc.TransactionID = id
	}
	return nil
}

func (m *memPaymentRepo) MarkSucceeded(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("payment id %q: %w", id, repository.ErrInvalidID)
	}
	if doc, ok := m.docs[id]; ok {
		doc.Status = models.PaymentStatusSucceeded
	}
	return nil
}

type memCustomerRepo struct {
	docs map[string]models.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{docs: make(map[string]models.Customer)}
}

func (m *memCustomerRepo) Create(ctx context.Context, customer *models.Customer) (string, error) {
	customer.ID = primitive.NewObjectID()
	m.docs[customer.ID.Hex()] = *customer
	return customer.ID.Hex(), nil
}

func (m *memCustomerRepo) List(ctx context.Context, limit int64) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range m.docs {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, c)
	}
	return out, nil
}
