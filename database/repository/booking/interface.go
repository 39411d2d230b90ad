package bookingRepo

import "servana/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	// ListByCustomer retrieves a customer's bookings, newest first.
	ListByCustomer(customerID string) ([]models.Booking, error)
	// ListByBusiness retrieves a business's bookings, newest first.
	ListByBusiness(businessID string) ([]models.Booking, error)
	Create(b *models.Booking) error
	Update(b *models.Booking) error
}

// ActionRepository defines methods for the append-only booking audit log.
type ActionRepository interface {
	Append(a *models.BookingAction) error
	ListByBooking(bookingID string) ([]models.BookingAction, error)
}
