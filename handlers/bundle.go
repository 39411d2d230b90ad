package handlers

import (
	customerRepo "servana/database/repository/customer"
	providerRepo "servana/database/repository/provider"
)

// HandlerBundle carries every wired handler plus the repositories the auth
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	CustomerRepo customerRepo.CustomerRepository
	ProviderRepo providerRepo.ProviderRepository

	Catalog     *CatalogHandler
	Business    *BusinessHandler
	Provider    *ProviderHandler
	BookingFlow *BookingFlowHandler
	Bookings    *BookingsHandler
	Customer    *CustomerHandler
	Locations   *LocationHandler
	Promotions  *PromotionHandler
	Messaging   *MessagingHandler
	Mail        *MailHandler
	Payments    *PaymentHandler
	Assist      *AssistHandler
	Storage     *StorageHandler
}
