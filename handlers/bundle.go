package handlers

// HandlerBundle collects every handler the router needs.
type HandlerBundle struct {
	Auth         *AuthHandler
	Booking      *BookingHandler
	Catalog      *CatalogHandler
	Rates        *RatesHandler
	Blocked      *BlockedHandler
	Reservations *ReservationHandler
}
