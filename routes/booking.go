package routes

import (
	"palmera/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/draft", hb.Booking.StartDraft)                          // Step 1: select booking
		booking.GET("/draft/:draftID", hb.Booking.GetDraft)
		booking.DELETE("/draft/:draftID", hb.Booking.CancelDraft)
		booking.PATCH("/draft/:draftID/tickets", hb.Booking.UpdateTickets)
		booking.PATCH("/draft/:draftID/amenities", hb.Booking.UpdateAmenities)
		booking.PATCH("/draft/:draftID/mode", hb.Booking.SetMode)
		booking.PATCH("/draft/:draftID/dates", hb.Booking.SetDates)
		booking.PATCH("/draft/:draftID/entrance", hb.Booking.SetEntrance)
		booking.PATCH("/draft/:draftID/guest", hb.Booking.SetGuestInfo)        // Step 2: enter info
		booking.POST("/draft/:draftID/validate-payment", hb.Booking.ValidatePayment)
		booking.POST("/draft/:draftID/confirm", hb.Booking.Confirm)            // Step 3: pay
	}
}
