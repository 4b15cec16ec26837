package admin

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxiadmin/internal/domain"
	"taxiadmin/internal/flash"
	"taxiadmin/internal/middleware"
	"taxiadmin/internal/repository"
)

// Dispatcher turns form posts from the panel into API write calls. It is
// strict before the network and forgiving after it: bad input never reaches
// the API, and a failed call only changes the banner; the response is
// always a redirect back to the originating view.
type Dispatcher struct {
	documents repository.DocumentRepository
	rides     repository.RideRepository
	bookings  repository.BookingRepository
	flash     Flash
	log       *zap.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(
	documents repository.DocumentRepository,
	rides repository.RideRepository,
	bookings repository.BookingRepository,
	messages Flash,
	log *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		documents: documents,
		rides:     rides,
		bookings:  bookings,
		flash:     messages,
		log:       log,
	}
}

// UpdateDocumentStatus handles POST /admin/documents/action.
func (d *Dispatcher) UpdateDocumentStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sid := middleware.SessionID(c)
	back := redirectTarget(c, "/admin/documents")

	if !d.checkAction(c, sid, back) {
		return
	}

	id := formID(c, "document_id")
	status := strings.TrimSpace(c.PostForm("status"))
	if id == 0 || status == "" {
		d.flash.Add(ctx, sid, flash.LevelError, "Document id and status are required.")
		c.Redirect(http.StatusSeeOther, back)
		return
	}

	reason := c.PostForm("rejection_reason")
	if d.documents.UpdateStatus(ctx, id, domain.DocumentStatus(status), reason) {
		d.flash.Add(ctx, sid, flash.LevelSuccess,
			fmt.Sprintf("Document #%d status set to %q.", id, status))
	} else {
		d.log.Warn("document status update not confirmed",
			zap.Uint("id", id), zap.String("status", status))
		d.flash.Add(ctx, sid, flash.LevelError,
			"The API did not confirm the document update.")
	}
	c.Redirect(http.StatusSeeOther, back)
}

// UpdateRideStatus handles POST /admin/rides/action.
func (d *Dispatcher) UpdateRideStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sid := middleware.SessionID(c)
	back := redirectTarget(c, "/admin/rides")

	if !d.checkAction(c, sid, back) {
		return
	}

	id := formID(c, "ride_id")
	status := strings.TrimSpace(c.PostForm("status"))
	if id == 0 || status == "" {
		d.flash.Add(ctx, sid, flash.LevelError, "Ride id and status are required.")
		c.Redirect(http.StatusSeeOther, back)
		return
	}

	fields := map[string]any{"status": status}
	if reason := c.PostForm("cancellation_reason"); reason != "" {
		fields["cancellationReason"] = reason
	}
	if d.rides.Update(ctx, id, fields) {
		d.flash.Add(ctx, sid, flash.LevelSuccess,
			fmt.Sprintf("Ride #%d status set to %q.", id, status))
	} else {
		d.log.Warn("ride update not confirmed",
			zap.Uint("id", id), zap.String("status", status))
		d.flash.Add(ctx, sid, flash.LevelError,
			"The API did not confirm the ride update.")
	}
	c.Redirect(http.StatusSeeOther, back)
}

// UpdateBookingStatus handles POST /admin/bookings/action.
func (d *Dispatcher) UpdateBookingStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sid := middleware.SessionID(c)
	back := redirectTarget(c, "/admin/bookings")

	if !d.checkAction(c, sid, back) {
		return
	}

	id := formID(c, "booking_id")
	status := strings.TrimSpace(c.PostForm("status"))
	if id == 0 || status == "" {
		d.flash.Add(ctx, sid, flash.LevelError, "Booking id and status are required.")
		c.Redirect(http.StatusSeeOther, back)
		return
	}

	fields := map[string]any{"status": status}
	if reason := c.PostForm("reject_reason"); reason != "" {
		fields["rejectReason"] = reason
	}
	if d.bookings.Update(ctx, id, fields) {
		d.flash.Add(ctx, sid, flash.LevelSuccess,
			fmt.Sprintf("Booking #%d status set to %q.", id, status))
	} else {
		d.log.Warn("booking update not confirmed",
			zap.Uint("id", id), zap.String("status", status))
		d.flash.Add(ctx, sid, flash.LevelError,
			"The API did not confirm the booking update.")
	}
	c.Redirect(http.StatusSeeOther, back)
}

// checkAction verifies the one action kind this dispatcher understands.
func (d *Dispatcher) checkAction(c *gin.Context, sid, back string) bool {
	if c.PostForm("action") == "update_status" {
		return true
	}
	d.flash.Add(c.Request.Context(), sid, flash.LevelError, "Unsupported action.")
	c.Redirect(http.StatusSeeOther, back)
	return false
}

// redirectTarget prefers the referring page so list filters survive the
// round trip; without one it falls back to the entity's list.
func redirectTarget(c *gin.Context, fallback string) string {
	if ref := c.GetHeader("Referer"); ref != "" {
		return ref
	}
	return fallback
}

// formID parses an id form field; anything unparseable is 0 and fails
// validation upstream.
func formID(c *gin.Context, field string) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(c.PostForm(field)), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
