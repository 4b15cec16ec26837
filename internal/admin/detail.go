package admin

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taxiadmin/internal/domain"
	"taxiadmin/internal/flash"
	"taxiadmin/internal/middleware"
)

// FieldRow is one label/value pair on a detail page.
type FieldRow struct {
	Label string
	Value template.HTML
}

// Section groups related field rows.
type Section struct {
	Title string
	Rows  []FieldRow
}

// DetailPage is the context the detail template renders. Form, when set,
// carries the moderation form markup for entities that accept status
// updates.
type DetailPage struct {
	Title    string
	Slug     string
	Sections []Section
	Form     template.HTML
	Messages []flash.Message
}

func (p *Panel) userDetail(c *gin.Context) {
	id, ok := p.detailID(c, "users")
	if !ok {
		return
	}
	user := p.users.Get(c.Request.Context(), id)
	if user == nil {
		p.detailMissing(c, "users", id)
		return
	}

	page := &DetailPage{
		Title: fmt.Sprintf("User #%d", user.ID),
		Slug:  "users",
		Sections: []Section{
			{Title: "Profile", Rows: []FieldRow{
				{Label: "Photo", Value: photo("Profile photo", user.PhotoURL)},
				{Label: "Name", Value: escape(user.FullName())},
				{Label: "Email", Value: escape(user.Email)},
				{Label: "Phone", Value: escape(user.Phone)},
				{Label: "Role", Value: escape(user.Role)},
			}},
			{Title: "Timestamps", Rows: []FieldRow{
				{Label: "Created", Value: escape(formatTime(user.CreatedAt))},
				{Label: "Updated", Value: escape(formatTime(user.UpdatedAt))},
			}},
		},
	}
	p.renderDetail(c, page)
}

func (p *Panel) documentDetail(c *gin.Context) {
	id, ok := p.detailID(c, "documents")
	if !ok {
		return
	}
	doc := p.documents.Get(c.Request.Context(), id)
	if doc == nil {
		p.detailMissing(c, "documents", id)
		return
	}

	page := &DetailPage{
		Title: fmt.Sprintf("Driver document #%d", doc.ID),
		Slug:  "documents",
		Sections: []Section{
			{Title: "Driver", Rows: []FieldRow{
				{Label: "Name", Value: escape(doc.DriverName())},
				{Label: "Email", Value: escape(userEmail(doc.User))},
				{Label: "Phone", Value: escape(userPhone(doc.User))},
			}},
			{Title: "Vehicle", Rows: []FieldRow{
				{Label: "Brand", Value: escape(doc.CarBrand)},
				{Label: "Model", Value: escape(doc.CarModel)},
				{Label: "Year", Value: escape(doc.CarYear)},
				{Label: "Color", Value: escape(doc.CarColor)},
				{Label: "Plate", Value: escape(doc.CarNumber)},
			}},
			{Title: "Driver license", Rows: []FieldRow{
				{Label: "Front", Value: photo("Front side", doc.DriverLicenseFront)},
				{Label: "Back", Value: photo("Back side", doc.DriverLicenseBack)},
			}},
			{Title: "Car registration", Rows: []FieldRow{
				{Label: "Front", Value: photo("Front side", doc.CarRegistrationFront)},
				{Label: "Back", Value: photo("Back side", doc.CarRegistrationBack)},
			}},
			{Title: "Car photos", Rows: []FieldRow{
				{Label: "Front", Value: photo("Front", doc.CarPhotoFront)},
				{Label: "Side", Value: photo("Side", doc.CarPhotoSide)},
				{Label: "Interior", Value: photo("Interior", doc.CarPhotoInterior)},
			}},
			{Title: "Moderation", Rows: []FieldRow{
				{Label: "Status", Value: documentStatusCell(doc)},
				{Label: "Rejection reason", Value: escape(doc.RejectionReason)},
			}},
		},
		Form: documentModerationForm(doc),
	}
	p.renderDetail(c, page)
}

func (p *Panel) rideDetail(c *gin.Context) {
	id, ok := p.detailID(c, "rides")
	if !ok {
		return
	}
	ride := p.rides.Get(c.Request.Context(), id)
	if ride == nil {
		p.detailMissing(c, "rides", id)
		return
	}

	page := &DetailPage{
		Title: fmt.Sprintf("Ride #%d", ride.ID),
		Slug:  "rides",
		Sections: []Section{
			{Title: "Driver", Rows: []FieldRow{
				{Label: "Name", Value: escape(ride.DriverName())},
				{Label: "Email", Value: escape(userEmail(ride.Driver))},
				{Label: "Phone", Value: escape(userPhone(ride.Driver))},
			}},
			{Title: "Trip", Rows: []FieldRow{
				{Label: "From", Value: escape(ride.FromAddress)},
				{Label: "To", Value: escape(ride.ToAddress)},
				{Label: "Departure", Value: escape(formatTime(ride.DepartureDate))},
				{Label: "Status", Value: rideStatusCell(ride)},
				{Label: "Comment", Value: escape(orDash(ride.Comment))},
				{Label: "Cancellation reason", Value: escape(orDash(ride.CancellationReason))},
			}},
			{Title: "Seats and pricing", Rows: []FieldRow{
				{Label: "Seats", Value: escape(ride.SeatsInfo())},
				{Label: "Price", Value: escape(fmt.Sprintf("%.2f", ride.Price))},
				{Label: "Front seat price", Value: escape(fmt.Sprintf("%.2f", ride.FrontSeatPrice))},
				{Label: "Back seat price", Value: escape(fmt.Sprintf("%.2f", ride.BackSeatPrice))},
			}},
		},
		Form: rideStatusForm(ride),
	}
	p.renderDetail(c, page)
}

func (p *Panel) bookingDetail(c *gin.Context) {
	id, ok := p.detailID(c, "bookings")
	if !ok {
		return
	}
	booking := p.bookings.Get(c.Request.Context(), id)
	if booking == nil {
		p.detailMissing(c, "bookings", id)
		return
	}

	page := &DetailPage{
		Title: fmt.Sprintf("Booking #%d", booking.ID),
		Slug:  "bookings",
		Sections: []Section{
			{Title: "Passenger", Rows: []FieldRow{
				{Label: "Name", Value: escape(booking.PassengerName())},
				{Label: "Email", Value: escape(userEmail(booking.Passenger))},
				{Label: "Phone", Value: escape(userPhone(booking.Passenger))},
			}},
			{Title: "Ride", Rows: []FieldRow{
				{Label: "Trip", Value: escape(booking.RideInfo())},
				{Label: "Pickup", Value: escape(booking.PickupAddress)},
				{Label: "Dropoff", Value: escape(booking.DropoffAddress)},
			}},
			{Title: "Details", Rows: []FieldRow{
				{Label: "Type", Value: escape(booking.Type.Label())},
				{Label: "Status", Value: bookingStatusCell(booking)},
				{Label: "Seats", Value: escape(strconv.Itoa(booking.SeatsCount))},
				{Label: "Price", Value: escape(fmt.Sprintf("%.2f", booking.Price))},
				{Label: "Comment", Value: escape(orDash(booking.Comment))},
				{Label: "Reject reason", Value: escape(orDash(booking.RejectReason))},
			}},
		},
		Form: bookingStatusForm(booking),
	}
	p.renderDetail(c, page)
}

func (p *Panel) renderDetail(c *gin.Context, page *DetailPage) {
	page.Messages = p.flash.Pop(c.Request.Context(), middleware.SessionID(c))
	c.HTML(http.StatusOK, "detail.tmpl", page)
}

// detailID parses the :id parameter; a malformed id goes back to the list
// with a banner instead of a 404.
func (p *Panel) detailID(c *gin.Context, slug string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		p.flash.Add(c.Request.Context(), middleware.SessionID(c),
			flash.LevelError, "Invalid object id.")
		c.Redirect(http.StatusSeeOther, "/admin/"+slug)
		return 0, false
	}
	return uint(id), true
}

// detailMissing handles a fetch that produced nothing: whether the record
// is gone or the API degraded, the answer is the same redirect with a
// banner.
func (p *Panel) detailMissing(c *gin.Context, slug string, id uint) {
	p.flash.Add(c.Request.Context(), middleware.SessionID(c), flash.LevelError,
		fmt.Sprintf("Record #%d could not be loaded from the API.", id))
	c.Redirect(http.StatusSeeOther, "/admin/"+slug)
}

func userEmail(u *domain.User) string {
	if u == nil {
		return ""
	}
	return u.Email
}

func userPhone(u *domain.User) string {
	if u == nil {
		return ""
	}
	return u.Phone
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func documentModerationForm(d *domain.DriverDocument) template.HTML {
	statuses := []domain.DocumentStatus{
		domain.DocumentStatusPending,
		domain.DocumentStatusApproved,
		domain.DocumentStatusRejected,
		domain.DocumentStatusRevision,
	}
	options := ""
	for _, s := range statuses {
		options += statusOption(string(s), s.Label(), s == d.Status)
	}
	return template.HTML(fmt.Sprintf(
		`<form method="post" action="/admin/documents/action" class="moderation">`+
			`<input type="hidden" name="action" value="update_status">`+
			`<input type="hidden" name="document_id" value="%d">`+
			`<label>Status <select name="status">%s</select></label>`+
			`<label>Rejection reason <input type="text" name="rejection_reason" value="%s"></label>`+
			`<button class="button">Save</button>`+
			`</form>`,
		d.ID, options, template.HTMLEscapeString(d.RejectionReason)))
}

func rideStatusForm(r *domain.Ride) template.HTML {
	statuses := []domain.RideStatus{
		domain.RideStatusActive,
		domain.RideStatusStarted,
		domain.RideStatusCompleted,
		domain.RideStatusCancelled,
	}
	options := ""
	for _, s := range statuses {
		options += statusOption(string(s), s.Label(), s == r.Status)
	}
	return template.HTML(fmt.Sprintf(
		`<form method="post" action="/admin/rides/action" class="moderation">`+
			`<input type="hidden" name="action" value="update_status">`+
			`<input type="hidden" name="ride_id" value="%d">`+
			`<label>Status <select name="status">%s</select></label>`+
			`<label>Cancellation reason <input type="text" name="cancellation_reason" value="%s"></label>`+
			`<button class="button">Save</button>`+
			`</form>`,
		r.ID, options, template.HTMLEscapeString(r.CancellationReason)))
}

func bookingStatusForm(b *domain.Booking) template.HTML {
	statuses := []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusApproved,
		domain.BookingStatusStarted,
		domain.BookingStatusRejected,
		domain.BookingStatusCancelled,
		domain.BookingStatusCompleted,
	}
	options := ""
	for _, s := range statuses {
		options += statusOption(string(s), s.Label(), s == b.Status)
	}
	return template.HTML(fmt.Sprintf(
		`<form method="post" action="/admin/bookings/action" class="moderation">`+
			`<input type="hidden" name="action" value="update_status">`+
			`<input type="hidden" name="booking_id" value="%d">`+
			`<label>Status <select name="status">%s</select></label>`+
			`<label>Reject reason <input type="text" name="reject_reason" value="%s"></label>`+
			`<button class="button">Save</button>`+
			`</form>`,
		b.ID, options, template.HTMLEscapeString(b.RejectReason)))
}

func statusOption(value, label string, selected bool) string {
	sel := ""
	if selected {
		sel = " selected"
	}
	return fmt.Sprintf(`<option value="%s"%s>%s</option>`,
		template.HTMLEscapeString(value), sel, template.HTMLEscapeString(label))
}
