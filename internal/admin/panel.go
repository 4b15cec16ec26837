package admin

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxiadmin/internal/domain"
	"taxiadmin/internal/flash"
	"taxiadmin/internal/middleware"
	"taxiadmin/internal/repository"
)

// Flash abstracts the message store so handlers and the dispatcher can be
// tested without Redis.
type Flash interface {
	Add(ctx context.Context, session, level, text string)
	Pop(ctx context.Context, session string) []flash.Message
}

// Panel wires the four entity types into change lists, detail pages and
// write actions.
type Panel struct {
	users     repository.UserRepository
	documents repository.DocumentRepository
	rides     repository.RideRepository
	bookings  repository.BookingRepository
	flash     Flash
	log       *zap.Logger

	userList     *ChangeList[*domain.User]
	documentList *ChangeList[*domain.DriverDocument]
	rideList     *ChangeList[*domain.Ride]
	bookingList  *ChangeList[*domain.Booking]
	dispatcher   *Dispatcher
}

// NewPanel creates the panel with its change-list definitions.
func NewPanel(
	users repository.UserRepository,
	documents repository.DocumentRepository,
	rides repository.RideRepository,
	bookings repository.BookingRepository,
	messages Flash,
	log *zap.Logger,
) *Panel {
	p := &Panel{
		users:     users,
		documents: documents,
		rides:     rides,
		bookings:  bookings,
		flash:     messages,
		log:       log,
	}
	p.userList = newUserList(users)
	p.documentList = newDocumentList(documents)
	p.rideList = newRideList(rides)
	p.bookingList = newBookingList(bookings)
	p.dispatcher = NewDispatcher(documents, rides, bookings, messages, log)
	return p
}

// Register mounts all panel routes on the given group.
func (p *Panel) Register(r *gin.RouterGroup) {
	r.GET("", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin/users")
	})

	r.GET("/users", listHandler(p, p.userList))
	r.GET("/users/:id", p.userDetail)

	r.GET("/documents", listHandler(p, p.documentList))
	r.GET("/documents/:id", p.documentDetail)
	r.POST("/documents/action", p.dispatcher.UpdateDocumentStatus)

	r.GET("/rides", listHandler(p, p.rideList))
	r.GET("/rides/:id", p.rideDetail)
	r.POST("/rides/action", p.dispatcher.UpdateRideStatus)

	r.GET("/bookings", listHandler(p, p.bookingList))
	r.GET("/bookings/:id", p.bookingDetail)
	r.POST("/bookings/action", p.dispatcher.UpdateBookingStatus)
}

// listHandler renders a change list. A render failure is never a 500: it
// becomes an error banner on the default (empty) rendering of the same page.
func listHandler[T any](p *Panel, l *ChangeList[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sid := middleware.SessionID(c)

		page, err := l.Render(ctx, c.Request.URL.Query())
		if err != nil {
			p.log.Error("change list render failed",
				zap.String("slug", l.Slug), zap.Error(err))
			p.flash.Add(ctx, sid, flash.LevelError,
				"Could not build the "+strings.ToLower(l.Title)+" list; showing an empty page.")
			page = l.Empty()
		}
		page.Messages = p.flash.Pop(ctx, sid)
		c.HTML(http.StatusOK, "change_list.tmpl", page)
	}
}

func newUserList(users repository.UserRepository) *ChangeList[*domain.User] {
	return &ChangeList[*domain.User]{
		Slug:     "users",
		Title:    "Users",
		PageSize: DefaultPageSize,
		Columns: []Column[*domain.User]{
			{Title: "ID", Cell: idCell[*domain.User](func(u *domain.User) uint { return u.ID })},
			{Title: "Full name", Cell: textCell(func(u *domain.User) string { return u.FullName() })},
			{Title: "Email", Cell: textCell(func(u *domain.User) string { return u.Email })},
			{Title: "Phone", Cell: textCell(func(u *domain.User) string { return u.Phone })},
			{Title: "Role", Cell: textCell(func(u *domain.User) string { return u.Role })},
			{Title: "Created", Cell: timeCell(func(u *domain.User) string { return formatTime(u.CreatedAt) })},
		},
		SearchFields: []string{"first_name", "last_name", "email", "phone"},
		Filters: []ParamFilter[*domain.User]{
			{Param: "role", Match: func(u *domain.User, v string) bool { return u.Role == v }},
		},
		Fetch: func(ctx context.Context) []*domain.User { return users.List(ctx) },
		ID:    func(u *domain.User) uint { return u.ID },
	}
}

func newDocumentList(documents repository.DocumentRepository) *ChangeList[*domain.DriverDocument] {
	return &ChangeList[*domain.DriverDocument]{
		Slug:     "documents",
		Title:    "Driver documents",
		PageSize: DefaultPageSize,
		Columns: []Column[*domain.DriverDocument]{
			{Title: "ID", Cell: idCell[*domain.DriverDocument](func(d *domain.DriverDocument) uint { return d.ID })},
			{Title: "Driver", Cell: textCell(func(d *domain.DriverDocument) string { return d.DriverName() })},
			{Title: "Car", Cell: textCell(func(d *domain.DriverDocument) string { return d.CarInfo() })},
			{Title: "Status", Cell: documentStatusCell},
			{Title: "Created", Cell: timeCell(func(d *domain.DriverDocument) string { return formatTime(d.CreatedAt) })},
			{Title: "Actions", Cell: documentActionsCell},
		},
		SearchFields: []string{"user.first_name", "user.last_name", "car_brand", "car_model", "car_number"},
		Filters: []ParamFilter[*domain.DriverDocument]{
			{Param: "status", Match: func(d *domain.DriverDocument, v string) bool { return string(d.Status) == v }},
		},
		Fetch: func(ctx context.Context) []*domain.DriverDocument { return documents.List(ctx, nil) },
		ID:    func(d *domain.DriverDocument) uint { return d.ID },
	}
}

func newRideList(rides repository.RideRepository) *ChangeList[*domain.Ride] {
	return &ChangeList[*domain.Ride]{
		Slug:     "rides",
		Title:    "Rides",
		PageSize: DefaultPageSize,
		Columns: []Column[*domain.Ride]{
			{Title: "ID", Cell: idCell[*domain.Ride](func(r *domain.Ride) uint { return r.ID })},
			{Title: "Driver", Cell: textCell(func(r *domain.Ride) string { return r.DriverName() })},
			{Title: "Route", Cell: textCell(func(r *domain.Ride) string { return r.Route() })},
			{Title: "Departure", Cell: timeCell(func(r *domain.Ride) string { return formatTime(r.DepartureDate) })},
			{Title: "Status", Cell: rideStatusCell},
			{Title: "Price", Cell: moneyCell(func(r *domain.Ride) float64 { return r.Price })},
			{Title: "Seats", Cell: textCell(func(r *domain.Ride) string { return r.SeatsInfo() })},
		},
		SearchFields: []string{"driver.first_name", "driver.last_name", "from_address", "to_address"},
		Filters: []ParamFilter[*domain.Ride]{
			{Param: "status", Match: func(r *domain.Ride, v string) bool { return string(r.Status) == v }},
		},
		Fetch: func(ctx context.Context) []*domain.Ride { return rides.List(ctx, nil) },
		ID:    func(r *domain.Ride) uint { return r.ID },
	}
}

func newBookingList(bookings repository.BookingRepository) *ChangeList[*domain.Booking] {
	return &ChangeList[*domain.Booking]{
		Slug:     "bookings",
		Title:    "Bookings",
		PageSize: DefaultPageSize,
		Columns: []Column[*domain.Booking]{
			{Title: "ID", Cell: idCell[*domain.Booking](func(b *domain.Booking) uint { return b.ID })},
			{Title: "Passenger", Cell: textCell(func(b *domain.Booking) string { return b.PassengerName() })},
			{Title: "Ride", Cell: textCell(func(b *domain.Booking) string { return b.RideInfo() })},
			{Title: "Type", Cell: textCell(func(b *domain.Booking) string { return b.Type.Label() })},
			{Title: "Status", Cell: bookingStatusCell},
			{Title: "Price", Cell: moneyCell(func(b *domain.Booking) float64 { return b.Price })},
			{Title: "Created", Cell: timeCell(func(b *domain.Booking) string { return formatTime(b.CreatedAt) })},
		},
		SearchFields: []string{"passenger.first_name", "passenger.last_name", "ride.from_address", "ride.to_address"},
		Filters: []ParamFilter[*domain.Booking]{
			{Param: "status", Match: func(b *domain.Booking, v string) bool { return string(b.Status) == v }},
			{Param: "booking_type", Match: func(b *domain.Booking, v string) bool { return string(b.Type) == v }},
		},
		Fetch: func(ctx context.Context) []*domain.Booking { return bookings.List(ctx, nil) },
		ID:    func(b *domain.Booking) uint { return b.ID },
	}
}
