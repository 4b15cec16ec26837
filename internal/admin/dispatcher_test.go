package admin

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxiadmin/internal/domain"
	"taxiadmin/internal/flash"
)

func postForm(t *testing.T, form url.Values) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/admin/documents/action",
		strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c, w
}

func newTestDispatcher(docs *mockDocuments, rides *mockRides, bookings *mockBookings) (*Dispatcher, *mockFlash) {
	messages := &mockFlash{}
	return NewDispatcher(docs, rides, bookings, messages, zap.NewNop()), messages
}

func TestUpdateDocumentStatus_Success(t *testing.T) {
	docs := &mockDocuments{updateOK: true}
	d, messages := newTestDispatcher(docs, &mockRides{}, &mockBookings{})

	c, w := postForm(t, url.Values{
		"action":           {"update_status"},
		"document_id":      {"4"},
		"status":           {"rejected"},
		"rejection_reason": {"blurry photos"},
	})
	d.UpdateDocumentStatus(c)
	c.Writer.WriteHeaderNow()

	if docs.updateCalls != 1 {
		t.Fatalf("expected 1 update call, got %d", docs.updateCalls)
	}
	if docs.updateID != 4 || docs.updateStatus != domain.DocumentStatusRejected || docs.updateReason != "blurry photos" {
		t.Errorf("unexpected forwarded values: id=%d status=%q reason=%q",
			docs.updateID, docs.updateStatus, docs.updateReason)
	}
	if w.Code != http.StatusSeeOther {
		t.Errorf("expected 303 redirect, got %d", w.Code)
	}
	if messages.lastLevel() != flash.LevelSuccess {
		t.Errorf("expected a success banner, got %q", messages.lastLevel())
	}
}

func TestUpdateDocumentStatus_MissingFieldsSkipTheAPI(t *testing.T) {
	testCases := []struct {
		name string
		form url.Values
	}{
		{"no id", url.Values{"action": {"update_status"}, "status": {"approved"}}},
		{"bad id", url.Values{"action": {"update_status"}, "document_id": {"abc"}, "status": {"approved"}}},
		{"no status", url.Values{"action": {"update_status"}, "document_id": {"4"}}},
		{"blank status", url.Values{"action": {"update_status"}, "document_id": {"4"}, "status": {"   "}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			docs := &mockDocuments{updateOK: true}
			d, messages := newTestDispatcher(docs, &mockRides{}, &mockBookings{})

			c, w := postForm(t, tc.form)
			d.UpdateDocumentStatus(c)
	c.Writer.WriteHeaderNow()

			if docs.updateCalls != 0 {
				t.Errorf("invalid input must never reach the API, got %d calls", docs.updateCalls)
			}
			if w.Code != http.StatusSeeOther {
				t.Errorf("expected 303 redirect, got %d", w.Code)
			}
			if messages.lastLevel() != flash.LevelError {
				t.Errorf("expected an error banner, got %q", messages.lastLevel())
			}
		})
	}
}

func TestUpdateDocumentStatus_UnsupportedAction(t *testing.T) {
	docs := &mockDocuments{updateOK: true}
	d, messages := newTestDispatcher(docs, &mockRides{}, &mockBookings{})

	c, w := postForm(t, url.Values{
		"action":      {"delete_selected"},
		"document_id": {"4"},
		"status":      {"approved"},
	})
	d.UpdateDocumentStatus(c)
	c.Writer.WriteHeaderNow()

	if docs.updateCalls != 0 {
		t.Errorf("unsupported action must not reach the API, got %d calls", docs.updateCalls)
	}
	if w.Code != http.StatusSeeOther {
		t.Errorf("expected 303 redirect, got %d", w.Code)
	}
	if len(messages.added) != 1 || messages.added[0].Text != "Unsupported action." {
		t.Errorf("expected the unsupported-action banner, got %+v", messages.added)
	}
}

func TestUpdateDocumentStatus_UnconfirmedUpdateStillRedirects(t *testing.T) {
	docs := &mockDocuments{updateOK: false}
	d, messages := newTestDispatcher(docs, &mockRides{}, &mockBookings{})

	c, w := postForm(t, url.Values{
		"action":      {"update_status"},
		"document_id": {"4"},
		"status":      {"approved"},
	})
	d.UpdateDocumentStatus(c)
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusSeeOther {
		t.Errorf("a failed write must still redirect, got %d", w.Code)
	}
	if messages.lastLevel() != flash.LevelError {
		t.Errorf("expected an error banner, got %q", messages.lastLevel())
	}
}

func TestUpdateDocumentStatus_RedirectPrefersReferer(t *testing.T) {
	d, _ := newTestDispatcher(&mockDocuments{updateOK: true}, &mockRides{}, &mockBookings{})

	c, w := postForm(t, url.Values{
		"action":      {"update_status"},
		"document_id": {"4"},
		"status":      {"approved"},
	})
	c.Request.Header.Set("Referer", "/admin/documents?status=pending&p=2")
	d.UpdateDocumentStatus(c)
	c.Writer.WriteHeaderNow()

	if got := w.Header().Get("Location"); got != "/admin/documents?status=pending&p=2" {
		t.Errorf("expected redirect back to the referring page, got %q", got)
	}
}

func TestUpdateDocumentStatus_RedirectFallsBackToList(t *testing.T) {
	d, _ := newTestDispatcher(&mockDocuments{updateOK: true}, &mockRides{}, &mockBookings{})

	c, w := postForm(t, url.Values{
		"action":      {"update_status"},
		"document_id": {"4"},
		"status":      {"approved"},
	})
	d.UpdateDocumentStatus(c)
	c.Writer.WriteHeaderNow()

	if got := w.Header().Get("Location"); got != "/admin/documents" {
		t.Errorf("expected fallback redirect to the list, got %q", got)
	}
}

func TestUpdateRideStatus_ForwardsOptionalReason(t *testing.T) {
	rides := &mockRides{updateOK: true}
	d, _ := newTestDispatcher(&mockDocuments{}, rides, &mockBookings{})

	c, _ := postForm(t, url.Values{
		"action":              {"update_status"},
		"ride_id":             {"7"},
		"status":              {"cancelled"},
		"cancellation_reason": {"driver unavailable"},
	})
	d.UpdateRideStatus(c)
	c.Writer.WriteHeaderNow()

	if rides.updateCalls != 1 {
		t.Fatalf("expected 1 update call, got %d", rides.updateCalls)
	}
	if rides.updateID != 7 {
		t.Errorf("expected ride 7, got %d", rides.updateID)
	}
	if rides.updateFields["status"] != "cancelled" {
		t.Errorf("unexpected status field: %v", rides.updateFields["status"])
	}
	if rides.updateFields["cancellationReason"] != "driver unavailable" {
		t.Errorf("unexpected reason field: %v", rides.updateFields["cancellationReason"])
	}
}

func TestUpdateRideStatus_OmitsEmptyReason(t *testing.T) {
	rides := &mockRides{updateOK: true}
	d, _ := newTestDispatcher(&mockDocuments{}, rides, &mockBookings{})

	c, _ := postForm(t, url.Values{
		"action":  {"update_status"},
		"ride_id": {"7"},
		"status":  {"completed"},
	})
	d.UpdateRideStatus(c)
	c.Writer.WriteHeaderNow()

	if _, ok := rides.updateFields["cancellationReason"]; ok {
		t.Error("an empty reason must not be forwarded")
	}
}

func TestUpdateBookingStatus_Success(t *testing.T) {
	bookings := &mockBookings{updateOK: true}
	d, messages := newTestDispatcher(&mockDocuments{}, &mockRides{}, bookings)

	c, w := postForm(t, url.Values{
		"action":        {"update_status"},
		"booking_id":    {"3"},
		"status":        {"rejected"},
		"reject_reason": {"no seats left"},
	})
	d.UpdateBookingStatus(c)
	c.Writer.WriteHeaderNow()

	if bookings.updateCalls != 1 {
		t.Fatalf("expected 1 update call, got %d", bookings.updateCalls)
	}
	if bookings.updateFields["status"] != "rejected" || bookings.updateFields["rejectReason"] != "no seats left" {
		t.Errorf("unexpected fields: %v", bookings.updateFields)
	}
	if w.Code != http.StatusSeeOther {
		t.Errorf("expected 303 redirect, got %d", w.Code)
	}
	if messages.lastLevel() != flash.LevelSuccess {
		t.Errorf("expected a success banner, got %q", messages.lastLevel())
	}
}
