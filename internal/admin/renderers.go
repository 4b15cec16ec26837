package admin

import (
	"fmt"
	"html/template"
	"time"

	"taxiadmin/internal/domain"
)

// Cell renderers. Everything sourced from the API is escaped before it is
// marked as HTML; only the markup produced here is trusted.

func escape(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

func idCell[T any](id func(T) uint) func(T) template.HTML {
	return func(item T) template.HTML {
		return template.HTML(fmt.Sprintf("%d", id(item)))
	}
}

func textCell[T any](text func(T) string) func(T) template.HTML {
	return func(item T) template.HTML {
		return escape(text(item))
	}
}

func timeCell[T any](formatted func(T) string) func(T) template.HTML {
	return func(item T) template.HTML {
		return escape(formatted(item))
	}
}

func moneyCell[T any](amount func(T) float64) func(T) template.HTML {
	return func(item T) template.HTML {
		return escape(fmt.Sprintf("%.2f", amount(item)))
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02.01.2006 15:04")
}

func badge(class, label string) template.HTML {
	return template.HTML(fmt.Sprintf(`<span class="badge badge-%s">%s</span>`,
		template.HTMLEscapeString(class), template.HTMLEscapeString(label)))
}

func documentStatusCell(d *domain.DriverDocument) template.HTML {
	return badge(string(d.Status), d.Status.Label())
}

func rideStatusCell(r *domain.Ride) template.HTML {
	return badge(string(r.Status), r.Status.Label())
}

func bookingStatusCell(b *domain.Booking) template.HTML {
	return badge(string(b.Status), b.Status.Label())
}

// documentActionsCell renders approve/reject shortcuts for documents still
// pending review; decided documents just show their status label.
func documentActionsCell(d *domain.DriverDocument) template.HTML {
	if d.Status != domain.DocumentStatusPending {
		return escape(d.Status.Label())
	}
	return template.HTML(fmt.Sprintf(
		`<form method="post" action="/admin/documents/action" class="inline">`+
			`<input type="hidden" name="action" value="update_status">`+
			`<input type="hidden" name="document_id" value="%d">`+
			`<button name="status" value="approved" class="button">Approve</button>`+
			`<button name="status" value="rejected" class="button button-danger">Reject</button>`+
			`</form>`, d.ID))
}

// photo renders an image preview, or a placeholder note when the URL is
// empty.
func photo(label, url string) template.HTML {
	if url == "" {
		return escape(label + ": not uploaded")
	}
	return template.HTML(fmt.Sprintf(
		`<figure class="photo"><figcaption>%s</figcaption><img src="%s" alt="%s"></figure>`,
		template.HTMLEscapeString(label),
		template.HTMLEscapeString(url),
		template.HTMLEscapeString(label)))
}
