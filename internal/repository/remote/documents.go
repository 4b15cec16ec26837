package remote

import (
	"context"
	"fmt"
	"net/url"

	"taxiadmin/internal/domain"
	"taxiadmin/internal/gateway"
	"taxiadmin/internal/normalize"
)

// DocumentRepository fetches driver documents from the platform API and
// forwards moderation decisions.
type DocumentRepository struct {
	api *gateway.Client
}

// NewDocumentRepository creates a DocumentRepository.
func NewDocumentRepository(api *gateway.Client) *DocumentRepository {
	return &DocumentRepository{api: api}
}

// List fetches driver documents, passing params through to the API.
func (r *DocumentRepository) List(ctx context.Context, params url.Values) []*domain.DriverDocument {
	payload := r.api.Get(ctx, "/driver/documents", params)
	docs := make([]*domain.DriverDocument, 0)
	for _, obj := range payload.Objects() {
		if d := normalize.NewDriverDocument(obj); d != nil {
			docs = append(docs, d)
		}
	}
	return docs
}

// Get fetches one document by id, or nil.
func (r *DocumentRepository) Get(ctx context.Context, id uint) *domain.DriverDocument {
	payload := r.api.Get(ctx, fmt.Sprintf("/driver/documents/%d", id), nil)
	obj, ok := payload.Object()
	if !ok {
		return nil
	}
	return normalize.NewDriverDocument(obj)
}

// UpdateStatus forwards a moderation decision. The API answers the status
// endpoint with the updated document; an empty answer means the update did
// not take, even though no error surfaced.
func (r *DocumentRepository) UpdateStatus(ctx context.Context, id uint, status domain.DocumentStatus, reason string) bool {
	body := map[string]any{
		"status":          status,
		"rejectionReason": reason,
	}
	payload := r.api.Put(ctx, fmt.Sprintf("/driver/documents/%d/status", id), body)
	return !payload.IsEmpty()
}
