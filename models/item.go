package models

import "time"

// ItemStatus tracks an item through the procurement pipeline. The backend
// owns all transitions; the client only renders the current value.
type ItemStatus string

const (
	ItemStatusPending     ItemStatus = "pending"
	ItemStatusIdentified  ItemStatus = "identified"
	ItemStatusSearching   ItemStatus = "searching"
	ItemStatusQuoting     ItemStatus = "quoting"
	ItemStatusNegotiating ItemStatus = "negotiating"
	ItemStatusQuoted      ItemStatus = "quoted"
	ItemStatusApproved    ItemStatus = "approved"
	ItemStatusOrdered     ItemStatus = "ordered"
	ItemStatusDelivered   ItemStatus = "delivered"
	ItemStatusCancelled   ItemStatus = "cancelled"
)

// ItemSource records how an item entered the system.
type ItemSource string

const (
	ItemSourcePhoto       ItemSource = "photo"
	ItemSourceDescription ItemSource = "description"
	ItemSourceFile        ItemSource = "file"
)

// Item is a procurement request record. Identification fields (name, brand,
// specifications, AI confidence) are filled in by the backend's
// identification pipeline and are nil/empty until that has run.
type Item struct {
	ID                  int64          `json:"id"`
	Source              ItemSource     `json:"source"`
	OriginalDescription string         `json:"original_description,omitempty"`
	OriginalFileURL     string         `json:"original_file_url,omitempty"`
	Name                string         `json:"name,omitempty"`
	Brand               string         `json:"brand,omitempty"`
	Model               string         `json:"model,omitempty"`
	Specifications      map[string]any `json:"specifications,omitempty"`
	Category            string         `json:"category,omitempty"`
	Subcategory         string         `json:"subcategory,omitempty"`
	TechnicalDetails    string         `json:"technical_details,omitempty"`
	SuggestedKeywords   []string       `json:"suggested_keywords,omitempty"`
	AIConfidence        *float64       `json:"ai_confidence,omitempty"`
	Status              ItemStatus     `json:"status"`
	Priority            int            `json:"priority"`
	Quantity            int            `json:"quantity"`
	Unit                string         `json:"unit"`
	Notes               string         `json:"notes,omitempty"`
	InternalCode        string         `json:"internal_code,omitempty"`
	CreatedBy           *int64         `json:"created_by,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// ItemListParams are the query parameters accepted by GET /api/items.
// Zero values are omitted from the request.
type ItemListParams struct {
	Page     int
	PerPage  int
	Status   ItemStatus
	Category string
	Search   string
}

// CreateItemFromDescription is the payload for POST /api/items/from-description.
type CreateItemFromDescription struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity,omitempty"`
	Unit        string `json:"unit,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// ItemUploadContext carries the optional multipart form fields that accompany
// a photo or file upload. Empty fields are not appended to the form.
type ItemUploadContext struct {
	Quantity          int
	Unit              string
	Priority          int
	Notes             string
	AdditionalContext string
}

// UpdateItemRequest is a partial update for PUT /api/items/{id}. Only non-nil
// fields are sent.
type UpdateItemRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
	Unit     *string `json:"unit,omitempty"`
	Priority *int    `json:"priority,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// PaginatedItems is the list envelope returned by GET /api/items.
type PaginatedItems struct {
	Items   []Item `json:"items"`
	Total   int    `json:"total"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}
