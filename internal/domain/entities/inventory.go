package entities

// LocationRef is the denormalized location reference the service embeds in
// item reads. Only the ID is required for writes; the name is carried for
// display.
type LocationRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// LabelRef is an opaque reference to a label entity not managed here.
type LabelRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Attachment types accepted by the service.
const (
	AttachmentTypePhoto      = "photo"
	AttachmentTypeAttachment = "attachment"
)

// Attachment is a file or image associated with an item. At most one
// attachment per item is primary; the service enforces that, not us.
type Attachment struct {
	ID      string `json:"id"`
	Type    string `json:"type,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

// Item is a single inventory record as returned by the service. List
// endpoints return abbreviated records; notes, warranty and purchase fields
// are only populated by the detail endpoint.
type Item struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Quantity    int          `json:"quantity"`
	Location    *LocationRef `json:"location,omitempty"`
	Labels      []LabelRef   `json:"labels,omitempty"`
	ParentID    string       `json:"parentId,omitempty"`

	Notes            string       `json:"notes,omitempty"`
	SerialNumber     string       `json:"serialNumber,omitempty"`
	ModelNumber      string       `json:"modelNumber,omitempty"`
	Manufacturer     string       `json:"manufacturer,omitempty"`
	Insured          bool         `json:"insured,omitempty"`
	Archived         bool         `json:"archived,omitempty"`
	LifetimeWarranty bool         `json:"lifetimeWarranty,omitempty"`
	WarrantyExpires  string       `json:"warrantyExpires,omitempty"`
	WarrantyDetails  string       `json:"warrantyDetails,omitempty"`
	PurchaseTime     string       `json:"purchaseTime,omitempty"`
	PurchaseFrom     string       `json:"purchaseFrom,omitempty"`
	PurchasePrice    float64      `json:"purchasePrice,omitempty"`
	Attachments      []Attachment `json:"attachments,omitempty"`
}

// Location is a named storage container, possibly nested under a parent.
// ItemCount is server-computed and read-only.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
	ItemCount   int    `json:"itemCount,omitempty"`
}

// ItemFields carries caller-supplied write fields for an item. Name and
// Quantity are the only mandatory fields; everything else is pointer-typed
// so that "not provided" and "explicitly cleared" stay distinguishable. The
// service silently drops any field other than the basic subset on create,
// which is why extended fields force a follow-up update (see the
// integrations package).
type ItemFields struct {
	Name        string
	Quantity    int
	Description *string
	LocationID  *string
	LabelIDs    []string
	ParentID    *string

	Notes            *string
	SerialNumber     *string
	ModelNumber      *string
	Manufacturer     *string
	Insured          *bool
	Archived         *bool
	LifetimeWarranty *bool
	WarrantyExpires  *string // YYYY-MM-DD
	WarrantyDetails  *string
	PurchaseTime     *string // YYYY-MM-DD
	PurchaseFrom     *string
	PurchasePrice    *float64
}

// HasExtended reports whether any field outside the create endpoint's
// accepted subset was supplied.
func (f ItemFields) HasExtended() bool {
	return f.Notes != nil ||
		f.SerialNumber != nil ||
		f.ModelNumber != nil ||
		f.Manufacturer != nil ||
		f.Insured != nil ||
		f.Archived != nil ||
		f.LifetimeWarranty != nil ||
		f.WarrantyExpires != nil ||
		f.WarrantyDetails != nil ||
		f.PurchaseTime != nil ||
		f.PurchaseFrom != nil ||
		f.PurchasePrice != nil
}

// LocationFields carries caller-supplied write fields for a location. All
// fields are pointer-typed so updates can send only what the caller
// specified; creation requires a name, which the tool layer enforces.
type LocationFields struct {
	Name        *string
	Description *string
	ParentID    *string
}
