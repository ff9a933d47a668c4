package integrations

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/stocktake/stocktake/internal/domain/entities"
)

// Returned when a create response omits the item id, which makes the
// extended-field follow-up update impossible.
var errNoCreatedID = fmt.Errorf("create response did not include an item id")

// itemCreateRequest is the narrow field subset the create endpoint accepts.
// Anything else sent on create is silently ignored by the service, which is
// why CreateItem runs a second phase for extended fields.
type itemCreateRequest struct {
	Name        string   `json:"name"`
	Quantity    int      `json:"quantity"`
	Description *string  `json:"description,omitempty"`
	LocationID  *string  `json:"locationId,omitempty"`
	LabelIDs    []string `json:"labelIds,omitempty"`
	ParentID    *string  `json:"parentId,omitempty"`
}

// itemUpdateRequest is the full-record update body. Pointer fields with a
// nil value are omitted entirely rather than sent as null, because the
// service distinguishes "not provided" from "explicitly cleared".
type itemUpdateRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Quantity    int      `json:"quantity"`
	Description *string  `json:"description,omitempty"`
	LocationID  *string  `json:"locationId,omitempty"`
	LabelIDs    []string `json:"labelIds,omitempty"`
	ParentID    *string  `json:"parentId,omitempty"`

	Notes            *string  `json:"notes,omitempty"`
	SerialNumber     *string  `json:"serialNumber,omitempty"`
	ModelNumber      *string  `json:"modelNumber,omitempty"`
	Manufacturer     *string  `json:"manufacturer,omitempty"`
	Insured          *bool    `json:"insured,omitempty"`
	Archived         *bool    `json:"archived,omitempty"`
	LifetimeWarranty *bool    `json:"lifetimeWarranty,omitempty"`
	WarrantyExpires  *string  `json:"warrantyExpires,omitempty"`
	WarrantyDetails  *string  `json:"warrantyDetails,omitempty"`
	PurchaseTime     *string  `json:"purchaseTime,omitempty"`
	PurchaseFrom     *string  `json:"purchaseFrom,omitempty"`
	PurchasePrice    *float64 `json:"purchasePrice,omitempty"`
}

func newItemUpdateRequest(id string, fields entities.ItemFields) itemUpdateRequest {
	return itemUpdateRequest{
		ID:               id,
		Name:             fields.Name,
		Quantity:         fields.Quantity,
		Description:      fields.Description,
		LocationID:       fields.LocationID,
		LabelIDs:         fields.LabelIDs,
		ParentID:         fields.ParentID,
		Notes:            fields.Notes,
		SerialNumber:     fields.SerialNumber,
		ModelNumber:      fields.ModelNumber,
		Manufacturer:     fields.Manufacturer,
		Insured:          fields.Insured,
		Archived:         fields.Archived,
		LifetimeWarranty: fields.LifetimeWarranty,
		WarrantyExpires:  fields.WarrantyExpires,
		WarrantyDetails:  fields.WarrantyDetails,
		PurchaseTime:     fields.PurchaseTime,
		PurchaseFrom:     fields.PurchaseFrom,
		PurchasePrice:    fields.PurchasePrice,
	}
}

// SearchItems runs a keyword search against the items collection. No
// matches is an empty list, not an error. List responses are abbreviated;
// use SearchItemsExtended when notes, warranty or purchase fields matter.
func (c *HomeboxClient) SearchItems(ctx context.Context, query string) ([]entities.Item, error) {
	params := url.Values{}
	params.Set("search", query)

	var resp struct {
		Items []entities.Item `json:"items"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/items", params, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		return []entities.Item{}, nil
	}
	return resp.Items, nil
}

// SearchItemsExtended searches and then fetches the full detail record for
// every match in parallel. This trades one request for N+1 to populate the
// fields the list endpoint leaves out; a single failing detail fetch fails
// the whole call.
func (c *HomeboxClient) SearchItemsExtended(ctx context.Context, query string) ([]entities.Item, error) {
	items, err := c.SearchItems(ctx, query)
	if err != nil {
		return nil, err
	}

	detailed := make([]entities.Item, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			full, err := c.GetItem(gctx, item.ID)
			if err != nil {
				return err
			}
			detailed[i] = *full
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detailed, nil
}

// GetItem fetches the full detail record for one item.
func (c *HomeboxClient) GetItem(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/items/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem creates an item using the service's two-phase protocol. Phase
// one posts only the field subset the create endpoint accepts. When the
// caller supplied any extended field (notes, warranty, purchase info and so
// on) a second full-record update carries them, since the create endpoint
// would have dropped them without an error. The result of the update is
// returned when it ran.
func (c *HomeboxClient) CreateItem(ctx context.Context, fields entities.ItemFields) (*entities.Item, error) {
	createReq := itemCreateRequest{
		Name:        fields.Name,
		Quantity:    fields.Quantity,
		Description: fields.Description,
		LocationID:  fields.LocationID,
		LabelIDs:    fields.LabelIDs,
		ParentID:    fields.ParentID,
	}

	var created entities.Item
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/items", nil, createReq, &created); err != nil {
		return nil, err
	}

	if !fields.HasExtended() {
		return &created, nil
	}

	if created.ID == "" {
		// Partial create response; without an id the follow-up update
		// cannot run and the extended fields would be lost silently.
		return nil, errNoCreatedID
	}

	return c.UpdateItem(ctx, created.ID, fields)
}

// UpdateItem sends a full-record update with only the supplied fields plus
// the target id.
func (c *HomeboxClient) UpdateItem(ctx context.Context, id string, fields entities.ItemFields) (*entities.Item, error) {
	updateReq := newItemUpdateRequest(id, fields)

	var updated entities.Item
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/items/"+url.PathEscape(id), nil, updateReq, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteItem deletes an item. The service answers with no content on
// success.
func (c *HomeboxClient) DeleteItem(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/v1/items/"+url.PathEscape(id), nil, nil, nil)
}
