package integrations

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stocktake/stocktake/internal/domain/entities"
)

type locationCreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parentId,omitempty"`
}

// locationUpdateRequest carries the target id plus only the fields the
// caller actually supplied; nil pointers are omitted, never sent as null.
type locationUpdateRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parentId,omitempty"`
}

// ListLocations returns the full location collection. The endpoint is not
// paginated.
func (c *HomeboxClient) ListLocations(ctx context.Context) ([]entities.Location, error) {
	var locations []entities.Location
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/locations", nil, nil, &locations); err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []entities.Location{}
	}
	return locations, nil
}

// CreateLocation creates a location, optionally nested under a parent. The
// create endpoint requires a name; callers validate presence before this.
func (c *HomeboxClient) CreateLocation(ctx context.Context, fields entities.LocationFields) (*entities.Location, error) {
	var name string
	if fields.Name != nil {
		name = *fields.Name
	}
	req := locationCreateRequest{
		Name:        name,
		Description: fields.Description,
		ParentID:    fields.ParentID,
	}

	var location entities.Location
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/locations", nil, req, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

// UpdateLocation updates a location with only the supplied fields. Omitted
// fields stay untouched on the server rather than being cleared.
func (c *HomeboxClient) UpdateLocation(ctx context.Context, id string, fields entities.LocationFields) (*entities.Location, error) {
	req := locationUpdateRequest{
		ID:          id,
		Name:        fields.Name,
		Description: fields.Description,
		ParentID:    fields.ParentID,
	}

	var location entities.Location
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/locations/"+url.PathEscape(id), nil, req, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

// DeleteLocation deletes a location. No content on success.
func (c *HomeboxClient) DeleteLocation(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/v1/locations/"+url.PathEscape(id), nil, nil, nil)
}
