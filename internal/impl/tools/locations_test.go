package tools

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stocktake/stocktake/internal/domain/entities"
)

func TestGetLocationsTool_RendersTree(t *testing.T) {
	mockService := new(mockInventoryService)
	tool := NewGetLocationsTool("GetLocations", "test", map[string]string{}, mockService, zap.NewNop())

	mockService.On("ListLocations", mock.Anything).Return([]entities.Location{
		{ID: "loc-1", Name: "Garage", ItemCount: 12},
		{ID: "loc-2", Name: "Parts Bin", Description: "Small components", ItemCount: 140},
	}, nil)

	result, err := tool.Execute(`{}`)

	require.NoError(t, err)
	assert.Contains(t, result, "Garage")
	assert.Contains(t, result, "12 items")
	assert.Contains(t, result, "Small components")
}

func TestGetLocationsTool_ErrorsPropagate(t *testing.T) {
	mockService := new(mockInventoryService)
	tool := NewGetLocationsTool("GetLocations", "test", map[string]string{}, mockService, zap.NewNop())

	mockService.On("ListLocations", mock.Anything).Return(nil, fmt.Errorf("service unreachable"))

	_, err := tool.Execute(`{}`)
	require.Error(t, err)
}

func TestCreateLocationTool_OptionalParent(t *testing.T) {
	mockService := new(mockInventoryService)
	tool := NewCreateLocationTool("CreateLocation", "test", map[string]string{}, mockService, zap.NewNop())

	mockService.On("CreateLocation", mock.Anything, mock.MatchedBy(func(fields entities.LocationFields) bool {
		return fields.Name != nil && *fields.Name == "Shelf A" &&
			fields.ParentID != nil && *fields.ParentID == "loc-1" &&
			fields.Description == nil
	})).Return(&entities.Location{ID: "loc-9", Name: "Shelf A"}, nil)

	result, err := tool.Execute(`{"name": "Shelf A", "parentId": "loc-1"}`)

	require.NoError(t, err)
	assert.Contains(t, result, "Shelf A")
	assert.Contains(t, result, "loc-9")
	mockService.AssertExpectations(t)
}

func TestUpdateLocationTool_RequiresID(t *testing.T) {
	mockService := new(mockInventoryService)
	tool := NewUpdateLocationTool("UpdateLocation", "test", map[string]string{}, mockService, zap.NewNop())

	result, err := tool.Execute(`{"name": "Shelf B"}`)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result, "✗ "), result)
	mockService.AssertNotCalled(t, "UpdateLocation", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateLocationTool_DescriptionOnly(t *testing.T) {
	mockService := new(mockInventoryService)
	tool := NewUpdateLocationTool("UpdateLocation", "test", map[string]string{}, mockService, zap.NewNop())

	mockService.On("UpdateLocation", mock.Anything, "loc-1", mock.MatchedBy(func(fields entities.LocationFields) bool {
		return fields.Name == nil &&
			fields.Description != nil && *fields.Description == "re-labelled" &&
			fields.ParentID == nil
	})).Return(&entities.Location{ID: "loc-1", Name: "Garage"}, nil)

	result, err := tool.Execute(`{"locationId": "loc-1", "description": "re-labelled"}`)

	require.NoError(t, err)
	assert.Contains(t, result, "Garage")
	mockService.AssertExpectations(t)
}

func TestDeleteLocationTool_CaughtErrorRendersFailure(t *testing.T) {
	mockService := new(mockInventoryService)
	tool := NewDeleteLocationTool("DeleteLocation", "test", map[string]string{}, mockService, zap.NewNop())

	mockService.On("DeleteLocation", mock.Anything, "loc-1").Return(fmt.Errorf("api error: 409 Conflict"))

	result, err := tool.Execute(`{"locationId": "loc-1"}`)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result, "✗ "), result)
	assert.Contains(t, result, "409")
}
