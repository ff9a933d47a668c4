package tools

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stocktake/stocktake/internal/domain/entities"
)

func TestSearchItemsTool_RendersMatches(t *testing.T) {
	mockService := new(mockInventoryService)
	tool := NewSearchItemsTool("SearchItems", "test", map[string]string{}, mockService, zap.NewNop())

	mockService.On("SearchItems", mock.Anything, "resistor").Return([]entities.Item{
		{ID: "item-1", Name: "10kΩ Resistor", Quantity: 50, Location: &entities.LocationRef{ID: "loc-1", Name: "Parts Bin"}},
	}, nil)

	result, err := tool.Execute(`{"query": "resistor"}`)

	require.NoError(t, err)
	assert.Contains(t, result, "10kΩ Resistor")
	assert.Contains(t, result, "qty 50")
	assert.Contains(t, result, "Parts Bin")
	mockService.AssertExpectations(t)
}

func TestSearchItemsTool_EmptyResult(t *testing.T) {
	mockService := new(mockInventoryService)
	tool := NewSearchItemsTool("SearchItems", "test", map[string]string{}, mockService, zap.NewNop())

	mockService.On("SearchItems", mock.Anything, "unobtainium").Return([]entities.Item{}, nil)

	result, err := tool.Execute(`{"query": "unobtainium"}`)

	require.NoError(t, err)
	assert.Contains(t, result, "No items matched")
}

func TestSearchItemsTool_ExtendedVariant(t *testing.T) {
	mockService := new(mockInventoryService)
	tool := NewSearchItemsTool("SearchItems", "test", map[string]string{}, mockService, zap.NewNop())

	mockService.On("SearchItemsExtended", mock.Anything, "drill").Return([]entities.Item{
		{ID: "item-2", Name: "Drill", Quantity: 1},
	}, nil)

	_, err := tool.Execute(`{"query": "drill", "extended": true}`)

	require.NoError(t, err)
	mockService.AssertExpectations(t)
	mockService.AssertNotCalled(t, "SearchItems", mock.Anything, mock.Anything)
}

func TestSearchItemsTool_ErrorsPropagate(t *testing.T) {
	mockService := new(mockInventoryService)
	tool := NewSearchItemsTool("SearchItems", "test", map[string]string{}, mockService, zap.NewNop())

	mockService.On("SearchItems", mock.Anything, "anything").Return(nil, fmt.Errorf("service unreachable"))

	// Search errors are not caught and rendered; the host framework sees them.
	_, err := tool.Execute(`{"query": "anything"}`)
	require.Error(t, err)
}

func TestSearchItemsTool_RequiresQuery(t *testing.T) {
	mockService := new(mockInventoryService)
	tool := NewSearchItemsTool("SearchItems", "test", map[string]string{}, mockService, zap.NewNop())

	_, err := tool.Execute(`{}`)
	require.Error(t, err)
}
