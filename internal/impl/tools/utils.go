package tools

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/stocktake/stocktake/internal/domain/entities"
)

func formatSize(size int64) string {
	return humanize.Bytes(uint64(size))
}

func formatPrice(price float64) string {
	return humanize.CommafWithDigits(price, 2)
}

// failure renders a caught error as the ✗-prefixed text result the host
// framework shows instead of a raised exception.
func failure(action string, err error) string {
	return fmt.Sprintf("✗ %s: %v", action, err)
}

// summarizeItem renders the one-line form used by search results.
func summarizeItem(item entities.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (qty %d)", item.Name, item.Quantity)
	if item.Location != nil && item.Location.Name != "" {
		fmt.Fprintf(&b, " @ %s", item.Location.Name)
	}
	if item.ID != "" {
		fmt.Fprintf(&b, " [id: %s]", item.ID)
	}
	return b.String()
}

// describeItem renders the multi-line form used after a create or update,
// listing only populated fields.
func describeItem(item *entities.Item) string {
	var b strings.Builder
	b.WriteString(summarizeItem(*item))
	if item.Manufacturer != "" {
		fmt.Fprintf(&b, "\n  manufacturer: %s", item.Manufacturer)
	}
	if item.ModelNumber != "" {
		fmt.Fprintf(&b, "\n  model: %s", item.ModelNumber)
	}
	if item.SerialNumber != "" {
		fmt.Fprintf(&b, "\n  serial: %s", item.SerialNumber)
	}
	if item.PurchasePrice != 0 {
		fmt.Fprintf(&b, "\n  purchase price: %s", formatPrice(item.PurchasePrice))
	}
	if item.WarrantyExpires != "" {
		fmt.Fprintf(&b, "\n  warranty until: %s", item.WarrantyExpires)
	}
	if item.Notes != "" {
		fmt.Fprintf(&b, "\n  notes: %s", item.Notes)
	}
	return b.String()
}
