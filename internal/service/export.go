package service

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/threadline/bagging-service/internal/domain/model"
)

// exportHeader is the column layout consumed by the packing floor's
// spreadsheet tooling.
var exportHeader = []string{
	"Bag Number",
	"Item Type",
	"Reference",
	"Customer",
	"Meters",
	"Total Bag Meters",
	"Filled From Inventory",
}

// WriteCSV renders the bags as CSV, one row per bag item. It is a pure
// formatting function over ledger contents and performs no mutation.
func WriteCSV(w io.Writer, bags []model.Bag) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, bag := range bags {
		for _, item := range bag.Items {
			row := []string{
				strconv.Itoa(bag.Number),
				itemTypeLabel(item.Type),
				item.Reference(),
				item.Customer,
				strconv.Itoa(item.Meters),
				strconv.Itoa(bag.TotalMeters),
				strconv.Itoa(bag.FilledFromInventoryMeters),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func itemTypeLabel(t model.ItemType) string {
	if t == model.ItemTypeInventory {
		return "Inventory"
	}
	return "Order"
}
