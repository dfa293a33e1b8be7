package services

import "fmt"

// DisplayExtraOption is a priced add-on attached to a display line item,
// exactly as the frontend cart submitted it.
type DisplayExtraOption struct {
	ExtraOptionID int     `json:"extra_option_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      float64 `json:"quantity"`
	LinearMeter   float64 `json:"linear_meter"`
	Width         float64 `json:"width"`
	GigaSelect    string  `json:"giga_select"`
}

// DisplayLineItem is a frontend-supplied, already-priced cart entry used only
// for rendering labels and values. The persisted order details remain the
// authoritative record; this type never reaches storage.
type DisplayLineItem struct {
	ProductID         int                  `json:"product_id"`
	Height            float64              `json:"height"`
	Width             float64              `json:"width"`
	Quantity          int                  `json:"quantity"`
	LinearMeter       float64              `json:"linear_meter"`
	Subtotal          float64              `json:"subtotal"`
	TotalExtraOptions float64              `json:"total_extra_options"`
	ExtraOptions      []DisplayExtraOption `json:"extra_options"`
	SKU               string               `json:"sku"`
	Name              string               `json:"name"`
	Price             float64              `json:"price"`
	Image             string               `json:"image"`
}

// RowKind tags a rendered table row and drives the cell-merge and style rules
// applied by the PDF layout.
type RowKind int

const (
	RowItem RowKind = iota
	RowExtraHeader
	RowExtra
	RowSubtotal
)

// RenderRow is one physical row of the quotation item table. All cells are
// pre-formatted strings; empty cells stay empty.
type RenderRow struct {
	Kind      RowKind
	Seq       string
	SKU       string
	Product   string
	Qty       string
	UnitPrice string
	Amount    string
}

// QuoteTable is the assembled body of the item table plus the row-index
// bookkeeping the layout needs for cell merges.
type QuoteTable struct {
	Rows []RenderRow
	// SubtotalRows holds indices of "Sub Total Producto" rows (columns 2-5 merge).
	SubtotalRows []int
	// ExtraHeaderRows holds indices of "Extras:" section rows (columns 3-6 merge).
	ExtraHeaderRows []int
}

// BuildQuoteRows expands the display items into table rows, in input order.
// Each item yields an item row, an optional extras section (header plus one
// row per extra option) and always a per-item subtotal row valued at
// item.Subtotal + item.TotalExtraOptions.
func BuildQuoteRows(items []DisplayLineItem) QuoteTable {
	var table QuoteTable

	for i, item := range items {
		table.Rows = append(table.Rows, RenderRow{
			Kind:      RowItem,
			Seq:       fmt.Sprintf("%d", i+1),
			SKU:       item.SKU,
			Product:   productLabel(item),
			Qty:       fmt.Sprintf("%d", item.Quantity),
			UnitPrice: FormatAmount(item.Price),
			Amount:    FormatAmount(item.Price * float64(item.Quantity)),
		})

		if len(item.ExtraOptions) > 0 {
			table.Rows = append(table.Rows, RenderRow{Kind: RowExtraHeader, Product: "Extras:"})
			table.ExtraHeaderRows = append(table.ExtraHeaderRows, len(table.Rows)-1)

			for _, extra := range item.ExtraOptions {
				table.Rows = append(table.Rows, RenderRow{
					Kind:      RowExtra,
					Product:   extraLabel(extra),
					Qty:       FormatQty(extra.Quantity),
					UnitPrice: FormatAmount(extra.Price),
					Amount:    FormatAmount(extra.Price * extra.Quantity),
				})
			}
		}

		table.Rows = append(table.Rows, RenderRow{
			Kind:   RowSubtotal,
			SKU:    "Sub Total Producto:",
			Amount: FormatAmount(item.Subtotal + item.TotalExtraOptions),
		})
		table.SubtotalRows = append(table.SubtotalRows, len(table.Rows)-1)
	}

	return table
}

// productLabel augments the product name with the dimension annotation for
// the known measured-product id ranges: id 1 is sold by area, ids 2-9 by
// linear meter.
func productLabel(item DisplayLineItem) string {
	switch {
	case item.ProductID == 1:
		return fmt.Sprintf("%s | Largo: %sm | Ancho: %sm | Area: %s m²",
			item.Name, FormatQty(item.LinearMeter), FormatQty(item.Width),
			FormatQty(item.LinearMeter*item.Width))
	case item.ProductID >= 2 && item.ProductID <= 9:
		return fmt.Sprintf("%s | Metro Lineal: %s m", item.Name, FormatQty(item.LinearMeter))
	default:
		return item.Name
	}
}

// extraLabel augments an extra option's name with its variant or measurement
// annotation, keyed by the same frontend id ranges the cart uses.
func extraLabel(extra DisplayExtraOption) string {
	name := extra.Name
	if extra.ExtraOptionID >= 1 && extra.ExtraOptionID <= 2 {
		name += " | Seleccionado: " + extra.GigaSelect
	}
	if extra.LinearMeter > 0 && extra.ExtraOptionID >= 5 && extra.ExtraOptionID <= 8 {
		name += fmt.Sprintf(" | Metro Lineal: %s m", FormatQty(extra.LinearMeter))
	}
	if extra.LinearMeter > 0 && extra.ExtraOptionID >= 10 && extra.ExtraOptionID <= 13 {
		name += fmt.Sprintf(" | Largo: %sm | Ancho: %sm", FormatQty(extra.LinearMeter), FormatQty(extra.Width))
	}
	return name
}
