package services

import "testing"

func TestBuildQuoteRowsPlainItem(t *testing.T) {
	items := []DisplayLineItem{
		{ProductID: 20, SKU: "IMP-TAR", Name: "Tarjetas Personales", Quantity: 2, Price: 60, Subtotal: 120},
	}

	table := BuildQuoteRows(items)

	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows (item + subtotal), got %d", len(table.Rows))
	}

	item := table.Rows[0]
	if item.Kind != RowItem || item.Seq != "1" || item.SKU != "IMP-TAR" {
		t.Errorf("unexpected item row: %+v", item)
	}
	if item.Qty != "2" || item.UnitPrice != "60.00" || item.Amount != "120.00" {
		t.Errorf("unexpected item amounts: %+v", item)
	}
	if item.Product != "Tarjetas Personales" {
		t.Errorf("plain product should not be annotated, got %q", item.Product)
	}

	sub := table.Rows[1]
	if sub.Kind != RowSubtotal || sub.SKU != "Sub Total Producto:" || sub.Amount != "120.00" {
		t.Errorf("unexpected subtotal row: %+v", sub)
	}
	if len(table.SubtotalRows) != 1 || table.SubtotalRows[0] != 1 {
		t.Errorf("unexpected subtotal index bookkeeping: %v", table.SubtotalRows)
	}
	if len(table.ExtraHeaderRows) != 0 {
		t.Errorf("expected no extras header rows, got %v", table.ExtraHeaderRows)
	}
}

func TestBuildQuoteRowsWithExtras(t *testing.T) {
	items := []DisplayLineItem{
		{
			ProductID: 3, SKU: "GIG-BAN", Name: "Banner 13 onzas",
			Quantity: 1, Price: 25, LinearMeter: 3, Subtotal: 75, TotalExtraOptions: 13,
			ExtraOptions: []DisplayExtraOption{
				{ExtraOptionID: 3, Name: "Ojales reforzados", Price: 2, Quantity: 4},
				{ExtraOptionID: 6, Name: "Corte a medida", Price: 5, Quantity: 1, LinearMeter: 2.5},
			},
		},
	}

	table := BuildQuoteRows(items)

	// item + extras header + 2 extras + subtotal
	if len(table.Rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(table.Rows))
	}

	if table.Rows[0].Product != "Banner 13 onzas | Metro Lineal: 3 m" {
		t.Errorf("linear-meter annotation missing: %q", table.Rows[0].Product)
	}

	header := table.Rows[1]
	if header.Kind != RowExtraHeader || header.Product != "Extras:" {
		t.Errorf("unexpected extras header row: %+v", header)
	}
	if len(table.ExtraHeaderRows) != 1 || table.ExtraHeaderRows[0] != 1 {
		t.Errorf("unexpected extras header indices: %v", table.ExtraHeaderRows)
	}

	first := table.Rows[2]
	if first.Kind != RowExtra || first.Product != "Ojales reforzados" {
		t.Errorf("unexpected first extra row: %+v", first)
	}
	if first.Qty != "4" || first.Amount != "8.00" {
		t.Errorf("unexpected first extra amounts: %+v", first)
	}

	second := table.Rows[3]
	if second.Product != "Corte a medida | Metro Lineal: 2.5 m" {
		t.Errorf("linear-meter extra annotation missing: %q", second.Product)
	}

	sub := table.Rows[4]
	if sub.Amount != "88.00" {
		t.Errorf("subtotal should include extras total, got %q", sub.Amount)
	}
}

func TestBuildQuoteRowsAreaProduct(t *testing.T) {
	items := []DisplayLineItem{
		{ProductID: 1, SKU: "GIG-VIN", Name: "Vinil Adhesivo", Quantity: 1, Price: 35,
			LinearMeter: 2, Width: 1.5, Subtotal: 105},
	}

	table := BuildQuoteRows(items)

	want := "Vinil Adhesivo | Largo: 2m | Ancho: 1.5m | Area: 3 m²"
	if table.Rows[0].Product != want {
		t.Errorf("area annotation = %q, want %q", table.Rows[0].Product, want)
	}
}

func TestBuildQuoteRowsGigaSelectExtra(t *testing.T) {
	items := []DisplayLineItem{
		{ProductID: 2, Name: "Microperforado", Quantity: 1, Price: 45, LinearMeter: 1, Subtotal: 45,
			TotalExtraOptions: 10,
			ExtraOptions: []DisplayExtraOption{
				{ExtraOptionID: 1, Name: "Tubos y colgadores", Price: 10, Quantity: 1, GigaSelect: "Superior"},
			},
		},
	}

	table := BuildQuoteRows(items)

	if table.Rows[2].Product != "Tubos y colgadores | Seleccionado: Superior" {
		t.Errorf("giga select annotation = %q", table.Rows[2].Product)
	}
}

func TestBuildQuoteRowsDimensionedExtra(t *testing.T) {
	items := []DisplayLineItem{
		{ProductID: 5, Name: "Banner", Quantity: 1, Price: 25, Subtotal: 25, TotalExtraOptions: 20,
			ExtraOptions: []DisplayExtraOption{
				{ExtraOptionID: 11, Name: "Marco de madera", Price: 20, Quantity: 1, LinearMeter: 2, Width: 1},
			},
		},
	}

	table := BuildQuoteRows(items)

	if table.Rows[2].Product != "Marco de madera | Largo: 2m | Ancho: 1m" {
		t.Errorf("dimensioned extra annotation = %q", table.Rows[2].Product)
	}
}

func TestBuildQuoteRowsMultipleItems(t *testing.T) {
	items := []DisplayLineItem{
		{ProductID: 20, Name: "Volantes", Quantity: 1, Price: 90, Subtotal: 90},
		{ProductID: 21, Name: "Stickers", Quantity: 2, Price: 50, Subtotal: 100},
	}

	table := BuildQuoteRows(items)

	if len(table.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].Seq != "1" || table.Rows[2].Seq != "2" {
		t.Errorf("sequence numbers wrong: %q, %q", table.Rows[0].Seq, table.Rows[2].Seq)
	}
	if len(table.SubtotalRows) != 2 {
		t.Errorf("expected 2 subtotal indices, got %v", table.SubtotalRows)
	}
}

func TestBuildQuoteRowsEmpty(t *testing.T) {
	table := BuildQuoteRows(nil)
	if len(table.Rows) != 0 {
		t.Errorf("expected no rows for empty input, got %d", len(table.Rows))
	}
}
