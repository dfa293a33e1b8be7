package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	quoteRed   = &props.Color{Red: 236, Green: 46, Blue: 44}
	quoteWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
	quoteGrey  = &props.Color{Red: 240, Green: 240, Blue: 240}
)

// GenerateQuotePDF renders the quotation document for an order using
// maroto/v2 and returns the raw PDF bytes. The page header and footer repeat
// on every page; the item table flows across page breaks between them.
func GenerateQuotePDF(data *QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(10).
		WithRightMargin(15).
		WithBottomMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "P. {current}",
			Place:   props.Bottom,
			Size:    8,
		}).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterHeader(buildPageHeader(data)...); err != nil {
		return nil, fmt.Errorf("failed to register quote header: %w", err)
	}
	if err := m.RegisterFooter(buildPageFooter(data)...); err != nil {
		return nil, fmt.Errorf("failed to register quote footer: %w", err)
	}

	addQuoteCustomerBlock(m, data)
	addQuoteIntro(m)
	addQuoteItemsTable(m, data)
	addQuoteTotals(m, data)
	addQuoteAmountInWords(m, data)
	addQuoteNotes(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteCustomerBlock adds the addressee block. Juridical customers print
// business name, RUC and representative; natural persons print name and the
// identity document they carry. A missing customer prints a placeholder.
func addQuoteCustomerBlock(m core.Maroto, data *QuoteExportData) {
	valueStyle := props.Text{Size: 10}

	c := data.Order.Customer
	if c == nil {
		m.AddRows(
			row.New(6).Add(col.New(12).Add(text.New("Cliente no especificado.", valueStyle))),
			row.New(3),
		)
		return
	}

	var lines []string
	if c.EntityType == "J" {
		lines = append(lines, "Razón Social: "+c.BusinessName)
		if c.RUC != "" {
			lines = append(lines, "RUC: "+c.RUC)
		}
		if c.Name != "" || c.LastName != "" {
			lines = append(lines, "Representante: "+joinNonEmpty([]string{c.Name, c.LastName}, " "))
		}
	} else {
		lines = append(lines, "Sr(a). "+joinNonEmpty([]string{c.Name, c.LastName}, " "))
		if c.DNI != "" {
			lines = append(lines, "DNI: "+c.DNI)
		} else if c.DocForeign != "" {
			lines = append(lines, "Doc. Extranjeria: "+c.DocForeign)
		}
	}
	if c.PhoneNumber != "" {
		lines = append(lines, "Celular: "+FormatPhone(c.PhoneNumber))
	}
	if c.Email != "" {
		lines = append(lines, "Email: "+c.Email)
	}

	for _, line := range lines {
		m.AddRows(row.New(5).Add(col.New(12).Add(text.New(line, valueStyle))))
	}
	m.AddRows(row.New(3))
}

// addQuoteIntro adds the fixed salutation paragraph above the item table.
func addQuoteIntro(m core.Maroto) {
	introStyle := props.Text{Size: 10}

	m.AddRows(
		row.New(5).Add(col.New(12).Add(text.New("De nuestra mayor consideracion:", introStyle))),
		row.New(6).Add(col.New(12).Add(text.New(
			"Es grato dirigirnos a Uds. a fin de hacerle llegar nuestra propuesta economica por lo siguiente:",
			introStyle,
		))),
		row.New(2),
	)
}

// addQuoteItemsTable adds the six-column item table. Item rows carry the
// full grid; extras headers and per-item subtotals render as merged spans by
// widening the description column.
func addQuoteItemsTable(m core.Maroto, data *QuoteExportData) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: quoteWhite,
		Top:   1,
	}
	headerCell := &props.Cell{BackgroundColor: quoteRed, BorderType: border.Full, BorderThickness: 0.3}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New("Item", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Codigo", headerText)).WithStyle(headerCell),
			col.New(5).Add(text.New("Producto", headerText)).WithStyle(headerCell),
			col.New(1).Add(text.New("Cant.", headerText)).WithStyle(headerCell),
			col.New(1).Add(text.New("P.Unit", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Importe", headerText)).WithStyle(headerCell),
		),
	)

	table := BuildQuoteRows(data.Items)
	for _, r := range table.Rows {
		m.AddRows(buildTableRow(r))
	}
}

// buildTableRow maps one logical table row to its maroto layout.
func buildTableRow(r RenderRow) core.Row {
	bodyCell := &props.Cell{BorderType: border.Full, BorderThickness: 0.3}
	center := props.Text{Size: 8, Align: align.Center, Top: 1}
	left := props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1}
	right := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}

	switch r.Kind {
	case RowExtraHeader:
		boldLeft := left
		boldLeft.Style = fontstyle.Bold
		return row.New(6).Add(
			col.New(1).WithStyle(bodyCell),
			col.New(2).WithStyle(bodyCell),
			col.New(9).Add(text.New(r.Product, boldLeft)).WithStyle(bodyCell),
		)
	case RowExtra:
		return row.New(6).Add(
			col.New(1).WithStyle(bodyCell),
			col.New(2).WithStyle(bodyCell),
			col.New(5).Add(text.New(r.Product, left)).WithStyle(bodyCell),
			col.New(1).Add(text.New(r.Qty, center)).WithStyle(bodyCell),
			col.New(1).Add(text.New(r.UnitPrice, right)).WithStyle(bodyCell),
			col.New(2).Add(text.New(r.Amount, right)).WithStyle(bodyCell),
		)
	case RowSubtotal:
		boldRight := right
		boldRight.Style = fontstyle.Bold
		greyCell := &props.Cell{BackgroundColor: quoteGrey, BorderType: border.Full, BorderThickness: 0.3}
		return row.New(6).Add(
			col.New(1).WithStyle(greyCell),
			col.New(9).Add(text.New(r.SKU, boldRight)).WithStyle(greyCell),
			col.New(2).Add(text.New(r.Amount, boldRight)).WithStyle(greyCell),
		)
	default:
		return row.New(6).Add(
			col.New(1).Add(text.New(r.Seq, center)).WithStyle(bodyCell),
			col.New(2).Add(text.New(r.SKU, center)).WithStyle(bodyCell),
			col.New(5).Add(text.New(r.Product, left)).WithStyle(bodyCell),
			col.New(1).Add(text.New(r.Qty, center)).WithStyle(bodyCell),
			col.New(1).Add(text.New(r.UnitPrice, right)).WithStyle(bodyCell),
			col.New(2).Add(text.New(r.Amount, right)).WithStyle(bodyCell),
		)
	}
}

// addQuoteTotals adds the taxable base, backed-out IGV and grand total rows
// right-aligned under the Importe column.
func addQuoteTotals(m core.Maroto, data *QuoteExportData) {
	totals := CalcQuoteTotals(&data.Order)

	labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Top: 1, Right: 1}
	valueStyle := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
	cell := &props.Cell{BorderType: border.Full, BorderThickness: 0.3}

	summary := []struct {
		label string
		value float64
	}{
		{"Gravado (S/.):", totals.TaxableBase},
		{"IGV 18% (S/.):", totals.TaxAmount},
		{"Total Carrito (S/.):", totals.GrandTotal},
	}

	for _, s := range summary {
		m.AddRows(
			row.New(6).Add(
				col.New(10).Add(text.New(s.label, labelStyle)).WithStyle(cell),
				col.New(2).Add(text.New(FormatAmount(s.value), valueStyle)).WithStyle(cell),
			),
		)
	}
}

// addQuoteAmountInWords adds the legal amount-in-words line for the grand total.
func addQuoteAmountInWords(m core.Maroto, data *QuoteExportData) {
	m.AddRows(
		row.New(2),
		row.New(6).Add(
			col.New(12).Add(text.New(AmountToWords(data.Order.FinalAmount), props.Text{
				Size:  9,
				Style: fontstyle.Bold,
			})),
		),
	)
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	result := ""
	for i, p := range nonEmpty {
		if i > 0 {
			result += sep
		}
		result += p
	}
	return result
}

// addQuoteNotes adds the free-form order notes when present.
func addQuoteNotes(m core.Maroto, data *QuoteExportData) {
	if data.Order.Notes == "" {
		return
	}

	m.AddRows(
		row.New(2),
		row.New(5).Add(col.New(12).Add(text.New("Observaciones: "+data.Order.Notes, props.Text{Size: 8}))),
	)
}
