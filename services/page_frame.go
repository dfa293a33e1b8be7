package services

import (
	"os"
	"path/filepath"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PageAssets holds the filesystem paths of the static images stamped on every
// page. A missing file degrades to a text placeholder instead of failing the
// render, so a bare deployment still produces a valid document.
type PageAssets struct {
	Logo        string
	LocationMap string
	BCPLogo     string
	VisaLogo    string
	YapeLogo    string
	EmailIcon   string
	WebIcon     string
	PhoneIcon   string
}

// DefaultPageAssets resolves the asset directory from QUOTE_ASSETS_DIR,
// falling back to ./assets next to the binary.
func DefaultPageAssets() PageAssets {
	dir := os.Getenv("QUOTE_ASSETS_DIR")
	if dir == "" {
		dir = "assets"
	}
	return PageAssets{
		Logo:        filepath.Join(dir, "logo.png"),
		LocationMap: filepath.Join(dir, "location_map.png"),
		BCPLogo:     filepath.Join(dir, "bcp.png"),
		VisaLogo:    filepath.Join(dir, "visa.png"),
		YapeLogo:    filepath.Join(dir, "yape.png"),
		EmailIcon:   filepath.Join(dir, "icon_email.png"),
		WebIcon:     filepath.Join(dir, "icon_web.png"),
		PhoneIcon:   filepath.Join(dir, "icon_phone.png"),
	}
}

// assetCol returns an image column for path, or a small centered text
// placeholder when the file is not on disk.
func assetCol(size int, path, fallback string) core.Col {
	if _, err := os.Stat(path); err != nil {
		return col.New(size).Add(text.New(fallback, props.Text{
			Size:  6,
			Align: align.Center,
			Color: &props.Color{Red: 150, Green: 150, Blue: 150},
		}))
	}
	return image.NewFromFileCol(size, path, props.Rect{
		Center:  true,
		Percent: 90,
	})
}

// letterheadDateLine is the "Lima, ..." line at the top of every page. It
// carries the render date, not the order date, so a reprint always shows the
// day it was produced.
func letterheadDateLine(data *QuoteExportData) string {
	return "Lima, " + FormatSpanishLongDate(data.GeneratedAt)
}

// buildPageHeader returns the rows stamped at the top of every page: the
// render date in Spanish long form on the left and the shop logo on the right.
func buildPageHeader(data *QuoteExportData) []core.Row {
	dateLine := letterheadDateLine(data)

	return []core.Row{
		row.New(18).Add(
			col.New(8).Add(text.New(dateLine, props.Text{
				Size: 10,
				Top:  6,
			})),
			assetCol(4, data.Assets.Logo, data.Order.Store.Name),
		),
		row.New(4),
	}
}

// buildPageFooter returns the rows stamped at the bottom of every page:
// standing notes, the payment-instructions box, the contact grid, the shop
// address block with the location map, and the render timestamp.
func buildPageFooter(data *QuoteExportData) []core.Row {
	noteStyle := props.Text{Size: 7}
	labelStyle := props.Text{Size: 7, Style: fontstyle.Bold}
	valueStyle := props.Text{Size: 7}

	redBg := &props.Color{Red: 236, Green: 46, Blue: 44}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}

	store := data.Order.Store

	rows := []core.Row{
		row.New(4).Add(
			col.New(12).Add(text.New("- Se procede la impresión previa autorización del cliente.", noteStyle)),
		),
		row.New(4).Add(
			col.New(12).Add(text.New("- El delivery no esta considerado en la cotización.", noteStyle)),
		),
		row.New(2),

		row.New(6).Add(
			col.New(12).Add(text.New("Modalidad de pago", props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Center,
				Color: white,
				Top:   1,
			})).WithStyle(&props.Cell{BackgroundColor: redBg}),
		),

		row.New(8).Add(
			col.New(3).Add(text.New("Efectivo", labelStyle)),
			assetCol(2, data.Assets.VisaLogo, "VISA"),
			assetCol(2, data.Assets.YapeLogo, "Yape"),
			col.New(5).Add(text.New(fmtLabeled("Yape", FormatPhone(store.YapePhoneNumber)), valueStyle)),
		),
		row.New(8).Add(
			col.New(3).Add(text.New("Transferencia Bancaria", labelStyle)),
			assetCol(2, data.Assets.BCPLogo, "BCP"),
			col.New(7).Add(
				text.New(fmtLabeled("Nro. de Cuenta BCP", store.BCPAccount), valueStyle),
				text.New(fmtLabeled("Nro. de CCI Interbancaria", store.BCPInterbank), props.Text{
					Size: 7,
					Top:  4,
				}),
			),
		),
		row.New(2),
	}

	rows = append(rows, buildContactRow(data)...)
	rows = append(rows, buildAddressRow(data)...)

	rows = append(rows,
		row.New(4).Add(
			col.New(12).Add(text.New("Generado el: "+FormatTimestamp(data.GeneratedAt), props.Text{
				Size:  6,
				Align: align.Left,
				Color: &props.Color{Red: 120, Green: 120, Blue: 120},
			})),
		),
	)

	return rows
}

// buildContactRow lays out the email, phone and web contact grid.
func buildContactRow(data *QuoteExportData) []core.Row {
	store := data.Order.Store
	contactStyle := props.Text{Size: 7, Top: 1}

	phones := FormatPhone(store.PhoneNumber)
	if store.PhoneNumberSecondary != "" {
		phones += " / " + FormatPhone(store.PhoneNumberSecondary)
	}

	return []core.Row{
		row.New(6).Add(
			assetCol(1, data.Assets.EmailIcon, "@"),
			col.New(5).Add(text.New(store.Email, contactStyle)),
			assetCol(1, data.Assets.PhoneIcon, "Tel"),
			col.New(5).Add(text.New(phones, contactStyle)),
		),
		row.New(6).Add(
			assetCol(1, data.Assets.WebIcon, "web"),
			col.New(5).Add(text.New("www.lasercolorveloz.com", contactStyle)),
			col.New(1),
			col.New(5).Add(text.New("www.toqueunicoperu.com", contactStyle)),
		),
		row.New(2),
	}
}

// buildAddressRow stacks the five printed address lines beside the location
// map. Each line is offset from the previous by its own height so the block
// reads as a paragraph inside a single column.
func buildAddressRow(data *QuoteExportData) []core.Row {
	addressLines := []string{
		"C.C. Guizado Record Plaza",
		"1er Piso",
		"Stand 194",
		"Jr. Huaraz 1717 (altura de la Cra. 9 de la Av. Brasil)",
		"Breña",
	}

	addrCol := col.New(8)
	top := 0.0
	for i, line := range addressLines {
		style := props.Text{Size: 7, Top: top}
		if i == 0 {
			style.Style = fontstyle.Bold
		}
		addrCol.Add(text.New(line, style))
		top += 3.5
	}

	return []core.Row{
		row.New(20).Add(
			addrCol,
			assetCol(4, data.Assets.LocationMap, "Mapa de ubicación"),
		),
	}
}

// fmtLabeled returns "label: value", or empty when the value is missing.
func fmtLabeled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}
