package services

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
)

// QuoteCustomer is the read-only customer snapshot a render works from.
type QuoteCustomer struct {
	EntityType   string // "N" natural person, "J" juridical
	Name         string
	LastName     string
	BusinessName string
	DNI          string
	RUC          string
	DocForeign   string
	PhoneNumber  string
	Email        string
}

// QuoteStore carries the store fields printed on the letterhead and in the
// payment-instructions footer box. Absent fields render as empty text.
type QuoteStore struct {
	Name                 string
	PhoneNumber          string
	PhoneNumberSecondary string
	YapePhoneNumber      string
	Email                string
	BCPAccount           string
	BCPInterbank         string
}

// QuoteOrder is the order snapshot consumed by the renderer. It is assembled
// once per render call and never mutated.
type QuoteOrder struct {
	ID              string
	CreatedAt       time.Time
	TotalAmount     float64
	ProfitMargin    float64
	DiscountApplied float64
	FinalAmount     float64
	PaymentMethod   string
	Notes           string
	Status          string
	Customer        *QuoteCustomer // nil renders the not-specified placeholder
	Store           QuoteStore
}

// QuoteExportData bundles everything GenerateQuotePDF needs: the resolved
// order snapshot, the frontend display items, the static image assets and the
// render clock.
type QuoteExportData struct {
	Order       QuoteOrder
	Items       []DisplayLineItem
	Assets      PageAssets
	GeneratedAt time.Time
}

// BuildQuoteExportData resolves the order aggregate from storage and pairs it
// with the display items supplied by the caller. Missing relational records
// degrade to placeholders instead of failing the render.
func BuildQuoteExportData(app *pocketbase.PocketBase, orderID string, items []DisplayLineItem) (*QuoteExportData, error) {
	record, err := app.FindRecordById("orders", orderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	order := QuoteOrder{
		ID:              record.Id,
		CreatedAt:       record.GetDateTime("created").Time(),
		TotalAmount:     record.GetFloat("total_amount"),
		ProfitMargin:    record.GetFloat("profit_margin"),
		DiscountApplied: record.GetFloat("discount_applied"),
		FinalAmount:     record.GetFloat("final_amount"),
		PaymentMethod:   record.GetString("payment_method"),
		Notes:           record.GetString("notes"),
	}

	if customerID := record.GetString("customer"); customerID != "" {
		c, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("quote_export: could not find customer %s: %v", customerID, err)
		} else {
			order.Customer = &QuoteCustomer{
				EntityType:   c.GetString("entity_type"),
				Name:         c.GetString("name"),
				LastName:     c.GetString("last_name"),
				BusinessName: c.GetString("business_name"),
				DNI:          c.GetString("dni"),
				RUC:          c.GetString("ruc"),
				DocForeign:   c.GetString("doc_foreign"),
				PhoneNumber:  c.GetString("phone_number"),
				Email:        c.GetString("email"),
			}
		}
	}

	if storeID := record.GetString("store"); storeID != "" {
		s, err := app.FindRecordById("stores", storeID)
		if err != nil {
			log.Printf("quote_export: could not find store %s: %v", storeID, err)
		} else {
			order.Store = QuoteStore{
				Name:                 s.GetString("name"),
				PhoneNumber:          s.GetString("phone_number"),
				PhoneNumberSecondary: s.GetString("phone_number_secondary"),
				YapePhoneNumber:      s.GetString("yape_phone_number"),
				Email:                s.GetString("email"),
				BCPAccount:           s.GetString("bcp_cta"),
				BCPInterbank:         s.GetString("bcp_cci"),
			}
		}
	}

	if statusID := record.GetString("status"); statusID != "" {
		st, err := app.FindRecordById("order_statuses", statusID)
		if err != nil {
			log.Printf("quote_export: could not find status %s: %v", statusID, err)
		} else {
			order.Status = st.GetString("name")
		}
	}

	return &QuoteExportData{
		Order:       order,
		Items:       items,
		Assets:      DefaultPageAssets(),
		GeneratedAt: LimaTime(time.Now()),
	}, nil
}
