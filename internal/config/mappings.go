package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ColumnMapping binds the logical fields of a movement/receipt feed to the
// physical column names of its extract. Feeds that do not carry a field
// (sales extracts have no value columns, only the ledger has lot numbers)
// leave the corresponding entry empty.
type ColumnMapping struct {
	Date         string `yaml:"date" validate:"required"`
	SKU          string `yaml:"sku" validate:"required"`
	MoveOrder    string `yaml:"move_order" validate:"required"`
	Lot          string `yaml:"lot"`
	Depot        string `yaml:"depot" validate:"required"`
	Order        string `yaml:"order"`
	PKRDQuantity string `yaml:"pkrd_quantity"`
	PKRDValue    string `yaml:"pkrd_value"`
	NFSIQuantity string `yaml:"nfsi_quantity"`
	NFSIValue    string `yaml:"nfsi_value"`
}

// PricingMapping binds the transfer pricing workbook columns.
type PricingMapping struct {
	Date            string `yaml:"date"`
	SKU             string `yaml:"sku" validate:"required"`
	MIN             string `yaml:"min"`
	PIN             string `yaml:"pin"`
	Description     string `yaml:"description" validate:"required"`
	Room            string `yaml:"room" validate:"required"`
	RoomTwo         string `yaml:"room_two"`
	TradingCategory string `yaml:"trading_category"`
	PackWeight      string `yaml:"pack_weight"`
	CaseSize        string `yaml:"case_size"`
	CaseWeight      string `yaml:"case_weight"`
	RM              string `yaml:"rm"`
	Pack            string `yaml:"pack"`
	Lab             string `yaml:"lab"`
	Dist            string `yaml:"dist"`
	OH              string `yaml:"oh"`
	DepotLoss       string `yaml:"depot_loss"`
	Total           string `yaml:"total" validate:"required"`
	RMCase          string `yaml:"rm_case"`
	PackCase        string `yaml:"pack_case"`
	LabCase         string `yaml:"lab_case"`
	DistCase        string `yaml:"dist_case"`
	OHCase          string `yaml:"oh_case"`
	DepotLossCase   string `yaml:"depot_loss_case"`
	TotalCase       string `yaml:"total_case" validate:"required"`
}

// Mappings holds one ColumnMapping per source feed plus the pricing workbook
// layout. The zero value is replaced by DefaultMappings on load.
type Mappings struct {
	PKRD    ColumnMapping  `yaml:"pkrd"`
	Fresh   ColumnMapping  `yaml:"fresh"`
	Frozen  ColumnMapping  `yaml:"frozen"`
	NonNFSI ColumnMapping  `yaml:"non_nfsi"`
	Sales   ColumnMapping  `yaml:"sales"`
	Pricing PricingMapping `yaml:"pricing"`
}

// DefaultMappings returns the deployed column layouts of the six extracts.
func DefaultMappings() Mappings {
	nfsi := ColumnMapping{
		Date:         "ACTUAL_TRAN_DATE",
		SKU:          "LPC",
		MoveOrder:    "SORDNO_ITM1",
		Depot:        "DEPOT",
		Order:        "ORDER_NO",
		NFSIQuantity: "PACKS_RECEIVED",
		NFSIValue:    "TOTAL_COST",
	}

	return Mappings{
		PKRD: ColumnMapping{
			Date:         "Move Date",
			SKU:          "Item No.",
			MoveOrder:    "Move Order",
			Lot:          "Lot Number",
			Depot:        "Store",
			Order:        "SMS_ORDER_NUMBER",
			PKRDQuantity: "Qty",
			PKRDValue:    "Value",
		},
		Fresh:  nfsi,
		Frozen: nfsi,
		NonNFSI: ColumnMapping{
			Date:         "Invoice Date",
			SKU:          "Item No",
			MoveOrder:    "Sales Order No",
			Depot:        "Customer No",
			Order:        "PO # (1)",
			NFSIQuantity: "QTY In Cases",
			NFSIValue:    "Total Price",
		},
		Sales: ColumnMapping{
			Date:         "CUSTREQDTE_SOR",
			SKU:          "PARTNO",
			MoveOrder:    "SORDNO_ITM1",
			Depot:        "Textbox268",
			Order:        "SMS_ORDER_NUMBER",
			NFSIQuantity: "SO_DESPATCHED_QUANTITY",
		},
		Pricing: PricingMapping{
			Date:            "pricing_date",
			SKU:             "FB Ref",
			MIN:             "MIN",
			PIN:             "PIN",
			Description:     "Description",
			Room:            "Room",
			RoomTwo:         "Room 2",
			TradingCategory: "Trading Category",
			PackWeight:      "Pack Weight",
			CaseSize:        "Case Size",
			CaseWeight:      "Case Weight",
			RM:              "RM",
			Pack:            "Pack",
			Lab:             "Lab",
			Dist:            "Dist",
			OH:              "OH",
			DepotLoss:       "Depot Loss",
			Total:           "Total",
			RMCase:          "RM_case",
			PackCase:        "Pack_case",
			LabCase:         "Lab_case",
			DistCase:        "Dist_case",
			OHCase:          "OH_case",
			DepotLossCase:   "Depot Loss_case",
			TotalCase:       "Total_case",
		},
	}
}

// Validate checks that every mapping carries the columns its feed needs.
func (m Mappings) Validate() error {
	v := validator.New()

	named := []struct {
		name    string
		mapping any
	}{
		{"pkrd", m.PKRD},
		{"fresh", m.Fresh},
		{"frozen", m.Frozen},
		{"non_nfsi", m.NonNFSI},
		{"sales", m.Sales},
		{"pricing", m.Pricing},
	}
	for _, n := range named {
		if err := v.Struct(n.mapping); err != nil {
			return fmt.Errorf("%s mapping: %w", n.name, err)
		}
	}

	// Measure columns are per-side requirements the struct tags cannot
	// express: the ledger carries movement quantity/value, receipt feeds
	// carry received quantity/cost.
	if m.PKRD.PKRDQuantity == "" || m.PKRD.PKRDValue == "" {
		return fmt.Errorf("pkrd mapping: quantity and value columns are required")
	}
	for _, n := range []struct {
		name    string
		mapping ColumnMapping
	}{{"fresh", m.Fresh}, {"frozen", m.Frozen}, {"non_nfsi", m.NonNFSI}} {
		if n.mapping.NFSIQuantity == "" || n.mapping.NFSIValue == "" {
			return fmt.Errorf("%s mapping: quantity and value columns are required", n.name)
		}
	}

	return nil
}

func (m Mappings) isZero() bool {
	return m.PKRD == (ColumnMapping{}) && m.Fresh == (ColumnMapping{}) &&
		m.Frozen == (ColumnMapping{}) && m.NonNFSI == (ColumnMapping{}) &&
		m.Sales == (ColumnMapping{})
}
