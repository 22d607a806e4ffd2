package ubl_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	inv := readInvoice(t, `
		<cac:InvoiceLine>
			<cbc:Note>Delivered in two boxes</cbc:Note>
			<cbc:InvoicedQuantity unitCode="XPP">7</cbc:InvoicedQuantity>
			<cbc:AccountingCost>PROJ-7</cbc:AccountingCost>
			<cac:InvoicePeriod>
				<cbc:StartDate>2023-04-01</cbc:StartDate>
				<cbc:EndDate>2023-04-30</cbc:EndDate>
			</cac:InvoicePeriod>
			<cac:OrderLineReference>
				<cbc:LineID>3</cbc:LineID>
			</cac:OrderLineReference>
			<cac:Item>
				<cbc:Description>Long description of the printer paper</cbc:Description>
				<cbc:Name>Printer paper</cbc:Name>
				<cac:BuyersItemIdentification>
					<cbc:ID>B-1024</cbc:ID>
				</cac:BuyersItemIdentification>
				<cac:SellersItemIdentification>
					<cbc:ID>S-2048</cbc:ID>
				</cac:SellersItemIdentification>
				<cac:StandardItemIdentification>
					<cbc:ID schemeID="0160">5712345780121</cbc:ID>
				</cac:StandardItemIdentification>
				<cac:OriginCountry>
					<cbc:IdentificationCode>SE</cbc:IdentificationCode>
				</cac:OriginCountry>
				<cac:CommodityClassification>
					<cbc:ItemClassificationCode listID="STI">09348023</cbc:ItemClassificationCode>
				</cac:CommodityClassification>
				<cac:CommodityClassification>
					<cbc:ItemClassificationCode>86776</cbc:ItemClassificationCode>
				</cac:CommodityClassification>
				<cac:ClassifiedTaxCategory>
					<cbc:ID>S</cbc:ID>
					<cbc:Percent>25</cbc:Percent>
				</cac:ClassifiedTaxCategory>
			</cac:Item>
			<cac:Price>
				<cbc:PriceAmount currencyID="EUR">4.50</cbc:PriceAmount>
				<cbc:BaseQuantity>10</cbc:BaseQuantity>
			</cac:Price>
		</cac:InvoiceLine>`)

	require.Len(t, inv.Lines, 1)
	line := inv.Lines[0]

	require.NotNil(t, line.Quantity)
	assert.True(t, line.Quantity.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, "XPP", *line.Unit)
	assert.Equal(t, "PROJ-7", *line.AccountingReference)
	assert.Equal(t, "3", *line.OrderLine)
	assert.Equal(t, "Delivered in two boxes", *line.Note)
	assert.Equal(t, "2023-04-01", line.PeriodStart.String())
	assert.Equal(t, "2023-04-30", line.PeriodEnd.String())

	assert.Equal(t, "Long description of the printer paper", *line.Description)
	assert.Equal(t, "Printer paper", *line.Name)
	assert.Equal(t, "B-1024", *line.BuyerID)
	assert.Equal(t, "S-2048", *line.SellerID)
	require.NotNil(t, line.StandardID)
	assert.Equal(t, "5712345780121", line.StandardID.Value)
	assert.Equal(t, "0160", *line.StandardID.Scheme)
	assert.Equal(t, "SE", *line.OriginCountry)

	require.Len(t, line.Classifications, 2)
	assert.Equal(t, "09348023", line.Classifications[0].Value)
	assert.Equal(t, "STI", *line.Classifications[0].Scheme)
	assert.Equal(t, "86776", line.Classifications[1].Value)
	assert.Nil(t, line.Classifications[1].Scheme)

	require.NotNil(t, line.Price)
	assert.True(t, line.Price.Equal(decimal.RequireFromString("4.50")))
	require.NotNil(t, line.BaseQuantity)
	assert.True(t, line.BaseQuantity.Equal(decimal.NewFromInt(10)))

	require.NotNil(t, line.TaxCategory)
	assert.Equal(t, "S", *line.TaxCategory)
	require.NotNil(t, line.TaxRate)
	assert.True(t, line.TaxRate.Equal(decimal.NewFromInt(25)))
}

func TestReadLineOrder(t *testing.T) {
	var body strings.Builder
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&body, `
			<cac:InvoiceLine>
				<cbc:InvoicedQuantity>%d</cbc:InvoicedQuantity>
				<cac:Item><cbc:Name>item %d</cbc:Name></cac:Item>
			</cac:InvoiceLine>`, i, i)
	}

	inv := readInvoice(t, body.String())
	require.Len(t, inv.Lines, 5)
	for i, line := range inv.Lines {
		assert.Equal(t, fmt.Sprintf("item %d", i+1), *line.Name)
	}
}

func TestReadLineQuantityAbsent(t *testing.T) {
	inv := readInvoice(t, `
		<cac:InvoiceLine>
			<cac:Item><cbc:Name>Service fee</cbc:Name></cac:Item>
		</cac:InvoiceLine>`)

	require.Len(t, inv.Lines, 1)
	line := inv.Lines[0]
	assert.Nil(t, line.Quantity)
	assert.Nil(t, line.Unit)
	assert.Empty(t, line.Charges)
	assert.Empty(t, line.Allowances)
}

func TestReadLineAllowanceCharge(t *testing.T) {
	inv := readInvoice(t, `
		<cac:InvoiceLine>
			<cbc:InvoicedQuantity unitCode="C62">1</cbc:InvoicedQuantity>
			<cac:AllowanceCharge>
				<cbc:ChargeIndicator>false</cbc:ChargeIndicator>
				<cbc:AllowanceChargeReason>Loyalty discount</cbc:AllowanceChargeReason>
				<cbc:Amount currencyID="EUR">1.50</cbc:Amount>
			</cac:AllowanceCharge>
			<cac:Item><cbc:Name>Widget</cbc:Name></cac:Item>
		</cac:InvoiceLine>`)

	require.Len(t, inv.Lines, 1)
	line := inv.Lines[0]

	// Line level occurrences must not leak into the document collections.
	assert.Empty(t, inv.Charges)
	assert.Empty(t, inv.Allowances)

	require.Len(t, line.Allowances, 1)
	al := line.Allowances[0]
	assert.Equal(t, "Loyalty discount", *al.Reason)
	require.NotNil(t, al.Amount)
	assert.True(t, al.Amount.Equal(decimal.RequireFromString("1.50")))
}
