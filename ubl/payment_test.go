package ubl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invopop/einvoice"
	"github.com/invopop/einvoice/ubl"
)

func TestReadPayment(t *testing.T) {
	t.Run("means with transfers and terms", func(t *testing.T) {
		inv := readInvoice(t, `
			<cac:PaymentMeans>
				<cbc:PaymentMeansCode name="Credit transfer">30</cbc:PaymentMeansCode>
				<cbc:PaymentID>INV-001-REM</cbc:PaymentID>
				<cac:PayeeFinancialAccount>
					<cbc:ID>DK1212341234123412</cbc:ID>
					<cbc:Name>Payment Account</cbc:Name>
					<cac:FinancialInstitutionBranch>
						<cbc:ID>DKDKABCD</cbc:ID>
					</cac:FinancialInstitutionBranch>
				</cac:PayeeFinancialAccount>
				<cac:PayeeFinancialAccount>
					<cbc:ID>NO9386011117947</cbc:ID>
				</cac:PayeeFinancialAccount>
			</cac:PaymentMeans>
			<cac:PaymentTerms>
				<cbc:Note>Net within 30 days</cbc:Note>
			</cac:PaymentTerms>`)

		p := inv.Payment
		require.NotNil(t, p)
		assert.Equal(t, "30", *p.MeansCode)
		assert.Equal(t, "Credit transfer", *p.MeansText)
		assert.Equal(t, "INV-001-REM", *p.ID)
		assert.Equal(t, "Net within 30 days", *p.Terms)

		require.Len(t, p.Transfers, 2)
		assert.Equal(t, "DK1212341234123412", *p.Transfers[0].Account)
		assert.Equal(t, "Payment Account", *p.Transfers[0].Name)
		assert.Equal(t, "DKDKABCD", *p.Transfers[0].Provider)
		assert.Equal(t, "NO9386011117947", *p.Transfers[1].Account)
		assert.Nil(t, p.Transfers[1].Name)
		assert.Nil(t, p.Transfers[1].Provider)
	})

	t.Run("terms alone still produce a payment", func(t *testing.T) {
		inv := readInvoice(t, `
			<cac:PaymentTerms>
				<cbc:Note>Cash on delivery</cbc:Note>
			</cac:PaymentTerms>`)

		require.NotNil(t, inv.Payment)
		assert.Equal(t, "Cash on delivery", *inv.Payment.Terms)
		assert.Nil(t, inv.Payment.MeansCode)
		assert.Empty(t, inv.Payment.Transfers)
	})

	t.Run("absent payment subtree", func(t *testing.T) {
		inv := readInvoice(t, ``)
		assert.Nil(t, inv.Payment)
	})
}

func TestReadAttachments(t *testing.T) {
	t.Run("embedded document", func(t *testing.T) {
		inv := readInvoice(t, `
			<cac:AdditionalDocumentReference>
				<cbc:ID schemeID="AUN">DOC-1</cbc:ID>
				<cbc:DocumentTypeCode>130</cbc:DocumentTypeCode>
				<cbc:DocumentDescription>Timesheet</cbc:DocumentDescription>
				<cac:Attachment>
					<cbc:EmbeddedDocumentBinaryObject mimeCode="text/csv" filename="timesheet.csv">
						aGVsbG8sd29ybGQ=
					</cbc:EmbeddedDocumentBinaryObject>
				</cac:Attachment>
			</cac:AdditionalDocumentReference>`)

		require.Len(t, inv.Attachments, 1)
		att := inv.Attachments[0]
		assert.Equal(t, "DOC-1", att.ID.Value)
		assert.Equal(t, "AUN", *att.ID.Scheme)
		assert.Equal(t, "130", *att.Reference)
		assert.Equal(t, "Timesheet", *att.Description)
		assert.Equal(t, []byte("hello,world"), att.Content)
		assert.Equal(t, "text/csv", *att.MimeCode)
		assert.Equal(t, "timesheet.csv", *att.Filename)
		assert.Nil(t, att.ExternalURI)
	})

	t.Run("external reference", func(t *testing.T) {
		inv := readInvoice(t, `
			<cac:AdditionalDocumentReference>
				<cbc:ID>DOC-2</cbc:ID>
				<cac:Attachment>
					<cac:ExternalReference>
						<cbc:URI>https://example.com/doc-2.pdf</cbc:URI>
					</cac:ExternalReference>
				</cac:Attachment>
			</cac:AdditionalDocumentReference>`)

		require.Len(t, inv.Attachments, 1)
		att := inv.Attachments[0]
		assert.Equal(t, "DOC-2", att.ID.Value)
		assert.Nil(t, att.Reference)
		assert.Nil(t, att.Content)
		assert.Equal(t, "https://example.com/doc-2.pdf", *att.ExternalURI)
	})

	t.Run("invalid base64 payload", func(t *testing.T) {
		_, err := ubl.NewReader().ReadInvoice(wrap(`
			<cac:AdditionalDocumentReference>
				<cbc:ID>DOC-3</cbc:ID>
				<cac:Attachment>
					<cbc:EmbeddedDocumentBinaryObject>%%%not-base64%%%</cbc:EmbeddedDocumentBinaryObject>
				</cac:Attachment>
			</cac:AdditionalDocumentReference>`))
		require.Error(t, err)
		assert.ErrorIs(t, err, einvoice.ErrConversion)
		assert.Contains(t, err.Error(), "EmbeddedDocumentBinaryObject")
	})

	t.Run("missing document identifier", func(t *testing.T) {
		_, err := ubl.NewReader().ReadInvoice(wrap(`
			<cac:AdditionalDocumentReference>
				<cbc:DocumentDescription>No ID</cbc:DocumentDescription>
			</cac:AdditionalDocumentReference>`))
		assert.ErrorIs(t, err, einvoice.ErrMissingField)
	})
}
