package docfield

// Field identifies one business field recognizable on supplier invoices,
// warranty cards and sales receipts.
type Field string

const (
	FieldSerialNumber Field = "serialNumber"
	FieldProductName  Field = "productName"

	FieldInvoiceNumber Field = "invoiceNumber"
	FieldSupplierName  Field = "supplierName"

	FieldCostPrice Field = "costPrice"
	FieldSalePrice Field = "salePrice"

	FieldCustomerName  Field = "customerName"
	FieldCustomerPhone Field = "customerPhone"

	FieldWarrantyStartDate Field = "warrantyStartDate"
	FieldWarrantyEndDate   Field = "warrantyEndDate"
	FieldWarrantyMonths    Field = "warrantyMonths"

	FieldPurchaseDate Field = "purchaseDate"
	FieldSaleDate     Field = "saleDate"
)

// Extracted is the outcome of one matched rule. Fields with no match are
// omitted entirely from the extraction result, never recorded with an empty
// value.
type Extracted struct {
	Field Field

	// Raw is the matched substring before post-processing.
	Raw string

	// Value is the post-processed value: string, float64 or int.
	Value any

	// Confidence is 1.0 for a label-anchored match, 0.5 for a bare
	// fallback match.
	Confidence float64
}
