package constants

// DocumentType is the classification assigned to an uploaded document.
type DocumentType string

// Stable values (store these exact strings in DB).
const (
	DocTypeInvoice       DocumentType = "invoice"
	DocTypeBankStatement DocumentType = "bank_statement"
	DocTypeUnknown       DocumentType = "unknown"
)

// InvoiceType is the direction of an invoice relative to the workspace owner.
type InvoiceType string

const (
	InvoiceTypeIncome  InvoiceType = "income"  // we are the seller
	InvoiceTypeExpense InvoiceType = "expense" // we are the buyer
)

// TransactionType is the direction of a bank statement transaction.
type TransactionType string

const (
	TxCredit TransactionType = "credit"
	TxDebit  TransactionType = "debit"
)
