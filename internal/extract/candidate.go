package extract

import (
	"github.com/shopspring/decimal"

	"github.com/nexonbooks/docintake/constants"
	"github.com/nexonbooks/docintake/internal/entity"
)

// Document is the tagged union of extraction results. The resolution
// router switches exhaustively over the three concrete types.
type Document interface {
	isDocument()
}

// CounterpartyCandidate is the tentative customer/supplier on the other
// side of the invoice. Empty strings mean "not found"; MatchConfidence
// reflects how the values were obtained (vendor override, regex, filename
// guess).
type CounterpartyCandidate struct {
	Name            string
	Address         string
	VATNumber       string
	Email           string
	MatchConfidence float64
}

// InvoiceCandidate is a tentative, not-yet-persisted invoice. Dates are
// ISO YYYY-MM-DD strings; amounts carry decimal semantics. Nil amount
// pointers mean the field could not be extracted.
type InvoiceCandidate struct {
	InvoiceNumber        string
	Date                 string
	AmountInclVAT        *decimal.Decimal
	AmountExclVAT        *decimal.Decimal
	VATAmount            *decimal.Decimal
	VATRate              decimal.Decimal
	InvoiceType          constants.InvoiceType
	Counterparty         CounterpartyCandidate
	LineItems            []entity.LineItem
	ExtractionConfidence float64
	SourceFile           string
}

func (*InvoiceCandidate) isDocument() {}

// Transaction is a single statement line.
type Transaction struct {
	Date        string
	Description string
	Amount      decimal.Decimal
	Type        constants.TransactionType
}

// BankStatementCandidate is the extraction result for a bank statement.
// Statements are never auto-committed; they always route to review.
type BankStatementCandidate struct {
	BankName        string
	AccountNumber   string
	StatementDate   string
	StatementPeriod string
	OpeningBalance  *decimal.Decimal
	ClosingBalance  *decimal.Decimal
	Currency        string
	Transactions    []Transaction
	SourceFile      string
}

func (*BankStatementCandidate) isDocument() {}

// UnknownDocument is produced when classification could not decide.
type UnknownDocument struct {
	SourceFile string
	Confidence float64
}

func (*UnknownDocument) isDocument() {}
