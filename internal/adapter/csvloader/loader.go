// Package csvloader reads transaction records from CSV files into the
// domain model. Malformed rows are skipped with a warning rather than
// aborting the load, so one bad export line never blocks a batch run.
package csvloader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/taxweave/taxweave/internal/domain"
)

// Column names recognized in the header row. Matching is
// case-insensitive and ignores surrounding whitespace.
const (
	colTransactionID   = "transaction_id"
	colTransactionDate = "transaction_date"
	colAmount          = "amount"
	colState           = "state"
	colCity            = "city"
	colItemCategory    = "item_category"
	colTaxPaid         = "tax_paid"
	colCustomerType    = "customer_type"
	colExemptionCert   = "exemption_certificate"
)

// dateLayouts are tried in order when parsing transaction dates
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

// Loader reads transactions and payment records from CSV input
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new Loader instance
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadTransactionsFile opens a CSV file and loads its transactions
func (l *Loader) LoadTransactionsFile(path string) ([]domain.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transactions file: %w", err)
	}
	defer file.Close()

	return l.LoadTransactions(file)
}

// LoadTransactions reads transactions from CSV input. The first row
// must be a header naming at least the amount and state columns;
// everything else is optional. Rows that fail to parse are skipped and
// logged.
func (l *Loader) LoadTransactions(r io.Reader) ([]domain.Transaction, error) {
	rows, header, err := l.readAll(r)
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.Transaction, 0, len(rows))
	for i, row := range rows {
		txn, err := l.parseTransaction(row, header, i+1)
		if err != nil {
			l.logger.Warn("skipping malformed row",
				slog.Int("row", i+1),
				slog.String("error", err.Error()))
			continue
		}
		transactions = append(transactions, txn)
	}
	return transactions, nil
}

// LoadPaymentsFile opens a CSV file and loads transaction/payment pairs
func (l *Loader) LoadPaymentsFile(path string) ([]domain.TransactionPayment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open payments file: %w", err)
	}
	defer file.Close()

	return l.LoadPayments(file)
}

// LoadPayments reads transaction/payment pairs from CSV input for
// refund analysis. Requires a tax_paid column in addition to the
// transaction columns; a missing or blank tax_paid parses as zero.
func (l *Loader) LoadPayments(r io.Reader) ([]domain.TransactionPayment, error) {
	rows, header, err := l.readAll(r)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.TransactionPayment, 0, len(rows))
	for i, row := range rows {
		txn, err := l.parseTransaction(row, header, i+1)
		if err != nil {
			l.logger.Warn("skipping malformed row",
				slog.Int("row", i+1),
				slog.String("error", err.Error()))
			continue
		}

		taxPaid := decimal.Zero
		if raw := field(row, header, colTaxPaid); raw != "" {
			taxPaid, err = decimal.NewFromString(raw)
			if err != nil {
				l.logger.Warn("skipping malformed row",
					slog.Int("row", i+1),
					slog.String("error", fmt.Sprintf("invalid tax_paid %q", raw)))
				continue
			}
		}

		payments = append(payments, domain.TransactionPayment{
			Transaction: txn,
			TaxPaid:     taxPaid,
		})
	}
	return payments, nil
}

// readAll consumes the reader and returns the data rows plus a header
// index keyed by normalized column name
func (l *Loader) readAll(r io.Reader) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are handled per-field
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv input is empty")
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return records[1:], header, nil
}

// field returns the trimmed value of a named column, or "" when the
// column is absent or the row is too short
func field(row []string, header map[string]int, name string) string {
	idx, ok := header[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseTransaction converts one CSV row into a validated Transaction.
// rowNum is 1-based over the data rows and doubles as the fallback ID
// when the file carries none.
func (l *Loader) parseTransaction(row []string, header map[string]int, rowNum int) (domain.Transaction, error) {
	id := field(row, header, colTransactionID)
	if id == "" {
		id = fmt.Sprintf("%d", rowNum)
	}

	rawAmount := field(row, header, colAmount)
	if rawAmount == "" {
		return domain.Transaction{}, fmt.Errorf("missing amount")
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid amount %q", rawAmount)
	}

	date := time.Time{}
	if raw := field(row, header, colTransactionDate); raw != "" {
		date, err = parseDate(raw)
		if err != nil {
			return domain.Transaction{}, err
		}
	}

	customerType := domain.CustomerRetail
	if raw := field(row, header, colCustomerType); raw != "" {
		customerType = domain.CustomerType(strings.ToLower(raw))
	}

	txn := domain.Transaction{
		ID:                   id,
		Date:                 date,
		Amount:               amount,
		StateCode:            strings.ToUpper(field(row, header, colState)),
		City:                 field(row, header, colCity),
		ItemCategory:         field(row, header, colItemCategory),
		ExemptionCertificate: field(row, header, colExemptionCert),
		CustomerType:         customerType,
		PricingModel:         domain.PricingTaxExclusive,
	}

	if err := txn.Validate(); err != nil {
		return domain.Transaction{}, err
	}
	return txn, nil
}

// parseDate tries the supported layouts in order
func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}
