// Package export renders a parsed credit report into tabular formats for
// downstream review: CSV, YAML and XLSX.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"crednorm/experian-report/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// AccountRow is one account flattened for tabular output. Amounts are
// rendered with two decimal places.
type AccountRow struct {
	SubscriberName string `csv:"SubscriberName"`
	AccountNumber  string `csv:"AccountNumber"`
	AccountType    string `csv:"AccountType"`
	PortfolioType  string `csv:"PortfolioType"`
	Ownership      string `csv:"Ownership"`
	AccountStatus  string `csv:"AccountStatus"`
	OpenDate       string `csv:"OpenDate"`
	DateReported   string `csv:"DateReported"`
	DateClosed     string `csv:"DateClosed"`
	CurrentBalance string `csv:"CurrentBalance"`
	AmountOverdue  string `csv:"AmountOverdue"`
	CreditLimit    string `csv:"CreditLimit"`
	PaymentRating  string `csv:"PaymentRating"`
	SuitFiled      string `csv:"SuitFiled"`
	Address        string `csv:"Address"`
}

// Rows flattens the report's accounts into export rows.
func Rows(report *models.CreditReport) []AccountRow {
	accounts := report.CreditAccountsInformation.Accounts
	rows := make([]AccountRow, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, AccountRow{
			SubscriberName: a.SubscriberName,
			AccountNumber:  a.AccountNumber,
			AccountType:    a.AccountType,
			PortfolioType:  a.PortfolioType,
			Ownership:      a.OwnershipIndicator,
			AccountStatus:  a.AccountStatus,
			OpenDate:       a.OpenDate,
			DateReported:   a.DateReported,
			DateClosed:     a.DateClosed,
			CurrentBalance: formatAmount(a.CurrentBalance),
			AmountOverdue:  formatAmount(a.AmountOverdue),
			CreditLimit:    formatAmount(a.CreditLimit),
			PaymentRating:  a.PaymentRatingDescription,
			SuitFiled:      a.SuitFiled,
			Address:        a.AddressDetails.FullAddress,
		})
	}
	return rows
}

// formatAmount renders a report amount with two decimal places.
func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// WriteCSV writes the report's accounts to a CSV file.
func WriteCSV(report *models.CreditReport, csvFile string) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(report.CreditAccountsInformation.Accounts),
	}).Info("Writing account records to CSV file")

	if err := ensureDir(csvFile); err != nil {
		return err
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(Rows(report), file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// WriteYAML writes the full report document to a YAML file.
func WriteYAML(report *models.CreditReport, yamlFile string) error {
	log.WithField("file", yamlFile).Info("Writing report to YAML file")

	if err := ensureDir(yamlFile); err != nil {
		return err
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("error marshaling report to YAML: %w", err)
	}
	if err := os.WriteFile(yamlFile, data, 0600); err != nil {
		return fmt.Errorf("error writing YAML file: %w", err)
	}
	return nil
}

// WriteXLSX writes the report's accounts to an XLSX workbook.
func WriteXLSX(report *models.CreditReport, xlsxFile string) error {
	log.WithFields(logrus.Fields{
		"file":  xlsxFile,
		"count": len(report.CreditAccountsInformation.Accounts),
	}).Info("Writing account records to XLSX file")

	if err := ensureDir(xlsxFile); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	const sheet = "Accounts"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("error naming worksheet: %w", err)
	}

	header := []interface{}{
		"SubscriberName", "AccountNumber", "AccountType", "PortfolioType",
		"Ownership", "AccountStatus", "OpenDate", "DateReported", "DateClosed",
		"CurrentBalance", "AmountOverdue", "CreditLimit", "PaymentRating",
		"SuitFiled", "Address",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("error writing header row: %w", err)
	}

	for i, row := range Rows(report) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("error computing cell name: %w", err)
		}
		values := []interface{}{
			row.SubscriberName, row.AccountNumber, row.AccountType, row.PortfolioType,
			row.Ownership, row.AccountStatus, row.OpenDate, row.DateReported, row.DateClosed,
			row.CurrentBalance, row.AmountOverdue, row.CreditLimit, row.PaymentRating,
			row.SuitFiled, row.Address,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("error writing account row: %w", err)
		}
	}

	if err := f.SaveAs(xlsxFile); err != nil {
		return fmt.Errorf("error saving XLSX file: %w", err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	return nil
}
