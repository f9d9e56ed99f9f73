// Package experian transforms an Experian credit-bureau XML report into the
// canonical CreditReport document. The transformation is a single pass over
// the parsed tree with no shared state, so callers may run it concurrently.
package experian

import (
	"fmt"
	"os"

	"crednorm/experian-report/internal/models"
	"crednorm/experian-report/internal/parsererror"
	"crednorm/experian-report/internal/xmltree"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Root element candidates, tried in priority order. Different bureau export
// versions wrap the report differently; when none matches the tree itself is
// treated as the report body.
var rootCandidates = []string{"INProfileResponse", "EXPERIAN", "CreditReport"}

// Parse transforms a bureau XML report into a CreditReport. Missing fields,
// sections and unknown codes degrade to defaults inside the document; only
// malformed XML or an unexpected fault during assembly fails, and then
// atomically, with no partial document.
func Parse(data []byte) (report *models.CreditReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("fault", r).Error("Unexpected fault while assembling report")
			report = nil
			err = &parsererror.ParseError{Err: fmt.Errorf("unexpected fault during assembly: %v", r)}
		}
	}()

	tree, parseErr := xmltree.Parse(data)
	if parseErr != nil {
		return nil, &parsererror.ParseError{Err: parseErr}
	}

	root := tree.Section(rootCandidates...)
	if len(root) == 0 {
		root = tree
	}

	accounts := buildAccounts(root)

	report = &models.CreditReport{
		BasicDetails:              buildBasicDetails(root),
		CreditScore:               buildCreditScore(root),
		ReportSummary:             buildReportSummary(root),
		CreditAccountsInformation: buildAccountsInformation(accounts),
		CreditEnquiries:           buildEnquiries(root),
		Metadata:                  buildMetadata(root),
	}

	log.WithFields(logrus.Fields{
		"name":      report.BasicDetails.Name,
		"accounts":  len(accounts),
		"enquiries": len(report.CreditEnquiries),
	}).Debug("Assembled credit report")

	return report, nil
}

// ParseFile reads and transforms a bureau XML report from disk.
func ParseFile(xmlFile string) (*models.CreditReport, error) {
	log.WithField("file", xmlFile).Info("Parsing bureau XML report")

	data, err := os.ReadFile(xmlFile)
	if err != nil {
		return nil, fmt.Errorf("error reading XML file: %w", err)
	}

	report, err := Parse(data)
	if err != nil {
		log.WithError(err).Error("Failed to parse bureau XML report")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"file":     xmlFile,
		"accounts": len(report.CreditAccountsInformation.Accounts),
	}).Info("Successfully parsed bureau XML report")
	return report, nil
}
