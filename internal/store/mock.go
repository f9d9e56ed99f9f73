package store

import (
	"context"
	"strings"
	"time"

	"crednorm/experian-report/internal/models"
)

// MockReportStore is an in-memory ReportStore implementation for testing.
type MockReportStore struct {
	Reports []ReportDetail
	nextID  uint

	// Error flags for testing error conditions
	SaveError   error
	ListError   error
	GetError    error
	SearchError error
	DeleteError error
}

// Save appends the report to the in-memory list.
func (m *MockReportStore) Save(ctx context.Context, report *models.CreditReport, sourceFileName string, uploadedAt time.Time) (uint, error) {
	if m.SaveError != nil {
		return 0, m.SaveError
	}
	m.nextID++
	m.Reports = append(m.Reports, ReportDetail{
		ID:             m.nextID,
		SourceFileName: sourceFileName,
		UploadedAt:     uploadedAt,
		CreditReport:   *report,
	})
	return m.nextID, nil
}

// List returns the stored reports as summary rows, newest first.
func (m *MockReportStore) List(ctx context.Context, limit int) ([]ReportListItem, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.listItems(limit, func(ReportDetail) bool { return true }), nil
}

// Get returns the stored report with the given id.
func (m *MockReportStore) Get(ctx context.Context, id uint) (*ReportDetail, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	for i := range m.Reports {
		if m.Reports[i].ID == id {
			detail := m.Reports[i]
			return &detail, nil
		}
	}
	return nil, ErrNotFound
}

// Search matches name or PAN case-insensitively.
func (m *MockReportStore) Search(ctx context.Context, query string, limit int) ([]ReportListItem, error) {
	if m.SearchError != nil {
		return nil, m.SearchError
	}
	needle := strings.ToLower(query)
	return m.listItems(limit, func(r ReportDetail) bool {
		return strings.Contains(strings.ToLower(r.BasicDetails.Name), needle) ||
			strings.Contains(strings.ToLower(r.BasicDetails.PAN), needle)
	}), nil
}

// Delete removes the stored report with the given id.
func (m *MockReportStore) Delete(ctx context.Context, id uint) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	for i := range m.Reports {
		if m.Reports[i].ID == id {
			m.Reports = append(m.Reports[:i], m.Reports[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockReportStore) listItems(limit int, match func(ReportDetail) bool) []ReportListItem {
	items := make([]ReportListItem, 0)
	// Newest first: mock entries are appended in upload order.
	for i := len(m.Reports) - 1; i >= 0 && len(items) < limit; i-- {
		r := m.Reports[i]
		if !match(r) {
			continue
		}
		items = append(items, ReportListItem{
			ID:               r.ID,
			Name:             r.BasicDetails.Name,
			PAN:              r.BasicDetails.PAN,
			CreditScore:      r.CreditScore.BureauScore,
			TotalAccounts:    len(r.CreditAccountsInformation.Accounts),
			TotalCreditCards: r.CreditAccountsInformation.TotalCreditCards,
			ActiveAccounts:   r.ReportSummary.ActiveAccounts,
			CurrentBalance:   r.ReportSummary.CurrentBalance,
			UploadedAt:       r.UploadedAt,
			FileName:         r.SourceFileName,
			ReportDate:       r.Metadata.ReportDate,
		})
	}
	return items
}
