// Package store provides persistence for parsed credit reports.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"crednorm/experian-report/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ErrNotFound is returned when no report exists for the requested id.
var ErrNotFound = errors.New("report not found")

// StoredReport is one persisted report row. The full document is kept as
// JSON; the identity and summary fields queried by the list and search
// endpoints are denormalized into indexed columns.
type StoredReport struct {
	ID               uint      `gorm:"primaryKey"`
	Name             string    `gorm:"index"`
	PAN              string    `gorm:"column:pan;index"`
	BureauScore      float64   `gorm:"index"`
	TotalAccounts    int
	TotalCreditCards int
	ActiveAccounts   float64
	CurrentBalance   float64
	ReportDate       string
	SourceFileName   string
	UploadedAt       time.Time `gorm:"index"`
	Document         []byte    `gorm:"type:jsonb"`
}

// ReportListItem is the computed summary row returned by list and search.
type ReportListItem struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	PAN              string    `json:"pan"`
	CreditScore      float64   `json:"creditScore"`
	TotalAccounts    int       `json:"totalAccounts"`
	TotalCreditCards int       `json:"totalCreditCards"`
	ActiveAccounts   float64   `json:"activeAccounts"`
	CurrentBalance   float64   `json:"currentBalance"`
	UploadedAt       time.Time `json:"uploadedAt"`
	FileName         string    `json:"fileName"`
	ReportDate       string    `json:"reportDate"`
}

// ReportDetail is one fully hydrated stored report.
type ReportDetail struct {
	ID             uint      `json:"id"`
	SourceFileName string    `json:"sourceFileName"`
	UploadedAt     time.Time `json:"uploadedAt"`
	models.CreditReport
}

// ReportStore is the persistence boundary used by the HTTP layer.
type ReportStore interface {
	Save(ctx context.Context, report *models.CreditReport, sourceFileName string, uploadedAt time.Time) (uint, error)
	List(ctx context.Context, limit int) ([]ReportListItem, error)
	Get(ctx context.Context, id uint) (*ReportDetail, error)
	Search(ctx context.Context, query string, limit int) ([]ReportListItem, error)
	Delete(ctx context.Context, id uint) error
}

// GormStore is a ReportStore backed by a SQL database through gorm.
type GormStore struct {
	db *gorm.DB
}

// Open connects to Postgres and migrates the report table.
func Open(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return NewGormStore(db)
}

// NewGormStore wraps an existing gorm connection and migrates the schema.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&StoredReport{}); err != nil {
		return nil, fmt.Errorf("error migrating report schema: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Save persists one parsed report together with its upload context and
// returns the new row id.
func (s *GormStore) Save(ctx context.Context, report *models.CreditReport, sourceFileName string, uploadedAt time.Time) (uint, error) {
	document, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("error serializing report document: %w", err)
	}

	row := StoredReport{
		Name:             report.BasicDetails.Name,
		PAN:              report.BasicDetails.PAN,
		BureauScore:      report.CreditScore.BureauScore,
		TotalAccounts:    len(report.CreditAccountsInformation.Accounts),
		TotalCreditCards: report.CreditAccountsInformation.TotalCreditCards,
		ActiveAccounts:   report.ReportSummary.ActiveAccounts,
		CurrentBalance:   report.ReportSummary.CurrentBalance,
		ReportDate:       report.Metadata.ReportDate,
		SourceFileName:   sourceFileName,
		UploadedAt:       uploadedAt,
		Document:         document,
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("error saving report: %w", err)
	}

	log.WithFields(logrus.Fields{
		"id":   row.ID,
		"name": row.Name,
	}).Info("Saved report")
	return row.ID, nil
}

// List returns the newest reports as summary rows, newest first.
func (s *GormStore) List(ctx context.Context, limit int) ([]ReportListItem, error) {
	var rows []StoredReport
	err := s.db.WithContext(ctx).
		Order("uploaded_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", err)
	}
	return toListItems(rows), nil
}

// Get returns the full stored document for one report.
func (s *GormStore) Get(ctx context.Context, id uint) (*ReportDetail, error) {
	var row StoredReport
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching report: %w", err)
	}

	detail := ReportDetail{
		ID:             row.ID,
		SourceFileName: row.SourceFileName,
		UploadedAt:     row.UploadedAt,
	}
	if err := json.Unmarshal(row.Document, &detail.CreditReport); err != nil {
		return nil, fmt.Errorf("error deserializing report document: %w", err)
	}
	return &detail, nil
}

// Search matches name or PAN case-insensitively, newest first.
func (s *GormStore) Search(ctx context.Context, query string, limit int) ([]ReportListItem, error) {
	var rows []StoredReport
	pattern := "%" + query + "%"
	err := s.db.WithContext(ctx).
		Where("name ILIKE ? OR pan ILIKE ?", pattern, pattern).
		Order("uploaded_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error searching reports: %w", err)
	}
	return toListItems(rows), nil
}

// Delete removes one report, reporting ErrNotFound when nothing matched.
func (s *GormStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&StoredReport{}, id)
	if result.Error != nil {
		return fmt.Errorf("error deleting report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	log.WithField("id", id).Info("Deleted report")
	return nil
}

func toListItems(rows []StoredReport) []ReportListItem {
	items := make([]ReportListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ReportListItem{
			ID:               row.ID,
			Name:             row.Name,
			PAN:              row.PAN,
			CreditScore:      row.BureauScore,
			TotalAccounts:    row.TotalAccounts,
			TotalCreditCards: row.TotalCreditCards,
			ActiveAccounts:   row.ActiveAccounts,
			CurrentBalance:   row.CurrentBalance,
			UploadedAt:       row.UploadedAt,
			FileName:         row.SourceFileName,
			ReportDate:       row.ReportDate,
		})
	}
	return items
}
