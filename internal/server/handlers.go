package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crednorm/experian-report/internal/experian"
	"crednorm/experian-report/internal/store"
)

const (
	listLimit   = 50
	searchLimit = 20
)

// handleUpload accepts one bureau XML report as a multipart file, runs the
// transformation and persists the resulting document.
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xml") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only XML files allowed"})
		return
	}
	if file.Size > s.cfg.Server.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	s.log.WithFields(logrus.Fields{
		"file": file.Filename,
		"size": file.Size,
	}).Info("Upload started")

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.log.WithError(err).Warn("Failed to close uploaded file")
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
		return
	}

	report, err := experian.Parse(data)
	if err != nil {
		s.log.WithError(err).Error("Failed to parse uploaded report")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse XML", "details": err.Error()})
		return
	}

	id, err := s.reports.Save(c.Request.Context(), report, file.Filename, time.Now().UTC())
	if err != nil {
		s.log.WithError(err).Error("Failed to save report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":          true,
		"id":               id,
		"name":             report.BasicDetails.Name,
		"creditScore":      report.CreditScore.BureauScore,
		"accountsCount":    len(report.CreditAccountsInformation.Accounts),
		"creditCardsCount": report.CreditAccountsInformation.TotalCreditCards,
		"enquiriesCount":   len(report.CreditEnquiries),
		"message":          "Report uploaded and parsed successfully",
	})
}

// handleList returns the newest stored reports as summary rows.
func (s *Server) handleList(c *gin.Context) {
	items, err := s.reports.List(c.Request.Context(), listLimit)
	if err != nil {
		s.log.WithError(err).Error("Failed to list reports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// handleGet returns one full stored document.
func (s *Server) handleGet(c *gin.Context) {
	id, ok := s.reportID(c)
	if !ok {
		return
	}

	detail, err := s.reports.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		s.log.WithError(err).Error("Failed to fetch report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// handleDelete removes one stored report.
func (s *Server) handleDelete(c *gin.Context) {
	id, ok := s.reportID(c)
	if !ok {
		return
	}

	err := s.reports.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		s.log.WithError(err).Error("Failed to delete report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Report deleted successfully"})
}

// handleSearch matches stored reports by name or PAN.
func (s *Server) handleSearch(c *gin.Context) {
	items, err := s.reports.Search(c.Request.Context(), c.Param("query"), searchLimit)
	if err != nil {
		s.log.WithError(err).Error("Failed to search reports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search reports", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) reportID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID format"})
		return 0, false
	}
	return uint(id), true
}
