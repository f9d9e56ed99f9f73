package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crednorm/experian-report/internal/config"
	"crednorm/experian-report/internal/store"
)

const sampleXML = `<INProfileResponse>
	<Current_Application>
		<Current_Application_Details>
			<Current_Applicant_Details>
				<First_Name>John</First_Name>
				<Last_Name>Doe</Last_Name>
				<IncomeTaxPan>ABCDE1234F</IncomeTaxPan>
			</Current_Applicant_Details>
		</Current_Application_Details>
	</Current_Application>
	<SCORE><BureauScore>750</BureauScore></SCORE>
	<CAIS_Account>
		<CAIS_Account_DETAILS>
			<Subscriber_Name>HDFC BANK</Subscriber_Name>
			<Account_Type>10</Account_Type>
		</CAIS_Account_DETAILS>
	</CAIS_Account>
</INProfileResponse>`

func testServer(mock *store.MockReportStore) *Server {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.Address = ":0"
	cfg.Server.MaxUploadBytes = 1024 * 1024
	return New(cfg, mock, nil)
}

func multipartBody(t *testing.T, fieldName, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func uploadReport(t *testing.T, router *gin.Engine, fileName, content string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, "file", fileName, content)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleUpload(t *testing.T) {
	mock := &store.MockReportStore{}
	router := testServer(mock).Router()

	w := uploadReport(t, router, "report.xml", sampleXML)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "John Doe", resp["name"])
	assert.Equal(t, float64(750), resp["creditScore"])
	assert.Equal(t, float64(1), resp["accountsCount"])
	assert.Equal(t, float64(1), resp["creditCardsCount"])
	assert.Equal(t, "Report uploaded and parsed successfully", resp["message"])

	require.Len(t, mock.Reports, 1)
	assert.Equal(t, "report.xml", mock.Reports[0].SourceFileName)
	assert.Equal(t, "ABCDE1234F", mock.Reports[0].BasicDetails.PAN)
}

func TestHandleUpload_NoFile(t *testing.T) {
	router := testServer(&store.MockReportStore{}).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file uploaded")
}

func TestHandleUpload_RejectsNonXML(t *testing.T) {
	router := testServer(&store.MockReportStore{}).Router()

	w := uploadReport(t, router, "report.pdf", "whatever")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only XML files allowed")
}

func TestHandleUpload_RejectsOversizedFile(t *testing.T) {
	mock := &store.MockReportStore{}
	srv := testServer(mock)
	srv.cfg.Server.MaxUploadBytes = 10
	router := srv.Router()

	w := uploadReport(t, router, "report.xml", sampleXML)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandleUpload_ParseFailure(t *testing.T) {
	mock := &store.MockReportStore{}
	router := testServer(mock).Router()

	w := uploadReport(t, router, "report.xml", "this is not xml")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to parse XML")
	assert.Empty(t, mock.Reports)
}

func TestHandleUpload_StoreFailure(t *testing.T) {
	mock := &store.MockReportStore{SaveError: errors.New("connection lost")}
	router := testServer(mock).Router()

	w := uploadReport(t, router, "report.xml", sampleXML)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to save report")
}

func TestHandleList(t *testing.T) {
	mock := &store.MockReportStore{}
	router := testServer(mock).Router()

	uploadReport(t, router, "first.xml", sampleXML)
	uploadReport(t, router, "second.xml", sampleXML)

	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var items []store.ReportListItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	// Newest first
	assert.Equal(t, "second.xml", items[0].FileName)
	assert.Equal(t, "first.xml", items[1].FileName)
}

func TestHandleList_Empty(t *testing.T) {
	router := testServer(&store.MockReportStore{}).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandleGet(t *testing.T) {
	mock := &store.MockReportStore{}
	router := testServer(mock).Router()
	uploadReport(t, router, "report.xml", sampleXML)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var detail store.ReportDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, uint(1), detail.ID)
	assert.Equal(t, "John Doe", detail.BasicDetails.Name)
	assert.Equal(t, "report.xml", detail.SourceFileName)
}

func TestHandleGet_NotFound(t *testing.T) {
	router := testServer(&store.MockReportStore{}).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/reports/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Report not found")
}

func TestHandleGet_InvalidID(t *testing.T) {
	router := testServer(&store.MockReportStore{}).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/reports/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid report ID format")
}

func TestHandleDelete(t *testing.T) {
	mock := &store.MockReportStore{}
	router := testServer(mock).Router()
	uploadReport(t, router, "report.xml", sampleXML)

	req := httptest.NewRequest(http.MethodDelete, "/api/reports/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Report deleted successfully")
	assert.Empty(t, mock.Reports)
}

func TestHandleDelete_NotFound(t *testing.T) {
	router := testServer(&store.MockReportStore{}).Router()

	req := httptest.NewRequest(http.MethodDelete, "/api/reports/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSearch(t *testing.T) {
	mock := &store.MockReportStore{}
	router := testServer(mock).Router()
	uploadReport(t, router, "report.xml", sampleXML)

	tests := []struct {
		name    string
		query   string
		matches int
	}{
		{"Match by name", "john", 1},
		{"Match by PAN", "ABCDE1234F", 1},
		{"Case insensitive PAN", "abcde", 1},
		{"No match", "nobody", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/search/"+tc.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			var items []store.ReportListItem
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
			assert.Len(t, items, tc.matches)
		})
	}
}

func TestHealth(t *testing.T) {
	router := testServer(&store.MockReportStore{}).Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
