package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadCV(t *testing.T, router http.Handler, contents []byte) *json.Decoder {
	t.Helper()

	body, contentType := multipartBody(t, nil, formFile{field: "pdf", name: "resume.pdf", contents: contents})
	rec := doRequest(t, router, http.MethodPost, "/api/cv", testAuthToken, body, contentType)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return json.NewDecoder(rec.Body)
}

func TestCVUploadAndDownload(t *testing.T) {
	router, _ := newTestRouter(t)

	pdfBytes := []byte("%PDF-1.4 first version")
	dec := uploadCV(t, router, pdfBytes)

	var uploaded map[string]string
	require.NoError(t, dec.Decode(&uploaded))
	assert.Contains(t, uploaded["url"], "/api/cv")

	rec := doRequest(t, router, http.MethodGet, "/api/cv", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pdfBytes, rec.Body.Bytes())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, strconv.Itoa(len(pdfBytes)), rec.Header().Get("Content-Length"))
	assert.Equal(t, "attachment; filename=cv.pdf", rec.Header().Get("Content-Disposition"))
}

func TestCVSecondUploadReplacesFirst(t *testing.T) {
	router, _ := newTestRouter(t)

	uploadCV(t, router, []byte("first upload"))
	uploadCV(t, router, []byte("the second upload wins"))

	rec := doRequest(t, router, http.MethodGet, "/api/cv", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "the second upload wins", rec.Body.String())
}

func TestCVDownloadMissing(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/cv", "", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCVOversizeRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	oversize := make([]byte, maxUploadFileSize+1)
	body, contentType := multipartBody(t, nil, formFile{field: "pdf", name: "huge.pdf", contents: oversize})
	rec := doRequest(t, router, http.MethodPost, "/api/cv", testAuthToken, body, contentType)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The slot stayed empty.
	rec = doRequest(t, router, http.MethodGet, "/api/cv", "", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
