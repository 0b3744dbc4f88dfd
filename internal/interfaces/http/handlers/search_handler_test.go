package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/pharmyrus/internal/interfaces/http/handlers"
	"github.com/turtacn/pharmyrus/pkg/errors"
	"github.com/turtacn/pharmyrus/pkg/types/report"
)

type fakeRunner struct {
	rep *report.SearchReport
	err error

	got report.SearchRequest
}

func (f *fakeRunner) Run(_ context.Context, req report.SearchRequest) (*report.SearchReport, error) {
	f.got = req
	return f.rep, f.err
}

func searchRouter(runner handlers.SearchRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/search", handlers.NewSearchHandler(runner).Search)
	return r
}

func TestSearchHandler_Success(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{rep: &report.SearchReport{SearchID: "abc"}}
	r := searchRouter(runner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search",
		strings.NewReader(`{"nome_molecula":"darolutamide","nome_comercial":"Nubeqa"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "darolutamide", runner.got.MoleculeName)
	assert.Equal(t, "Nubeqa", runner.got.BrandName)

	var rep report.SearchReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, "abc", rep.SearchID)
}

func TestSearchHandler_MalformedBody(t *testing.T) {
	t.Parallel()

	r := searchRouter(&fakeRunner{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(errors.CodeInvalidParam))
}

func TestSearchHandler_ValidationErrorFromPipeline(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{err: errors.New(errors.CodeMoleculeNameRequired, "nome_molecula is required")}
	r := searchRouter(runner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(`{"nome_molecula":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.CodeMoleculeNameRequired), resp["code"])
	assert.Equal(t, "nome_molecula is required", resp["message"])
}
