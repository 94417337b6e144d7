package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func patchJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func campaignTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := HandlerSet{log: zerolog.Nop()}

	router := gin.New()
	admin := router.Group("/api/admin")
	admin.GET("/campaigns/pending", h.ListPendingCampaigns)
	admin.PATCH("/campaigns/:id/status", h.UpdateCampaignStatus)
	return router
}

func TestUpdateCampaignStatus_RejectsUnknownStatus(t *testing.T) {
	router := campaignTestRouter()

	for _, body := range []string{
		`{"status":"active"}`,
		`{"status":"pending"}`,
		`{"status":""}`,
		`{}`,
		`not json`,
	} {
		rec := patchJSON(router, "/api/admin/campaigns/camp_1/status", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "approved or rejected", body)
	}
}

func TestCampaignVerificationRoutesExist(t *testing.T) {
	router := campaignTestRouter()

	// A registered route fails validation, an unregistered one 404s.
	rec := patchJSON(router, "/api/admin/campaigns/camp_1/status", `{}`)
	assert.NotEqual(t, http.StatusNotFound, rec.Code)
}
