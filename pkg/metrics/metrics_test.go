package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareLabelsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/summary/:user_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/summary/:user_id", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/summary/1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/summary/2", nil))

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/summary/:user_id", "200"))
	assert.Equal(t, before+2, after)

	unmatched := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, unmatched+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestRecordEnrichment(t *testing.T) {
	before := testutil.ToFloat64(enrichments.WithLabelValues("chat", OutcomeFallback))

	RecordEnrichment("chat", OutcomeFallback)
	ObserveEnrichment("chat", 120*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(enrichments.WithLabelValues("chat", OutcomeFallback)))
}
