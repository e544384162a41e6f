package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/server"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/metrics"
)

func TestNewMetricsServer(t *testing.T) {
	srv := server.NewMetricsServer(":0")
	metrics.DLQEnqueued.WithLabelValues("reconciliation").Inc()

	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reconciliation")

	w = httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
