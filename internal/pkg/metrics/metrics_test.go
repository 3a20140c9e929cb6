package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCatalogRequest(t *testing.T) {
	before := testutil.ToFloat64(CatalogRequestsTotal.WithLabelValues("filter", "ok"))
	RecordCatalogRequest("filter", "ok", 0.12)
	after := testutil.ToFloat64(CatalogRequestsTotal.WithLabelValues("filter", "ok"))
	assert.Equal(t, before+1, after)
}

func TestRecordSearch(t *testing.T) {
	before := testutil.ToFloat64(SearchOutcomesTotal.WithLabelValues("empty"))
	RecordSearch("empty", 0, 0.01)
	assert.Equal(t, before+1, testutil.ToFloat64(SearchOutcomesTotal.WithLabelValues("empty")))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/recipes/ingredients", "200"))
	RecordHTTPRequest("POST", "/api/v1/recipes/ingredients", "200", 0.3)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/recipes/ingredients", "200"))
	assert.Equal(t, before+1, after)
}
