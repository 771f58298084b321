package client

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/mdm-client/api"
	"github.com/aalemi-dev/mdm-client/audit"
	"github.com/aalemi-dev/mdm-client/config"
	tf "github.com/aalemi-dev/mdm-client/internal/testfixtures"
	"github.com/aalemi-dev/mdm-client/logger"
	"github.com/aalemi-dev/mdm-client/metrics"
	"github.com/aalemi-dev/mdm-client/tracer"
	"github.com/aalemi-dev/mdm-client/transport"
)

func TestFXModule_FullGraph(t *testing.T) {
	for _, k := range []string{"MDM_API_ID", "MDM_API_TOKEN", "MDM_API_URL", "MDM_LOG_LEVEL", "MDM_AUDIT_ENABLED"} {
		t.Setenv(k, "")
	}

	srv := tf.NewServer(t)
	srv.Reply("GET /locations/1", http.StatusOK, tf.Single("location", tf.Record(tf.Location)))

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := fmt.Sprintf(`
api:
  id: "1234"
  token: s3cret
  url: %s
logger:
  level: error
metrics:
  address: ""
  disable_runtime_collectors: true
`, srv.URL)
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	var (
		root *Client
		m    *metrics.Metrics
	)
	app := fxtest.New(t,
		config.FromFile(path),
		logger.FXModule,
		tracer.FXModule,
		metrics.FXModule,
		audit.FXModule,
		transport.FXModule,
		api.FXModule,
		FXModule,
		fx.Populate(&root, &m),
	)
	app.RequireStart()
	defer app.RequireStop()

	loc, err := root.GetLocation(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, loc.ID())

	req := srv.Last()
	assert.Equal(t, "3", req.Header.Get("X-Server-Protocol-Version"))

	// one series from the transport, one from the api layer
	n, err := testutil.GatherAndCount(m.Registry, "mdm_client_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
