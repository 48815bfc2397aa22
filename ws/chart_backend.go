package ws

import (
	"sync"

	"github.com/google/uuid"

	"github.com/c14220110/hms-console/internal/dashboard/models"
	"github.com/c14220110/hms-console/internal/dashboard/services"
)

const (
	TypeChartCreate   = "chart_create"
	TypeChartDestroy  = "chart_destroy"
	TypeMetricsUpdate = "metrics_update"
	TypeFetchError    = "fetch_error"
)

// ChartBackend renders charts on the connected browsers: creating a chart
// broadcasts its config, destroying it broadcasts its id.
type ChartBackend struct {
	Hub *Hub
}

var _ services.Backend = (*ChartBackend)(nil)

func NewChartBackend(hub *Hub) *ChartBackend {
	return &ChartBackend{Hub: hub}
}

func (b *ChartBackend) Create(canvasID string, cfg models.ChartConfig) (services.Chart, error) {
	inst := models.ChartInstance{ID: uuid.NewString(), Canvas: canvasID, Config: cfg}
	if err := b.Hub.Publish(TypeChartCreate, inst); err != nil {
		return nil, err
	}
	return &remoteChart{id: inst.ID, canvas: canvasID, hub: b.Hub}, nil
}

type remoteChart struct {
	id     string
	canvas string
	hub    *Hub
	once   sync.Once
	err    error
}

func (c *remoteChart) ID() string { return c.id }

// Destroy is idempotent.
func (c *remoteChart) Destroy() error {
	c.once.Do(func() {
		c.err = c.hub.Publish(TypeChartDestroy, map[string]string{"id": c.id, "canvas": c.canvas})
	})
	return c.err
}
