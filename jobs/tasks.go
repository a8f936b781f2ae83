// Package jobs defines the background tasks run by the asynq worker:
// a payment status consistency sweep and a low stock scan.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type names registered with the worker mux.
const (
	TypePaymentsStatusSync = "payments:status-sync"
	TypeLowStockScan       = "inventory:low-stock-scan"
)

// LowStockPayload carries the threshold below which products are
// reported.
type LowStockPayload struct {
	Threshold float64 `json:"threshold"`
}

// NewPaymentsStatusSyncTask builds the payment status sweep task.
func NewPaymentsStatusSyncTask() *asynq.Task {
	return asynq.NewTask(TypePaymentsStatusSync, nil)
}

// NewLowStockScanTask builds the low stock scan task.
func NewLowStockScanTask(threshold float64) (*asynq.Task, error) {
	payload, err := json.Marshal(LowStockPayload{Threshold: threshold})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeLowStockScan, payload), nil
}
