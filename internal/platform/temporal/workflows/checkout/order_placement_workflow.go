package checkout

import (
	"go.temporal.io/sdk/workflow"

	ordersdomain "github.com/nexashop/storefront/internal/domains/orders/domain"
	"github.com/nexashop/storefront/internal/platform/temporal/sequences"
)

const (
	// OrderPlacementWorkflowName is the public identifier for registering the workflow.
	OrderPlacementWorkflowName = "checkout.workflows.OrderPlacement"
	// OrderPlacementTaskQueue is the queue consumed by the worker processing checkout workflows.
	OrderPlacementTaskQueue = "ORDER_PLACEMENT"
)

// OrderPlacementWorkflowInput captures the payload required to turn a cart into an order.
type OrderPlacementWorkflowInput struct {
	VisitorID string
	TraceID   string
}

// OrderPlacementWorkflow orchestrates the activities that persist an order and
// clean up the visitor's cart and shipping draft afterwards.
func OrderPlacementWorkflow(ctx workflow.Context, input OrderPlacementWorkflowInput) (*ordersdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("OrderPlacementWorkflow started", withTraceID(input.TraceID, "visitorId", input.VisitorID)...)
	order, err := sequences.RunOrderPlacementSequence(ctx, input.VisitorID)
	if err != nil {
		logger.Error("OrderPlacementWorkflow failed", withTraceID(input.TraceID, "visitorId", input.VisitorID, "error", err)...)
		return nil, err
	}
	if order != nil {
		logger.Info("OrderPlacementWorkflow completed", withTraceID(input.TraceID, "orderId", order.ID)...)
	} else {
		logger.Info("OrderPlacementWorkflow completed", withTraceID(input.TraceID)...)
	}
	return order, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
