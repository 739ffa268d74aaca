package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	ordersdomain "github.com/nexashop/storefront/internal/domains/orders/domain"
	checkoutactivities "github.com/nexashop/storefront/internal/platform/temporal/activities/checkout"
)

// RunOrderPlacementSequence executes the ordered set of activities needed to
// place an order. Cleanup activities retry separately from order persistence
// so a flaky cart store never duplicates an order.
func RunOrderPlacementSequence(ctx workflow.Context, visitorID string) (*ordersdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order placement sequence started", "visitorId", visitorID)
	persistOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	cleanupOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    3,
		},
	}

	var order ordersdomain.Order
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, persistOptions), checkoutactivities.PersistOrderActivityName, visitorID).Get(ctx, &order)
	if err != nil {
		logger.Error("order placement sequence failed", "visitorId", visitorID, "error", err)
		return nil, err
	}
	logger.Info("order placement sequence persisted", "orderId", order.ID)

	cleanupCtx := workflow.WithActivityOptions(ctx, cleanupOptions)
	if err := workflow.ExecuteActivity(cleanupCtx, checkoutactivities.ClearCartActivityName, visitorID).Get(ctx, nil); err != nil {
		logger.Error("order placement sequence cart clear failed", "orderId", order.ID, "error", err)
		return &order, err
	}
	if err := workflow.ExecuteActivity(cleanupCtx, checkoutactivities.ResetDraftActivityName, visitorID).Get(ctx, nil); err != nil {
		logger.Error("order placement sequence draft reset failed", "orderId", order.ID, "error", err)
		return &order, err
	}
	logger.Info("order placement sequence completed", "orderId", order.ID)
	return &order, nil
}
