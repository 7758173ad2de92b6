package errutil

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/focus-hub/focus-core/pkg/domain/types"
	"github.com/focus-hub/focus-core/pkg/utils/logging"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
)

// HandleError reports err to Sentry and logs it together with its kind and the Sentry event ID.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}
	kind := types.KindOf(err)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("error.kind", kind.String())
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		slog.Any("error", err),
		slog.String("error.kind", kind.String()),
		slog.Any("sentry.EventID", evID),
	)
}
