package safe

import (
	"io"
	"log/slog"

	"github.com/focus-hub/focus-core/pkg/utils/logging"
)

// maxDrain bounds how much of an unread response body is discarded before closing.
const maxDrain = 64 * 1024

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// CloseBody discards what is left of an HTTP response body and closes it, so that the
// underlying connection can be reused.
func CloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	if _, err := io.Copy(io.Discard, io.LimitReader(body, maxDrain)); err != nil {
		logging.Default().Debug("Fail to drain response body", slog.Any("error", err))
	}
	Close(body)
}
