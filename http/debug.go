package http

import (
	"net/http"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"

	"github.com/SeraphWedd/novage-spatial/spatial"
)

// HandleDebugInfo serves a JSON snapshot of a partition's shape. The
// snapshot function is called on every request, so the caller must make
// sure it is safe to run concurrently with index mutation.
func HandleDebugInfo(snapshot func() spatial.DebugInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := json.Marshal(snapshot())
		if err != nil {
			logs.Error(errors.New("encoding spatial debug info failed").Wrap(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}
