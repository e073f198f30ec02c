package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals decodes DataStar signals (query parameter on GET, JSON body
// otherwise) into v using its json tags. Requests without the
// Datastar-Request header yield ErrBinderNotApplicable.
func Signals() Func {
	return func(r *http.Request, v any) error {
		if r.Header.Get("Datastar-Request") != "true" {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseSignals, err)
		}
		return nil
	}
}
