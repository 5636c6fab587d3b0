package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	sdkerrors "github.com/animalspotter/animalspotter/client/internal/errors"
)

// Route paths, appended to the service base URL.
const (
	PathSignup  = "/users/signup"
	PathLogin   = "/users/login"
	PathAnimals = "/animals/all"
)

// Operation names used in error messages and metrics labels.
const (
	OpRegister     = "register"
	OpAuthenticate = "authenticate"
	OpListAnimals  = "list animals"
)

// NewRestClient builds the resty client every API call goes through. hc
// carries the transport chain (request IDs, debug dumps); resty adds base URL
// handling and body buffering on top.
func NewRestClient(hc *http.Client, baseURL string, logger zerolog.Logger) *resty.Client {
	return resty.NewWithClient(hc).
		SetBaseURL(baseURL).
		SetLogger(restyLogger{logger}).
		SetDisableWarn(true)
}

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct{ l zerolog.Logger }

func (r restyLogger) Errorf(format string, v ...interface{}) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...interface{})  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...interface{}) { r.l.Debug().Msgf(format, v...) }

// checkCtx returns a Transport error if ctx is already done, so no request
// is built for a dead context.
func checkCtx(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return sdkerrors.NewNetworkError(op, err)
	}
	return nil
}
