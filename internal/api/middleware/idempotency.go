package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hbnb/rental-directory/internal/api/metrics"
	"github.com/hbnb/rental-directory/internal/core/ports"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "X-Idempotency-Replayed"

	maxKeyLength   = 255
	defaultLockTTL = 30 * time.Second
)

// IdempotencyConfig configures the Idempotency middleware.
type IdempotencyConfig struct {
	Store ports.IdempotencyStore
	// TTL is how long a completed response is replayed.
	TTL time.Duration
	// LockTTL bounds how long an in-flight request holds its key.
	LockTTL time.Duration
	Logger  zerolog.Logger
}

// Idempotency replays the first successful response of a POST carrying an
// Idempotency-Key header. Keys are scoped to the request path; reusing a key
// with a different body is rejected. Store failures let the request through.
func Idempotency(cfg IdempotencyConfig) echo.MiddlewareFunc {
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = defaultLockTTL
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			key := req.Header.Get(HeaderIdempotencyKey)
			if req.Method != http.MethodPost || key == "" {
				return next(c)
			}
			if len(key) > maxKeyLength {
				return echo.NewHTTPError(http.StatusBadRequest, "Idempotency-Key is too long")
			}

			body, err := io.ReadAll(req.Body)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
			}
			req.Body = io.NopCloser(bytes.NewReader(body))

			ctx := req.Context()
			storeKey := req.URL.Path + "|" + key
			fp := fingerprint(body)

			rec, err := cfg.Store.Get(ctx, storeKey)
			if err != nil {
				metrics.IdempotencyTotal.WithLabelValues("error").Inc()
				cfg.Logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed")
				return next(c)
			}
			if rec != nil {
				return replay(c, rec, fp, key, cfg.Logger)
			}

			ok, err := cfg.Store.Reserve(ctx, storeKey, fp, cfg.LockTTL)
			if err != nil {
				metrics.IdempotencyTotal.WithLabelValues("error").Inc()
				cfg.Logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency reserve failed")
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusConflict, "A request with this Idempotency-Key is in progress")
			}
			metrics.IdempotencyTotal.WithLabelValues("miss").Inc()

			res := c.Response()
			buf := new(bytes.Buffer)
			original := res.Writer
			res.Writer = &captureWriter{Writer: io.MultiWriter(original, buf), ResponseWriter: original}
			err = next(c)
			res.Writer = original

			if err == nil && res.Status >= 200 && res.Status < 300 {
				saveErr := cfg.Store.Complete(ctx, storeKey, ports.IdempotencyRecord{
					Fingerprint: fp,
					Status:      res.Status,
					ContentType: res.Header().Get(echo.HeaderContentType),
					Body:        buf.Bytes(),
				}, cfg.TTL)
				if saveErr != nil {
					cfg.Logger.Warn().Err(saveErr).Str("idempotency_key", key).Msg("idempotency save failed")
				}
				return nil
			}

			if relErr := cfg.Store.Release(ctx, storeKey); relErr != nil {
				cfg.Logger.Warn().Err(relErr).Str("idempotency_key", key).Msg("idempotency release failed")
			}
			return err
		}
	}
}

func replay(c echo.Context, rec *ports.IdempotencyRecord, fp, key string, log zerolog.Logger) error {
	if rec.Fingerprint != fp {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Idempotency-Key was used with a different payload")
	}
	if rec.Pending {
		return echo.NewHTTPError(http.StatusConflict, "A request with this Idempotency-Key is in progress")
	}
	metrics.IdempotencyTotal.WithLabelValues("hit").Inc()
	log.Info().Str("idempotency_key", key).Str("path", c.Request().URL.Path).Msg("idempotent replay")

	c.Response().Header().Set(HeaderReplayed, "true")
	contentType := rec.ContentType
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	return c.Blob(rec.Status, contentType, rec.Body)
}

func fingerprint(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// captureWriter tees the response body into Writer.
type captureWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *captureWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}
