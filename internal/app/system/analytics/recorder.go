// internal/app/system/analytics/recorder.go
package analytics

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	analyticsstore "github.com/dalemusser/creatorhub/internal/app/store/analytics"
	"github.com/dalemusser/creatorhub/internal/app/system/ratelimit"
	"github.com/dalemusser/creatorhub/internal/app/system/timeouts"
	"github.com/dalemusser/creatorhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Destination values for the analytics_log setting.
const (
	ModeAll = "all" // MongoDB + zap
	ModeDB  = "db"  // MongoDB only
	ModeLog = "log" // zap only
	ModeOff = "off"
)

// ValidMode reports whether s is an accepted analytics_log value.
func ValidMode(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ModeAll, ModeDB, ModeLog, ModeOff:
		return true
	}
	return false
}

// Sink persists events. *analyticsstore.Store satisfies it.
type Sink interface {
	Insert(ctx context.Context, event models.AnalyticsEvent) error
}

// Client describes who triggered an event.
type Client struct {
	UserID    *primitive.ObjectID
	IP        string
	UserAgent string
}

type clientKey struct{}

// WithClient attaches client details to ctx for the events recorded under it.
func WithClient(ctx context.Context, c Client) context.Context {
	return context.WithValue(ctx, clientKey{}, c)
}

// ClientFromRequest builds a Client from the request headers.
func ClientFromRequest(r *http.Request, userID *primitive.ObjectID) Client {
	return Client{
		UserID:    userID,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
}

func clientFrom(ctx context.Context) Client {
	c, _ := ctx.Value(clientKey{}).(Client)
	return c
}

// Recorder writes product-analytics events to MongoDB and/or zap depending
// on its mode. A nil *Recorder is a no-op.
type Recorder struct {
	sink Sink
	log  *zap.Logger
	mode string
	now  func() time.Time
	wg   sync.WaitGroup
}

// New creates a Recorder. An unknown mode is treated as "all".
func New(sink Sink, log *zap.Logger, mode string) *Recorder {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if !ValidMode(mode) {
		mode = ModeAll
	}
	return &Recorder{sink: sink, log: log, mode: mode, now: time.Now}
}

// NewForStore is New with the Mongo-backed store.
func NewForStore(store *analyticsstore.Store, log *zap.Logger, mode string) *Recorder {
	return New(store, log, mode)
}

func (r *Recorder) logToZap(e models.AnalyticsEvent) {
	fields := []zap.Field{
		zap.Bool("analytics", true),
		zap.String("event_id", e.EventID),
		zap.String("event_type", e.EventType),
		zap.String("source", e.Source),
		zap.String("ip", e.IP),
	}
	if e.UserID != nil {
		fields = append(fields, zap.String("user_id", e.UserID.Hex()))
	}
	for k, v := range e.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}
	r.log.Info("analytics event", fields...)
}

// Record writes e synchronously. Storage errors are logged and returned.
func (r *Recorder) Record(ctx context.Context, e models.AnalyticsEvent) error {
	if r == nil || r.mode == ModeOff {
		return nil
	}
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = r.now().UTC()
	}

	if r.mode == ModeAll || r.mode == ModeLog {
		r.logToZap(e)
	}
	if (r.mode == ModeAll || r.mode == ModeDB) && r.sink != nil {
		if err := r.sink.Insert(ctx, e); err != nil {
			r.log.Error("failed to store analytics event",
				zap.Error(err),
				zap.String("event_type", e.EventType),
				zap.String("event_id", e.EventID))
			return fmt.Errorf("store analytics event: %w", err)
		}
	}
	return nil
}

// RecordStartLoginEvent records that a visitor began the sign-in flow from
// sourceTag. The write happens in the background with its own timeout, so
// the call returns immediately and never reports storage failures.
func (r *Recorder) RecordStartLoginEvent(ctx context.Context, sourceTag string) error {
	if r == nil || r.mode == ModeOff {
		return nil
	}
	c := clientFrom(ctx)
	e := models.AnalyticsEvent{
		EventID:   uuid.NewString(),
		EventType: analyticsstore.EventStartLogin,
		Source:    sourceTag,
		UserID:    c.UserID,
		IP:        c.IP,
		UserAgent: c.UserAgent,
		Timestamp: r.now().UTC(),
	}

	bg := context.WithoutCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		wctx, cancel := context.WithTimeout(bg, timeouts.Short())
		defer cancel()
		_ = r.Record(wctx, e)
	}()
	return nil
}

// Wait blocks until background writes started so far have finished.
// Called from Shutdown.
func (r *Recorder) Wait() {
	if r == nil {
		return
	}
	r.wg.Wait()
}
