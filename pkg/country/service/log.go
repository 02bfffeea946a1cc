package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/country-mirror/pkg/country"
)

const serviceName = "CountryService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the country Service.
// It logs method entry/exit, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// observe logs the start of method and returns a func that logs its outcome.
func (ls *logService) observe(method string, fields ...zap.Field) func(err error, extra ...zap.Field) {
	start := time.Now()
	base := append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
	}, fields...)

	ls.logger.Debug(method+" started", base...)

	return func(err error, extra ...zap.Field) {
		out := append(base[:len(base):len(base)], zap.Duration("duration", time.Since(start)))
		if err != nil {
			ls.logger.Error(method+" failed", append(out, zap.Error(err))...)
			return
		}
		ls.logger.Info(method+" completed", append(out, extra...)...)
	}
}

// Refresh wraps the service method with logging
func (ls *logService) Refresh(ctx context.Context) (countries []*country.Country, err error) {
	done := ls.observe("Refresh")
	defer func() { done(err, zap.Int("countries", len(countries))) }()

	return ls.svc.Refresh(ctx)
}

// List wraps the service method with logging
func (ls *logService) List(ctx context.Context, filter country.Filter) (countries []*country.Country, err error) {
	done := ls.observe("List",
		zap.String("region", filter.Region),
		zap.String("currency", filter.Currency),
		zap.String("sort", string(filter.Sort)),
	)
	defer func() { done(err, zap.Int("countries", len(countries))) }()

	return ls.svc.List(ctx, filter)
}

// Get wraps the service method with logging
func (ls *logService) Get(ctx context.Context, name string) (c *country.Country, err error) {
	done := ls.observe("Get", zap.String("name", name))
	defer func() { done(err) }()

	return ls.svc.Get(ctx, name)
}

// Delete wraps the service method with logging
func (ls *logService) Delete(ctx context.Context, name string) (err error) {
	done := ls.observe("Delete", zap.String("name", name))
	defer func() { done(err) }()

	return ls.svc.Delete(ctx, name)
}

// Status wraps the service method with logging
func (ls *logService) Status(ctx context.Context) (st *country.Status, err error) {
	done := ls.observe("Status")
	defer func() {
		if st != nil {
			done(err, zap.Int("total_countries", st.TotalCountries))
			return
		}
		done(err)
	}()

	return ls.svc.Status(ctx)
}

// Image wraps the service method with logging
func (ls *logService) Image(ctx context.Context) (b []byte, err error) {
	done := ls.observe("Image")
	defer func() { done(err, zap.Int("bytes", len(b))) }()

	return ls.svc.Image(ctx)
}

// InsertSample wraps the service method with logging
func (ls *logService) InsertSample(ctx context.Context) (c *country.Country, err error) {
	done := ls.observe("InsertSample")
	defer func() {
		if c != nil {
			done(err, zap.Int64("id", c.ID))
			return
		}
		done(err)
	}()

	return ls.svc.InsertSample(ctx)
}

// Dump wraps the service method with logging
func (ls *logService) Dump(ctx context.Context) (countries []*country.Country, err error) {
	done := ls.observe("Dump")
	defer func() { done(err, zap.Int("countries", len(countries))) }()

	return ls.svc.Dump(ctx)
}

// Setup wraps the service method with logging
func (ls *logService) Setup(ctx context.Context) (err error) {
	done := ls.observe("Setup")
	defer func() { done(err) }()

	return ls.svc.Setup(ctx)
}

// Clear wraps the service method with logging
func (ls *logService) Clear(ctx context.Context) (err error) {
	done := ls.observe("Clear")
	defer func() { done(err) }()

	return ls.svc.Clear(ctx)
}
