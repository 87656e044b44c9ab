package nowcast

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/i474232898/composite-nowcast/internal/logger"
	"github.com/i474232898/composite-nowcast/internal/metrics"
)

// Service runs one fetch cycle across the GDPNow and NY Fed sources and
// combines the results.
type Service struct {
	gdpnow Source
	nyfed  Source
	log    logger.Logger
	now    func() time.Time
}

// NewService creates a new Service.
func NewService(gdpnow, nyfed Source, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		gdpnow: gdpnow,
		nyfed:  nyfed,
		log:    log,
		now:    time.Now,
	}
}

// Snapshot fetches both sources concurrently and waits for both to finish.
// Every failure is folded into an invalid Estimate; the composite is computed
// only when both estimates are valid.
func (s *Service) Snapshot(ctx context.Context) Snapshot {
	var (
		wg            sync.WaitGroup
		gdpnow, nyfed Estimate
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		gdpnow = s.fetch(ctx, s.gdpnow, SourceGDPNow)
	}()
	go func() {
		defer wg.Done()
		nyfed = s.fetch(ctx, s.nyfed, SourceNYFed)
	}()
	wg.Wait()

	snap := Snapshot{
		GDPNow:    gdpnow,
		NYFed:     nyfed,
		FetchedAt: s.now().UTC(),
	}

	if !gdpnow.Valid || !nyfed.Valid {
		s.log.Warn("nowcast incomplete; composite not computed",
			logger.Bool("gdpnow_valid", gdpnow.Valid),
			logger.Bool("nyfed_valid", nyfed.Valid),
		)
		return snap
	}

	c := Compute(gdpnow.Value, nyfed.Value)
	snap.Composite = &c
	metrics.SetComposite(c.Value)

	s.log.Info("composite nowcast computed",
		logger.Float64("gdpnow", gdpnow.Value),
		logger.Float64("nyfed", nyfed.Value),
		logger.Float64("composite", c.Value),
	)
	return snap
}

func (s *Service) fetch(ctx context.Context, src Source, name string) Estimate {
	absent := Estimate{Source: name}
	if src == nil {
		s.log.Error("no source configured", logger.String("source", name))
		return absent
	}

	start := time.Now()
	est, err := src.Fetch(ctx)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, ErrValueNotFound):
		metrics.ObserveFetch(name, metrics.OutcomeNotFound, elapsed)
		s.log.Warn("nowcast value not found", logger.String("source", name), logger.Duration("elapsed", elapsed))
		return absent
	case err != nil:
		metrics.ObserveFetch(name, metrics.OutcomeError, elapsed)
		s.log.Warn("nowcast fetch failed", logger.String("source", name), logger.Err(err))
		return absent
	case !est.Valid:
		metrics.ObserveFetch(name, metrics.OutcomeNotFound, elapsed)
		return absent
	}

	metrics.ObserveFetch(name, metrics.OutcomeSuccess, elapsed)
	s.log.Debug("nowcast fetched",
		logger.String("source", name),
		logger.Float64("value", est.Value),
		logger.Duration("elapsed", elapsed),
	)
	est.Source = name
	return est
}
