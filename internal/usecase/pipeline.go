package usecase

import (
	"context"
	"fmt"
	"time"

	"rewardfare-service/internal/domain/entity"
	"rewardfare-service/internal/domain/repository"
	"rewardfare-service/pkg/logger"
	"rewardfare-service/pkg/metrics"
	"rewardfare-service/pkg/utils"
)

// liveWindowYears bounds the live-pricing search window. Market pricing
// determines its own horizon and needs no end date.
const liveWindowYears = 2

// Pipeline drives one fetch-transform-load pass: reference data is loaded
// once, then every (route, fare) pair is fetched, transformed and
// accumulated into per-route batches that are upserted in one statement.
type Pipeline struct {
	referenceRepo repository.ReferenceRepository
	flightRepo    repository.RewardFlightRepository
	reportRepo    repository.RunReportRepository
	pricingRepo   repository.PricingRepository
	transformer   *Transformer
	metrics       *metrics.Metrics
	logger        logger.Logger

	programName string
	countryCode string
	strategy    entity.Strategy
	now         func() time.Time
}

// NewPipeline creates a new pipeline. reportRepo may be nil when no run
// report archive is configured.
func NewPipeline(
	referenceRepo repository.ReferenceRepository,
	flightRepo repository.RewardFlightRepository,
	reportRepo repository.RunReportRepository,
	pricingRepo repository.PricingRepository,
	transformer *Transformer,
	metrics *metrics.Metrics,
	logger logger.Logger,
	programName string,
	countryCode string,
	strategy entity.Strategy,
) *Pipeline {
	return &Pipeline{
		referenceRepo: referenceRepo,
		flightRepo:    flightRepo,
		reportRepo:    reportRepo,
		pricingRepo:   pricingRepo,
		transformer:   transformer,
		metrics:       metrics,
		logger:        logger,
		programName:   programName,
		countryCode:   countryCode,
		strategy:      strategy,
		now:           time.Now,
	}
}

// Run executes one complete, independent pass. Reference-data failures
// are fatal and returned; fetch, transform and persistence failures are
// isolated to their pair, entry or route and the run continues.
func (p *Pipeline) Run(ctx context.Context) error {
	startedAt := p.now()
	report := &entity.RunReport{
		Strategy:  string(p.strategy),
		Program:   p.programName,
		StartedAt: startedAt,
		Status:    "completed",
	}

	programID, err := p.referenceRepo.ProgramIDByName(ctx, p.programName)
	if err != nil {
		return fmt.Errorf("load reward program: %w", err)
	}

	routes, err := p.referenceRepo.RoutesByCountry(ctx, p.countryCode)
	if err != nil {
		return fmt.Errorf("load routes: %w", err)
	}

	currencyID, err := p.referenceRepo.CurrencyIDByCountry(ctx, p.countryCode)
	if err != nil {
		return fmt.Errorf("load currency: %w", err)
	}

	fareMappings, err := p.referenceRepo.FareMappings(ctx, programID)
	if err != nil {
		return fmt.Errorf("load fare mappings: %w", err)
	}

	window := p.searchWindow()
	report.RoutesTotal = len(routes)

	p.logger.Info("Starting pipeline run",
		"strategy", p.strategy, "program", p.programName, "programID", programID,
		"routes", len(routes), "fares", len(fareMappings), "window", window)

	for _, route := range routes {
		p.processRoute(ctx, route, fareMappings, programID, currencyID, window, report)
	}

	report.FinishedAt = p.now()
	p.metrics.RunDuration.Observe(report.FinishedAt.Sub(startedAt).Seconds())
	p.archiveReport(ctx, report)

	p.logger.Info("Pipeline run complete",
		"routes", report.RoutesTotal, "uploaded", report.RoutesUploaded,
		"failed", report.RoutesFailed, "fetchCalls", report.FetchCalls,
		"fetchFailures", report.FetchFailures, "rows", report.RowsUpserted,
		"skippedEntries", report.EntriesSkipped)
	return nil
}

// processRoute runs the fare loop for one route and uploads its batch.
// A persistence failure loses this route's batch only.
func (p *Pipeline) processRoute(
	ctx context.Context,
	route entity.Route,
	fareMappings []entity.FareMapping,
	programID, currencyID int64,
	window entity.DateWindow,
	report *entity.RunReport,
) {
	var batch []entity.RewardFlight

	for _, mapping := range fareMappings {
		p.logger.Info("Fetching calendar",
			"departing", route.DepartingCode, "arriving", route.ArrivingCode,
			"fare", mapping.Code, "start", window.Start)

		report.FetchCalls++
		p.metrics.FetchCalls.Inc()

		days, err := p.pricingRepo.FetchCalendar(ctx, route.DepartingCode, route.ArrivingCode, mapping.Code, window)
		if err != nil {
			// Recoverable: the pair contributes zero rows today.
			report.FetchFailures++
			p.metrics.FetchFailures.Inc()
			p.metrics.ErrorsCount.WithLabelValues("fetch").Inc()
			continue
		}

		rc := RowContext{
			ProgramID:  programID,
			RouteID:    route.ID,
			CurrencyID: currencyID,
			FareID:     mapping.FareID,
		}
		for _, day := range days {
			row, err := p.transformer.Transform(day, rc)
			if err != nil {
				p.logger.Warn("Skipping malformed price entry",
					"route", route.ID, "fare", mapping.Code, "error", err)
				report.EntriesSkipped++
				p.metrics.EntriesSkipped.Inc()
				continue
			}
			batch = append(batch, row)
		}
	}

	if len(batch) == 0 {
		// Not every route has priced fares every day.
		return
	}

	count, err := p.flightRepo.UpsertBatch(ctx, batch)
	if err != nil {
		p.logger.Error("Failed to upload route batch",
			"route", route.ID, "rows", len(batch), "error", err)
		report.RoutesFailed++
		p.metrics.ErrorsCount.WithLabelValues("upsert").Inc()
		return
	}

	p.logger.Info("Uploaded route batch", "route", route.ID, "rows", count)
	report.RoutesUploaded++
	report.RowsUpserted += count
	p.metrics.RowsUpserted.Add(float64(count))
}

// searchWindow computes the run's date window: today in the API encoding,
// plus a two-year end bound for the live strategy.
func (p *Pipeline) searchWindow() entity.DateWindow {
	today := p.now()
	window := entity.DateWindow{Start: utils.FormatAPIDate(today)}
	if p.strategy == entity.StrategyLive {
		window.End = utils.FormatAPIDate(utils.AddYears(today, liveWindowYears))
	}
	return window
}

// archiveReport writes the run report best-effort; the archive never
// affects the ETL outcome.
func (p *Pipeline) archiveReport(ctx context.Context, report *entity.RunReport) {
	if p.reportRepo == nil {
		return
	}
	if err := p.reportRepo.Save(ctx, report); err != nil {
		p.logger.Warn("Failed to archive run report", "error", err)
		p.metrics.ErrorsCount.WithLabelValues("report").Inc()
	}
}
