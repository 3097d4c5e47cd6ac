package service

import (
	"context"
	"errors"
	"livebets/parse_bovada/cmd/config"
	"livebets/parse_bovada/internal/api"
	"livebets/parse_bovada/internal/display"
	"livebets/parse_bovada/internal/entity"
	"livebets/parse_bovada/internal/parse"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Service struct {
	api      *api.API
	console  *display.Console
	sendChan chan<- entity.Snapshot
	logger   *zerolog.Logger
}

func New(
	api *api.API,
	console *display.Console,
	sendChan chan<- entity.Snapshot,
	logger *zerolog.Logger,
) *Service {
	return &Service{
		api:      api,
		console:  console,
		sendChan: sendChan,
		logger:   logger,
	}
}

// Run polls the events endpoint until the context is cancelled. The first
// cycle fires immediately, then on every tick. A failed cycle is rendered
// and the loop keeps going - nothing short of cancellation stops it.
func (s *Service) Run(ctx context.Context, cfg config.APIConfig, wg *sync.WaitGroup) {
	defer wg.Done()

	interval := time.Duration(cfg.PollInterval) * time.Second

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.cycle(ctx)

	for {
		select {
		case <-ticker.C:
			s.cycle(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// cycle is one full refresh: fetch, flatten, filter live, extract, render.
// No state survives between cycles.
func (s *Service) cycle(ctx context.Context) {
	start := time.Now()

	payload, err := s.api.FetchEvents(ctx)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			s.console.StatusError(statusErr.URL, statusErr)
		} else {
			s.console.Error(err)
		}
		s.logger.Error().Err(err).Msg("[Service.cycle] error get events")
		return
	}

	events := parse.FlattenEvents(payload)

	snapshot := entity.Snapshot{
		URL:       s.api.EventsURL(),
		UpdatedAt: time.Now(),
	}

	for _, event := range events {
		if !parse.IsLive(event) {
			continue
		}

		game := entity.LiveGame{
			Matchup: parse.Matchup(event),
			Score:   "N/A",
			Total:   "N/A",
		}
		if score, ok := parse.Score(event); ok {
			game.Score = score
		}
		if total, ok := parse.MainTotal(event); ok {
			game.Total = total
		}

		snapshot.Games = append(snapshot.Games, game)
	}

	s.console.Snapshot(snapshot)

	// The websocket feed is best effort, dropping a frame is fine.
	select {
	case s.sendChan <- snapshot:
	default:
	}

	s.logger.Info().Msgf("%d events fetched, %d live, took %s", len(events), len(snapshot.Games), time.Since(start))
}
