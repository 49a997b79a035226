package forwarding

import (
	"context"
	"errors"
	"sync"

	"github.com/marcelsud/hookdash/webhook"
	"github.com/rs/zerolog"
)

type ConfigGetter interface {
	Get(ctx context.Context, endpointID string) (Config, error)
}

type RequestGetter interface {
	Get(ctx context.Context, id, endpointID string) (webhook.Request, error)
}

/* Dispatcher hands stored requests to the engine on detached goroutines
 * Each sequence re-reads its config and request through the pool, using the
 * application context so an inbound call finishing never cancels delivery
 */
type Dispatcher struct {
	ctx       context.Context
	configs   ConfigGetter
	requests  RequestGetter
	forwarder Forwarder
	logger    zerolog.Logger
	wg        sync.WaitGroup
}

func NewDispatcher(ctx context.Context, configs ConfigGetter, requests RequestGetter, forwarder Forwarder, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		ctx:       ctx,
		configs:   configs,
		requests:  requests,
		forwarder: forwarder,
		logger:    logger,
	}
}

// Dispatch returns immediately.
func (d *Dispatcher) Dispatch(endpointID, requestID string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.run(endpointID, requestID)
	}()
}

// Wait blocks until every dispatched sequence has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) run(endpointID, requestID string) {
	log := d.logger.With().Str("endpoint_id", endpointID).Str("request_id", requestID).Logger()

	c, err := d.configs.Get(d.ctx, endpointID)
	if errors.Is(err, ErrNotFound) {
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("loading forwarding config")
		return
	}
	if !c.Active {
		return
	}
	r, err := d.requests.Get(d.ctx, requestID, endpointID)
	if err != nil {
		log.Error().Err(err).Msg("loading webhook request")
		return
	}
	final, err := d.forwarder.ForwardWithRetries(d.ctx, c, r)
	if err != nil {
		log.Error().Err(err).Msg("forwarding webhook")
		return
	}
	if !final.Success {
		log.Warn().Int("attempts", final.Attempt).Str("error", final.ErrorMessage).Msg("forwarding gave up")
	}
}
