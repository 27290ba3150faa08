package mqttpub

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/url"
	"sync/atomic"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"
)

// ErrNotConnected is returned when a publish is attempted while the
// broker connection is down. The caller logs it and lets the next
// cadence boundary retry; the tick loop never blocks waiting for the
// connection to come back.
var ErrNotConnected = errors.New("mqtt: not connected")

const qosAtLeastOnce = 1

// Options configures the broker connection.
type Options struct {
	BrokerURL    string
	ClientID     string
	Topic        string
	HistoryTopic string
	KeepAlive    uint16
	Logger       *slog.Logger
}

// Publisher wraps an autopaho connection manager. The connection flag
// is written only by paho's own callbacks and read by the tick loop.
type Publisher struct {
	cm        *autopaho.ConnectionManager
	connected atomic.Bool
	opts      Options
}

// Connect establishes the managed broker connection. autopaho handles
// reconnects; the initial connect failing is not fatal, the manager
// keeps retrying in the background.
func Connect(ctx context.Context, opts Options) (*Publisher, error) {
	u, err := url.Parse(opts.BrokerURL)
	if err != nil {
		return nil, err
	}

	p := &Publisher{opts: opts}
	log := opts.Logger

	cfg := autopaho.ClientConfig{
		ServerUrls: []*url.URL{u},
		KeepAlive:  opts.KeepAlive,
		OnConnectionUp: func(*autopaho.ConnectionManager, *paho.Connack) {
			p.connected.Store(true)
			log.Info("mqtt connected", "broker", opts.BrokerURL)
		},
		OnConnectError: func(err error) {
			p.connected.Store(false)
			log.Warn("mqtt connect failed", "error", err)
		},
		ClientConfig: paho.ClientConfig{
			ClientID: opts.ClientID,
			OnClientError: func(err error) {
				p.connected.Store(false)
				log.Warn("mqtt client error", "error", err)
			},
			OnServerDisconnect: func(d *paho.Disconnect) {
				p.connected.Store(false)
				log.Warn("mqtt disconnected", "reason", d.ReasonCode)
			},
		},
	}

	cm, err := autopaho.NewConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}
	p.cm = cm
	return p, nil
}

// Connected reports the current broker connection state.
func (p *Publisher) Connected() bool {
	return p.connected.Load()
}

// Publish sends the live payload at QoS 1, non-retained.
func (p *Publisher) Publish(ctx context.Context, payload Payload) error {
	return p.publish(ctx, p.opts.Topic, payload, false)
}

// PublishHistory sends the snapshot at QoS 1 with the retain flag set,
// so new subscribers immediately receive the latest snapshot.
func (p *Publisher) PublishHistory(ctx context.Context, snap Snapshot) error {
	return p.publish(ctx, p.opts.HistoryTopic, snap, true)
}

func (p *Publisher) publish(ctx context.Context, topic string, v any, retain bool) error {
	if !p.connected.Load() {
		return ErrNotConnected
	}

	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = p.cm.Publish(ctx, &paho.Publish{
		QoS:     qosAtLeastOnce,
		Retain:  retain,
		Topic:   topic,
		Payload: body,
	})
	return err
}

// Disconnect closes the broker connection, best effort.
func (p *Publisher) Disconnect(ctx context.Context) error {
	return p.cm.Disconnect(ctx)
}
