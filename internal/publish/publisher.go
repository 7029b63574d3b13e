// Package publish sends a one-off appliance status snapshot to an MQTT broker.
package publish

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/jattkaim/daikinhttp"
	"github.com/jattkaim/daikinhttp/internal/config"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second

	// disconnectQuiesce is in milliseconds.
	disconnectQuiesce = 250
)

var (
	ErrConnectTimeout = errors.New("mqtt: connect timed out")
	ErrPublishTimeout = errors.New("mqtt: publish timed out")
)

// client is the part of pahomqtt.Client the publisher needs.
type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) pahomqtt.Token
	Disconnect(quiesce uint)
}

type Publisher struct {
	client client
	prefix string
	qos    byte
	retain bool
}

// Message is one topic/payload pair of a snapshot.
type Message struct {
	Topic   string
	Payload []byte
}

func buildClientOptions(cfg config.MQTTConfig) *pahomqtt.ClientOptions {
	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "daikinctl-" + uuid.NewString()[:8]
	}
	opts.SetClientID(clientID)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.SetCleanSession(true)
	opts.SetAutoReconnect(false)
	opts.SetConnectTimeout(connectTimeout)
	return opts
}

// Connect dials the broker described by cfg.
func Connect(cfg config.MQTTConfig) (*Publisher, error) {
	c := pahomqtt.NewClient(buildClientOptions(cfg))
	token := c.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, ErrConnectTimeout
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt: connect to %s: %w", cfg.Broker, err)
	}
	return newPublisher(c, cfg), nil
}

func newPublisher(c client, cfg config.MQTTConfig) *Publisher {
	return &Publisher{
		client: c,
		prefix: strings.TrimSuffix(cfg.TopicPrefix, "/"),
		qos:    byte(cfg.QoS),
		retain: cfg.Retain,
	}
}

// deviceID picks a stable topic segment for the appliance.
func deviceID(status *daikinhttp.Status) string {
	if status.Info.MAC != "" {
		return strings.ToLower(status.Info.MAC)
	}
	return strings.NewReplacer(".", "_", ":", "_").Replace(status.Host)
}

// Messages renders status as <prefix>/<device>/{info,sensor,control}.
func Messages(prefix string, status *daikinhttp.Status) ([]Message, error) {
	base := deviceID(status)
	if prefix != "" {
		base = prefix + "/" + base
	}

	parts := []struct {
		name  string
		value any
	}{
		{"info", status.Info},
		{"sensor", status.Sensor},
		{"control", status.Control},
	}

	msgs := make([]Message, 0, len(parts))
	for _, p := range parts {
		payload, err := json.Marshal(p.value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", p.name, err)
		}
		msgs = append(msgs, Message{Topic: base + "/" + p.name, Payload: payload})
	}
	return msgs, nil
}

// PublishStatus publishes every message of the snapshot and waits for each.
func (p *Publisher) PublishStatus(status *daikinhttp.Status) ([]Message, error) {
	msgs, err := Messages(p.prefix, status)
	if err != nil {
		return nil, err
	}
	for _, m := range msgs {
		token := p.client.Publish(m.Topic, p.qos, p.retain, m.Payload)
		if !token.WaitTimeout(publishTimeout) {
			return nil, fmt.Errorf("%w: %s", ErrPublishTimeout, m.Topic)
		}
		if err := token.Error(); err != nil {
			return nil, fmt.Errorf("mqtt: publish %s: %w", m.Topic, err)
		}
	}
	return msgs, nil
}

func (p *Publisher) Close() {
	p.client.Disconnect(disconnectQuiesce)
}
