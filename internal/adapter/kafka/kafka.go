package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"github.com/niksmo/storefront/pkg/retry"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts = errors.New("too few options")
)

const (
	pingAttempts = 3
	pingDelay    = 50 * time.Millisecond
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

// ProducerClientOpt dials the brokers and pings them before the
// producer is handed out. A nil tlsConfig keeps the connection plain.
func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string, tlsConfig *tls.Config,
) ProducerOpt {
	return func(opts *producerOpts) error {
		clOpts := []kgo.Opt{
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		}
		if tlsConfig != nil {
			clOpts = append(clOpts, kgo.DialTLSConfig(tlsConfig))
		}

		cl, err := kgo.NewClient(clOpts...)
		if err != nil {
			return err
		}

		retryCfg := retry.RetryConfig{
			MaxAttempts: pingAttempts,
			Backoff:     retry.LineareBackoff(pingDelay),
		}
		err = retry.Do(ctx, retryCfg, func() error {
			return cl.Ping(ctx)
		})
		if err != nil {
			cl.Close()
			return err
		}

		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}
