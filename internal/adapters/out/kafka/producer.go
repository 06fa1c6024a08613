// Package kafka publishes notification events to a Kafka topic so other
// systems, such as a push gateway or an analytics pipeline, can react to
// order progress. It decorates another notifier rather than replacing
// it: the wrapped notifier still reaches the customer directly.
package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

// SaramaProducer is a thin wrapper over a synchronous sarama producer.
type SaramaProducer struct {
	producer sarama.SyncProducer
}

// NewSaramaProducer connects a synchronous producer to the given brokers.
func NewSaramaProducer(brokers []string) (*SaramaProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &SaramaProducer{producer: producer}, nil
}

// Publish sends one message to topic and waits for broker acknowledgement.
func (p *SaramaProducer) Publish(topic string, message []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(message),
	}

	_, _, err := p.producer.SendMessage(msg)
	return err
}

// Close shuts the underlying producer down.
func (p *SaramaProducer) Close() error {
	return p.producer.Close()
}
