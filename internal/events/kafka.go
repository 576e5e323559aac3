package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const kafkaTopicHeader = "topic"

// KafkaPublisher writes every event to one Kafka topic. The logical topic is
// carried in the message key and a header so consumers can filter.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           50 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(topic),
		Value:   data,
		Headers: []kafka.Header{{Key: kafkaTopicHeader, Value: []byte(topic)}},
	})
	if err != nil {
		return fmt.Errorf("writing to kafka: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// KafkaSubscriber consumes the shared topic as part of a consumer group.
type KafkaSubscriber struct {
	brokers []string
	topic   string
	groupID string
}

func NewKafkaSubscriber(brokers []string, topic, groupID string) *KafkaSubscriber {
	return &KafkaSubscriber{brokers: brokers, topic: topic, groupID: groupID}
}

func (s *KafkaSubscriber) Subscribe(pattern string) (<-chan []byte, func(), error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  s.brokers,
		Topic:    s.topic,
		GroupID:  s.groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})

	ctx, stop := context.WithCancel(context.Background())
	ch := make(chan []byte, 64)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(ch)
		for {
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
					return
				}
				log.Error().Err(err).Str("topic", s.topic).Msg("❌ Kafka read failed")
				select {
				case <-ctx.Done():
					return
				case <-time.After(time.Second):
				}
				continue
			}
			if !MatchTopic(pattern, messageTopic(msg)) {
				continue
			}
			select {
			case ch <- msg.Value:
			case <-ctx.Done():
				return
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			stop()
			<-done
			if err := reader.Close(); err != nil {
				log.Warn().Err(err).Msg("⚠️ Kafka reader close failed")
			}
		})
	}
	return ch, cancel, nil
}

func (s *KafkaSubscriber) Close() error {
	return nil
}

func messageTopic(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == kafkaTopicHeader {
			return string(h.Value)
		}
	}
	return string(msg.Key)
}
