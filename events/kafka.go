package events

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	publishTimeout = 5 * time.Second
	queueSize      = 256
)

// KafkaSink mirrors every change event onto a Kafka topic, keyed by row ID so
// changes to the same item stay ordered within a partition. Writes happen on
// a background worker; Publish only enqueues, so broker trouble never stalls
// the request that produced the event.
type KafkaSink struct {
	writer *kafka.Writer
	queue  chan Event
	done   chan struct{}
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	s := &KafkaSink{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
		queue: make(chan Event, queueSize),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Publish implements Sink. Non-blocking: when the queue is full (the worker
// is stuck on an unreachable broker) the event is dropped and logged.
func (s *KafkaSink) Publish(ev Event) {
	select {
	case s.queue <- ev:
	default:
		log.Printf("kafka: queue full, dropping %s/%d", ev.Kind, ev.ID)
	}
}

func (s *KafkaSink) run() {
	defer close(s.done)
	for ev := range s.queue {
		s.write(ev)
	}
}

func (s *KafkaSink) write(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("kafka: marshal event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(ev.ID), 10)),
		Value: data,
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("kafka: publish %s/%d: %v", ev.Kind, ev.ID, err)
	}
}

// Close drains queued events and closes the writer.
func (s *KafkaSink) Close() error {
	close(s.queue)
	<-s.done
	return s.writer.Close()
}
