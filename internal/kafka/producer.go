package kafka

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer interface {
	SendMessage(ctx context.Context, key []byte, value []byte) error
	Close() error
}

// KafkaProducer ships audit batches to the audit topic.
type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 100 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	log.Printf("Initialized Kafka producer for topic %q on brokers %v", topic, brokers)
	return &KafkaProducer{writer: writer}
}

func (p *KafkaProducer) SendMessage(ctx context.Context, key []byte, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write audit message: %w", err)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	log.Println("Closing Kafka producer")
	return p.writer.Close()
}

// ConsoleProducer prints audit batches instead of shipping them, for local
// runs without a broker.
type ConsoleProducer struct{}

func NewConsoleProducer() *ConsoleProducer {
	log.Println("Initialized console audit producer")
	return &ConsoleProducer{}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, key []byte, value []byte) error {
	select {
	case <-ctx.Done():
		log.Printf("AUDIT (CANCELLED): Key=[%s]", string(key))
		return ctx.Err()
	default:
		fmt.Printf("\n--- AUDIT (CONSOLE) ---\nKey: %s\nValue: %s\n--- END AUDIT ---\n", string(key), string(value))
		return nil
	}
}

func (p *ConsoleProducer) Close() error {
	log.Println("Closing console audit producer")
	return nil
}
