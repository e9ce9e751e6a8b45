package main

import (
	"context"
	"encoding/json"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"tajer-be/internal/audit"
	"tajer-be/internal/config"
)

const groupID = "ledger-audit-worker"

// auditworker tails the audit topic and prints a readable trail of every
// status change and ledger posting. It is the place to hang alerting or a
// warehouse sink later without touching the API server.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("KAFKA_BROKERS not set in environment")
	}

	log.Println("Starting audit worker...")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.KafkaBrokers,
		GroupID:        groupID,
		Topic:          cfg.KafkaTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		log.Println("Closing Kafka reader...")
		if err := r.Close(); err != nil {
			log.Printf("Error closing Kafka reader: %v", err)
		}
	}()

	log.Printf("Audit worker connected to topic '%s' on brokers %s",
		cfg.KafkaTopic, strings.Join(cfg.KafkaBrokers, ","))

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutdown signal received, stopping audit worker.")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					log.Println("Context cancelled, exiting message loop.")
					return
				}
				log.Printf("Error reading message: %v", err)
				time.Sleep(5 * time.Second)
				continue
			}

			var e audit.Event
			if err := json.Unmarshal(m.Value, &e); err != nil {
				log.Printf("Skipping malformed audit event at offset %d: %v", m.Offset, err)
				continue
			}

			switch e.Type {
			case audit.EventLedgerPosted:
				log.Printf("[%s] order=%s category=%s amount=%.2f note=%q",
					e.Type, e.OrderID, e.Category, e.Amount, e.Note)
			case audit.EventStatusChanged:
				log.Printf("[%s] order=%s status=%s", e.Type, e.OrderID, e.Status)
			default:
				log.Printf("[%s] order=%s", e.Type, e.OrderID)
			}
		}
	}
}
