package events

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"github.com/omigec/plateforme-api/internal/application/usecase"
	"github.com/omigec/plateforme-api/pkg/config"
	"github.com/omigec/plateforme-api/pkg/logger"
)

var _ usecase.Notifier = (*KafkaNotifier)(nil)

// NotificationEvent est le message publié sur le topic, consommé par le service mail.
type NotificationEvent struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// KafkaNotifier publie les notifications sur Kafka de façon asynchrone : l'appelant
// n'attend jamais le broker. Les échecs de publication sont journalisés, jamais propagés,
// le workflow métier ne dépend pas de la livraison.
type KafkaNotifier struct {
	writer *kafka.Writer
	log    *logger.Logger
	ch     chan NotificationEvent
}

// NewKafkaNotifier construit le producteur (SASL plain + TLS si identifiants fournis)
// et démarre le worker d'envoi.
func NewKafkaNotifier(cfg config.KafkaConfig, log *logger.Logger) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Broker),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 10 * time.Second,
	}
	if cfg.Username != "" {
		w.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: cfg.Username, Password: cfg.Password},
			TLS:  &tls.Config{},
		}
	}

	n := &KafkaNotifier{writer: w, log: log, ch: make(chan NotificationEvent, 256)}
	go n.run()
	return n
}

// Notify met l'événement en file. Si la file est pleine, l'événement est abandonné
// avec un warn : on ne bloque jamais le chemin requête.
func (n *KafkaNotifier) Notify(to, subject, message string) {
	ev := NotificationEvent{To: to, Subject: subject, Message: message, SentAt: time.Now()}
	select {
	case n.ch <- ev:
	default:
		n.log.Warn().Str("to", to).Str("subject", subject).Msg("file de notifications pleine, événement abandonné")
	}
}

func (n *KafkaNotifier) run() {
	for ev := range n.ch {
		b, err := json.Marshal(ev)
		if err != nil {
			n.log.Error().Err(err).Msg("sérialisation notification")
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err = n.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(ev.To),
			Value: b,
			Time:  ev.SentAt,
		})
		cancel()
		if err != nil {
			n.log.Error().Err(err).Str("to", ev.To).Str("subject", ev.Subject).Msg("publication notification échouée")
		}
	}
}

// Close arrête le worker et ferme le writer.
func (n *KafkaNotifier) Close() error {
	close(n.ch)
	return n.writer.Close()
}

var _ usecase.Notifier = (*LogNotifier)(nil)

// LogNotifier est le repli quand aucun broker n'est configuré : les notifications
// sont simplement journalisées. Utile en développement et dans les tests d'intégration.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(to, subject, message string) {
	n.log.Info().Str("to", to).Str("subject", subject).Str("message", message).Msg("notification (mode journal)")
}
