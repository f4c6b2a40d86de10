package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/visual-search/internal/cfg"
	"github.com/DRSN-tech/visual-search/internal/domain"
	drsnProto "github.com/DRSN-tech/visual-search/internal/proto"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
	"google.golang.org/protobuf/proto"
)

type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

func (p *Producer) WriteRawMessage(ctx context.Context, req *usecase.WriteRawMessageReq) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(req.Key),
		Value: req.Payload,
	})
}

// EncodeProductUpsert сериализует событие добавления/обновления продукта в каталоге.
func (p *Producer) EncodeProductUpsert(eventID string, productCode string, imageKey string, modelVersion string) ([]byte, error) {
	event := &drsnProto.CatalogChangeEvent{
		EventId:        eventID,
		EventTimestamp: time.Now().UnixNano(),
		EventType:      string(usecase.ProductUpserted),
		Upsert: &drsnProto.ProductUpsert{
			ProductCode:  productCode,
			ImageKey:     imageKey,
			ModelVersion: modelVersion,
		},
	}

	return proto.Marshal(event)
}

// EncodeIndexRebuild сериализует событие завершения пересборки индекса.
func (p *Producer) EncodeIndexRebuild(eventID string, report *domain.BuildReport) ([]byte, error) {
	event := &drsnProto.CatalogChangeEvent{
		EventId:        eventID,
		EventTimestamp: time.Now().UnixNano(),
		EventType:      string(usecase.IndexRebuilt),
		Rebuild: &drsnProto.IndexRebuild{
			Indexed:      int64(report.Indexed),
			Skipped:      report.Skipped,
			ModelVersion: report.ModelVersion,
		},
	}

	return proto.Marshal(event)
}

func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
