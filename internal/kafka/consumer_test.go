package kafka

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/kafka/mocks"
	"github.com/Gunvolt24/wb_catalog/pkg/sku"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func newTestRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

func newTestConsumer(r reader, s messageSaver) *Consumer {
	c := newConsumer(r, ConsumerConfig{
		ProcessTimeout: 30 * time.Millisecond,
		RetryInitial:   5 * time.Millisecond,
		RetryMax:       10 * time.Millisecond,
	}, s, nopLogger{})
	c.backoff.rnd = newTestRand()
	return c
}

// expectBlockingFetch — следующий FetchMessage ждёт отмены контекста.
func expectBlockingFetch(r *mocks.Mockreader) {
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})
}

// runBriefly — запустить Run, дать отработать первому сообщению и остановить.
func runBriefly(t *testing.T, c *Consumer) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

func newReader(ctrl *gomock.Controller) *mocks.Mockreader {
	r := mocks.NewMockreader(ctrl)
	r.EXPECT().Config().
		Return(kafka.ReaderConfig{Topic: "products", GroupID: "catalog", Brokers: []string{"b:9092"}}).
		AnyTimes()
	return r
}

func TestRun_Saved_Commits(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newReader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	msg := kafka.Message{Offset: 1, Key: []byte("AA_1"), Value: []byte(`{"sku":"AA_1"}`)}
	r.EXPECT().FetchMessage(gomock.Any()).Return(msg, nil)
	s.EXPECT().SaveFromMessage(gomock.Any(), msg.Value).Return(nil)
	r.EXPECT().CommitMessages(gomock.Any(), msg).Return(nil)
	expectBlockingFetch(r)

	runBriefly(t, newTestConsumer(r, s))
}

// Отвергнутый товар коммитится, чтобы не перечитывать его вечно.
func TestRun_RejectedProduct_Commits(t *testing.T) {
	rejections := []error{
		fmt.Errorf("%w: invalid json", domain.ErrInvalidProduct),
		fmt.Errorf("%w: %w", domain.ErrInvalidProduct, &sku.BadPrefixError{SKU: "BB_1", Expected: "AA_"}),
		fmt.Errorf("%w: %w", domain.ErrInvalidProduct, domain.ErrDuplicateSKU),
		fmt.Errorf("%w: %w", domain.ErrInvalidProduct, domain.ErrMerchantNotFound),
	}

	for _, rejection := range rejections {
		t.Run(rejection.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := newReader(ctrl)
			s := mocks.NewMockmessageSaver(ctrl)

			r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 7, Value: []byte("bad")}, nil)
			s.EXPECT().SaveFromMessage(gomock.Any(), []byte("bad")).Return(rejection)
			r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
			expectBlockingFetch(r)

			runBriefly(t, newTestConsumer(r, s))
		})
	}
}

// Временная ошибка (БД, сеть, таймаут): коммита нет, сообщение будет перечитано.
func TestRun_TransientFailure_NoCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newReader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 2, Value: []byte("x")}, nil)
	s.EXPECT().SaveFromMessage(gomock.Any(), []byte("x")).Return(errors.New("db down"))
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Times(0)
	expectBlockingFetch(r)

	runBriefly(t, newTestConsumer(r, s))
}

func TestRun_ProcessTimeoutApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newReader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 3, Value: []byte("slow")}, nil)
	s.EXPECT().SaveFromMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []byte) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("processing context must carry a deadline")
			}
			return nil
		})
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
	expectBlockingFetch(r)

	runBriefly(t, newTestConsumer(r, s))
}

func TestRun_FetchError_RetryThenStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newReader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{}, errors.New("broker error")).
		MinTimes(2)

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	if err := newTestConsumer(r, s).Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
}

// Ошибка коммита только логируется; цикл продолжается.
func TestRun_CommitErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newReader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Offset: 4, Value: []byte("ok")}, nil)
	s.EXPECT().SaveFromMessage(gomock.Any(), []byte("ok")).Return(nil)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(errors.New("rebalance"))
	expectBlockingFetch(r)

	runBriefly(t, newTestConsumer(r, s))
}

func TestClose_Once(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockmessageSaver(ctrl)

	r.EXPECT().Close().Return(nil).Times(1)

	c := newTestConsumer(r, s)
	if err := c.Close(); err != nil {
		t.Fatalf("expected nil from Close, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close must be a no-op, got %v", err)
	}
}
