package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultRetryIntervals is the delivery schedule after the first attempt.
var DefaultRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// SignatureHeader carries the HMAC-SHA256 of the request body.
const SignatureHeader = "X-CTE-Signature"

// WebhookPayload is the JSON body POSTed to the subscriber.
type WebhookPayload struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	Signature string          `json:"signature"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NotifierService implements ports.EventPublisher by delivering signed
// webhooks to a single configured subscriber.
type NotifierService struct {
	url        string
	secret     string
	sigSvc     ports.SignatureService
	deliveries ports.DeliveryRepository
	httpClient HTTPClient
	intervals  []time.Duration
	log        zerolog.Logger
}

// NewNotifierService creates a new notifier. An empty url disables delivery;
// a nil deliveries repository skips persistence of delivery outcomes.
func NewNotifierService(
	url string,
	secret string,
	sigSvc ports.SignatureService,
	deliveries ports.DeliveryRepository,
	httpClient HTTPClient,
	log zerolog.Logger,
) *NotifierService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &NotifierService{
		url:        url,
		secret:     secret,
		sigSvc:     sigSvc,
		deliveries: deliveries,
		httpClient: httpClient,
		intervals:  DefaultRetryIntervals,
		log:        log,
	}
}

// WithRetryIntervals overrides the retry schedule.
func (s *NotifierService) WithRetryIntervals(intervals []time.Duration) *NotifierService {
	s.intervals = intervals
	return s
}

// Enabled reports whether a subscriber is configured.
func (s *NotifierService) Enabled() bool {
	return s.url != ""
}

// Publish signs the event and delivers it asynchronously with retries.
func (s *NotifierService) Publish(ctx context.Context, eventType domain.EventType, data interface{}) {
	if !s.Enabled() {
		return
	}

	payload, err := s.buildPayload(uuid.New(), eventType, data, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Str("event_type", string(eventType)).Msg("webhook: failed to build payload")
		return
	}

	go s.deliverWithRetries(payload)
}

func (s *NotifierService) buildPayload(id uuid.UUID, eventType domain.EventType, data interface{}, at time.Time) (WebhookPayload, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return WebhookPayload{}, fmt.Errorf("marshal event data: %w", err)
	}
	return WebhookPayload{
		EventID:   id.String(),
		EventType: string(eventType),
		Data:      dataBytes,
		Timestamp: at.Unix(),
		Signature: s.sigSvc.Sign(s.secret, string(dataBytes)),
	}, nil
}

// deliverWithRetries attempts delivery once plus once per retry interval.
func (s *NotifierService) deliverWithRetries(payload WebhookPayload) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Str("event_id", payload.EventID).Msg("webhook: failed to marshal payload")
		return
	}

	eventID, _ := uuid.Parse(payload.EventID)
	delivery := &domain.EventDelivery{
		EventID:   eventID,
		EventType: domain.EventType(payload.EventType),
		URL:       s.url,
		Status:    domain.DeliveryStatusPending,
		UpdatedAt: time.Now().UTC(),
	}
	s.record(delivery, true)

	for attempt := 0; attempt <= len(s.intervals); attempt++ {
		if attempt > 0 {
			time.Sleep(s.intervals[attempt-1])
		}
		delivery.Attempt = attempt + 1

		status, err := s.post(payloadBytes, payload.Signature)
		if err != nil {
			msg := err.Error()
			delivery.LastError = &msg
			s.log.Warn().Err(err).Str("event_id", payload.EventID).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		delivery.HTTPStatus = &status

		if status >= 200 && status < 300 {
			delivery.Status = domain.DeliveryStatusDelivered
			delivery.LastError = nil
			delivery.UpdatedAt = time.Now().UTC()
			s.record(delivery, false)
			s.log.Info().Str("event_id", payload.EventID).Int("attempt", attempt+1).Int("status", status).Msg("webhook: delivered successfully")
			return
		}

		msg := fmt.Sprintf("non-2xx response: %d", status)
		delivery.LastError = &msg
		s.log.Warn().Str("event_id", payload.EventID).Int("attempt", attempt+1).Int("status", status).Msg("webhook: non-2xx response, retrying")
	}

	delivery.Status = domain.DeliveryStatusFailed
	delivery.UpdatedAt = time.Now().UTC()
	s.record(delivery, false)
	s.log.Error().Str("event_id", payload.EventID).Msg("webhook: all retry attempts exhausted")
}

func (s *NotifierService) post(body []byte, signature string) (int, error) {
	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, signature)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	if resp.Body != nil {
		resp.Body.Close()
	}
	return resp.StatusCode, nil
}

func (s *NotifierService) record(d *domain.EventDelivery, create bool) {
	if s.deliveries == nil {
		return
	}
	var err error
	if create {
		err = s.deliveries.Create(context.Background(), d)
	} else {
		err = s.deliveries.Update(context.Background(), d)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("event_id", d.EventID.String()).Msg("webhook: failed to persist delivery")
	}
}

// noopPublisher drops every event.
type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, domain.EventType, interface{}) {}
