package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reportID uuid.UUID
	err      error
	dates    []string
}

func (g *fakeGenerator) GenerateDailyReport(_ context.Context, date string) (uuid.UUID, error) {
	g.dates = append(g.dates, date)
	return g.reportID, g.err
}

type fakeSender struct {
	err   error
	calls []string
}

func (s *fakeSender) SendDailyReport(_ context.Context, reportID uuid.UUID, email string) error {
	s.calls = append(s.calls, reportID.String()+"|"+email)
	return s.err
}

var (
	_ ReportGenerator = (*fakeGenerator)(nil)
	_ ReportSender    = (*fakeSender)(nil)
)

func TestReportWorkerProcess(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{reportID: uuid.New()}
	w := NewReportWorker(gen, nil, "") // no delivery address configured

	payload, _ := json.Marshal(ReportJobPayload{Date: "2026-08-30"})
	require.NoError(t, w.Process(ctx, payload))
	assert.Equal(t, []string{"2026-08-30"}, gen.dates)
}

func TestReportWorkerRejectsBadPayload(t *testing.T) {
	ctx := context.Background()
	w := NewReportWorker(&fakeGenerator{}, nil, "")

	assert.Error(t, w.Process(ctx, json.RawMessage(`{invalid`)))
	assert.Error(t, w.Process(ctx, json.RawMessage(`{}`)), "empty date must fail")
}

func TestReportWorkerNoClosedSession(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{reportID: uuid.Nil}
	w := NewReportWorker(gen, nil, "")

	payload, _ := json.Marshal(ReportJobPayload{Date: "2026-08-30"})
	assert.NoError(t, w.Process(ctx, payload), "nothing to report is not a failure")
}

func TestReportWorkerGenerationFailure(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{err: errors.New("db down")}
	w := NewReportWorker(gen, nil, "")

	payload, _ := json.Marshal(ReportJobPayload{Date: "2026-08-30"})
	assert.Error(t, w.Process(ctx, payload))
}

func TestEmailWorkerProcess(t *testing.T) {
	ctx := context.Background()
	sender := &fakeSender{}
	w := NewEmailWorker(sender)
	reportID := uuid.New()

	payload, _ := json.Marshal(EmailJobPayload{ReportID: reportID.String(), Email: "dueno@saborovejero.co"})
	require.NoError(t, w.Process(ctx, payload))
	assert.Equal(t, []string{reportID.String() + "|dueno@saborovejero.co"}, sender.calls)
}

func TestEmailWorkerSkipsEmptyEmail(t *testing.T) {
	ctx := context.Background()
	sender := &fakeSender{}
	w := NewEmailWorker(sender)

	payload, _ := json.Marshal(EmailJobPayload{ReportID: uuid.New().String()})
	require.NoError(t, w.Process(ctx, payload))
	assert.Empty(t, sender.calls)
}

func TestEmailWorkerRejectsBadReportID(t *testing.T) {
	ctx := context.Background()
	w := NewEmailWorker(&fakeSender{})

	payload, _ := json.Marshal(EmailJobPayload{ReportID: "no-es-uuid", Email: "dueno@saborovejero.co"})
	assert.Error(t, w.Process(ctx, payload))
}
