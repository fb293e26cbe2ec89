package usecase

import (
	"context"
	"io"
	"sync"

	"tradequote/internal/domain/entities"

	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type ledgerCall struct {
	QuoteRequestID string
	Project        entities.ProjectSnapshot
	Customer       entities.Customer
	Quotes         []entities.VendorQuote
}

// recordingLedger captures RecordImpressions calls and reports every quote as
// created.
type recordingLedger struct {
	mu    sync.Mutex
	calls []ledgerCall
}

func (l *recordingLedger) RecordImpressions(_ context.Context, id string, p entities.ProjectSnapshot, c entities.Customer, quotes []entities.VendorQuote) []entities.ImpressionOutcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, ledgerCall{QuoteRequestID: id, Project: p, Customer: c, Quotes: quotes})
	out := make([]entities.ImpressionOutcome, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, entities.ImpressionOutcome{VendorServiceID: q.VendorServiceID, VendorEmail: q.UserEmail, Result: entities.ImpressionCreated})
	}
	return out
}
