// Package notifications delivers vendor lead emails through Resend.
package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"tradequote/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
)

// EmailSender is the subset of resend.EmailsSvc the gateway uses.
type EmailSender interface {
	SendWithOptions(ctx context.Context, params *resend.SendEmailRequest, options *resend.SendEmailOptions) (*resend.SendEmailResponse, error)
}

// ResendGateway sends one email per call and never retries; a failed send is
// reported to the ledger, which records it on the impression.
type ResendGateway struct {
	emails EmailSender
	from   string
	appURL string
	log    logrus.FieldLogger
	now    func() time.Time
}

var _ interfaces.INotificationGateway = (*ResendGateway)(nil)

// NewResendGateway returns a gateway that reports DeliveryDisabled when no API
// key is configured.
func NewResendGateway(apiKey, from, appURL string, log logrus.FieldLogger) *ResendGateway {
	g := &ResendGateway{from: from, appURL: strings.TrimRight(appURL, "/"), log: log, now: time.Now}
	if strings.TrimSpace(apiKey) != "" {
		g.emails = resend.NewClient(apiKey).Emails
	} else {
		log.Warn("[notifications][resend] RESEND_API_KEY not set; lead emails disabled")
	}
	return g
}

func (g *ResendGateway) NotifyVendorLead(ctx context.Context, n interfaces.LeadNotification) (interfaces.DeliveryReceipt, error) {
	log := g.log.WithFields(logrus.Fields{
		"vendor_email":   n.VendorEmail,
		"impression_key": n.ImpressionKey,
	})
	if g.emails == nil {
		log.Warn("[notifications][resend] email not sent (disabled)")
		return interfaces.DeliveryReceipt{Status: interfaces.DeliveryDisabled}, nil
	}

	html, err := renderLeadHTML(n, g.appURL)
	if err != nil {
		return interfaces.DeliveryReceipt{Status: interfaces.DeliveryFailed}, err
	}

	req := &resend.SendEmailRequest{
		From:    g.from,
		To:      []string{n.VendorEmail},
		Subject: LeadSubject(n),
		Html:    html,
		Text:    renderLeadText(n, g.appURL),
	}
	// The SDK dereferences options, so it is never nil.
	opts := &resend.SendEmailOptions{}
	if n.ImpressionKey != "" {
		opts.IdempotencyKey = "lead/" + n.ImpressionKey
	}

	sent, err := g.emails.SendWithOptions(ctx, req, opts)
	if err != nil {
		log.WithError(err).Error("[notifications][resend] failed to send lead notification")
		return interfaces.DeliveryReceipt{Status: interfaces.DeliveryFailed}, err
	}

	receipt := interfaces.DeliveryReceipt{Status: interfaces.DeliveryDelivered, SentAt: g.now().UTC()}
	if sent != nil {
		receipt.MessageID = sent.Id
	}
	log.WithField("message_id", receipt.MessageID).Info("[notifications][resend] lead notification sent")
	return receipt, nil
}

// LeadSubject is "New Lead: {segment} in {city}", where city is the first
// part of the project location.
func LeadSubject(n interfaces.LeadNotification) string {
	city := strings.TrimSpace(strings.Split(n.ProjectLocation, ",")[0])
	if city == "" {
		city = "your area"
	}
	return fmt.Sprintf("New Lead: %s in %s", n.SegmentName, city)
}

type leadView struct {
	interfaces.LeadNotification
	CustomerLabel string
	Sqft          string
	Rate          string
	Total         string
	DashboardURL  string
}

func newLeadView(n interfaces.LeadNotification, appURL string) leadView {
	label := strings.TrimSpace(n.CustomerName)
	if label == "" {
		label = "Project Owner"
	}
	return leadView{
		LeadNotification: n,
		CustomerLabel:    label,
		Sqft:             groupThousands(fmt.Sprintf("%.0f", n.ProjectSqft)),
		Rate:             fmt.Sprintf("$%.2f/sqft", n.QuotedRate),
		Total:            "$" + groupThousands(fmt.Sprintf("%.2f", n.QuotedTotal)),
		DashboardURL:     appURL + "/vendor/leads",
	}
}

var leadHTML = template.Must(template.New("lead").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif;">
  <h1>New Lead for {{.VendorCompanyName}}</h1>
  <p>Your quote was just viewed by a potential customer.</p>
  <h2>Project Details</h2>
  <table>
    <tr><td>Service:</td><td>{{.SegmentName}}</td></tr>
    <tr><td>Project Size:</td><td>{{.Sqft}} sqft</td></tr>
    <tr><td>Location:</td><td>{{.ProjectLocation}}</td></tr>
    <tr><td>Project Name:</td><td>{{.ProjectName}}</td></tr>
    {{- if .AdditionalRequirements}}
    <tr><td>Requirements:</td><td>{{.AdditionalRequirements}}</td></tr>
    {{- end}}
  </table>
  <h2>Your Quote</h2>
  <table>
    <tr><td>Rate:</td><td>{{.Rate}}</td></tr>
    <tr><td>Total Estimate:</td><td>{{.Total}}</td></tr>
  </table>
  <h2>Customer Contact</h2>
  <p>{{.CustomerLabel}}<br><a href="mailto:{{.CustomerEmail}}">{{.CustomerEmail}}</a></p>
  <p><a href="{{.DashboardURL}}">View your leads</a></p>
</body>
</html>`))

func renderLeadHTML(n interfaces.LeadNotification, appURL string) (string, error) {
	var buf bytes.Buffer
	if err := leadHTML.Execute(&buf, newLeadView(n, appURL)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderLeadText(n interfaces.LeadNotification, appURL string) string {
	v := newLeadView(n, appURL)
	var b strings.Builder
	fmt.Fprintf(&b, "New Lead for %s\n\n", v.VendorCompanyName)
	fmt.Fprintf(&b, "Service: %s\nProject Size: %s sqft\nLocation: %s\nProject Name: %s\n", v.SegmentName, v.Sqft, v.ProjectLocation, v.ProjectName)
	if v.AdditionalRequirements != "" {
		fmt.Fprintf(&b, "Requirements: %s\n", v.AdditionalRequirements)
	}
	fmt.Fprintf(&b, "\nRate: %s\nTotal Estimate: %s\n", v.Rate, v.Total)
	fmt.Fprintf(&b, "\nCustomer: %s <%s>\n\n%s\n", v.CustomerLabel, v.CustomerEmail, v.DashboardURL)
	return b.String()
}

// groupThousands inserts commas into the integer part of a formatted number.
func groupThousands(s string) string {
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
