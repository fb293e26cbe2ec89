// Package pricing calls the LLM-backed quote generator of the AI backend.
package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const generateQuotesPath = "/api/generate_quotes"

type vendorPayload struct {
	VendorServiceID    string `json:"vendor_service_id"`
	UserEmail          string `json:"user_email"`
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description,omitempty"`
	PricingRules       string `json:"pricing_rules,omitempty"`
	LeadTime           string `json:"lead_time,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

type generateQuotesRequest struct {
	Segment     string          `json:"segment"`
	SegmentName string          `json:"segment_name"`
	ProjectSqft float64         `json:"project_sqft"`
	City        *string         `json:"city"`
	Region      string          `json:"region"`
	Country     string          `json:"country"`
	Options     map[string]any  `json:"options"`
	Vendors     []vendorPayload `json:"vendors"`
}

type generateQuotesResponse struct {
	VendorQuotes []entities.VendorQuote `json:"vendor_quotes"`
	Error        string                 `json:"error,omitempty"`
}

// AIBackendClient is the HTTP client of POST {base}/api/generate_quotes.
type AIBackendClient struct {
	baseURL string
	http    *http.Client
	log     logrus.FieldLogger
}

var _ interfaces.IPricingOracle = (*AIBackendClient)(nil)

// NewAIBackendClient builds a client whose transport timeout backs up the
// context deadline set by the caller.
func NewAIBackendClient(baseURL string, timeout time.Duration, log logrus.FieldLogger) *AIBackendClient {
	return &AIBackendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *AIBackendClient) GenerateQuotes(ctx context.Context, r interfaces.PricingRequest) ([]entities.VendorQuote, error) {
	body, err := json.Marshal(toGenerateQuotesRequest(r))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generateQuotesPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.WithFields(logrus.Fields{
		"segment": r.Segment,
		"vendors": len(r.Vendors),
	}).Info("[pricing][client] generating quotes")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("ai backend status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out generateQuotesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode ai backend response: %w", err)
	}
	if out.VendorQuotes == nil {
		out.VendorQuotes = []entities.VendorQuote{}
	}

	c.log.WithField("quotes", len(out.VendorQuotes)).Info("[pricing][client] quotes generated")
	return out.VendorQuotes, nil
}

func toGenerateQuotesRequest(r interfaces.PricingRequest) generateQuotesRequest {
	var city *string
	if c := strings.TrimSpace(r.City); c != "" {
		city = &c
	}
	options := r.Options
	if options == nil {
		options = map[string]any{}
	}

	vendors := make([]vendorPayload, 0, len(r.Vendors))
	for _, v := range r.Vendors {
		vendors = append(vendors, vendorPayload{
			VendorServiceID:    v.ID,
			UserEmail:          v.UserEmail,
			CompanyName:        v.CompanyName,
			CompanyDescription: v.CompanyDescription,
			PricingRules:       v.PricingRules,
			LeadTime:           v.LeadTime,
			Notes:              v.Notes,
		})
	}

	return generateQuotesRequest{
		Segment:     r.Segment,
		SegmentName: r.SegmentName,
		ProjectSqft: r.ProjectSqft,
		City:        city,
		Region:      r.Region,
		Country:     r.Country,
		Options:     options,
		Vendors:     vendors,
	}
}
