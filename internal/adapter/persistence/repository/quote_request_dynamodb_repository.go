package repository

import (
	"context"
	"strconv"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultQuoteRequestsTableName = "quote_requests"
	QuoteRequestsProjectIndex     = "project_id-index"
)

type addressItem struct {
	Street  string `dynamodbav:"street,omitempty"`
	City    string `dynamodbav:"city,omitempty"`
	Region  string `dynamodbav:"region,omitempty"`
	Country string `dynamodbav:"country,omitempty"`
	Postal  string `dynamodbav:"postal,omitempty"`
}

type matchedVendorItem struct {
	UserEmail   string `dynamodbav:"user_email"`
	CompanyName string `dynamodbav:"company_name"`
}

type vendorQuoteItem struct {
	VendorServiceID    string  `dynamodbav:"vendor_service_id,omitempty"`
	UserEmail          string  `dynamodbav:"user_email"`
	CompanyName        string  `dynamodbav:"company_name"`
	ContactEmail       string  `dynamodbav:"contact_email,omitempty"`
	CompanyDescription string  `dynamodbav:"company_description,omitempty"`
	BaseRatePerSF      float64 `dynamodbav:"base_rate_per_sf"`
	FinalRatePerSF     float64 `dynamodbav:"final_rate_per_sf"`
	Total              float64 `dynamodbav:"total"`
	LeadTime           string  `dynamodbav:"lead_time,omitempty"`
	Explanation        string  `dynamodbav:"explanation,omitempty"`
}

type priceRangeItem struct {
	Low  float64 `dynamodbav:"low"`
	High float64 `dynamodbav:"high"`
}

type benchmarkItem struct {
	SegmentID     string         `dynamodbav:"segment_id"`
	SegmentName   string         `dynamodbav:"segment_name"`
	BenchmarkUnit string         `dynamodbav:"benchmark_unit"`
	RangePerSF    priceRangeItem `dynamodbav:"range_per_sf"`
	RangeTotal    priceRangeItem `dynamodbav:"range_total"`
	ProjectSqft   float64        `dynamodbav:"project_sqft"`
	Notes         string         `dynamodbav:"notes,omitempty"`
}

type quoteRequestItem struct {
	ID                string              `dynamodbav:"id"`
	ProjectID         string              `dynamodbav:"project_id"`
	ChatID            string              `dynamodbav:"chat_id,omitempty"`
	RequestedByUserID string              `dynamodbav:"requested_by_user_id"`
	Segment           string              `dynamodbav:"segment"`
	ProjectSqft       float64             `dynamodbav:"project_sqft"`
	Options           map[string]any      `dynamodbav:"options,omitempty"`
	AddressSnapshot   addressItem         `dynamodbav:"address_snapshot"`
	Status            string              `dynamodbav:"status"`
	MatchedVendors    []matchedVendorItem `dynamodbav:"matched_vendors,omitempty"`
	VendorQuotes      []vendorQuoteItem   `dynamodbav:"vendor_quotes,omitempty"`
	Benchmark         *benchmarkItem      `dynamodbav:"iivy_benchmark,omitempty"`
	ErrorMessage      string              `dynamodbav:"error_message,omitempty"`
	CreatedAt         string              `dynamodbav:"created_at"`
	UpdatedAt         string              `dynamodbav:"updated_at"`
	CompletedAt       string              `dynamodbav:"completed_at,omitempty"`
}

// QuoteRequestDynamoRepository persists QuoteRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id, SK: created_at)
//
// Status updates carry a condition on the current status, so a request can
// never move backwards or leave a terminal state.
type QuoteRequestDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb DynamoAPI, tableName string) *QuoteRequestDynamoRepository {
	return &QuoteRequestDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultQuoteRequestsTableName),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	av, err := attributevalue.MarshalMap(toQuoteRequestItem(q))
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

// ListByProjectID returns the project's requests, newest first.
func (r *QuoteRequestDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.QuoteRequest, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(QuoteRequestsProjectIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuoteRequest, 0, len(raw))
	for _, av := range raw {
		var it quoteRequestItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteRequestItem(it))
	}
	return items, nil
}

func (r *QuoteRequestDynamoRepository) MarkGeneratingQuotes(ctx context.Context, id string, matched []entities.MatchedVendor) error {
	mv, err := attributevalue.Marshal(toMatchedVendorItems(matched))
	if err != nil {
		return err
	}
	return r.transition(ctx, id,
		[]entities.QuoteRequestStatus{entities.QuoteStatusMatchingVendors},
		entities.QuoteStatusGeneratingQuotes,
		"#matched_vendors = :matched_vendors",
		map[string]types.AttributeValue{":matched_vendors": mv},
		map[string]string{"#matched_vendors": "matched_vendors"},
	)
}

func (r *QuoteRequestDynamoRepository) MarkCompleted(ctx context.Context, id string, quotes []entities.VendorQuote, benchmark entities.BenchmarkResult, completedAt time.Time) error {
	vq, err := attributevalue.Marshal(toVendorQuoteItems(quotes))
	if err != nil {
		return err
	}
	bm, err := attributevalue.Marshal(toBenchmarkItem(benchmark))
	if err != nil {
		return err
	}
	return r.transition(ctx, id,
		[]entities.QuoteRequestStatus{entities.QuoteStatusGeneratingQuotes},
		entities.QuoteStatusCompleted,
		"#vendor_quotes = :vendor_quotes, #benchmark = :benchmark, #completed_at = :completed_at",
		map[string]types.AttributeValue{
			":vendor_quotes": vq,
			":benchmark":     bm,
			":completed_at":  &types.AttributeValueMemberS{Value: formatTime(completedAt)},
		},
		map[string]string{
			"#vendor_quotes": "vendor_quotes",
			"#benchmark":     "iivy_benchmark",
			"#completed_at":  "completed_at",
		},
	)
}

func (r *QuoteRequestDynamoRepository) MarkFailed(ctx context.Context, id string, message string) error {
	return r.transition(ctx, id,
		[]entities.QuoteRequestStatus{entities.QuoteStatusMatchingVendors, entities.QuoteStatusGeneratingQuotes},
		entities.QuoteStatusFailed,
		"#error_message = :error_message",
		map[string]types.AttributeValue{":error_message": &types.AttributeValueMemberS{Value: message}},
		map[string]string{"#error_message": "error_message"},
	)
}

// transition sets status to `to` only when the stored status is one of from.
func (r *QuoteRequestDynamoRepository) transition(
	ctx context.Context,
	id string,
	from []entities.QuoteRequestStatus,
	to entities.QuoteRequestStatus,
	setExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) error {
	vals := map[string]types.AttributeValue{
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
	}
	for k, v := range values {
		vals[k] = v
	}
	cond := "attribute_exists(#id) AND #status IN ("
	for i, s := range from {
		key := ":from" + strconv.Itoa(i)
		vals[key] = &types.AttributeValueMemberS{Value: string(s)}
		if i > 0 {
			cond += ", "
		}
		cond += key
	}
	cond += ")"

	update := "SET #status = :to, #updated_at = :updated_at"
	if setExpr != "" {
		update += ", " + setExpr
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(update),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		}),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return interfaces.ErrTransitionRejected
		}
		return err
	}
	return nil
}

func toMatchedVendorItems(in []entities.MatchedVendor) []matchedVendorItem {
	out := make([]matchedVendorItem, 0, len(in))
	for _, m := range in {
		out = append(out, matchedVendorItem{UserEmail: m.UserEmail, CompanyName: m.CompanyName})
	}
	return out
}

func toVendorQuoteItems(in []entities.VendorQuote) []vendorQuoteItem {
	out := make([]vendorQuoteItem, 0, len(in))
	for _, q := range in {
		out = append(out, vendorQuoteItem(q))
	}
	return out
}

func toBenchmarkItem(b entities.BenchmarkResult) benchmarkItem {
	return benchmarkItem{
		SegmentID:     b.SegmentID,
		SegmentName:   b.SegmentName,
		BenchmarkUnit: b.BenchmarkUnit,
		RangePerSF:    priceRangeItem(b.RangePerSF),
		RangeTotal:    priceRangeItem(b.RangeTotal),
		ProjectSqft:   b.ProjectSqft,
		Notes:         b.Notes,
	}
}

func toQuoteRequestItem(q entities.QuoteRequest) quoteRequestItem {
	it := quoteRequestItem{
		ID:                q.ID,
		ProjectID:         q.ProjectID,
		ChatID:            q.ChatID,
		RequestedByUserID: q.RequestedByUserID,
		Segment:           q.Segment,
		ProjectSqft:       q.ProjectSqft,
		Options:           q.Options,
		AddressSnapshot:   addressItem(q.AddressSnapshot),
		Status:            string(q.Status),
		ErrorMessage:      q.ErrorMessage,
		CreatedAt:         formatTime(q.CreatedAt),
		UpdatedAt:         formatTime(q.UpdatedAt),
	}
	if len(q.MatchedVendors) > 0 {
		it.MatchedVendors = toMatchedVendorItems(q.MatchedVendors)
	}
	if len(q.VendorQuotes) > 0 {
		it.VendorQuotes = toVendorQuoteItems(q.VendorQuotes)
	}
	if q.Benchmark != nil {
		b := toBenchmarkItem(*q.Benchmark)
		it.Benchmark = &b
	}
	if q.CompletedAt != nil {
		it.CompletedAt = formatTime(*q.CompletedAt)
	}
	return it
}

func fromQuoteRequestItem(it quoteRequestItem) entities.QuoteRequest {
	q := entities.QuoteRequest{
		ID:                it.ID,
		ProjectID:         it.ProjectID,
		ChatID:            it.ChatID,
		RequestedByUserID: it.RequestedByUserID,
		Segment:           it.Segment,
		ProjectSqft:       it.ProjectSqft,
		Options:           it.Options,
		AddressSnapshot:   entities.Address(it.AddressSnapshot),
		Status:            entities.QuoteRequestStatus(it.Status),
		ErrorMessage:      it.ErrorMessage,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
		CompletedAt:       parseTimePtr(it.CompletedAt),
	}
	for _, m := range it.MatchedVendors {
		q.MatchedVendors = append(q.MatchedVendors, entities.MatchedVendor{UserEmail: m.UserEmail, CompanyName: m.CompanyName})
	}
	for _, v := range it.VendorQuotes {
		q.VendorQuotes = append(q.VendorQuotes, entities.VendorQuote(v))
	}
	if it.Benchmark != nil {
		b := entities.BenchmarkResult{
			SegmentID:     it.Benchmark.SegmentID,
			SegmentName:   it.Benchmark.SegmentName,
			BenchmarkUnit: it.Benchmark.BenchmarkUnit,
			RangePerSF:    entities.PriceRange(it.Benchmark.RangePerSF),
			RangeTotal:    entities.PriceRange(it.Benchmark.RangeTotal),
			ProjectSqft:   it.Benchmark.ProjectSqft,
			Notes:         it.Benchmark.Notes,
		}
		q.Benchmark = &b
	}
	return q
}
