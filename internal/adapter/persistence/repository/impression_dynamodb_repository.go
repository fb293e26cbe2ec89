package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultImpressionsTableName = "quote_impressions"
	ImpressionsVendorIndex      = "vendor_email-index"
)

type impressionItem struct {
	DedupKey          string  `dynamodbav:"dedup_key"`
	ID                string  `dynamodbav:"id"`
	QuoteRequestID    string  `dynamodbav:"quote_request_id"`
	ProjectID         string  `dynamodbav:"project_id"`
	Segment           string  `dynamodbav:"segment"`
	VendorServiceID   string  `dynamodbav:"vendor_service_id"`
	VendorEmail       string  `dynamodbav:"vendor_email"`
	VendorCompanyName string  `dynamodbav:"vendor_company_name"`
	CustomerUserID    string  `dynamodbav:"customer_user_id"`
	CustomerEmail     string  `dynamodbav:"customer_email"`
	CustomerName      string  `dynamodbav:"customer_name,omitempty"`
	ProjectName       string  `dynamodbav:"project_name"`
	ProjectLocation   string  `dynamodbav:"project_location"`
	ProjectSqft       float64 `dynamodbav:"project_sqft"`
	QuotedRatePerSF   float64 `dynamodbav:"quoted_rate_per_sf"`
	QuotedTotal       float64 `dynamodbav:"quoted_total"`
	AmountCharged     string  `dynamodbav:"amount_charged"`
	BillingStatus     string  `dynamodbav:"billing_status"`
	EmailStatus       string  `dynamodbav:"email_status"`
	EmailSentAt       string  `dynamodbav:"email_sent_at,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
}

// ImpressionDynamoRepository persists QuoteImpression entities in DynamoDB.
//
// Table requirements:
//   - PK: dedup_key (string) = project_id#segment#vendor_service_id
//   - GSI: vendor_email-index (PK: vendor_email, SK: created_at)
//
// The partition key is the billing uniqueness key, so the conditional put in
// InsertIfAbsent is the only thing standing between a vendor and a double charge.
type ImpressionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IImpressionRepository = (*ImpressionDynamoRepository)(nil)

func NewImpressionDynamoRepository(ddb DynamoAPI, tableName string) *ImpressionDynamoRepository {
	return &ImpressionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultImpressionsTableName),
	}
}

func (r *ImpressionDynamoRepository) InsertIfAbsent(ctx context.Context, imp entities.QuoteImpression) (entities.InsertResult, error) {
	av, err := attributevalue.MarshalMap(toImpressionItem(imp))
	if err != nil {
		return "", err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#dedup_key)"),
		ExpressionAttributeNames: map[string]string{
			"#dedup_key": "dedup_key",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.InsertAlreadyExists, nil
		}
		return "", err
	}
	return entities.InsertCreated, nil
}

func (r *ImpressionDynamoRepository) UpdateNotificationStatus(ctx context.Context, dedupKey string, status entities.NotificationStatus, sentAt *time.Time) error {
	update := "SET #email_status = :email_status"
	vals := map[string]types.AttributeValue{
		":email_status": &types.AttributeValueMemberS{Value: string(status)},
	}
	names := map[string]string{
		"#dedup_key":    "dedup_key",
		"#email_status": "email_status",
	}
	if sentAt != nil {
		update += ", #email_sent_at = :email_sent_at"
		vals[":email_sent_at"] = &types.AttributeValueMemberS{Value: formatTime(*sentAt)}
		names["#email_sent_at"] = "email_sent_at"
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       dedupKeyAttr(dedupKey),
		ConditionExpression:       aws.String("attribute_exists(#dedup_key)"),
		UpdateExpression:          aws.String(update),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
	})
	return err
}

// UpdateBillingStatus moves an impression to `to` when its current status is
// one of from. It reports false when the condition did not hold.
func (r *ImpressionDynamoRepository) UpdateBillingStatus(ctx context.Context, dedupKey string, from []entities.BillingStatus, to entities.BillingStatus) (bool, error) {
	if len(from) == 0 {
		return false, nil
	}
	vals := map[string]types.AttributeValue{
		":to": &types.AttributeValueMemberS{Value: string(to)},
	}
	keys := make([]string, 0, len(from))
	for i, s := range from {
		k := ":from" + strconv.Itoa(i)
		vals[k] = &types.AttributeValueMemberS{Value: string(s)}
		keys = append(keys, k)
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       dedupKeyAttr(dedupKey),
		ConditionExpression:       aws.String("attribute_exists(#dedup_key) AND #billing_status IN (" + strings.Join(keys, ", ") + ")"),
		UpdateExpression:          aws.String("SET #billing_status = :to"),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames: map[string]string{
			"#dedup_key":      "dedup_key",
			"#billing_status": "billing_status",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ImpressionDynamoRepository) ListByVendorEmail(ctx context.Context, vendorEmail string) ([]entities.QuoteImpression, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ImpressionsVendorIndex),
		KeyConditionExpression: aws.String("vendor_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: vendorEmail},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuoteImpression, 0, len(raw))
	for _, av := range raw {
		var it impressionItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromImpressionItem(it))
	}
	return items, nil
}

func dedupKeyAttr(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"dedup_key": &types.AttributeValueMemberS{Value: key},
	}
}

func toImpressionItem(i entities.QuoteImpression) impressionItem {
	it := impressionItem{
		DedupKey:          i.DedupKey(),
		ID:                i.ID,
		QuoteRequestID:    i.QuoteRequestID,
		ProjectID:         i.ProjectID,
		Segment:           i.Segment,
		VendorServiceID:   i.VendorServiceID,
		VendorEmail:       i.VendorEmail,
		VendorCompanyName: i.VendorCompanyName,
		CustomerUserID:    i.CustomerUserID,
		CustomerEmail:     i.CustomerEmail,
		CustomerName:      i.CustomerName,
		ProjectName:       i.ProjectName,
		ProjectLocation:   i.ProjectLocation,
		ProjectSqft:       i.ProjectSqft,
		QuotedRatePerSF:   i.QuotedRatePerSF,
		QuotedTotal:       i.QuotedTotal,
		AmountCharged:     floatToString(i.AmountCharged),
		BillingStatus:     string(i.BillingStatus),
		EmailStatus:       string(i.NotificationStatus),
		CreatedAt:         formatTime(i.CreatedAt),
	}
	if i.EmailSentAt != nil {
		it.EmailSentAt = formatTime(*i.EmailSentAt)
	}
	return it
}

func fromImpressionItem(it impressionItem) entities.QuoteImpression {
	amount, _ := strconv.ParseFloat(it.AmountCharged, 64)
	return entities.QuoteImpression{
		ID:                 it.ID,
		QuoteRequestID:     it.QuoteRequestID,
		ProjectID:          it.ProjectID,
		Segment:            it.Segment,
		VendorServiceID:    it.VendorServiceID,
		VendorEmail:        it.VendorEmail,
		VendorCompanyName:  it.VendorCompanyName,
		CustomerUserID:     it.CustomerUserID,
		CustomerEmail:      it.CustomerEmail,
		CustomerName:       it.CustomerName,
		ProjectName:        it.ProjectName,
		ProjectLocation:    it.ProjectLocation,
		ProjectSqft:        it.ProjectSqft,
		QuotedRatePerSF:    it.QuotedRatePerSF,
		QuotedTotal:        it.QuotedTotal,
		AmountCharged:      amount,
		BillingStatus:      entities.BillingStatus(it.BillingStatus),
		NotificationStatus: entities.NotificationStatus(it.EmailStatus),
		EmailSentAt:        parseTimePtr(it.EmailSentAt),
		CreatedAt:          parseTime(it.CreatedAt),
	}
}
