package repository

import (
	"context"
	"strconv"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultVendorPaymentsTableName = "vendor_payments"
	VendorPaymentsVendorIndex      = "vendor_email-index"
)

type vendorPaymentItem struct {
	ID                 string         `dynamodbav:"id"`
	VendorEmail        string         `dynamodbav:"vendor_email"`
	Amount             string         `dynamodbav:"amount"`
	ImpressionIDs      []string       `dynamodbav:"impression_ids,omitempty"`
	Date               string         `dynamodbav:"date"`
	Status             string         `dynamodbav:"status"`
	ProviderPayload    map[string]any `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string         `dynamodbav:"provider_payload_raw,omitempty"`
}

// VendorPaymentDynamoRepository persists VendorPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: vendor_email-index (PK: vendor_email)
type VendorPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVendorPaymentRepository = (*VendorPaymentDynamoRepository)(nil)

func NewVendorPaymentDynamoRepository(ddb DynamoAPI, tableName string) *VendorPaymentDynamoRepository {
	return &VendorPaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultVendorPaymentsTableName),
	}
}

func (r *VendorPaymentDynamoRepository) Create(ctx context.Context, p entities.VendorPayment) (entities.VendorPayment, error) {
	av, err := attributevalue.MarshalMap(toVendorPaymentItem(p))
	if err != nil {
		return entities.VendorPayment{}, err
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
		return entities.VendorPayment{}, err
	}
	return p, nil
}

func (r *VendorPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.VendorPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.VendorPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.VendorPayment{}, nil
	}

	var it vendorPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.VendorPayment{}, err
	}
	return fromVendorPaymentItem(it), nil
}

func (r *VendorPaymentDynamoRepository) ListByVendorEmail(ctx context.Context, vendorEmail string) ([]entities.VendorPayment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(VendorPaymentsVendorIndex),
		KeyConditionExpression: aws.String("vendor_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: vendorEmail},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.VendorPayment, 0, len(raw))
	for _, av := range raw {
		var it vendorPaymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromVendorPaymentItem(it))
	}
	return items, nil
}

func toVendorPaymentItem(p entities.VendorPayment) vendorPaymentItem {
	return vendorPaymentItem{
		ID:                 p.ID,
		VendorEmail:        p.VendorEmail,
		Amount:             floatToString(p.Amount),
		ImpressionIDs:      p.ImpressionIDs,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromVendorPaymentItem(it vendorPaymentItem) entities.VendorPayment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	p := entities.VendorPayment{
		ID:              it.ID,
		VendorEmail:     it.VendorEmail,
		Amount:          amount,
		ImpressionIDs:   it.ImpressionIDs,
		Date:            parseTime(it.Date),
		Status:          entities.PaymentStatus(it.Status),
		ProviderPayload: it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}
