package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a single-table, string-hash-key DynamoDB good enough for the
// expressions the repositories write: attribute_(not_)exists, "#attr IN (...)"
// conditions, SET updates and equality key conditions on an index.
type fakeDynamo struct {
	mu       sync.Mutex
	hashKey  string
	items    map[string]map[string]types.AttributeValue
	pageSize int
	err      error
	puts     int
	queries  int
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo(hashKey string) *fakeDynamo {
	return &fakeDynamo{hashKey: hashKey, items: map[string]map[string]types.AttributeValue{}}
}

func sval(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.puts++
	key := sval(in.Item[f.hashKey])
	if _, exists := f.items[key]; exists && strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[sval(in.Key[f.hashKey])]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	ccf := &types.ConditionalCheckFailedException{Message: aws.String("condition")}

	item, exists := f.items[sval(in.Key[f.hashKey])]
	cond := aws.ToString(in.ConditionExpression)
	if strings.Contains(cond, "attribute_exists") && !exists {
		return nil, ccf
	}
	if i := strings.Index(cond, " IN ("); i >= 0 {
		fields := strings.Fields(cond[:i])
		attr := in.ExpressionAttributeNames[fields[len(fields)-1]]
		list := strings.TrimSuffix(cond[i+len(" IN ("):], ")")
		ok := false
		for _, k := range strings.Split(list, ", ") {
			if sval(in.ExpressionAttributeValues[k]) == sval(item[attr]) {
				ok = true
			}
		}
		if !ok {
			return nil, ccf
		}
	}

	updated := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		updated[k] = v
	}
	for _, assign := range strings.Split(strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET "), ", ") {
		parts := strings.SplitN(assign, " = ", 2)
		updated[in.ExpressionAttributeNames[parts[0]]] = in.ExpressionAttributeValues[parts[1]]
	}
	f.items[sval(in.Key[f.hashKey])] = updated
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.queries++

	parts := strings.SplitN(aws.ToString(in.KeyConditionExpression), " = ", 2)
	attr, want := parts[0], sval(in.ExpressionAttributeValues[parts[1]])

	var matched []map[string]types.AttributeValue
	for _, it := range f.items {
		if sval(it[attr]) == want {
			matched = append(matched, it)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := sval(matched[i]["created_at"]), sval(matched[j]["created_at"])
		if in.ScanIndexForward != nil && !*in.ScanIndexForward {
			return a > b
		}
		return a < b
	})

	start := 0
	if n, ok := in.ExclusiveStartKey["_offset"].(*types.AttributeValueMemberN); ok {
		start, _ = strconv.Atoi(n.Value)
	}
	end := len(matched)
	out := &dynamodb.QueryOutput{}
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
		out.LastEvaluatedKey = map[string]types.AttributeValue{"_offset": &types.AttributeValueMemberN{Value: strconv.Itoa(end)}}
	}
	out.Items = matched[start:end]
	return out, nil
}

var errBoom = errors.New("boom")
