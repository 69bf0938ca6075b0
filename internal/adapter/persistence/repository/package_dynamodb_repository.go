package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"nurseryhub/internal/domain/entities"
	"nurseryhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPackagesTableName = "packages"

	packagesByEstimateIndex = "estimate_id-index"
	packagesByDateIndex     = "realm_id-package_date-index"
	packagesByCodeIndex     = "realm_id-package_code-index"
)

type packageLineRecord struct {
	ItemID   string  `dynamodbav:"item_id"`
	Name     string  `dynamodbav:"name"`
	Quantity float64 `dynamodbav:"quantity"`
	Rate     float64 `dynamodbav:"rate"`
	Amount   float64 `dynamodbav:"amount"`
}

type packageTotalsRecord struct {
	Lines  float64 `dynamodbav:"lines"`
	Amount float64 `dynamodbav:"amount"`
}

type packageSnapshotRecord struct {
	CustomerName string  `dynamodbav:"customer_name"`
	TxnDate      string  `dynamodbav:"txn_date"`
	TotalAmount  float64 `dynamodbav:"total_amount"`
	BillTo       string  `dynamodbav:"bill_to,omitempty"`
	ShipTo       string  `dynamodbav:"ship_to,omitempty"`
}

type siteContactRecord struct {
	Name  string `dynamodbav:"name,omitempty"`
	Phone string `dynamodbav:"phone,omitempty"`
}

type packageRecord struct {
	ID              string                `dynamodbav:"id"`
	PackageCode     string                `dynamodbav:"package_code"`
	EstimateID      string                `dynamodbav:"estimate_id"`
	RealmID         string                `dynamodbav:"realm_id"`
	Quantities      map[string]float64    `dynamodbav:"quantities"`
	Lines           []packageLineRecord   `dynamodbav:"lines"`
	Totals          packageTotalsRecord   `dynamodbav:"totals"`
	Snapshot        packageSnapshotRecord `dynamodbav:"snapshot"`
	PackageDate     string                `dynamodbav:"package_date"`
	ShipmentDate    string                `dynamodbav:"shipment_date,omitempty"`
	DriverName      string                `dynamodbav:"driver_name,omitempty"`
	SiteContact     siteContactRecord     `dynamodbav:"site_contact"`
	ShippingAddress string                `dynamodbav:"shipping_address,omitempty"`
	Notes           string                `dynamodbav:"notes,omitempty"`
	Status          string                `dynamodbav:"status"`
	CreatedAt       string                `dynamodbav:"created_at"`
	UpdatedAt       string                `dynamodbav:"updated_at"`
}

// PackageDynamoRepository persists Package entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, uuid)
//   - GSI estimate_id-index: PK estimate_id
//   - GSI realm_id-package_date-index: PK realm_id, SK package_date
//   - GSI realm_id-package_code-index: PK realm_id, SK package_code

type PackageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPackageRepository = (*PackageDynamoRepository)(nil)

func NewPackageDynamoRepository(ddb *dynamodb.Client) *PackageDynamoRepository {
	return &PackageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PACKAGES_TABLE", defaultPackagesTableName),
	}
}

func (r *PackageDynamoRepository) Create(ctx context.Context, p entities.Package) (entities.Package, error) {
	av, err := attributevalue.MarshalMap(toPackageRecord(p))
	if err != nil {
		return entities.Package{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Package{}, err
	}
	return p, nil
}

func (r *PackageDynamoRepository) GetByID(ctx context.Context, id string) (entities.Package, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            packageKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Package{}, err
	}
	if len(out.Item) == 0 {
		return entities.Package{}, nil
	}

	var rec packageRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Package{}, err
	}
	return fromPackageRecord(rec), nil
}

func (r *PackageDynamoRepository) Update(ctx context.Context, p entities.Package) (entities.Package, error) {
	av, err := attributevalue.MarshalMap(toPackageRecord(p))
	if err != nil {
		return entities.Package{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Package{}, err
	}
	return p, nil
}

func (r *PackageDynamoRepository) ListByEstimate(ctx context.Context, realmID, estimateID string) ([]entities.Package, error) {
	var pkgs []entities.Package
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(packagesByEstimateIndex),
			KeyConditionExpression: aws.String("#estimate_id = :eid"),
			FilterExpression:       aws.String("#realm_id = :rid"),
			ExpressionAttributeNames: map[string]string{
				"#estimate_id": "estimate_id",
				"#realm_id":    "realm_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":eid": &types.AttributeValueMemberS{Value: estimateID},
				":rid": &types.AttributeValueMemberS{Value: realmID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var rec packageRecord
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, err
			}
			pkgs = append(pkgs, fromPackageRecord(rec))
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return pkgs, nil
}

// List queries the tenant's packages newest first via the date-keyed index,
// applies the optional free-text filter in memory and windows the result.
// The index query narrows by date range server-side; the search term has no
// index shape so it stays a client-side filter.
func (r *PackageDynamoRepository) List(ctx context.Context, q interfaces.PackageListQuery) (interfaces.PackageListPage, error) {
	keyCond := "#realm_id = :rid"
	names := map[string]string{"#realm_id": "realm_id"}
	values := map[string]types.AttributeValue{
		":rid": &types.AttributeValueMemberS{Value: q.RealmID},
	}
	switch {
	case q.From != nil && q.To != nil:
		keyCond += " AND #package_date BETWEEN :from AND :to"
		names["#package_date"] = "package_date"
		values[":from"] = &types.AttributeValueMemberS{Value: q.From.UTC().Format(time.RFC3339Nano)}
		values[":to"] = &types.AttributeValueMemberS{Value: q.To.UTC().Format(time.RFC3339Nano)}
	case q.From != nil:
		keyCond += " AND #package_date >= :from"
		names["#package_date"] = "package_date"
		values[":from"] = &types.AttributeValueMemberS{Value: q.From.UTC().Format(time.RFC3339Nano)}
	case q.To != nil:
		keyCond += " AND #package_date <= :to"
		names["#package_date"] = "package_date"
		values[":to"] = &types.AttributeValueMemberS{Value: q.To.UTC().Format(time.RFC3339Nano)}
	}

	var pkgs []entities.Package
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(packagesByDateIndex),
			KeyConditionExpression:    aws.String(keyCond),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ScanIndexForward:          aws.Bool(false),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return interfaces.PackageListPage{}, err
		}

		for _, item := range out.Items {
			var rec packageRecord
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return interfaces.PackageListPage{}, err
			}
			pkg := fromPackageRecord(rec)
			if matchesSearch(pkg, q.Search) {
				pkgs = append(pkgs, pkg)
			}
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	// Same package_date collides in index order; break ties by created_at so
	// paging is stable.
	sort.SliceStable(pkgs, func(i, j int) bool {
		if !pkgs[i].PackageDate.Equal(pkgs[j].PackageDate) {
			return pkgs[i].PackageDate.After(pkgs[j].PackageDate)
		}
		return pkgs[i].CreatedAt.After(pkgs[j].CreatedAt)
	})

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	total := len(pkgs)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return interfaces.PackageListPage{
		Packages:   pkgs[start:end],
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

func (r *PackageDynamoRepository) CodeExists(ctx context.Context, realmID, code string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(packagesByCodeIndex),
		KeyConditionExpression: aws.String("#realm_id = :rid AND #package_code = :code"),
		ExpressionAttributeNames: map[string]string{
			"#realm_id":     "realm_id",
			"#package_code": "package_code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":  &types.AttributeValueMemberS{Value: realmID},
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Select: types.SelectCount,
		Limit:  aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func (r *PackageDynamoRepository) DeleteByEstimate(ctx context.Context, realmID, estimateID string) (int, error) {
	pkgs, err := r.ListByEstimate(ctx, realmID, estimateID)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, p := range pkgs {
		if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key:       packageKey(p.ID),
		}); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func packageKey(packageID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: packageID},
	}
}

func matchesSearch(p entities.Package, search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.PackageCode), term) ||
		strings.Contains(strings.ToLower(p.Snapshot.CustomerName), term) ||
		strings.Contains(strings.ToLower(p.DriverName), term)
}

func toPackageRecord(p entities.Package) packageRecord {
	lines := make([]packageLineRecord, 0, len(p.Lines))
	for _, l := range p.Lines {
		lines = append(lines, packageLineRecord(l))
	}
	rec := packageRecord{
		ID:              p.ID,
		PackageCode:     p.PackageCode,
		EstimateID:      p.EstimateID,
		RealmID:         p.RealmID,
		Quantities:      p.Quantities,
		Lines:           lines,
		Totals:          packageTotalsRecord(p.Totals),
		Snapshot:        packageSnapshotRecord(p.Snapshot),
		PackageDate:     p.PackageDate.UTC().Format(time.RFC3339Nano),
		DriverName:      p.DriverName,
		SiteContact:     siteContactRecord(p.SiteContact),
		ShippingAddress: p.ShippingAddress,
		Notes:           p.Notes,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.ShipmentDate != nil {
		rec.ShipmentDate = p.ShipmentDate.UTC().Format(time.RFC3339Nano)
	}
	return rec
}

func fromPackageRecord(rec packageRecord) entities.Package {
	lines := make([]entities.PackageLine, 0, len(rec.Lines))
	for _, l := range rec.Lines {
		lines = append(lines, entities.PackageLine(l))
	}
	p := entities.Package{
		ID:              rec.ID,
		PackageCode:     rec.PackageCode,
		EstimateID:      rec.EstimateID,
		RealmID:         rec.RealmID,
		Quantities:      rec.Quantities,
		Lines:           lines,
		Totals:          entities.PackageTotals(rec.Totals),
		Snapshot:        entities.PackageSnapshot(rec.Snapshot),
		PackageDate:     parseTime(rec.PackageDate),
		DriverName:      rec.DriverName,
		SiteContact:     entities.SiteContact(rec.SiteContact),
		ShippingAddress: rec.ShippingAddress,
		Notes:           rec.Notes,
		Status:          entities.PackageStatus(rec.Status),
		CreatedAt:       parseTime(rec.CreatedAt),
		UpdatedAt:       parseTime(rec.UpdatedAt),
	}
	if rec.ShipmentDate != "" {
		t := parseTime(rec.ShipmentDate)
		p.ShipmentDate = &t
	}
	if p.Quantities == nil {
		p.Quantities = map[string]float64{}
	}
	return p
}
