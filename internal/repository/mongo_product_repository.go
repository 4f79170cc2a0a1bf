package repository

import (
	"context"
	"fmt"
	"regexp"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productDoc is the MongoDB document shape for the "productos" collection.
type productDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Price            float64            `bson:"price"`
	ShortDescription string             `bson:"short_description"`
	FullDescription  string             `bson:"full_description"`
	Category         string             `bson:"category"`
	Units            int                `bson:"units"`
	Image            string             `bson:"img"`
}

func (d productDoc) toModel() models.Product {
	return models.Product{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Price:            d.Price,
		ShortDescription: d.ShortDescription,
		FullDescription:  d.FullDescription,
		Category:         d.Category,
		Units:            d.Units,
		Image:            d.Image,
	}
}

// MongoProductRepository implements ProductRepository against the "productos"
// collection.
type MongoProductRepository struct {
	col *mongo.Collection
}

// NewMongoProductRepository creates a product repository over the given database.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{col: db.Collection("productos")}
}

func (r *MongoProductRepository) filter(q CatalogQuery) bson.M {
	if q.Filtered() {
		return bson.M{"category": q.Category}
	}
	return bson.M{}
}

// sortSpec maps the sort key to a Mongo sort document. The _id tie-break keeps
// pagination consistent across repeated queries.
func sortSpec(key SortKey) bson.D {
	switch key {
	case SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}}
	case SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}, {Key: "_id", Value: 1}}
	case SortUnitsAsc:
		return bson.D{{Key: "units", Value: 1}, {Key: "_id", Value: 1}}
	case SortUnitsDesc:
		return bson.D{{Key: "units", Value: -1}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "_id", Value: 1}}
	}
}

// Query returns one page of the catalog under q's filter and order.
func (r *MongoProductRepository) Query(ctx context.Context, q CatalogQuery) ([]models.Product, int, error) {
	if q.Page < 1 || q.PageSize < 1 {
		return nil, 0, ErrInvalidQuery
	}

	filter := r.filter(q)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	opts := options.Find().
		SetSort(sortSpec(q.Sort)).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.PageSize))

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0, q.PageSize)
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate products: %w", err)
	}

	return products, int(total), nil
}

// GetByID returns a product by its hex ObjectID.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	var doc productDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}

	p := doc.toModel()
	return &p, nil
}

// Categories returns the distinct category tags in the catalog.
func (r *MongoProductRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := r.col.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// SearchByName returns the first product whose name matches name
// case-insensitively, or nil when nothing matches.
func (r *MongoProductRepository) SearchByName(ctx context.Context, name string) (*models.Product, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}

	var doc productDoc
	err := r.col.FindOne(ctx, bson.M{"name": pattern}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("search product by name: %w", err)
	}

	p := doc.toModel()
	return &p, nil
}

// DecrementUnits subtracts qty from the product's available units using a
// conditional update, so concurrent checkouts cannot drive units negative.
func (r *MongoProductRepository) DecrementUnits(ctx context.Context, id string, qty int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProductNotFound
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "units": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"units": -qty}},
	)
	if err != nil {
		return fmt.Errorf("decrement units for %s: %w", id, err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	// Distinguish a missing product from insufficient stock.
	count, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("check product %s: %w", id, err)
	}
	if count == 0 {
		return ErrProductNotFound
	}
	return ErrInsufficientStock
}
