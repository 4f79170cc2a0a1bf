package repository

import (
	"context"
	"fmt"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userDoc is the MongoDB document shape for the "usuarios" collection.
type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

func (d userDoc) toModel() models.User {
	return models.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.Password,
	}
}

// MongoUserRepository implements UserRepository against the "usuarios"
// collection.
type MongoUserRepository struct {
	col *mongo.Collection
}

// NewMongoUserRepository creates a user repository over the given database.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection("usuarios")}
}

// GetByEmail returns the user registered under email.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	u := doc.toModel()
	return &u, nil
}

// Create stores a new user.
func (r *MongoUserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	doc := userDoc{
		ID:       primitive.NewObjectID(),
		Email:    user.Email,
		Password: user.PasswordHash,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	u := doc.toModel()
	return &u, nil
}
