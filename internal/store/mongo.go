package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"spendlog/internal/models"
)

const usersCollection = "users"

// Mongo is a Store backed by a MongoDB collection of user documents.
type Mongo struct {
	client *mongo.Client
	users  *mongo.Collection
}

// NewMongo connects to the database, verifies the connection, and ensures the
// unique index on email. The index is a backstop: handlers still check for an
// existing email first so registration can report a friendly message.
func NewMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	users := client.Database(dbName).Collection(usersCollection)
	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("creating email index: %w", err)
	}

	return &Mongo{client: client, users: users}, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// FindByEmail looks a user up by email.
func (m *Mongo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID looks a user up by its hex object id.
func (m *Mongo) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	err = m.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user with an empty expense list.
func (m *Mongo) CreateUser(ctx context.Context, name, email, hashedPassword string) (*models.User, error) {
	user := models.User{
		ID:       bson.NewObjectID(),
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Expenses: []models.Expense{},
	}

	if _, err := m.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// AppendExpense pushes the expense onto the user document in a single update.
func (m *Mongo) AppendExpense(ctx context.Context, userID string, expense models.Expense) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err = m.users.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"expenses": expense}},
		opts,
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RemoveExpense pulls the matching expense out of the user document. The
// removal predicate runs server-side, so concurrent deletes against the same
// user cannot lose each other's updates.
func (m *Mongo) RemoveExpense(ctx context.Context, userID, expenseID string) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err = m.users.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"expenses": bson.M{"id": expenseID}}},
		opts,
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
