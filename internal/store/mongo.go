package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Gabohhh/Casinomongo2/internal/domain"
)

// MongoConfig contains connection settings for the MongoDB store.
type MongoConfig struct {
	URI      string // e.g. mongodb://localhost:27017
	Database string // e.g. casino_db
}

// MongoStore implements Store on a MongoDB backend.
type MongoStore struct {
	client       *mongo.Client
	users        *mongo.Collection
	transactions *mongo.Collection
	ctxTimeout   time.Duration
}

// NewMongoStore establishes the connection and returns the store.
func NewMongoStore(cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		cfg.URI = "mongodb://localhost:27017"
	}
	if cfg.Database == "" {
		cfg.Database = "casino_db"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	// ping
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	db := client.Database(cfg.Database)
	st := &MongoStore{
		client:       client,
		users:        db.Collection("users"),
		transactions: db.Collection("transactions"),
		ctxTimeout:   5 * time.Second,
	}

	// Ensure indexes
	if err := st.ensureIndexes(); err != nil {
		return nil, err
	}
	return st, nil
}

func (m *MongoStore) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.ctxTimeout)
	defer cancel()
	emailIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	}
	if _, err := m.users.Indexes().CreateOne(ctx, emailIdx); err != nil {
		return err
	}
	userIDIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetName("userid_idx"),
	}
	_, err := m.transactions.Indexes().CreateOne(ctx, userIDIdx)
	return err
}

// GetUserByEmail implements Store.
func (m *MongoStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, m.ctxTimeout)
	defer cancel()
	var user domain.User
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID implements Store.
func (m *MongoStore) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, m.ctxTimeout)
	defer cancel()
	var user domain.User
	err := m.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers implements Store.
func (m *MongoStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, m.ctxTimeout)
	defer cancel()
	cursor, err := m.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CountUsers implements Store.
func (m *MongoStore) CountUsers(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, m.ctxTimeout)
	defer cancel()
	return m.users.CountDocuments(ctx, bson.M{})
}

// CreateUser inserts a new document, minting an ObjectID hex id when the
// caller did not supply one.
func (m *MongoStore) CreateUser(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	ctx, cancel := context.WithTimeout(ctx, m.ctxTimeout)
	defer cancel()
	_, err := m.users.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailExists
	}
	return err
}

// UpdateUser implements Store.
func (m *MongoStore) UpdateUser(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, m.ctxTimeout)
	defer cancel()
	update := bson.M{"$set": bson.M{
		"email":    u.Email,
		"password": u.Password,
		"role":     u.Role,
		"balance":  u.Balance,
		"active":   u.Active,
	}}
	res, err := m.users.UpdateOne(ctx, bson.M{"_id": u.ID}, update)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailExists
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUser implements Store. Hard delete, transactions are not cascaded.
func (m *MongoStore) DeleteUser(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, m.ctxTimeout)
	defer cancel()
	res, err := m.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UserTransactions implements Store. The id must be ObjectID hex; a malformed
// id is reported as an error rather than an empty result.
func (m *MongoStore) UserTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}
	ctx, cancel := context.WithTimeout(ctx, m.ctxTimeout)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := m.transactions.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	var txs []domain.Transaction
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// InsertTransactions implements Store.
func (m *MongoStore) InsertTransactions(ctx context.Context, txs []domain.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(txs))
	for i := range txs {
		docs[i] = txs[i]
	}
	ctx, cancel := context.WithTimeout(ctx, m.ctxTimeout)
	defer cancel()
	_, err := m.transactions.InsertMany(ctx, docs)
	return err
}

// Close terminates the connection.
func (m *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
