package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/interntrack/interntrack-backend/pkg/utils"
)

const accountsCollection = "accounts"

// account is the credential document. Only the Argon2id hash is stored;
// plaintext passwords never reach a collection.
type account struct {
	UID          string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"passwordHash"`
	DisplayName  string    `bson:"displayName,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// MongoProvider is the MongoDB-backed identity provider. Email uniqueness is
// enforced by a unique index, so concurrent signups for the same email race
// safely: exactly one insert wins.
type MongoProvider struct {
	accounts *mongo.Collection
}

func NewMongoProvider(db *mongo.Database) *MongoProvider {
	return &MongoProvider{accounts: db.Collection(accountsCollection)}
}

// EnsureIndexes creates the unique email index. Call once at startup.
func (p *MongoProvider) EnsureIndexes(ctx context.Context) error {
	_, err := p.accounts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// CreateAccount hashes the password, mints a uid and inserts the credential
// document. A duplicate email is surfaced as ErrEmailExists.
func (p *MongoProvider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", errors.New("email and password are required")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}

	acct := account{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
		CreatedAt:    time.Now(),
	}

	if _, err := p.accounts.InsertOne(ctx, acct); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrEmailExists
		}
		return "", err
	}

	return acct.UID, nil
}
