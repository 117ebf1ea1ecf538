package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/interntrack/interntrack-backend/internal/models"
)

const (
	teachersCollection = "teachers"
	internsCollection  = "interns"
	usersCollection    = "users"
)

// MongoStore implements ProfileStore on the MongoDB collections. Writes are
// upserts keyed by uid, so re-provisioning the same uid replaces the document
// instead of duplicating it.
type MongoStore struct {
	teachers *mongo.Collection
	interns  *mongo.Collection
	users    *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		teachers: db.Collection(teachersCollection),
		interns:  db.Collection(internsCollection),
		users:    db.Collection(usersCollection),
	}
}

// EnsureIndexes creates the indexes the roster and stats queries rely on.
// Call once at startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.teachers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdBy", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return err
	}
	_, err = s.interns.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "teacherId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}

func (s *MongoStore) PutTeacher(ctx context.Context, t *models.TeacherProfile) error {
	return replaceByUID(ctx, s.teachers, t.UID, t)
}

func (s *MongoStore) PutIntern(ctx context.Context, i *models.InternProfile) error {
	return replaceByUID(ctx, s.interns, i.UID, i)
}

func (s *MongoStore) PutUser(ctx context.Context, u *models.UserProfile) error {
	return replaceByUID(ctx, s.users, u.UID, u)
}

func (s *MongoStore) TeacherByUID(ctx context.Context, uid string) (*models.TeacherProfile, error) {
	var teacher models.TeacherProfile
	err := s.teachers.FindOne(ctx, bson.M{"_id": uid}).Decode(&teacher)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &teacher, nil
}

func (s *MongoStore) TeachersByCreator(ctx context.Context, supervisorUID string) ([]models.TeacherProfile, error) {
	return findTeachers(ctx, s.teachers, bson.M{"createdBy": supervisorUID})
}

func (s *MongoStore) AllTeachers(ctx context.Context) ([]models.TeacherProfile, error) {
	return findTeachers(ctx, s.teachers, bson.M{})
}

func (s *MongoStore) InternsByTeacherIDs(ctx context.Context, teacherIDs []string) ([]models.InternProfile, error) {
	return findInterns(ctx, s.interns, bson.M{"teacherId": bson.M{"$in": teacherIDs}})
}

func (s *MongoStore) AllInterns(ctx context.Context) ([]models.InternProfile, error) {
	return findInterns(ctx, s.interns, bson.M{})
}

func replaceByUID(ctx context.Context, c *mongo.Collection, uid string, doc interface{}) error {
	_, err := c.ReplaceOne(ctx, bson.M{"_id": uid}, doc, options.Replace().SetUpsert(true))
	return err
}

func findTeachers(ctx context.Context, c *mongo.Collection, filter bson.M) ([]models.TeacherProfile, error) {
	cursor, err := c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	teachers := make([]models.TeacherProfile, 0)
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func findInterns(ctx context.Context, c *mongo.Collection, filter bson.M) ([]models.InternProfile, error) {
	cursor, err := c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	interns := make([]models.InternProfile, 0)
	if err := cursor.All(ctx, &interns); err != nil {
		return nil, err
	}
	return interns, nil
}
