package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/userdept/admin-system/internal/core/domain"
	"github.com/userdept/admin-system/internal/core/ports"
)

const userCollection = "sys_users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Username        string             `bson:"username"`
	Realname        string             `bson:"realname"`
	Email           string             `bson:"email,omitempty"`
	Mobile          string             `bson:"mobile,omitempty"`
	Status          int                `bson:"status"`
	PasswordHash    string             `bson:"password_hash"`
	DepartmentCodes []string           `bson:"department_codes,omitempty"`
	Creator         string             `bson:"creator,omitempty"`
	Modifier        string             `bson:"modifier,omitempty"`
	CreatedAt       int64              `bson:"created_at"`
	UpdatedAt       int64              `bson:"updated_at"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		Username:        u.Username,
		Realname:        u.Realname,
		Email:           u.Email,
		Mobile:          u.Mobile,
		Status:          u.Status,
		PasswordHash:    u.PasswordHash,
		DepartmentCodes: u.DepartmentCodes,
		Creator:         u.Creator,
		Modifier:        u.Modifier,
		CreatedAt:       u.CreatedAt.Unix(),
		UpdatedAt:       u.UpdatedAt.Unix(),
	}
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:              mu.ID.Hex(),
		Username:        mu.Username,
		Realname:        mu.Realname,
		Email:           mu.Email,
		Mobile:          mu.Mobile,
		Status:          mu.Status,
		PasswordHash:    mu.PasswordHash,
		DepartmentCodes: mu.DepartmentCodes,
		Creator:         mu.Creator,
		Modifier:        mu.Modifier,
		CreatedAt:       unixToTime(mu.CreatedAt),
		UpdatedAt:       unixToTime(mu.UpdatedAt),
	}
}

func (r *MongoUserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	res, err := r.coll.InsertOne(ctx, toMongoUser(u))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, id.Hex())
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	query := bson.M{}
	if filter.Query != "" {
		pattern := searchPattern(filter.Query)
		query["$or"] = bson.A{
			bson.M{"username": pattern},
			bson.M{"realname": pattern},
			bson.M{"mobile": pattern},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.PerPage)).
		SetLimit(int64(filter.PerPage))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]*domain.User, 0, filter.PerPage)
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, 0, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, mu.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate users: %w", err)
	}

	return out, total, nil
}

func (r *MongoUserRepository) ListByDepartment(ctx context.Context, code string) ([]*domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{"department_codes": code})
	if err != nil {
		return nil, fmt.Errorf("list users by department: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]*domain.User, 0)
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, mu.toDomain())
	}
	return out, cur.Err()
}

func (r *MongoUserRepository) RemoveDepartmentCode(ctx context.Context, code string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"department_codes": code},
		bson.M{"$pull": bson.M{"department_codes": code}},
	)
	if err != nil {
		return fmt.Errorf("remove department code: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) Update(ctx context.Context, u *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	doc := toMongoUser(u)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoUserRepository) CountEnabled(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"status": domain.StatusEnabled})
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
