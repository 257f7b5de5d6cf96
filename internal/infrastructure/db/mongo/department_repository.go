package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/userdept/admin-system/internal/core/domain"
	"github.com/userdept/admin-system/internal/core/ports"
)

const departmentCollection = "departments"

type MongoDepartmentRepository struct {
	coll *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *MongoDepartmentRepository {
	return &MongoDepartmentRepository{coll: db.Collection(departmentCollection)}
}

type mongoDepartment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Code        string             `bson:"code"`
	Name        string             `bson:"name"`
	ParentCode  string             `bson:"parent_code,omitempty"`
	Description string             `bson:"description,omitempty"`
	Creator     string             `bson:"creator,omitempty"`
	Modifier    string             `bson:"modifier,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func toMongoDepartment(d *domain.Department) mongoDepartment {
	return mongoDepartment{
		Code:        d.Code,
		Name:        d.Name,
		ParentCode:  d.ParentCode,
		Description: d.Description,
		Creator:     d.Creator,
		Modifier:    d.Modifier,
		CreatedAt:   d.CreatedAt.Unix(),
		UpdatedAt:   d.UpdatedAt.Unix(),
	}
}

func (md mongoDepartment) toDomain() *domain.Department {
	return &domain.Department{
		ID:          md.ID.Hex(),
		Code:        md.Code,
		Name:        md.Name,
		ParentCode:  md.ParentCode,
		Description: md.Description,
		Creator:     md.Creator,
		Modifier:    md.Modifier,
		CreatedAt:   unixToTime(md.CreatedAt),
		UpdatedAt:   unixToTime(md.UpdatedAt),
	}
}

func (r *MongoDepartmentRepository) Create(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	res, err := r.coll.InsertOne(ctx, toMongoDepartment(d))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDepartmentExists
		}
		return nil, fmt.Errorf("insert department: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, id.Hex())
}

func (r *MongoDepartmentRepository) FindByID(ctx context.Context, id string) (*domain.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}

	var md mongoDepartment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return md.toDomain(), nil
}

func (r *MongoDepartmentRepository) FindByCode(ctx context.Context, code string) (*domain.Department, error) {
	var md mongoDepartment
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return md.toDomain(), nil
}

func (r *MongoDepartmentRepository) List(ctx context.Context, filter ports.ListDepartmentsFilter) ([]*domain.Department, int64, error) {
	query := bson.M{}
	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query["$or"] = bson.A{
			bson.M{"code": pattern},
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count departments: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.PerPage)).
		SetLimit(int64(filter.PerPage))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list departments: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]*domain.Department, 0, filter.PerPage)
	for cur.Next(ctx) {
		var md mongoDepartment
		if err := cur.Decode(&md); err != nil {
			return nil, 0, fmt.Errorf("decode department: %w", err)
		}
		out = append(out, md.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate departments: %w", err)
	}

	return out, total, nil
}

// ListAll returns every department in insertion order, which keeps the tree
// view stable across rebuilds.
func (r *MongoDepartmentRepository) ListAll(ctx context.Context) ([]*domain.Department, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list all departments: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]*domain.Department, 0)
	for cur.Next(ctx) {
		var md mongoDepartment
		if err := cur.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode department: %w", err)
		}
		out = append(out, md.toDomain())
	}
	return out, cur.Err()
}

func (r *MongoDepartmentRepository) HasChildren(ctx context.Context, code string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"parent_code": code}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count children: %w", err)
	}
	return n > 0, nil
}

func (r *MongoDepartmentRepository) Update(ctx context.Context, d *domain.Department) error {
	oid, err := primitive.ObjectIDFromHex(d.ID)
	if err != nil {
		return domain.ErrDepartmentNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoDepartment(d))
	if err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *MongoDepartmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDepartmentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *MongoDepartmentRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
