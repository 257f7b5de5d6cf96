package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userdept/admin-system/internal/core/domain"
)

const auditCollection = "audit_trail"

type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	Actor     string `bson:"actor"`
	Action    string `bson:"action"`
	Entity    string `bson:"entity"`
	EntityID  string `bson:"entity_id"`
	Detail    string `bson:"detail,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoAuditRepository) Record(ctx context.Context, entry domain.AuditEntry) error {
	doc := mongoAuditEntry{
		Actor:     entry.Actor,
		Action:    entry.Action,
		Entity:    entry.Entity,
		EntityID:  entry.EntityID,
		Detail:    entry.Detail,
		Timestamp: entry.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
