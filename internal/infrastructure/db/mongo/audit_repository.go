package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

const auditCollection = "audit_log"

// AuditRepository appends audit trail entries; the collection is
// write-only from the application's point of view.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Entity   string `bson:"entity"`
	EntityID int64  `bson:"entity_id"`
	Action   string `bson:"action"`
	Actor    string `bson:"actor"`
	At       int64  `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry domain.AuditEntry) error {
	doc := auditDoc{
		Entity:   entry.Entity,
		EntityID: entry.EntityID,
		Action:   entry.Action,
		Actor:    entry.Actor,
		At:       entry.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
