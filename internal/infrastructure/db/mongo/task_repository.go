package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

const tasksCollection = "tasks"

// TaskRepository persists tasks in MongoDB. The owner username is
// denormalized next to the owner id so ownership checks need no join.
type TaskRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{db: db, coll: db.Collection(tasksCollection)}
}

type taskDoc struct {
	ID          int64  `bson:"_id"`
	Description string `bson:"description"`
	CreatedOn   int64  `bson:"created_on"`
	DueDate     int64  `bson:"due_date,omitempty"`
	Completed   bool   `bson:"completed"`
	Owner       string `bson:"owner"`
	OwnerID     int64  `bson:"owner_id"`
}

func (d taskDoc) toDomain() *domain.Task {
	return &domain.Task{
		ID:          d.ID,
		Description: d.Description,
		CreatedOn:   unixToTime(d.CreatedOn),
		DueDate:     unixToTime(d.DueDate),
		Completed:   d.Completed,
		Owner:       d.Owner,
		OwnerID:     d.OwnerID,
	}
}

func toTaskDoc(t *domain.Task) taskDoc {
	return taskDoc{
		ID:          t.ID,
		Description: t.Description,
		CreatedOn:   timeToUnix(t.CreatedOn),
		DueDate:     timeToUnix(t.DueDate),
		Completed:   t.Completed,
		Owner:       t.Owner,
		OwnerID:     t.OwnerID,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	id, err := nextID(ctx, r.db, "tasks")
	if err != nil {
		return nil, err
	}
	task.ID = id

	if _, err := r.coll.InsertOne(ctx, toTaskDoc(task)); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	var doc taskDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFoundf("There is no task with id=%d in database", id)
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64, page, size int) ([]*domain.Task, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID}, page, size)
}

func (r *TaskRepository) List(ctx context.Context, page, size int) ([]*domain.Task, error) {
	return r.find(ctx, bson.M{}, page, size)
}

func (r *TaskRepository) find(ctx context.Context, filter bson.M, page, size int) ([]*domain.Task, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page * size)).
		SetLimit(int64(size))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cur.Close(ctx)

	var tasks []*domain.Task
	for cur.Next(ctx) {
		var doc taskDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, doc.toDomain())
	}
	return tasks, cur.Err()
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": task.ID}, toTaskDoc(task))
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NotFoundf("There is no task with id=%d in database", task.ID)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFoundf("There is no task with id=%d in database", id)
	}
	return nil
}

func (r *TaskRepository) DeleteByOwner(ctx context.Context, ownerID int64) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"owner_id": ownerID}); err != nil {
		return fmt.Errorf("delete tasks by owner: %w", err)
	}
	return nil
}

func (r *TaskRepository) RenameOwner(ctx context.Context, ownerID int64, newUsername string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"owner_id": ownerID},
		bson.M{"$set": bson.M{"owner": newUsername}},
	)
	if err != nil {
		return fmt.Errorf("rename task owner: %w", err)
	}
	return nil
}
