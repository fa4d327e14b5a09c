package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scribbly/notes-api/internal/core/domain"
)

const collectionNotes = "notes"

// NoteRepository implements ports.NoteRepository and ports.NoteSearcher
// using MongoDB. Ownership scoping is enforced in the query filter itself:
// every read, update and delete matches on both _id and user_id.
type NoteRepository struct {
	col *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{col: db.Collection(collectionNotes)}
}

type mongoNote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Tags      []string           `bson:"tags"`
	IsPinned  bool               `bson:"is_pinned"`
	UserID    string             `bson:"user_id"`
	CreatedOn time.Time          `bson:"created_on"`
}

func (mn mongoNote) toDomain() *domain.Note {
	tags := mn.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Note{
		ID:        mn.ID.Hex(),
		Title:     mn.Title,
		Content:   mn.Content,
		Tags:      tags,
		IsPinned:  mn.IsPinned,
		UserID:    mn.UserID,
		CreatedOn: mn.CreatedOn.UTC(),
	}
}

// ownerFilter builds the (id, owner) filter shared by all single-note
// operations. An id that is not a valid ObjectID can never match, which is
// surfaced as not-found.
func ownerFilter(id, userID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNoteNotFound
	}
	return bson.M{"_id": oid, "user_id": userID}, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoNote{
		Title:     note.Title,
		Content:   note.Content,
		Tags:      note.Tags,
		IsPinned:  note.IsPinned,
		UserID:    note.UserID,
		CreatedOn: note.CreatedOn.UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	created := *note
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *NoteRepository) FindByIDAndOwner(ctx context.Context, id, userID string) (*domain.Note, error) {
	filter, err := ownerFilter(id, userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mn mongoNote
	if err := r.col.FindOne(ctx, filter).Decode(&mn); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return mn.toDomain(), nil
}

// Update persists the mutable fields of the note, matched by (id, owner).
func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) error {
	filter, err := ownerFilter(note.ID, note.UserID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":     note.Title,
		"content":   note.Content,
		"tags":      note.Tags,
		"is_pinned": note.IsPinned,
	}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id, userID string) error {
	filter, err := ownerFilter(id, userID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// ListByOwner returns all notes owned by userID, pinned notes first. Ties
// keep the store's natural order.
func (r *NoteRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "is_pinned", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return decodeNotes(ctx, cur)
}

// SearchByOwner matches the owner's notes whose title or content contains
// the query as a case-insensitive substring. The pattern is quoted so user
// input cannot inject regex operators.
func (r *NoteRepository) SearchByOwner(ctx context.Context, userID, query string) ([]*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"user_id": userID,
		"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"content": pattern},
		},
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return decodeNotes(ctx, cur)
}

func decodeNotes(ctx context.Context, cur *mongo.Cursor) ([]*domain.Note, error) {
	defer cur.Close(ctx)

	notes := []*domain.Note{}
	for cur.Next(ctx) {
		var mn mongoNote
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		notes = append(notes, mn.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

// EnsureIndexes creates the owner index on the notes collection.
func (r *NoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_pinned", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
