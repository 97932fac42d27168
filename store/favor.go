package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/taskbridge-api/favor"
	"github.com/bitmark-inc/taskbridge-api/schema"
)

var (
	ErrFavorNotFound    = fmt.Errorf("favor not found")
	ErrFavorConflict    = fmt.Errorf("the favor was changed by someone else, reload and try again")
	ErrUnsupportedField = fmt.Errorf("favors can only be filtered by poster or acceptor")
)

// FavorRepository keeps favor documents in the `favors` collection
type FavorRepository interface {
	CreateFavor(ctx context.Context, title, description string, loc *schema.Location, poster string) (*schema.Favor, error)
	GetFavor(ctx context.Context, id string) (*schema.Favor, error)
	ListFavors(ctx context.Context) ([]schema.Favor, error)
	ListFavorsWhere(ctx context.Context, field schema.FavorField, identity string) ([]schema.Favor, error)
	AcceptFavor(ctx context.Context, id, acceptor string) (*schema.Favor, error)
	CompleteFavor(ctx context.Context, id, completer string) (*schema.Favor, error)
}

// CreateFavor validates and inserts a new open favor
func (m *mongoDB) CreateFavor(ctx context.Context, title, description string, loc *schema.Location, poster string) (*schema.Favor, error) {
	if err := favor.ValidateDraft(title, description); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	f := schema.Favor{
		Title:       title,
		Description: description,
		Location:    loc,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
		Status:      schema.FavorOpen,
		PostedBy:    poster,
	}

	result, err := m.collection(schema.FavorCollection).InsertOne(ctx, f)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("insert favor with error: %s", err)
		return nil, err
	}
	f.ID = result.InsertedID.(primitive.ObjectID)

	log.WithFields(log.Fields{
		"prefix":    mongoLogPrefix,
		"favor_id":  f.ID.Hex(),
		"posted_by": poster,
	}).Debug("favor created")

	return &f, nil
}

// GetFavor returns a single favor by its hex id
func (m *mongoDB) GetFavor(ctx context.Context, id string) (*schema.Favor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrFavorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f schema.Favor
	if err := m.collection(schema.FavorCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&f); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFavorNotFound
		}
		return nil, err
	}

	return &f, nil
}

// ListFavors returns every favor, newest first
func (m *mongoDB) ListFavors(ctx context.Context) ([]schema.Favor, error) {
	return m.findFavors(ctx, bson.M{})
}

// ListFavorsWhere returns favors whose poster or acceptor equals the identity
func (m *mongoDB) ListFavorsWhere(ctx context.Context, field schema.FavorField, identity string) ([]schema.Favor, error) {
	switch field {
	case schema.FieldPostedBy, schema.FieldAcceptedBy:
	default:
		return nil, ErrUnsupportedField
	}

	return m.findFavors(ctx, bson.M{string(field): identity})
}

func (m *mongoDB) findFavors(ctx context.Context, query bson.M) ([]schema.Favor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := m.collection(schema.FavorCollection).Find(ctx, query, opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query favors with error: %s", err)
		return nil, fmt.Errorf("favor query with error: %w", err)
	}
	defer cur.Close(ctx)

	favors := make([]schema.Favor, 0)
	for cur.Next(ctx) {
		var f schema.Favor
		if err := cur.Decode(&f); err != nil {
			log.WithField("prefix", mongoLogPrefix).Errorf("decode favor with error: %s", err)
			return nil, fmt.Errorf("decode favor record with error: %w", err)
		}
		favors = append(favors, f)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("favor query %v gets %d favors", query, len(favors))

	return favors, nil
}

// AcceptFavor moves an open favor to in_progress on behalf of the acceptor
func (m *mongoDB) AcceptFavor(ctx context.Context, id, acceptor string) (*schema.Favor, error) {
	return m.transit(ctx, id, favor.AcceptBy(acceptor))
}

// CompleteFavor moves an in_progress favor to completed on behalf of its poster
func (m *mongoDB) CompleteFavor(ctx context.Context, id, completer string) (*schema.Favor, error) {
	return m.transit(ctx, id, favor.CompleteBy(completer))
}

// transit loads the favor, applies the action and writes the new state back
// only if nobody moved the favor in the meantime
func (m *mongoDB) transit(ctx context.Context, id string, action favor.Action) (*schema.Favor, error) {
	current, err := m.GetFavor(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := favor.Transition(*current, action, time.Now().Truncate(time.Millisecond))
	if err != nil {
		return nil, err
	}

	set := bson.M{"status": next.Status}
	switch next.Status {
	case schema.FavorInProgress:
		set["accepted_by"] = next.AcceptedBy
		set["accepted_at"] = next.AcceptedAt
	case schema.FavorCompleted:
		set["completed_at"] = next.CompletedAt
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.FavorCollection).UpdateOne(ctx,
		bson.M{"_id": current.ID, "status": current.Status},
		bson.M{"$set": set},
	)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("update favor %s with error: %s", id, err)
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, ErrFavorConflict
	}

	log.WithFields(log.Fields{
		"prefix":   mongoLogPrefix,
		"favor_id": id,
		"action":   action.Kind,
		"actor":    action.Actor,
	}).Info("favor state changed")

	return &next, nil
}
