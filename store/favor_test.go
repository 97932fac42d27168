package store

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/taskbridge-api/favor"
	"github.com/bitmark-inc/taskbridge-api/schema"
)

var fixtureFavorID = primitive.NewObjectID()

type FavorTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewFavorTestSuite(connURI, dbName string) *FavorTestSuite {
	return &FavorTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *FavorTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(s.mongoClient, s.testDBName)
}

// SetupTest runs every test with a clean collection
func (s *FavorTestSuite) SetupTest() {
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *FavorTestSuite) TearDownSuite() {
	_ = s.CleanMongoDB()
	s.store.Close()
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *FavorTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	_, err := s.testDatabase.Collection(schema.FavorCollection).InsertOne(ctx, schema.Favor{
		ID:          fixtureFavorID,
		Title:       "Walk the dog",
		Description: "Twice a day for a week",
		CreatedAt:   time.Date(2020, 4, 1, 8, 0, 0, 0, time.UTC),
		Status:      schema.FavorOpen,
		PostedBy:    "c@x.com",
	})
	return err
}

// CleanMongoDB drop the whole test mongodb
func (s *FavorTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *FavorTestSuite) countFavors(filter bson.M) int64 {
	n, err := s.testDatabase.Collection(schema.FavorCollection).CountDocuments(context.Background(), filter)
	s.NoError(err)
	return n
}

// TestCreateFavorLifecycle walks one favor through the whole lifecycle
func (s *FavorTestSuite) TestCreateFavorLifecycle() {
	ctx := context.Background()

	created, err := s.store.CreateFavor(ctx, "Car broke down", "Stuck on Main Street", &schema.Location{
		Latitude:  43.6532,
		Longitude: -79.3832,
	}, "a@x.com")
	s.NoError(err)
	s.False(created.ID.IsZero())

	favors, err := s.store.ListFavorsWhere(ctx, schema.FieldPostedBy, "a@x.com")
	s.NoError(err)
	s.Len(favors, 1)
	s.Equal(schema.FavorOpen, favors[0].Status)
	s.Equal("a@x.com", favors[0].PostedBy)
	s.Equal("", favors[0].AcceptedBy)
	s.Equal(43.6532, favors[0].Location.Latitude)

	accepted, err := s.store.AcceptFavor(ctx, created.ID.Hex(), "b@x.com")
	s.NoError(err)
	s.Equal(schema.FavorInProgress, accepted.Status)

	favors, err = s.store.ListFavorsWhere(ctx, schema.FieldAcceptedBy, "b@x.com")
	s.NoError(err)
	s.Len(favors, 1)
	s.Equal(created.ID, favors[0].ID)

	favors, err = s.store.ListFavorsWhere(ctx, schema.FieldPostedBy, "b@x.com")
	s.NoError(err)
	s.Len(favors, 0)

	completed, err := s.store.CompleteFavor(ctx, created.ID.Hex(), "a@x.com")
	s.NoError(err)
	s.Equal(schema.FavorCompleted, completed.Status)

	stored, err := s.store.GetFavor(ctx, created.ID.Hex())
	s.NoError(err)
	s.Equal(schema.FavorCompleted, stored.Status)
	s.Equal("b@x.com", stored.AcceptedBy)
	s.NotNil(stored.AcceptedAt)
	s.NotNil(stored.CompletedAt)
}

func (s *FavorTestSuite) TestCreateFavorRejectsEmptyFields() {
	_, err := s.store.CreateFavor(context.Background(), "", "description", nil, "a@x.com")
	s.Equal(favor.ErrEmptyTitle, err)

	_, err = s.store.CreateFavor(context.Background(), "title", " ", nil, "a@x.com")
	s.Equal(favor.ErrEmptyDescription, err)

	s.Equal(int64(1), s.countFavors(bson.M{}))
}

func (s *FavorTestSuite) TestListFavorsNewestFirst() {
	_, err := s.store.CreateFavor(context.Background(), "Water plants", "While I am away", nil, "a@x.com")
	s.NoError(err)

	favors, err := s.store.ListFavors(context.Background())
	s.NoError(err)
	s.Len(favors, 2)
	s.Equal("Water plants", favors[0].Title)
	s.Equal(fixtureFavorID, favors[1].ID)
}

func (s *FavorTestSuite) TestListFavorsWhereUnsupportedField() {
	_, err := s.store.ListFavorsWhere(context.Background(), schema.FavorField("status"), "open")
	s.Equal(ErrUnsupportedField, err)
}

func (s *FavorTestSuite) TestGetFavorNotFound() {
	_, err := s.store.GetFavor(context.Background(), "not-an-object-id")
	s.Equal(ErrFavorNotFound, err)

	_, err = s.store.GetFavor(context.Background(), primitive.NewObjectID().Hex())
	s.Equal(ErrFavorNotFound, err)
}

func (s *FavorTestSuite) TestAcceptRejectsIllegalEdges() {
	ctx := context.Background()

	_, err := s.store.AcceptFavor(ctx, fixtureFavorID.Hex(), "c@x.com")
	s.True(errors.Is(err, favor.ErrSelfAccept))

	_, err = s.store.CompleteFavor(ctx, fixtureFavorID.Hex(), "c@x.com")
	s.True(errors.Is(err, favor.ErrNotInProgress))

	_, err = s.store.AcceptFavor(ctx, fixtureFavorID.Hex(), "b@x.com")
	s.NoError(err)

	_, err = s.store.AcceptFavor(ctx, fixtureFavorID.Hex(), "d@x.com")
	s.True(errors.Is(err, favor.ErrAlreadyAccepted))

	_, err = s.store.CompleteFavor(ctx, fixtureFavorID.Hex(), "b@x.com")
	s.True(errors.Is(err, favor.ErrNotPoster))

	s.Equal(int64(1), s.countFavors(bson.M{"accepted_by": "b@x.com", "status": schema.FavorInProgress}))
}

// TestConcurrentAccept makes sure only one acceptor wins a race
func (s *FavorTestSuite) TestConcurrentAccept() {
	acceptors := []string{"b@x.com", "d@x.com", "e@x.com", "f@x.com"}
	errs := make([]error, len(acceptors))

	var wg sync.WaitGroup
	for i, a := range acceptors {
		wg.Add(1)
		go func(i int, acceptor string) {
			defer wg.Done()
			_, errs[i] = s.store.AcceptFavor(context.Background(), fixtureFavorID.Hex(), acceptor)
		}(i, a)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.True(err == ErrFavorConflict || errors.Is(err, favor.ErrAlreadyAccepted), "unexpected error: %s", err)
	}
	s.Equal(1, succeeded)
	s.Equal(int64(1), s.countFavors(bson.M{"status": schema.FavorInProgress}))
}

func TestFavorTestSuite(t *testing.T) {
	connURI := os.Getenv("TASKBRIDGE_TEST_MONGO_CONN")
	if connURI == "" {
		t.Skip("TASKBRIDGE_TEST_MONGO_CONN is not set")
	}
	suite.Run(t, NewFavorTestSuite(connURI, "taskbridge-test-db"))
}
