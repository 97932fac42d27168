package client_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/taskbridge-api/client"
	"github.com/bitmark-inc/taskbridge-api/favor"
	"github.com/bitmark-inc/taskbridge-api/schema"
)

// memoryRepository acts like the api for whoever holds the session token
type memoryRepository struct {
	session *client.Session

	sync.Mutex
	favors []schema.Favor
}

func (m *memoryRepository) actor() string {
	if id := m.session.CurrentIdentity(); id != nil {
		return id.Email
	}
	return schema.AnonymousPoster
}

func (m *memoryRepository) CreateFavor(_ context.Context, title, description string, loc *schema.Location) (*schema.Favor, error) {
	if err := favor.ValidateDraft(title, description); err != nil {
		return nil, err
	}

	m.Lock()
	defer m.Unlock()
	f := schema.Favor{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Location:    loc,
		CreatedAt:   time.Now(),
		Status:      schema.FavorOpen,
		PostedBy:    m.actor(),
	}
	m.favors = append([]schema.Favor{f}, m.favors...)
	return &f, nil
}

func (m *memoryRepository) ListAllFavors(context.Context) ([]schema.Favor, error) {
	m.Lock()
	defer m.Unlock()
	return append([]schema.Favor{}, m.favors...), nil
}

func (m *memoryRepository) ListFavorsWhere(_ context.Context, field schema.FavorField, identity string) ([]schema.Favor, error) {
	m.Lock()
	defer m.Unlock()
	result := []schema.Favor{}
	for _, f := range m.favors {
		if (field == schema.FieldPostedBy && f.PostedBy == identity) ||
			(field == schema.FieldAcceptedBy && f.AcceptedBy == identity) {
			result = append(result, f)
		}
	}
	return result, nil
}

func (m *memoryRepository) AcceptFavor(_ context.Context, id string) (*schema.Favor, error) {
	return m.transit(id, favor.AcceptBy(m.actor()))
}

func (m *memoryRepository) CompleteFavor(_ context.Context, id string) (*schema.Favor, error) {
	return m.transit(id, favor.CompleteBy(m.actor()))
}

func (m *memoryRepository) transit(id string, a favor.Action) (*schema.Favor, error) {
	m.Lock()
	defer m.Unlock()
	for i, f := range m.favors {
		if f.ID.Hex() != id {
			continue
		}
		next, err := favor.Transition(f, a, time.Now())
		if err != nil {
			return nil, err
		}
		m.favors[i] = next
		return &next, nil
	}
	return nil, client.ErrFavorNotFound
}

type fakeAuthenticator struct{}

func (fakeAuthenticator) SignUp(ctx context.Context, email, password string) (*client.Grant, error) {
	return grantFor(email), nil
}

func (fakeAuthenticator) SignIn(ctx context.Context, email, password string) (*client.Grant, error) {
	return grantFor(email), nil
}

type recorder struct {
	errors []error
	infos  []string
	routes []string
}

func (r *recorder) Error(_ string, err error) {
	r.errors = append(r.errors, err)
}

func (r *recorder) Info(_ string, message *i18n.Message) {
	r.infos = append(r.infos, message.ID)
}

func (r *recorder) Navigate(route string) {
	r.routes = append(r.routes, route)
}

func TestFavorLifecycleScenario(t *testing.T) {
	ctx := context.Background()

	session, err := client.NewSession(fakeAuthenticator{}, nil)
	assert.NoError(t, err)

	repo := &memoryRepository{session: session}
	ui := &recorder{}

	post := client.NewPostFavorFlow(repo, nil, ui, ui, false)
	feed := client.NewFeedFlow(repo, ui)
	profile := client.NewProfileFlow(repo, session, ui, ui)

	// A posts a favor
	_, err = session.SignIn(ctx, "a@x.com", "secret1")
	assert.NoError(t, err)

	post.SetDraft("Car broke down", "My car stopped working on Main Street. Need urgent help!")
	created, err := post.Submit(ctx, session.CurrentIdentity())
	assert.NoError(t, err)
	assert.Equal(t, []string{client.RouteFeed}, ui.routes)
	assert.Equal(t, []string{client.MessageFavorPosted.ID}, ui.infos)

	assert.NoError(t, feed.Refresh(ctx, session.CurrentIdentity()))
	items := feed.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, schema.FavorOpen, items[0].Favor.Status)
	assert.Equal(t, "a@x.com", items[0].Favor.PostedBy)
	assert.Empty(t, items[0].Favor.AcceptedBy)

	// B accepts it
	_, err = session.SignIn(ctx, "b@x.com", "secret1")
	assert.NoError(t, err)
	assert.NoError(t, feed.Focus(ctx, session.CurrentIdentity()))
	assert.NoError(t, feed.Accept(ctx, session.CurrentIdentity(), created.ID.Hex()))

	accepted, _ := repo.ListFavorsWhere(ctx, schema.FieldAcceptedBy, "b@x.com")
	assert.Len(t, accepted, 1)
	posted, _ := repo.ListFavorsWhere(ctx, schema.FieldPostedBy, "b@x.com")
	assert.Len(t, posted, 0)

	err = feed.Accept(ctx, session.CurrentIdentity(), created.ID.Hex())
	assert.Error(t, err, "accepting twice is not a silent success")

	// A completes it
	_, err = session.SignIn(ctx, "a@x.com", "secret1")
	assert.NoError(t, err)
	assert.NoError(t, feed.Focus(ctx, session.CurrentIdentity()))
	assert.NoError(t, feed.Complete(ctx, session.CurrentIdentity(), created.ID.Hex()))
	assert.Equal(t, schema.FavorCompleted, feed.Items()[0].Favor.Status)

	p, err := profile.Mount(ctx, session.CurrentIdentity())
	assert.NoError(t, err)
	assert.Equal(t, favor.TierBronze, p.Tier)

	assert.NoError(t, profile.Logout())
	assert.Nil(t, session.CurrentIdentity())
	assert.Equal(t, client.RouteLogin, ui.routes[len(ui.routes)-1])

	p, err = profile.Mount(ctx, session.CurrentIdentity())
	assert.NoError(t, err)
	assert.Nil(t, p)
}
