package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/taskbridge-api/schema"
)

//go:generate mockgen -destination=mocks/client.go -package=mocks github.com/bitmark-inc/taskbridge-api/client Authenticator,Repository,Notifier,Navigator,TokenStore

const (
	clientLogPrefix = "client"

	defaultClientType    = "cli"
	defaultClientVersion = 1
	defaultTimeout       = 10 * time.Second
)

// Grant is the result of a successful sign up or sign in
type Grant struct {
	Token    string          `json:"jwt_token"`
	ExpireIn int64           `json:"expire_in"`
	ExpireAt time.Time       `json:"expire_at,omitempty"`
	Identity schema.Identity `json:"identity"`
}

// Expired reports whether the token is past its expiry at now. A grant
// without a known expiry never expires locally.
func (g Grant) Expired(now time.Time) bool {
	return !g.ExpireAt.IsZero() && !now.Before(g.ExpireAt)
}

// Authenticator talks to the identity service
type Authenticator interface {
	SignUp(ctx context.Context, email, password string) (*Grant, error)
	SignIn(ctx context.Context, email, password string) (*Grant, error)
}

// Repository is the remote favor collection. Writes act on behalf of the
// identity holding the current token.
type Repository interface {
	CreateFavor(ctx context.Context, title, description string, loc *schema.Location) (*schema.Favor, error)
	ListAllFavors(ctx context.Context) ([]schema.Favor, error)
	ListFavorsWhere(ctx context.Context, field schema.FavorField, identity string) ([]schema.Favor, error)
	AcceptFavor(ctx context.Context, id string) (*schema.Favor, error)
	CompleteFavor(ctx context.Context, id string) (*schema.Favor, error)
}

// TokenSource provides the bearer token attached to requests
type TokenSource interface {
	Token() string
}

// TokenInvalidator is implemented by token sources which drop a token once
// the api refuses it
type TokenInvalidator interface {
	Invalidate(token string)
}

// Client is the http client of the taskbridge api
type Client struct {
	baseURL       string
	httpClient    *http.Client
	clientType    string
	clientVersion int

	lock   sync.RWMutex
	tokens TokenSource
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithClientType(clientType string, version int) Option {
	return func(cl *Client) {
		cl.clientType = clientType
		cl.clientVersion = version
	}
}

// New returns a client for the api served at baseURL
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{Timeout: defaultTimeout},
		clientType:    defaultClientType,
		clientVersion: defaultClientVersion,
	}

	for _, o := range options {
		o(c)
	}
	return c
}

// UseTokenSource sets where the bearer token is read from for every request
func (c *Client) UseTokenSource(ts TokenSource) {
	c.lock.Lock()
	c.tokens = ts
	c.lock.Unlock()
}

func (c *Client) token() string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func (c *Client) invalidate(token string) {
	c.lock.RLock()
	ts := c.tokens
	c.lock.RUnlock()

	if i, ok := ts.(TokenInvalidator); ok {
		i.Invalidate(token)
	}
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*Grant, error) {
	var g Grant
	if err := c.do(ctx, "POST", "/api/accounts", credentialsBody(email, password), &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Grant, error) {
	var g Grant
	if err := c.do(ctx, "POST", "/api/auth", credentialsBody(email, password), &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func credentialsBody(email, password string) map[string]string {
	return map[string]string{
		"email":    email,
		"password": password,
	}
}

func (c *Client) CreateFavor(ctx context.Context, title, description string, loc *schema.Location) (*schema.Favor, error) {
	body := map[string]interface{}{
		"title":       title,
		"description": description,
	}
	if loc != nil {
		body["location"] = loc
	}

	var resp struct {
		Result schema.Favor `json:"result"`
	}
	if err := c.do(ctx, "POST", "/api/favors", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

func (c *Client) ListAllFavors(ctx context.Context) ([]schema.Favor, error) {
	return c.listFavors(ctx, "/api/favors")
}

func (c *Client) ListFavorsWhere(ctx context.Context, field schema.FavorField, identity string) ([]schema.Favor, error) {
	q := url.Values{}
	q.Set(string(field), identity)
	return c.listFavors(ctx, "/api/favors?"+q.Encode())
}

func (c *Client) listFavors(ctx context.Context, path string) ([]schema.Favor, error) {
	var resp struct {
		Result []schema.Favor `json:"result"`
	}
	if err := c.do(ctx, "GET", path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

func (c *Client) AcceptFavor(ctx context.Context, id string) (*schema.Favor, error) {
	return c.transit(ctx, id, "accept")
}

func (c *Client) CompleteFavor(ctx context.Context, id string) (*schema.Favor, error) {
	return c.transit(ctx, id, "complete")
}

func (c *Client) transit(ctx context.Context, id, action string) (*schema.Favor, error) {
	var resp struct {
		Result schema.Favor `json:"result"`
	}
	path := fmt.Sprintf("/api/favors/%s/%s", url.PathEscape(id), action)
	if err := c.do(ctx, "POST", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

// do sends the request with the current token. When the api refuses the
// token, the token source is told and reads are sent again without it.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = b
	}

	token := c.token()
	err := c.send(ctx, method, path, payload, token, out)

	var apiErr *APIError
	if token == "" || !errors.As(err, &apiErr) || !apiErr.rejectsToken() {
		return err
	}

	log.WithField("prefix", clientLogPrefix).WithField("code", apiErr.Code).Info("token refused by the api")
	c.invalidate(token)

	if method != http.MethodGet {
		return err
	}
	return c.send(ctx, method, path, payload, "", out)
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, token string, out interface{}) error {
	logger := log.WithField("prefix", clientLogPrefix)

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Client-Type", c.clientType)
	req.Header.Set("Client-Version", strconv.Itoa(c.clientVersion))
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).WithField("path", path).Debug("request failed")
		return fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNetwork, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(d, apiErr); err != nil {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		logger.WithField("path", path).WithField("code", apiErr.Code).Debug("api returned an error")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(d, out); err != nil {
		return fmt.Errorf("%w: %s", ErrService, err)
	}
	return nil
}
