// Package api is the typed client for the dog-shelter search service.
package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cristianoliveira/pawmatch/internal/domain"
	"github.com/cristianoliveira/pawmatch/internal/logging"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/cristianoliveira/pawmatch/internal/api")

const (
	pathLogin  = "/auth/login"
	pathLogout = "/auth/logout"
	pathBreeds = "/dogs/breeds"
	pathSearch = "/dogs/search"
	pathDogs   = "/dogs"
	pathMatch  = "/dogs/match"
)

// Service is the set of remote operations used by the views and subcommands.
type Service interface {
	Login(ctx context.Context, name, email string) (*Session, error)
	Logout(ctx context.Context, sess *Session) error
	ListBreeds(ctx context.Context, sess *Session) ([]string, error)
	Search(ctx context.Context, sess *Session, params domain.SearchParams) (domain.SearchResult, error)
	FetchDogs(ctx context.Context, sess *Session, ids []string) ([]domain.Dog, error)
	Match(ctx context.Context, sess *Session, ids []string) (domain.MatchResult, error)
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// TraceHTTP dumps full requests and responses into the debug log.
	TraceHTTP bool
	Logger    logging.Logger
	Now       func() time.Time
}

// Client talks to the remote service. It holds no credentials of its own;
// every authenticated call takes the Session returned by Login.
type Client struct {
	http *resty.Client
	now  func() time.Time
}

var _ Service = (*Client)(nil)

// New builds a Client from opts.
func New(opts Options) *Client {
	log := opts.Logger
	if log == nil {
		log = logging.GetGlobal()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetCookieJar(nil).
		SetLogger(restyLogger{log: log}).
		SetDebug(opts.TraceHTTP).
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		httpClient.SetHeader("User-Agent", opts.UserAgent)
	}
	instrumentResty(httpClient, log.With("component", "api"))

	return &Client{http: httpClient, now: now}
}

type loginBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login authenticates name/email and returns the issued Session.
func (c *Client) Login(ctx context.Context, name, email string) (sess *Session, err error) {
	const op = "login"
	ctx, span := tracer.Start(ctx, "client:Login")
	defer func() { endSpan(span, err) }()

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(loginBody{Name: name, Email: email}).
		Post(pathLogin)
	if err != nil {
		return nil, &AuthError{Op: op, Err: err}
	}
	span.SetAttributes(attribute.Int("http.status_code", res.StatusCode()))
	if !res.IsSuccess() {
		return nil, &AuthError{Op: op, StatusCode: res.StatusCode(), Err: statusErr(res.Status(), res.Body())}
	}

	return &Session{
		name:      name,
		email:     email,
		cookies:   cloneCookies(res.Cookies()),
		createdAt: c.now(),
		valid:     true,
	}, nil
}

// Logout ends sess on the server. The session is invalidated only on success.
func (c *Client) Logout(ctx context.Context, sess *Session) (err error) {
	const op = "logout"
	ctx, span := tracer.Start(ctx, "client:Logout")
	defer func() { endSpan(span, err) }()

	if !sess.Valid() {
		return &AuthError{Op: op, Err: ErrNoSession}
	}
	res, err := c.http.R().
		SetContext(ctx).
		SetCookies(sess.Cookies()).
		Post(pathLogout)
	if err != nil {
		return &AuthError{Op: op, Err: err}
	}
	span.SetAttributes(attribute.Int("http.status_code", res.StatusCode()))
	if !res.IsSuccess() {
		return &AuthError{Op: op, StatusCode: res.StatusCode(), Err: statusErr(res.Status(), res.Body())}
	}
	sess.invalidate()
	return nil
}

// ListBreeds returns the breed catalog.
func (c *Client) ListBreeds(ctx context.Context, sess *Session) (breeds []string, err error) {
	ctx, span := tracer.Start(ctx, "client:ListBreeds")
	defer func() { endSpan(span, err) }()

	err = c.do(ctx, span, sess, "list breeds", http.MethodGet, pathBreeds, nil, nil, &breeds)
	if err != nil {
		return nil, err
	}
	return breeds, nil
}

// Search runs a dog search. Unset params are omitted from the query.
func (c *Client) Search(ctx context.Context, sess *Session, params domain.SearchParams) (result domain.SearchResult, err error) {
	ctx, span := tracer.Start(ctx, "client:Search")
	defer func() { endSpan(span, err) }()

	query := SearchQuery(params)
	span.SetAttributes(attribute.String("query", query.Encode()))

	err = c.do(ctx, span, sess, "search", http.MethodGet, pathSearch, query, nil, &result)
	if err != nil {
		return domain.SearchResult{}, err
	}
	return result, nil
}

// FetchDogs hydrates ids into dogs. No request is made for an empty list.
func (c *Client) FetchDogs(ctx context.Context, sess *Session, ids []string) (dogs []domain.Dog, err error) {
	if len(ids) == 0 {
		return []domain.Dog{}, nil
	}
	ctx, span := tracer.Start(ctx, "client:FetchDogs")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.Int("ids", len(ids)))

	err = c.do(ctx, span, sess, "fetch dogs", http.MethodPost, pathDogs, nil, ids, &dogs)
	if err != nil {
		return nil, err
	}
	return dogs, nil
}

// Match asks the service to pick one id from ids.
func (c *Client) Match(ctx context.Context, sess *Session, ids []string) (result domain.MatchResult, err error) {
	const op = "match"
	if len(ids) == 0 {
		return domain.MatchResult{}, &ServiceError{Op: op, Err: ErrNoCandidates}
	}
	ctx, span := tracer.Start(ctx, "client:Match")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.Int("ids", len(ids)))

	err = c.do(ctx, span, sess, op, http.MethodPost, pathMatch, nil, ids, &result)
	if err != nil {
		return domain.MatchResult{}, err
	}
	return result, nil
}

// do performs one authenticated call and decodes a 2xx JSON body into out.
func (c *Client) do(ctx context.Context, span trace.Span, sess *Session, op, method, path string, query url.Values, body, out any) error {
	if !sess.Valid() {
		return &AuthError{Op: op, Err: ErrNoSession}
	}
	req := c.http.R().
		SetContext(ctx).
		SetCookies(sess.Cookies()).
		SetResult(out).
		ForceContentType("application/json")
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}
	res, err := req.Execute(method, path)
	if err != nil {
		return &ServiceError{Op: op, Err: err}
	}
	span.SetAttributes(attribute.Int("http.status_code", res.StatusCode()))
	if !res.IsSuccess() {
		return &ServiceError{Op: op, StatusCode: res.StatusCode(), Err: statusErr(res.Status(), res.Body())}
	}
	return nil
}

// Set-valued search keys use the bracket form, one pair per value.
const (
	queryBreeds   = "breeds[]"
	queryZipCodes = "zipCodes[]"
)

// SearchQuery encodes params as the search query string.
func SearchQuery(params domain.SearchParams) url.Values {
	q := url.Values{}
	for _, b := range params.Breeds {
		q.Add(queryBreeds, b)
	}
	for _, z := range params.ZipCodes {
		q.Add(queryZipCodes, z)
	}
	setInt := func(key string, v *int) {
		if v != nil {
			q.Set(key, strconv.Itoa(*v))
		}
	}
	setInt("ageMin", params.AgeMin)
	setInt("ageMax", params.AgeMax)
	setInt("size", params.Size)
	setInt("from", params.From)
	if params.Sort != "" {
		q.Set("sort", params.Sort)
	}
	return q
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
