// Package users exposes read-only queries against the Roblox friends, users
// and groups web APIs. A User handle is bound to one numeric identifier;
// every method performs a single GET through the transport layer and decodes
// the JSON document it returns.
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/roblokit/roblokit/pkg/transport"
)

const (
	friendsHost = "https://friends.roblox.com"
	usersHost   = "https://users.roblox.com"
	groupsHost  = "https://groups.roblox.com"

	// webOrigin is sent as the Referer on every request.
	webOrigin = "https://www.roblox.com/"
)

// User is a handle on one Roblox account. Handles are cheap; build one per
// user id. A handle must be used from one goroutine at a time.
type User struct {
	id      uint64
	engine  transport.Engine
	log     *zap.Logger
	timeout time.Duration
}

// Option configures a User handle.
type Option func(*User)

// WithEngine injects a transport backend, replacing the default resty engine.
func WithEngine(e transport.Engine) Option {
	return func(u *User) { u.engine = e }
}

// WithLogger attaches a logger for debug-level dispatch traces. The default
// is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(u *User) { u.log = l }
}

// WithTimeout bounds each dispatch through the default engine. Ignored when
// WithEngine is also given.
func WithTimeout(d time.Duration) Option {
	return func(u *User) { u.timeout = d }
}

// New builds a handle for the given user id.
func New(id uint64, opts ...Option) *User {
	u := &User{
		id:      id,
		log:     zap.NewNop(),
		timeout: transport.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.engine == nil {
		u.engine = transport.NewRestyEngine(u.timeout)
	}
	return u
}

// ID returns the user id the handle is bound to.
func (u *User) ID() uint64 { return u.id }

// Friends lists the user's friends. sort selects the server-side ordering.
func (u *User) Friends(ctx context.Context, sort string) (*FriendsPage, error) {
	url := fmt.Sprintf("%s/v1/users/%d/friends?userSort=%s", friendsHost, u.id, sort)
	var page FriendsPage
	if err := u.getJSON(ctx, "friends", url, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Followers lists the users following this user, limit entries per page.
func (u *User) Followers(ctx context.Context, sortOrder string, limit int) (*FollowerPage, error) {
	url := fmt.Sprintf("%s/v1/users/%d/followers?sortOrder=%s&limit=%d", friendsHost, u.id, sortOrder, limit)
	var page FollowerPage
	if err := u.getJSON(ctx, "followers", url, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Followings lists the users this user follows, limit entries per page.
func (u *User) Followings(ctx context.Context, sortOrder string, limit int) (*FollowerPage, error) {
	url := fmt.Sprintf("%s/v1/users/%d/followings?sortOrder=%s&limit=%d", friendsHost, u.id, sortOrder, limit)
	var page FollowerPage
	if err := u.getJSON(ctx, "followings", url, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FriendsCount returns the number of friends.
func (u *User) FriendsCount(ctx context.Context) (int64, error) {
	return u.count(ctx, "friends count", fmt.Sprintf("%s/v1/users/%d/friends/count", friendsHost, u.id))
}

// FollowersCount returns the number of followers.
func (u *User) FollowersCount(ctx context.Context) (int64, error) {
	return u.count(ctx, "followers count", fmt.Sprintf("%s/v1/users/%d/followers/count", friendsHost, u.id))
}

// FollowingsCount returns the number of users this user follows.
func (u *User) FollowingsCount(ctx context.Context) (int64, error) {
	return u.count(ctx, "followings count", fmt.Sprintf("%s/v1/users/%d/followings/count", friendsHost, u.id))
}

// FriendsOnline lists the friends that are currently online.
func (u *User) FriendsOnline(ctx context.Context) (*OnlineFriendsPage, error) {
	url := fmt.Sprintf("%s/v1/users/%d/friends/online", friendsHost, u.id)
	var page OnlineFriendsPage
	if err := u.getJSON(ctx, "friends online", url, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Profile returns the full user document.
func (u *User) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := u.getJSON(ctx, "user profile", u.profileURL(), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Username returns the account name. Each call performs its own GET.
func (u *User) Username(ctx context.Context) (string, error) {
	return u.profileField(ctx, "name")
}

// DisplayName returns the display name. Each call performs its own GET.
func (u *User) DisplayName(ctx context.Context) (string, error) {
	return u.profileField(ctx, "displayName")
}

// Description returns the profile description. Each call performs its own GET.
func (u *User) Description(ctx context.Context) (string, error) {
	return u.profileField(ctx, "description")
}

// Groups lists the user's group memberships with the role held in each.
func (u *User) Groups(ctx context.Context) (*GroupRolesPage, error) {
	var page GroupRolesPage
	if err := u.getJSON(ctx, "groups", u.groupRolesURL(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GroupsCount returns the number of groups the user belongs to, measured as
// the length of the decoded memberships listing.
func (u *User) GroupsCount(ctx context.Context) (int, error) {
	var page GroupRolesPage
	if err := u.getJSON(ctx, "groups count", u.groupRolesURL(), &page); err != nil {
		return 0, err
	}
	return len(page.Data), nil
}

func (u *User) profileURL() string {
	return fmt.Sprintf("%s/v1/users/%d", usersHost, u.id)
}

func (u *User) groupRolesURL() string {
	return fmt.Sprintf("%s/v1/users/%d/groups/roles", groupsHost, u.id)
}

// get performs one GET through the transport layer and applies the facade's
// status policy: transport failures and non-2xx responses come back as
// errors, never as empty documents.
func (u *User) get(ctx context.Context, endpoint, url string) (*transport.Response, error) {
	req := transport.NewRequest(url)
	req.SetEngine(u.engine)
	req.SetHeader("Referer", webOrigin)
	if err := req.Initialize(); err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}

	res, err := req.Get(ctx)
	if err != nil {
		u.log.Debug("dispatch failed",
			zap.String("endpoint", endpoint),
			zap.String("url", url),
			zap.Error(err))
		return nil, err
	}
	u.log.Debug("dispatched",
		zap.String("endpoint", endpoint),
		zap.String("url", url),
		zap.Int("status", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{
			Endpoint:   endpoint,
			StatusCode: res.StatusCode,
			Snippet:    bodySnippet(res.Body),
		}
	}
	return res, nil
}

func (u *User) getJSON(ctx context.Context, endpoint, url string, out any) error {
	res, err := u.get(ctx, endpoint, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(res.Body, out); err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}
	return nil
}

// count fetches a {"count":N} document.
func (u *User) count(ctx context.Context, endpoint, url string) (int64, error) {
	var doc countDocument
	if err := u.getJSON(ctx, endpoint, url, &doc); err != nil {
		return 0, err
	}
	return doc.Count, nil
}

// profileField extracts one named string field from the user document.
func (u *User) profileField(ctx context.Context, field string) (string, error) {
	res, err := u.get(ctx, "user profile", u.profileURL())
	if err != nil {
		return "", err
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(res.Body, &doc); err != nil {
		return "", &DecodeError{Endpoint: "user profile", Err: err}
	}
	raw, ok := doc[field]
	if !ok {
		return "", &FieldMissingError{Endpoint: "user profile", Field: field}
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", &FieldMissingError{Endpoint: "user profile", Field: field}
	}
	return value, nil
}

// bodySnippet trims a response body down to a loggable fragment.
func bodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
