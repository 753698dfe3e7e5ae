package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Payload is an opaque request body for create and update calls.
type Payload = map[string]any

// Server defaults applied by Page when a value is not positive.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// Resource wraps the uniform CRUD routes of one collection.
type Resource struct {
	c    *Client
	path string
}

// GetAll fetches the whole collection.
func (r Resource) GetAll(ctx context.Context) (json.RawMessage, error) {
	return r.c.Request(ctx, r.path, nil)
}

// Page fetches one page of the collection. A page or limit below 1 is sent
// as the server default.
func (r Resource) Page(ctx context.Context, page, limit int) (json.RawMessage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return r.c.Request(ctx, fmt.Sprintf("%s?page=%d&limit=%d", r.path, page, limit), nil)
}

// GetOne fetches a single item by id.
func (r Resource) GetOne(ctx context.Context, id string) (json.RawMessage, error) {
	return r.c.Request(ctx, r.item(id), nil)
}

// GetBySlug fetches a single item by its URL slug.
func (r Resource) GetBySlug(ctx context.Context, slug string) (json.RawMessage, error) {
	return r.c.Request(ctx, r.path+"/slug/"+url.PathEscape(slug), nil)
}

// Create posts a new item and returns it.
func (r Resource) Create(ctx context.Context, data Payload) (json.RawMessage, error) {
	return r.c.Request(ctx, r.path, &RequestOptions{Method: http.MethodPost, Body: data})
}

// Update patches an item and returns it.
func (r Resource) Update(ctx context.Context, id string, data Payload) (json.RawMessage, error) {
	return r.c.Request(ctx, r.item(id), &RequestOptions{Method: http.MethodPatch, Body: data})
}

// Delete soft-deletes an item.
func (r Resource) Delete(ctx context.Context, id string) error {
	_, err := r.c.Request(ctx, r.item(id), &RequestOptions{Method: http.MethodDelete})
	return err
}

func (r Resource) item(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func (c *Client) Services() Resource { return Resource{c: c, path: "/services"} }
func (c *Client) Tours() Resource    { return Resource{c: c, path: "/tours"} }
func (c *Client) Users() Resource    { return Resource{c: c, path: "/users"} }

// BookingsResource adds reference lookup and status changes.
type BookingsResource struct{ Resource }

func (c *Client) Bookings() BookingsResource {
	return BookingsResource{Resource{c: c, path: "/bookings"}}
}

// GetByReference is the public lookup used by customers.
func (r BookingsResource) GetByReference(ctx context.Context, referenceNo string) (json.RawMessage, error) {
	return r.c.Request(ctx, r.path+"/reference/"+url.PathEscape(referenceNo), nil)
}

// UpdateStatus moves a booking to status.
func (r BookingsResource) UpdateStatus(ctx context.Context, id, status string) (json.RawMessage, error) {
	endpoint := r.item(id) + "/status?status=" + url.QueryEscape(status)
	return r.c.Request(ctx, endpoint, &RequestOptions{Method: http.MethodPatch})
}

// BlogResource separates the published listing from the admin listing.
type BlogResource struct{ Resource }

func (c *Client) Blog() BlogResource {
	return BlogResource{Resource{c: c, path: "/blog"}}
}

// GetPublic lists published posts.
func (r BlogResource) GetPublic(ctx context.Context) (json.RawMessage, error) {
	return r.c.Request(ctx, r.path+"/public", nil)
}

// GetAdmin lists every post, drafts included.
func (r BlogResource) GetAdmin(ctx context.Context) (json.RawMessage, error) {
	return r.c.Request(ctx, r.path+"/admin", nil)
}

// ContactsResource adds the inbox workflow transitions.
type ContactsResource struct{ Resource }

func (c *Client) Contacts() ContactsResource {
	return ContactsResource{Resource{c: c, path: "/contacts"}}
}

// MarkAsRead flags a message as read.
func (r ContactsResource) MarkAsRead(ctx context.Context, id string) (json.RawMessage, error) {
	return r.c.Request(ctx, r.item(id)+"/read", &RequestOptions{Method: http.MethodPatch})
}

// Respond records a reply and emails it to the sender.
func (r ContactsResource) Respond(ctx context.Context, id, response string) (json.RawMessage, error) {
	return r.c.Request(ctx, r.item(id)+"/respond", &RequestOptions{
		Method: http.MethodPatch,
		Body:   Payload{"response": response},
	})
}

// Stats mirrors the admin dashboard counters.
type Stats struct {
	Users          int `json:"users"`
	Services       int `json:"services"`
	Tours          int `json:"tours"`
	Bookings       int `json:"bookings"`
	Posts          int `json:"posts"`
	UnreadContacts int `json:"unreadContacts"`
}

// AdminStats fetches the dashboard counters.
func (c *Client) AdminStats(ctx context.Context) (*Stats, error) {
	raw, err := c.Request(ctx, "/admin/stats", nil)
	if err != nil {
		return nil, err
	}
	var stats Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}
	return &stats, nil
}
