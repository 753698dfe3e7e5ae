package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lexluc/lexluc-platform/pkg/apiclient"
	"github.com/lexluc/lexluc-platform/pkg/credstore"
)

// print writes v as indented JSON.
func (a *app) print(v any) error {
	if raw, ok := v.(json.RawMessage); ok {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return fmt.Errorf("invalid JSON from server: %w", err)
		}
		buf.WriteByte('\n')
		_, err := buf.WriteTo(a.out)
		return err
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// mutated prints the result of a write and drops cached reads it may have
// made stale.
func (a *app) mutated(raw json.RawMessage, err error) error {
	if err != nil {
		return err
	}
	a.client.ClearCache()
	if len(raw) == 0 {
		return nil
	}
	return a.print(raw)
}

// Paging selects an optional page of a listing.
type Paging struct {
	Page  int `help:"Page number (1-based)."`
	Limit int `help:"Items per page."`
}

func (p Paging) list(a *app, r apiclient.Resource) error {
	var (
		raw json.RawMessage
		err error
	)
	if p.Page > 0 || p.Limit > 0 {
		raw, err = r.Page(a.ctx, p.Page, p.Limit)
	} else {
		raw, err = r.GetAll(a.ctx)
	}
	if err != nil {
		return err
	}
	return a.print(raw)
}

func parsePayload(data string) (apiclient.Payload, error) {
	var p apiclient.Payload
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("--data must be a JSON object: %w", err)
	}
	return p, nil
}

type LoginCmd struct {
	Email    string `required:"" help:"Account email."`
	Password string `required:"" help:"Account password." env:"SITECTL_PASSWORD"`
}

func (c *LoginCmd) Run(a *app) error {
	res, err := a.client.Auth().Login(a.ctx, c.Email, c.Password)
	if err != nil {
		return err
	}
	if err := a.store.Save(res.AccessToken, res.User); err != nil {
		return err
	}
	a.client.ClearCache()
	return a.print(res.User)
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(a *app) error {
	if a.store.Token() == "" {
		return credstore.ErrNoSession
	}
	return a.client.Auth().Logout(a.ctx)
}

type WhoamiCmd struct {
	Offline bool `help:"Print the stored profile without calling the API."`
}

func (c *WhoamiCmd) Run(a *app) error {
	if c.Offline {
		u, err := a.store.User()
		if err != nil {
			return err
		}
		return a.print(u)
	}
	raw, err := a.client.Auth().Profile(a.ctx)
	if err != nil {
		return err
	}
	return a.print(raw)
}

type ServicesCmd struct {
	List   ServicesListCmd   `cmd:"" help:"List services."`
	Get    ServicesGetCmd    `cmd:"" help:"Show a service by id or slug."`
	Create ServicesCreateCmd `cmd:"" help:"Create a service."`
	Delete ServicesDeleteCmd `cmd:"" help:"Delete a service."`
}

type ServicesListCmd struct {
	Paging `embed:""`
}

func (c *ServicesListCmd) Run(a *app) error { return c.list(a, a.client.Services()) }

type ServicesGetCmd struct {
	ID   string `arg:"" help:"Service id, or slug with --slug."`
	Slug bool   `help:"Treat the argument as a slug."`
}

func (c *ServicesGetCmd) Run(a *app) error {
	get := a.client.Services().GetOne
	if c.Slug {
		get = a.client.Services().GetBySlug
	}
	raw, err := get(a.ctx, c.ID)
	if err != nil {
		return err
	}
	return a.print(raw)
}

type ServicesCreateCmd struct {
	Data string `required:"" help:"Service fields as a JSON object."`
}

func (c *ServicesCreateCmd) Run(a *app) error {
	p, err := parsePayload(c.Data)
	if err != nil {
		return err
	}
	return a.mutated(a.client.Services().Create(a.ctx, p))
}

type ServicesDeleteCmd struct {
	ID string `arg:"" help:"Service id."`
}

func (c *ServicesDeleteCmd) Run(a *app) error {
	return a.mutated(nil, a.client.Services().Delete(a.ctx, c.ID))
}

type ToursCmd struct {
	List ToursListCmd `cmd:"" help:"List active tours."`
	Get  ToursGetCmd  `cmd:"" help:"Show a tour by id or slug."`
}

type ToursListCmd struct {
	Paging `embed:""`
}

func (c *ToursListCmd) Run(a *app) error { return c.list(a, a.client.Tours()) }

type ToursGetCmd struct {
	ID   string `arg:"" help:"Tour id, or slug with --slug."`
	Slug bool   `help:"Treat the argument as a slug."`
}

func (c *ToursGetCmd) Run(a *app) error {
	get := a.client.Tours().GetOne
	if c.Slug {
		get = a.client.Tours().GetBySlug
	}
	raw, err := get(a.ctx, c.ID)
	if err != nil {
		return err
	}
	return a.print(raw)
}

type BookingsCmd struct {
	List   BookingsListCmd   `cmd:"" help:"List bookings."`
	Lookup BookingsLookupCmd `cmd:"" help:"Find a booking by reference number."`
	Status BookingsStatusCmd `cmd:"" help:"Change a booking's status."`
}

type BookingsListCmd struct {
	Paging `embed:""`
}

func (c *BookingsListCmd) Run(a *app) error { return c.list(a, a.client.Bookings().Resource) }

type BookingsLookupCmd struct {
	Reference string `arg:"" help:"Booking reference, e.g. LEX-20240101-ABC123."`
}

func (c *BookingsLookupCmd) Run(a *app) error {
	raw, err := a.client.Bookings().GetByReference(a.ctx, c.Reference)
	if err != nil {
		return err
	}
	return a.print(raw)
}

type BookingsStatusCmd struct {
	ID     string `arg:"" help:"Booking id."`
	Status string `arg:"" enum:"PENDING,CONFIRMED,CANCELLED,COMPLETED" help:"New status."`
}

func (c *BookingsStatusCmd) Run(a *app) error {
	return a.mutated(a.client.Bookings().UpdateStatus(a.ctx, c.ID, c.Status))
}

type BlogCmd struct {
	List BlogListCmd `cmd:"" help:"List blog posts."`
}

type BlogListCmd struct {
	Admin bool `help:"Include drafts (content staff only)."`
}

func (c *BlogListCmd) Run(a *app) error {
	get := a.client.Blog().GetPublic
	if c.Admin {
		get = a.client.Blog().GetAdmin
	}
	raw, err := get(a.ctx)
	if err != nil {
		return err
	}
	return a.print(raw)
}

type ContactsCmd struct {
	List    ContactsListCmd    `cmd:"" help:"List contact messages."`
	Read    ContactsReadCmd    `cmd:"" help:"Mark a message as read."`
	Respond ContactsRespondCmd `cmd:"" help:"Email a response to a message."`
}

type ContactsListCmd struct {
	Paging `embed:""`
}

func (c *ContactsListCmd) Run(a *app) error { return c.list(a, a.client.Contacts().Resource) }

type ContactsReadCmd struct {
	ID string `arg:"" help:"Message id."`
}

func (c *ContactsReadCmd) Run(a *app) error {
	return a.mutated(a.client.Contacts().MarkAsRead(a.ctx, c.ID))
}

type ContactsRespondCmd struct {
	ID       string `arg:"" help:"Message id."`
	Response string `arg:"" help:"Response text."`
}

func (c *ContactsRespondCmd) Run(a *app) error {
	return a.mutated(a.client.Contacts().Respond(a.ctx, c.ID, c.Response))
}

type UsersCmd struct {
	List UsersListCmd `cmd:"" help:"List users (super admin only)."`
}

type UsersListCmd struct {
	Paging `embed:""`
}

func (c *UsersListCmd) Run(a *app) error { return c.list(a, a.client.Users()) }

type StatsCmd struct{}

func (c *StatsCmd) Run(a *app) error {
	stats, err := a.client.AdminStats(a.ctx)
	if err != nil {
		return err
	}
	return a.print(stats)
}

type UploadCmd struct {
	Kind string `arg:"" enum:"image,service,tour,blog" help:"Upload folder."`
	File string `arg:"" type:"existingfile" help:"Image file."`
}

func (c *UploadCmd) Run(a *app) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := a.client.Uploads().Image(a.ctx, c.Kind, filepath.Base(c.File), f)
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("upload rejected (%d): %s", apiErr.StatusCode, apiErr.Message)
		}
		return err
	}
	a.client.ClearCache()
	return a.print(img)
}
