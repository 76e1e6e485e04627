package service

import (
	"context"
	"io"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"outreach/internal/apperror"
	"outreach/internal/model"
)

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("bad object id %q: %v", hex, err)
	}
	return id
}

// In-memory repository fakes. Setting failWith makes every method return
// that error, which is how the degraded-backend paths get exercised.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[primitive.ObjectID]*model.Account
	failWith error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[primitive.ObjectID]*model.Account)}
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, a := range f.accounts {
		if a.Email == account.Email {
			return nil, apperror.New(apperror.InvalidInput, "an account with this email already exists")
		}
	}
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	f.accounts[account.ID] = account
	return account, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if a, ok := f.accounts[id]; ok {
		return a, nil
	}
	return nil, apperror.New(apperror.NotFound, "account not found")
}

type fakeUserRepo struct {
	mu       sync.Mutex
	users    map[primitive.ObjectID]*model.User
	failWith error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, apperror.New(apperror.NotFound, "user not found")
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]*model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	u, ok := f.users[id]
	if !ok {
		return apperror.New(apperror.NotFound, "user not found")
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "role":
			u.Role = v.(string)
		case "subscribedToPrivateCalendar":
			u.SubscribedToPrivateCalendar = v.(bool)
		}
	}
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.users)), nil
}

type fakeEventRepo struct {
	mu       sync.Mutex
	events   map[primitive.ObjectID]*model.Event
	failWith error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[primitive.ObjectID]*model.Event)}
}

func (f *fakeEventRepo) add(event *model.Event) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	f.events[event.ID] = event
	return event.ID
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if e, ok := f.events[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, apperror.New(apperror.NotFound, "event not found")
}

func (f *fakeEventRepo) FindByStatus(ctx context.Context, status string) ([]*model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*model.Event
	for _, e := range f.events {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	e, ok := f.events[id]
	if !ok {
		return apperror.New(apperror.NotFound, "event not found")
	}
	if v, ok := fields["content"]; ok {
		e.Content = v.(*model.EventContent)
	}
	return nil
}

func (f *fakeEventRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	var n int64
	for _, e := range f.events {
		if e.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeRequestRepo struct {
	requests   []*model.Request
	lastFilter bson.M
	lastUpdate bson.M
	failWith   error
}

func (f *fakeRequestRepo) Find(ctx context.Context, filter bson.M) ([]*model.Request, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastFilter = filter
	var out []*model.Request
	for _, r := range f.requests {
		if t, ok := filter["type"]; ok && r.Type != t {
			continue
		}
		if s, ok := filter["status"]; ok && r.Status != s {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.lastUpdate = fields
	return nil
}

func (f *fakeRequestRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var n int64
	for _, r := range f.requests {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeNewsletterRepo struct {
	mu       sync.Mutex
	signups  []*model.NewsletterSignup
	failWith error
}

func (f *fakeNewsletterRepo) Create(ctx context.Context, signup *model.NewsletterSignup) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	if signup.ID.IsZero() {
		signup.ID = primitive.NewObjectID()
	}
	f.signups = append(f.signups, signup)
	return nil
}

func (f *fakeNewsletterRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.signups)), nil
}

type fakeActionRepo struct {
	mu       sync.Mutex
	counters map[string]int64
	entries  []*model.ActionEntry
	failWith error
}

func newFakeActionRepo() *fakeActionRepo {
	return &fakeActionRepo{counters: make(map[string]int64)}
}

func (f *fakeActionRepo) Insert(ctx context.Context, entry *model.ActionEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeActionRepo) Find(ctx context.Context, personID, action string) ([]*model.ActionEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*model.ActionEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		e := f.entries[i]
		if personID != "" && e.PersonID != personID {
			continue
		}
		if action != "" && e.Action != action {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeActionRepo) NextIndex(ctx context.Context, personID, action string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	key := personID + ":" + action
	f.counters[key]++
	return f.counters[key], nil
}

// fakeUploader records blob writes without touching disk.
type fakeUploader struct {
	mu         sync.Mutex
	configured bool
	stored     map[string]string // path -> contentType
	failWith   error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{configured: true, stored: make(map[string]string)}
}

func (f *fakeUploader) Configured() bool { return f.configured }

func (f *fakeUploader) Put(objectPath, contentType string, r io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return "", f.failWith
	}
	f.stored[objectPath] = contentType
	return "https://cdn.example.org/outreach-media/" + objectPath, nil
}
