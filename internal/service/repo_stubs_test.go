package service_test

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"chatty/backend/internal/model"
)

// userRepoStub is an in-memory repository.UserRepository.
type userRepoStub struct {
	mu         sync.Mutex
	users      map[int64]*model.User
	nextID     int64
	getErr     error
	quotaErr   error
	quotaCalls int
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[int64]*model.User{}, nextID: 1}
}

func (r *userRepoStub) add(user model.User) *model.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	if user.PreferredLanguage == "" {
		user.PreferredLanguage = model.DefaultLanguage
	}
	stored := user
	r.users[user.ID] = &stored
	return &stored
}

func (r *userRepoStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	return r.add(user), nil
}

func (r *userRepoStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *userRepoStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *userRepoStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *userRepoStub) ListOthers(ctx context.Context, excludeID int64) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []model.User
	for _, user := range r.users {
		if user.ID != excludeID {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *userRepoStub) UpdateProfile(ctx context.Context, id int64, fullName *string, avatarURL *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	if fullName != nil {
		user.FullName = *fullName
	}
	if avatarURL != nil {
		user.AvatarURL = avatarURL
	}
	return nil
}

func (r *userRepoStub) UpdateTranslationSettings(ctx context.Context, id int64, enabled *bool, preferredLanguage *string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if enabled != nil {
		user.TranslationEnabled = *enabled
	}
	if preferredLanguage != nil {
		user.PreferredLanguage = *preferredLanguage
	}
	copied := *user
	return &copied, nil
}

func (r *userRepoStub) UpdateTranslationQuota(ctx context.Context, id int64, count int, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotaCalls++
	if r.quotaErr != nil {
		return r.quotaErr
	}
	user, ok := r.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	user.DailyTranslationCount = count
	user.LastTranslationDate = date
	return nil
}

// messageRepoStub is an in-memory repository.MessageRepository.
type messageRepoStub struct {
	mu       sync.Mutex
	messages map[int64]*model.Message
	nextID   int64
	putErr   error
	putCalls int
}

func newMessageRepoStub() *messageRepoStub {
	return &messageRepoStub{messages: map[int64]*model.Message{}, nextID: 1}
}

func (r *messageRepoStub) add(message model.Message) *model.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.ID == 0 {
		message.ID = r.nextID
		r.nextID++
	}
	if message.Translations == nil {
		message.Translations = map[string]string{}
	}
	if message.OriginalLanguage == "" {
		message.OriginalLanguage = model.DefaultLanguage
	}
	stored := message
	r.messages[message.ID] = &stored
	return &stored
}

func (r *messageRepoStub) Create(ctx context.Context, message model.Message) (*model.Message, error) {
	return r.add(message), nil
}

func (r *messageRepoStub) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	message, ok := r.messages[id]
	if !ok {
		return nil, nil
	}
	copied := *message
	copied.Translations = cloneMap(message.Translations)
	return &copied, nil
}

func (r *messageRepoStub) ListConversation(ctx context.Context, userA, userB int64) ([]model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var messages []model.Message
	for _, message := range r.messages {
		if (message.SenderID == userA && message.ReceiverID == userB) ||
			(message.SenderID == userB && message.ReceiverID == userA) {
			messages = append(messages, *message)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages, nil
}

func (r *messageRepoStub) UpdateText(ctx context.Context, id int64, text string) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	message, ok := r.messages[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	message.Text = &text
	message.Translations = map[string]string{}
	copied := *message
	copied.Translations = cloneMap(message.Translations)
	return &copied, nil
}

func (r *messageRepoStub) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.messages[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.messages, id)
	return nil
}

func (r *messageRepoStub) DeleteConversation(ctx context.Context, userA, userB int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, message := range r.messages {
		if (message.SenderID == userA && message.ReceiverID == userB) ||
			(message.SenderID == userB && message.ReceiverID == userA) {
			delete(r.messages, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *messageRepoStub) GetTranslation(ctx context.Context, id int64, language string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	message, ok := r.messages[id]
	if !ok {
		return "", false, sql.ErrNoRows
	}
	text, ok := message.Translations[language]
	return text, ok, nil
}

func (r *messageRepoStub) PutTranslation(ctx context.Context, id int64, language, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.putCalls++
	if r.putErr != nil {
		return r.putErr
	}
	message, ok := r.messages[id]
	if !ok {
		return sql.ErrNoRows
	}
	if message.Translations == nil {
		message.Translations = map[string]string{}
	}
	message.Translations[language] = text
	return nil
}

func (r *messageRepoStub) CachedTranslations(ctx context.Context, ids []int64, language string) (map[int64]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cached := map[int64]string{}
	for _, id := range ids {
		if message, ok := r.messages[id]; ok {
			if text, found := message.Translations[language]; found {
				cached[id] = text
			}
		}
	}
	return cached, nil
}

func cloneMap(m map[string]string) map[string]string {
	copied := make(map[string]string, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return copied
}

// notifierStub records emitted realtime events.
type emittedEvent struct {
	userID  int64
	event   string
	payload interface{}
}

type notifierStub struct {
	mu     sync.Mutex
	events []emittedEvent
}

func (n *notifierStub) Emit(userID int64, event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, emittedEvent{userID: userID, event: event, payload: payload})
}

// providerStub is a canned ai.Provider.
type providerStub struct {
	mu       sync.Mutex
	response string
	err      error
	delay    func(ctx context.Context) error
	calls    int
}

func (p *providerStub) Name() string { return "stub" }

func (p *providerStub) Test(ctx context.Context) (string, error) {
	return p.Complete(ctx, "", "Hello world")
}

func (p *providerStub) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.delay != nil {
		if err := p.delay(ctx); err != nil {
			return "", err
		}
	}
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func (p *providerStub) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
