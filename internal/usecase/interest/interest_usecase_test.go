package interest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

type fakeInterestRepo struct {
	interests map[int]*domain.Interest
	nextID    int
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{interests: map[int]*domain.Interest{}, nextID: 1}
}

func (r *fakeInterestRepo) Create(_ context.Context, in *domain.Interest) error {
	for _, existing := range r.interests {
		if existing.SenderID == in.SenderID && existing.ReceiverID == in.ReceiverID {
			return domain.ErrInterestExists
		}
	}
	in.ID = r.nextID
	r.nextID++
	in.SentAt = time.Now()
	r.interests[in.ID] = in
	return nil
}

func (r *fakeInterestRepo) GetByID(_ context.Context, id int) (*domain.Interest, error) {
	in, ok := r.interests[id]
	if !ok {
		return nil, domain.ErrInterestNotFound
	}
	copied := *in
	return &copied, nil
}

func (r *fakeInterestRepo) GetByPair(_ context.Context, senderID, receiverID int) (*domain.Interest, error) {
	for _, in := range r.interests {
		if in.SenderID == senderID && in.ReceiverID == receiverID {
			copied := *in
			return &copied, nil
		}
	}
	return nil, domain.ErrInterestNotFound
}

func (r *fakeInterestRepo) UpdateStatus(_ context.Context, id int, status string, respondedAt time.Time) error {
	in, ok := r.interests[id]
	if !ok || in.Status != domain.InterestPending {
		return domain.ErrInterestResponded
	}
	in.Status = status
	in.RespondedAt = &respondedAt
	return nil
}

func (r *fakeInterestRepo) ListBySender(_ context.Context, senderID int, status string, limit, offset int) ([]*domain.Interest, error) {
	return r.list(func(in *domain.Interest) bool { return in.SenderID == senderID }, status), nil
}

func (r *fakeInterestRepo) ListByReceiver(_ context.Context, receiverID int, status string, limit, offset int) ([]*domain.Interest, error) {
	return r.list(func(in *domain.Interest) bool { return in.ReceiverID == receiverID }, status), nil
}

func (r *fakeInterestRepo) list(match func(*domain.Interest) bool, status string) []*domain.Interest {
	var out []*domain.Interest
	for _, in := range r.interests {
		if match(in) && (status == "" || in.Status == status) {
			copied := *in
			out = append(out, &copied)
		}
	}
	return out
}

func (r *fakeInterestRepo) HasAcceptedBetween(_ context.Context, a, b int) (bool, error) {
	for _, in := range r.interests {
		if in.Status != domain.InterestAccepted {
			continue
		}
		if (in.SenderID == a && in.ReceiverID == b) || (in.SenderID == b && in.ReceiverID == a) {
			return true, nil
		}
	}
	return false, nil
}

type fakeProfileRepo struct {
	byUserID map[int]*domain.Profile
}

func newFakeProfileRepo(profiles ...*domain.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{byUserID: map[int]*domain.Profile{}}
	for _, p := range profiles {
		r.byUserID[p.UserID] = p
	}
	return r
}

func (r *fakeProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	r.byUserID[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id int) (*domain.Profile, error) {
	for _, p := range r.byUserID {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID int) (*domain.Profile, error) {
	p, ok := r.byUserID[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *domain.Profile) error { return nil }

func (r *fakeProfileRepo) Search(_ context.Context, _ domain.SearchFilter, _, _ int) ([]*domain.Profile, error) {
	return nil, nil
}

func (r *fakeProfileRepo) Count(_ context.Context, _ domain.SearchFilter) (int, error) {
	return 0, nil
}

func (r *fakeProfileRepo) IncrementViewCount(_ context.Context, _ int) error { return nil }

type fakeNotifRepo struct {
	created []*domain.Notification
	fail    bool
}

func (r *fakeNotifRepo) Create(_ context.Context, n *domain.Notification) error {
	if r.fail {
		return errors.New("notification store down")
	}
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotifRepo) ListByUser(_ context.Context, _ int, _ bool, _, _ int) ([]*domain.Notification, error) {
	return r.created, nil
}

func (r *fakeNotifRepo) CountUnread(_ context.Context, _ int) (int, error) { return 0, nil }
func (r *fakeNotifRepo) MarkRead(_ context.Context, _, _ int) error        { return nil }
func (r *fakeNotifRepo) MarkAllRead(_ context.Context, _ int) error        { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProfiles() (*domain.Profile, *domain.Profile) {
	sender := &domain.Profile{ID: 1, UserID: 10, Name: "Arjun", Age: 30, City: "Pune", Gender: domain.GenderMale}
	receiver := &domain.Profile{ID: 2, UserID: 20, Name: "Priya", Age: 27, City: "Mumbai", Gender: domain.GenderFemale}
	return sender, receiver
}

func TestSendInterest(t *testing.T) {
	sender, receiver := testProfiles()
	interestRepo := newFakeInterestRepo()
	notifRepo := &fakeNotifRepo{}
	uc := NewInterestUseCase(interestRepo, newFakeProfileRepo(sender, receiver), notifRepo, testLogger())

	msg := "Hello!"
	created, err := uc.SendInterest(context.Background(), 10, &SendInterestRequest{ReceiverID: 20, Message: &msg})
	require.NoError(t, err)
	assert.Equal(t, domain.InterestPending, created.Status)
	assert.Equal(t, 10, created.SenderID)
	assert.Equal(t, 20, created.ReceiverID)

	require.Len(t, notifRepo.created, 1)
	assert.Equal(t, 20, notifRepo.created[0].UserID)
	assert.Equal(t, domain.NotificationInterestReceived, notifRepo.created[0].Type)
	assert.Contains(t, notifRepo.created[0].Message, "Arjun")
}

func TestSendInterestPreconditions(t *testing.T) {
	sender, receiver := testProfiles()
	uc := NewInterestUseCase(newFakeInterestRepo(), newFakeProfileRepo(sender, receiver), &fakeNotifRepo{}, testLogger())
	ctx := context.Background()

	_, err := uc.SendInterest(ctx, 10, &SendInterestRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingReceiver)

	_, err = uc.SendInterest(ctx, 10, &SendInterestRequest{ReceiverID: 10})
	assert.ErrorIs(t, err, domain.ErrSelfInterest)

	_, err = uc.SendInterest(ctx, 10, &SendInterestRequest{ReceiverID: 99})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestSendInterestDuplicateAndReverse(t *testing.T) {
	sender, receiver := testProfiles()
	uc := NewInterestUseCase(newFakeInterestRepo(), newFakeProfileRepo(sender, receiver), &fakeNotifRepo{}, testLogger())
	ctx := context.Background()

	_, err := uc.SendInterest(ctx, 10, &SendInterestRequest{ReceiverID: 20})
	require.NoError(t, err)

	// A second interest on the same ordered pair conflicts, whatever its
	// status.
	_, err = uc.SendInterest(ctx, 10, &SendInterestRequest{ReceiverID: 20})
	assert.ErrorIs(t, err, domain.ErrInterestExists)

	// The reverse direction is a distinct edge and is not deduplicated.
	_, err = uc.SendInterest(ctx, 20, &SendInterestRequest{ReceiverID: 10})
	assert.NoError(t, err)
}

func TestSendInterestSurvivesNotificationFailure(t *testing.T) {
	sender, receiver := testProfiles()
	notifRepo := &fakeNotifRepo{fail: true}
	uc := NewInterestUseCase(newFakeInterestRepo(), newFakeProfileRepo(sender, receiver), notifRepo, testLogger())

	created, err := uc.SendInterest(context.Background(), 10, &SendInterestRequest{ReceiverID: 20})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestRespondToInterest(t *testing.T) {
	sender, receiver := testProfiles()
	interestRepo := newFakeInterestRepo()
	notifRepo := &fakeNotifRepo{}
	uc := NewInterestUseCase(interestRepo, newFakeProfileRepo(sender, receiver), notifRepo, testLogger())
	ctx := context.Background()

	created, err := uc.SendInterest(ctx, 10, &SendInterestRequest{ReceiverID: 20})
	require.NoError(t, err)

	updated, err := uc.RespondToInterest(ctx, created.ID, 20, domain.InterestAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.InterestAccepted, updated.Status)
	require.NotNil(t, updated.RespondedAt)

	// Sender is notified of the outcome.
	require.Len(t, notifRepo.created, 2)
	assert.Equal(t, 10, notifRepo.created[1].UserID)
	assert.Equal(t, domain.NotificationInterestResponded, notifRepo.created[1].Type)

	matched, err := uc.IsMatched(ctx, 10, 20)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestRespondToInterestFailures(t *testing.T) {
	sender, receiver := testProfiles()
	uc := NewInterestUseCase(newFakeInterestRepo(), newFakeProfileRepo(sender, receiver), &fakeNotifRepo{}, testLogger())
	ctx := context.Background()

	created, err := uc.SendInterest(ctx, 10, &SendInterestRequest{ReceiverID: 20})
	require.NoError(t, err)

	_, err = uc.RespondToInterest(ctx, created.ID, 20, "maybe")
	assert.ErrorIs(t, err, domain.ErrInvalidDecision)

	_, err = uc.RespondToInterest(ctx, 999, 20, domain.InterestAccepted)
	assert.ErrorIs(t, err, domain.ErrInterestNotFound)

	// The sender cannot respond to their own interest.
	_, err = uc.RespondToInterest(ctx, created.ID, 10, domain.InterestAccepted)
	assert.ErrorIs(t, err, domain.ErrNotInterestReceiver)

	_, err = uc.RespondToInterest(ctx, created.ID, 20, domain.InterestRejected)
	require.NoError(t, err)

	// The transition is terminal; a second response conflicts.
	_, err = uc.RespondToInterest(ctx, created.ID, 20, domain.InterestAccepted)
	assert.ErrorIs(t, err, domain.ErrInterestResponded)
}

func TestListInterestsJoinsCounterpart(t *testing.T) {
	sender, receiver := testProfiles()
	uc := NewInterestUseCase(newFakeInterestRepo(), newFakeProfileRepo(sender, receiver), &fakeNotifRepo{}, testLogger())
	ctx := context.Background()

	_, err := uc.SendInterest(ctx, 10, &SendInterestRequest{ReceiverID: 20})
	require.NoError(t, err)

	sent, err := uc.ListInterests(ctx, 10, DirectionSent, "", 20, 0)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "Priya", sent[0].Profile.Name)
	assert.Equal(t, "Mumbai", sent[0].Profile.City)

	received, err := uc.ListInterests(ctx, 20, DirectionReceived, "", 20, 0)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "Arjun", received[0].Profile.Name)

	_, err = uc.ListInterests(ctx, 10, "outbound", "", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidDirection)
}
