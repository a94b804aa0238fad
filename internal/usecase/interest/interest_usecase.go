package interest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

const (
	DirectionSent     = "sent"
	DirectionReceived = "received"
)

const maxMessageLength = 500

type InterestUseCase struct {
	interestRepo repository.InterestRepository
	profileRepo  repository.ProfileRepository
	notifRepo    repository.NotificationRepository
	logger       *slog.Logger
}

func NewInterestUseCase(
	interestRepo repository.InterestRepository,
	profileRepo repository.ProfileRepository,
	notifRepo repository.NotificationRepository,
	logger *slog.Logger,
) *InterestUseCase {
	return &InterestUseCase{
		interestRepo: interestRepo,
		profileRepo:  profileRepo,
		notifRepo:    notifRepo,
		logger:       logger,
	}
}

type SendInterestRequest struct {
	ReceiverID int     `json:"receiver_id" binding:"required"`
	Message    *string `json:"message" binding:"omitempty,max=500"`
}

// SendInterest creates a pending interest from sender to receiver. The
// (sender, receiver) pair is unique; the reverse direction is a distinct edge
// and is deliberately not deduplicated against it.
func (uc *InterestUseCase) SendInterest(ctx context.Context, senderID int, req *SendInterestRequest) (*domain.Interest, error) {
	if req.ReceiverID == 0 {
		return nil, domain.ErrMissingReceiver
	}
	if req.ReceiverID == senderID {
		return nil, domain.ErrSelfInterest
	}
	if req.Message != nil && len(*req.Message) > maxMessageLength {
		return nil, domain.ErrMessageTooLong
	}

	receiverProfile, err := uc.profileRepo.GetByUserID(ctx, req.ReceiverID)
	if err != nil {
		return nil, err
	}

	// Pre-check for a friendlier error; the unique constraint on
	// (sender_id, receiver_id) is the real guard against races.
	existing, err := uc.interestRepo.GetByPair(ctx, senderID, req.ReceiverID)
	if err != nil && !errors.Is(err, domain.ErrInterestNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrInterestExists
	}

	interest := &domain.Interest{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Status:     domain.InterestPending,
		Message:    req.Message,
	}
	if err := uc.interestRepo.Create(ctx, interest); err != nil {
		return nil, err
	}

	uc.notifyInterestReceived(ctx, interest, receiverProfile)

	return interest, nil
}

// RespondToInterest transitions a pending interest to accepted or rejected.
// Only the receiver may respond, and the transition is terminal.
func (uc *InterestUseCase) RespondToInterest(ctx context.Context, interestID, responderID int, decision string) (*domain.Interest, error) {
	if !domain.ValidInterestDecision(decision) {
		return nil, domain.ErrInvalidDecision
	}

	interest, err := uc.interestRepo.GetByID(ctx, interestID)
	if err != nil {
		return nil, err
	}
	if interest.ReceiverID != responderID {
		return nil, domain.ErrNotInterestReceiver
	}
	if interest.Status != domain.InterestPending {
		return nil, domain.ErrInterestResponded
	}

	now := time.Now()
	if err := uc.interestRepo.UpdateStatus(ctx, interestID, decision, now); err != nil {
		return nil, err
	}
	interest.Status = decision
	interest.RespondedAt = &now

	uc.notifyInterestResponded(ctx, interest)

	return interest, nil
}

// IsMatched reports whether the two users hold an accepted interest in either
// direction. Matches are derived on read, never stored.
func (uc *InterestUseCase) IsMatched(ctx context.Context, userA, userB int) (bool, error) {
	return uc.interestRepo.HasAcceptedBetween(ctx, userA, userB)
}

// InterestItem joins an interest with the counterpart's minimal profile.
type InterestItem struct {
	ID          int                 `json:"id"`
	Profile     *domain.ProfileCard `json:"profile"`
	Message     *string             `json:"message"`
	Status      string              `json:"status"`
	SentAt      time.Time           `json:"sent_at"`
	RespondedAt *time.Time          `json:"responded_at"`
}

// ListInterests returns interests sent by or received by the user, newest
// first, each joined with the counterpart's profile card.
func (uc *InterestUseCase) ListInterests(ctx context.Context, userID int, direction, status string, limit, offset int) ([]*InterestItem, error) {
	var interests []*domain.Interest
	var err error

	switch direction {
	case DirectionSent:
		interests, err = uc.interestRepo.ListBySender(ctx, userID, status, limit, offset)
	case DirectionReceived:
		interests, err = uc.interestRepo.ListByReceiver(ctx, userID, status, limit, offset)
	default:
		return nil, domain.ErrInvalidDirection
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list interests: %w", err)
	}

	items := make([]*InterestItem, 0, len(interests))
	for _, in := range interests {
		counterpartID := in.ReceiverID
		if direction == DirectionReceived {
			counterpartID = in.SenderID
		}

		profile, err := uc.profileRepo.GetByUserID(ctx, counterpartID)
		if err != nil {
			uc.logger.Warn("counterpart profile missing for interest", "interest_id", in.ID, "user_id", counterpartID)
			continue
		}

		card := profile.Card()
		items = append(items, &InterestItem{
			ID:          in.ID,
			Profile:     &card,
			Message:     in.Message,
			Status:      in.Status,
			SentAt:      in.SentAt,
			RespondedAt: in.RespondedAt,
		})
	}

	return items, nil
}

// notifyInterestReceived is best-effort: a failed notification never rolls
// back or fails the interest write.
func (uc *InterestUseCase) notifyInterestReceived(ctx context.Context, interest *domain.Interest, receiverProfile *domain.Profile) {
	senderName := "Someone"
	if senderProfile, err := uc.profileRepo.GetByUserID(ctx, interest.SenderID); err == nil {
		senderName = senderProfile.Name
	}

	n := &domain.Notification{
		UserID:    receiverProfile.UserID,
		Type:      domain.NotificationInterestReceived,
		Title:     "New interest received",
		Message:   fmt.Sprintf("%s has shown interest in your profile", senderName),
		RelatedID: &interest.ID,
	}
	if err := uc.notifRepo.Create(ctx, n); err != nil {
		uc.logger.Error("failed to create interest notification", "interest_id", interest.ID, "error", err)
	}
}

func (uc *InterestUseCase) notifyInterestResponded(ctx context.Context, interest *domain.Interest) {
	receiverName := "Someone"
	if receiverProfile, err := uc.profileRepo.GetByUserID(ctx, interest.ReceiverID); err == nil {
		receiverName = receiverProfile.Name
	}

	verb := "accepted"
	if interest.Status == domain.InterestRejected {
		verb = "declined"
	}

	n := &domain.Notification{
		UserID:    interest.SenderID,
		Type:      domain.NotificationInterestResponded,
		Title:     "Interest " + verb,
		Message:   fmt.Sprintf("%s has %s your interest", receiverName, verb),
		RelatedID: &interest.ID,
	}
	if err := uc.notifRepo.Create(ctx, n); err != nil {
		uc.logger.Error("failed to create response notification", "interest_id", interest.ID, "error", err)
	}
}
