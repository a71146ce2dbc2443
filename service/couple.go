package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Woorigil/config"
	"Woorigil/dao"
	"Woorigil/models"
	"Woorigil/pkg/response"
	"Woorigil/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const invitationTTL = 24 * time.Hour

var _ ICoupleService = (*CoupleService)(nil)

type ICoupleService interface {
	CreateInvitation(ctx context.Context, userID int64) (*types.InvitationResp, error)
	AcceptInvitation(ctx context.Context, userID int64, token string) (*types.CoupleResp, error)
	Get(ctx context.Context, userID int64) (*types.CoupleResp, error)
	Delete(ctx context.Context, userID int64) error
}

type CoupleService struct {
	Config        *config.Config
	CoupleDao     *dao.Couples
	InvitationDao *dao.CoupleInvitations
	UserDao       *dao.Users
}

// CreateInvitation hands back the inviter's live invitation when one exists
// instead of minting tokens on every call.
func (s *CoupleService) CreateInvitation(ctx context.Context, userID int64) (*types.InvitationResp, error) {
	coupled, err := s.CoupleDao.IsCoupled(ctx, userID)
	if err != nil {
		return nil, err
	}
	if coupled {
		return nil, response.Unprocessable("Already coupled", "you are already in a couple")
	}

	inv, err := s.InvitationDao.FindLiveByInviter(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		inv = &models.CoupleInvitation{
			InviterID: userID,
			Token:     uuid.NewString(),
			ExpiresAt: time.Now().Add(invitationTTL),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.InvitationDao.Create(ctx, inv); err != nil {
			return nil, err
		}
	}

	return &types.InvitationResp{
		Token:     inv.Token,
		InviteURL: fmt.Sprintf("%s/invite/%s", s.Config.App.FrontendURL, inv.Token),
		ExpiresAt: inv.ExpiresAt,
	}, nil
}

// AcceptInvitation runs the full accept transition: the invitation must be
// consumable, the acceptor must not be the inviter, and neither party may
// already be coupled. The couple row and the used flag commit together.
func (s *CoupleService) AcceptInvitation(ctx context.Context, userID int64, token string) (*types.CoupleResp, error) {
	inv, err := s.InvitationDao.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Invitation not found")
		}
		return nil, err
	}

	if !inv.Consumable(time.Now()) {
		return nil, response.Unprocessable("Invitation not acceptable", "invitation is expired or already used")
	}
	if inv.InviterID == userID {
		return nil, response.Unprocessable("Invitation not acceptable", "cannot accept your own invitation")
	}

	for _, id := range []int64{userID, inv.InviterID} {
		coupled, err := s.CoupleDao.IsCoupled(ctx, id)
		if err != nil {
			return nil, err
		}
		if coupled {
			return nil, response.Unprocessable("Already coupled", "one of you is already in a couple")
		}
	}

	user1, user2 := models.NormalizePair(inv.InviterID, userID)
	couple := &models.Couple{User1ID: user1, User2ID: user2}
	if err := s.CoupleDao.CreateConsuming(ctx, couple, inv.ID); err != nil {
		// Lost a race: the invitation was consumed or the pair already
		// exists. Either way the accept no longer applies.
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Unprocessable("Invitation not acceptable", "invitation is expired or already used")
		}
		return nil, err
	}

	return s.coupleResp(ctx, couple, userID)
}

func (s *CoupleService) Get(ctx context.Context, userID int64) (*types.CoupleResp, error) {
	couple, err := s.CoupleDao.FindForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Couple not found")
		}
		return nil, err
	}
	return s.coupleResp(ctx, couple, userID)
}

func (s *CoupleService) Delete(ctx context.Context, userID int64) error {
	couple, err := s.CoupleDao.FindForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("Couple not found")
		}
		return err
	}
	return s.CoupleDao.Delete(ctx, couple.ID)
}

func (s *CoupleService) coupleResp(ctx context.Context, couple *models.Couple, userID int64) (*types.CoupleResp, error) {
	partner, err := s.UserDao.FindByID(ctx, couple.PartnerID(userID))
	if err != nil {
		return nil, err
	}
	return &types.CoupleResp{
		ID:        couple.ID,
		Partner:   userResp(*partner),
		CreatedAt: couple.CreatedAt,
	}, nil
}
