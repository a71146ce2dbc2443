package types

import "time"

type InvitationResp struct {
	Token     string    `json:"token"`
	InviteURL string    `json:"inviteUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CoupleResp struct {
	ID        int64     `json:"id"`
	Partner   UserResp  `json:"partner"`
	CreatedAt time.Time `json:"createdAt"`
}
