package models

import (
	"testing"
	"time"
)

func TestNormalizePair(t *testing.T) {
	a, b := NormalizePair(42, 7)
	if a != 7 || b != 42 {
		t.Errorf("NormalizePair(42, 7) = %d, %d", a, b)
	}
	a, b = NormalizePair(7, 42)
	if a != 7 || b != 42 {
		t.Errorf("NormalizePair(7, 42) = %d, %d", a, b)
	}
}

func TestCouplePartnerID(t *testing.T) {
	c := Couple{User1ID: 7, User2ID: 42}
	if got := c.PartnerID(7); got != 42 {
		t.Errorf("PartnerID(7) = %d", got)
	}
	if got := c.PartnerID(42); got != 7 {
		t.Errorf("PartnerID(42) = %d", got)
	}
	if got := c.PartnerID(99); got != 0 {
		t.Errorf("PartnerID(99) = %d, want 0", got)
	}
}

func TestInvitationConsumable(t *testing.T) {
	now := time.Now()
	live := CoupleInvitation{ExpiresAt: now.Add(time.Hour)}
	if !live.Consumable(now) {
		t.Error("unused, unexpired invitation should be consumable")
	}

	used := CoupleInvitation{Used: true, ExpiresAt: now.Add(time.Hour)}
	if used.Consumable(now) {
		t.Error("used invitation must not be consumable")
	}

	expired := CoupleInvitation{ExpiresAt: now.Add(-time.Minute)}
	if expired.Consumable(now) {
		t.Error("expired invitation must not be consumable")
	}
}
