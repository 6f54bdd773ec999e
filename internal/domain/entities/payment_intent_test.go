package entities

import (
	"testing"
	"time"
)

func TestIntentStatus_Terminal(t *testing.T) {
	if IntentStatusPending.Terminal() {
		t.Fatalf("pending must not be terminal")
	}
	for _, s := range []IntentStatus{IntentStatusApproved, IntentStatusRejected, IntentStatusExpired} {
		if !s.Terminal() {
			t.Fatalf("%s must be terminal", s)
		}
	}
	if IntentStatus("garbage").Terminal() {
		t.Fatalf("unknown status must not be terminal")
	}
}

func TestPaymentIntent_ExpiredBy(t *testing.T) {
	now := time.Now().UTC()
	p := PaymentIntent{ExpiresAt: now}

	if p.ExpiredBy(now) {
		t.Fatalf("deadline instant itself is not expired")
	}
	if !p.ExpiredBy(now.Add(time.Nanosecond)) {
		t.Fatalf("past deadline must be expired")
	}
}
