package entities

import (
	"testing"
	"time"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		in   string
		want OrderStatus
	}{
		{"received", OrderStatusReceived},
		{"on_the_way", OrderStatusOnTheWay},
		{"in_progress", OrderStatusPreparing},
		{"done", OrderStatusCompleted},
		{"bogus", OrderStatusReceived},
		{"", OrderStatusReceived},
	}
	for _, tc := range cases {
		if got := NormalizeStatus(tc.in); got != tc.want {
			t.Fatalf("NormalizeStatus(%q): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestNormalizeChannel(t *testing.T) {
	cases := []struct {
		in   string
		want OrderChannel
	}{
		{"apollo", OrderChannelApollo},
		{"lieferando", OrderChannelLieferando},
		{"liferando", OrderChannelLieferando},
		{"", OrderChannelWeb},
		{"something-else", OrderChannelWeb},
	}
	for _, tc := range cases {
		if got := NormalizeChannel(tc.in); got != tc.want {
			t.Fatalf("NormalizeChannel(%q): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestOrder_EffectiveEta(t *testing.T) {
	if got := (Order{EtaMin: 30, EtaAdjustMin: 5}).EffectiveEta(); got != 35 {
		t.Fatalf("expected 35, got %d", got)
	}
	if got := (Order{EtaMin: 30, EtaAdjustMin: -10}).EffectiveEta(); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
	if got := (Order{EtaMin: 10, EtaAdjustMin: -40}).EffectiveEta(); got != 0 {
		t.Fatalf("expected floor at 0, got %d", got)
	}
}

func TestOrder_PushHistory(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	var o Order

	o.PushHistory(OrderStatusReceived, now)
	o.PushHistory(OrderStatusReceived, now.Add(time.Minute))
	o.PushHistory(OrderStatusPreparing, now.Add(2*time.Minute))
	o.PushHistory(OrderStatusCompleted, now.Add(30*time.Minute))

	if len(o.History) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(o.History))
	}
	if o.History[0].Status != OrderStatusReceived || o.History[1].Status != OrderStatusPreparing || o.History[2].Status != OrderStatusCompleted {
		t.Fatalf("unexpected history: %+v", o.History)
	}
	if !o.History[0].At.Equal(now) {
		t.Fatalf("duplicate push must not update the timestamp")
	}
}
