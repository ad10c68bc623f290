package corvid

import "testing"

func TestMoveToUCI(t *testing.T) {
	cases := []struct {
		m    Move
		want string
	}{
		{NewMove(SE2, SE4, DoublePush), "e2e4"},
		{NewMove(SA7, SA8, PromoteQ), "a7a8q"},
		{NewMove(SB7, SA8, PromoCaptureN), "b7a8n"},
		{NewMove(SE1, SG1, KingCastle), "e1g1"},
	}
	for _, c := range cases {
		if got := MoveToUCI(c.m); got != c.want {
			t.Errorf("MoveToUCI(%v) = %q, want %q", c.m, got, c.want)
		}
	}
}

func TestMoveFromUCIDisambiguatesPromotion(t *testing.T) {
	legal := []LegalMove{
		{Move: NewMove(SA7, SA8, PromoteQ)},
		{Move: NewMove(SA7, SB8, PromoCaptureQ)},
	}
	m, ok := MoveFromUCI("a7a8q", legal)
	if !ok || m.Kind() != PromoteQ {
		t.Fatalf("expected push-promotion, got %v (ok=%v)", m, ok)
	}
	m, ok = MoveFromUCI("a7b8q", legal)
	if !ok || m.Kind() != PromoCaptureQ {
		t.Fatalf("expected capture-promotion, got %v (ok=%v)", m, ok)
	}
}

func TestMoveFromUCIRejectsMalformed(t *testing.T) {
	if _, ok := MoveFromUCI("z9z9", nil); ok {
		t.Fatal("expected malformed UCI string to be rejected")
	}
	if _, ok := MoveFromUCI("e2e4x", nil); ok {
		t.Fatal("expected bad promotion letter to be rejected")
	}
}
