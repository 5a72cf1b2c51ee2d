package slidez

import "testing"

func TestPhase_String_Idle(t *testing.T) {
	if s := PhaseIdle.String(); s != "idle" {
		t.Errorf("expected 'idle', got %q", s)
	}
}

func TestPhase_String_Transitioning(t *testing.T) {
	if s := PhaseTransitioning.String(); s != "transitioning" {
		t.Errorf("expected 'transitioning', got %q", s)
	}
}

func TestPhase_String_Unknown(t *testing.T) {
	unknown := Phase(999)
	if s := unknown.String(); s != "unknown" {
		t.Errorf("expected 'unknown', got %q", s)
	}
}

func TestPhase_Values(t *testing.T) {
	if PhaseIdle != 0 {
		t.Errorf("expected PhaseIdle=0, got %d", PhaseIdle)
	}
	if PhaseTransitioning != 1 {
		t.Errorf("expected PhaseTransitioning=1, got %d", PhaseTransitioning)
	}
}
