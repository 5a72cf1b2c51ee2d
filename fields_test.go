package slidez

import (
	"testing"
	"time"
)

func TestKeySlider(t *testing.T) {
	field := KeySlider.Field("hero")
	if field.Key().Name() != "slider" {
		t.Errorf("expected key 'slider', got %q", field.Key().Name())
	}
}

func TestKeyIndex(t *testing.T) {
	field := KeyIndex.Field(3)
	if field.Key().Name() != "index" {
		t.Errorf("expected key 'index', got %q", field.Key().Name())
	}
}

func TestKeyPrevIndex(t *testing.T) {
	field := KeyPrevIndex.Field(2)
	if field.Key().Name() != "prev_index" {
		t.Errorf("expected key 'prev_index', got %q", field.Key().Name())
	}
}

func TestKeyReason(t *testing.T) {
	field := KeyReason.Field(string(RejectBusy))
	if field.Key().Name() != "reason" {
		t.Errorf("expected key 'reason', got %q", field.Key().Name())
	}
}

func TestKeyPeriod(t *testing.T) {
	field := KeyPeriod.Field(5700 * time.Millisecond)
	if field.Key().Name() != "period" {
		t.Errorf("expected key 'period', got %q", field.Key().Name())
	}
}

func TestKeyURL(t *testing.T) {
	field := KeyURL.Field("a.jpg")
	if field.Key().Name() != "url" {
		t.Errorf("expected key 'url', got %q", field.Key().Name())
	}
}

func TestKeyFormat(t *testing.T) {
	field := KeyFormat.Field(YAMLCodec{}.ContentType())
	if field.Key().Name() != "format" {
		t.Errorf("expected key 'format', got %q", field.Key().Name())
	}
}

func TestKeyCount(t *testing.T) {
	field := KeyCount.Field(4)
	if field.Key().Name() != "count" {
		t.Errorf("expected key 'count', got %q", field.Key().Name())
	}
}
