package telemetry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	notify "github.com/bitly/go-notify"
)

func TestStatusHandler(t *testing.T) {
	handler := Status(func() interface{} {
		return map[string]interface{}{"tick": 42, "ships": 2}
	})

	req := httptest.NewRequest("GET", "/status", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}

	if payload["tick"].(float64) != 42 {
		t.Fatalf("tick = %v", payload["tick"])
	}
}

func TestPublishFrameReachesSubscriber(t *testing.T) {
	framechan := make(chan interface{}, 1)
	notify.Start(EventFrame, framechan)
	defer notify.Stop(EventFrame, framechan)

	PublishFrame([]byte(`{"tick":1}`))

	select {
	case frame := <-framechan:
		if frame.(string) != `{"tick":1}` {
			t.Fatalf("frame = %v", frame)
		}
	case <-time.After(time.Second):
		t.Fatal("frame never arrived")
	}
}

func TestPublishFrameDoesNotBlockWithoutViewers(t *testing.T) {
	done := make(chan struct{})
	go func() {
		PublishFrame([]byte(`{"tick":2}`))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked with no subscriber")
	}
}
