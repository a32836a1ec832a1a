package preview

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tagtree-dev/tagtree"
)

func TestReloadWebSocket(t *testing.T) {
	srv := NewServer(testSite(t), Options{})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + reloadPath
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for srv.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	var reloaded int
	srv.options.OnReload = func(clients int) { reloaded = clients }

	// Without a rebuild hook this broadcasts clear + reload.
	if err := srv.Rebuild(); err != nil {
		t.Fatalf("Rebuild() error: %v", err)
	}
	if reloaded != 1 {
		t.Errorf("OnReload clients = %d, want 1", reloaded)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var msg reloadMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal %q: %v", data, err)
		}
		if msg.Type == reloadFull {
			return
		}
		if msg.Type != reloadClear {
			t.Fatalf("unexpected message type %q", msg.Type)
		}
	}
}

func TestReloadErrorBroadcast(t *testing.T) {
	srv := NewServer(testSite(t), Options{
		Rebuild: func() (*tagtree.Site, error) {
			return nil, errors.New("content parse failed")
		},
	})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + reloadPath
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for srv.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := srv.Rebuild(); err == nil {
		t.Fatal("expected rebuild error")
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg reloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != reloadError {
		t.Fatalf("message type = %q, want %q", msg.Type, reloadError)
	}
	if !strings.Contains(msg.Error, "content parse failed") {
		t.Errorf("error payload = %q", msg.Error)
	}
}
