package preview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialReload(t *testing.T, srvURL string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srvURL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial failed: %v", err)
	}
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ReloadMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return msg
}

func waitForClients(t *testing.T, rs *ReloadServer, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() < n {
		if time.Now().After(deadline) {
			t.Fatalf("client count stuck at %d, want %d", rs.ClientCount(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestReloadBroadcast(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()
	defer rs.Close()

	conn := dialReload(t, srv.URL)
	defer conn.Close()
	waitForClients(t, rs, 1)

	rs.NotifyReload("index.yaml")
	msg := readMessage(t, conn)
	if msg.Type != ReloadTypeFull || msg.File != "index.yaml" {
		t.Errorf("reload message = %+v", msg)
	}

	rs.NotifyError("D002: mapping must carry a tag")
	msg = readMessage(t, conn)
	if msg.Type != ReloadTypeError || !strings.Contains(msg.Error, "D002") {
		t.Errorf("error message = %+v", msg)
	}

	rs.ClearError()
	msg = readMessage(t, conn)
	if msg.Type != ReloadTypeClear {
		t.Errorf("clear message = %+v", msg)
	}
}

func TestReloadClientTracking(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()
	defer rs.Close()

	if rs.ClientCount() != 0 {
		t.Fatalf("fresh server has %d clients", rs.ClientCount())
	}

	conn := dialReload(t, srv.URL)
	waitForClients(t, rs, 1)

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client not removed after disconnect, count = %d", rs.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestReloadClientScript(t *testing.T) {
	for _, want := range []string{"/_vellum/reload", "location.reload()", "vellum-error-overlay"} {
		if !strings.Contains(ReloadClientScript, want) {
			t.Errorf("client script missing %q", want)
		}
	}
}
