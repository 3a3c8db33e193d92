package sim

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeltheater/pixeltheater/color"
	"github.com/pixeltheater/pixeltheater/model"
	"github.com/pixeltheater/pixeltheater/model/modeltest"
)

func newSim(t *testing.T) *Sim {
	t.Helper()
	def := modeltest.RemappedTriangles()
	s := New(def.LedCount, 0, zerolog.Nop())
	m, err := model.New(def, s.Leds())
	require.NoError(t, err)
	s.SetGeometry(m)
	return s
}

func serve(t *testing.T, h http.HandlerFunc) (*httptest.Server, *websocket.Conn) {
	t.Helper()
	ts := httptest.NewServer(h)
	url := strings.Replace(ts.URL, "http", "ws", 1)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return ts, conn
}

func TestTopologySentOnAttach(t *testing.T) {
	s := newSim(t)
	ts, conn := serve(t, s.HandleFramesWS)
	defer ts.Close()
	defer conn.Close()

	var top map[string]any
	require.NoError(t, conn.ReadJSON(&top))
	assert.Equal(t, "topology", top["type"])
	assert.EqualValues(t, 12, top["led_count"])
	assert.EqualValues(t, 4, top["face_count"])
	assert.Len(t, top["points"], 12)
}

func TestFramesBroadcastOnShow(t *testing.T) {
	s := newSim(t)
	ts, conn := serve(t, s.HandleFramesWS)
	defer ts.Close()
	defer conn.Close()

	var top map[string]any
	require.NoError(t, conn.ReadJSON(&top))
	waitClients(t, s, 1)

	s.Leds()[0] = color.Red
	require.NoError(t, s.Show())

	var frame struct {
		Type    string `json:"type"`
		FrameID uint64 `json:"frame_id"`
		RGB     []byte `json:"rgb"`
	}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "frame", frame.Type)
	assert.EqualValues(t, 1, frame.FrameID)
	require.Len(t, frame.RGB, 36)
	assert.Equal(t, byte(255), frame.RGB[0])
	assert.Equal(t, byte(0), frame.RGB[1])
}

func TestControlDeliversMessages(t *testing.T) {
	s := newSim(t)
	got := make(chan map[string]any, 1)
	s.SetControlFunc(func(msg map[string]any) { got <- msg })

	ts, conn := serve(t, s.HandleControlWS)
	defer ts.Close()
	defer conn.Close()

	raw, _ := json.Marshal(map[string]any{"brightness": 64.0, "scene": "next"})
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, raw))

	select {
	case msg := <-got:
		assert.Equal(t, "next", msg["scene"])
	case <-time.After(2 * time.Second):
		t.Fatal("control message not delivered")
	}
	assert.Equal(t, uint8(64), s.Brightness())
}

func TestHealthEndpoint(t *testing.T) {
	s := newSim(t)
	rec := httptest.NewRecorder()
	s.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 12, resp["led_count"])
	assert.EqualValues(t, 4, resp["face_count"])
	assert.EqualValues(t, 0, resp["clients"])
}

func waitClients(t *testing.T, s *Sim, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.ClientCount() < n {
		if time.Now().After(deadline) {
			t.Fatalf("client count never reached %d", n)
		}
		time.Sleep(time.Millisecond)
	}
}
