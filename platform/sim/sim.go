// Package sim is the browser-simulator platform: frames go out over
// websockets instead of a wire, with the sculpture topology sent to each
// client on attach so the viewer can place every LED in 3D.
package sim

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/pixeltheater/pixeltheater/model"
	"github.com/pixeltheater/pixeltheater/platform"
)

const writeDeadline = 200 * time.Millisecond

// ControlFunc receives decoded control messages from viewer clients.
type ControlFunc func(msg map[string]any)

// Sim embeds the native platform and broadcasts every shown frame to the
// attached websocket clients.
type Sim struct {
	*platform.Native

	mu      sync.RWMutex
	clients map[*websocket.Conn]bool

	geom      model.Geometry
	frameID   uint64
	start     time.Time
	minPeriod time.Duration
	lastSend  time.Time
	onControl ControlFunc
	logger    zerolog.Logger
}

var _ platform.Platform = (*Sim)(nil)

// New builds a simulator platform. maxFPS throttles the broadcast rate;
// Show itself is never delayed. Attach the geometry with SetGeometry once
// the model is constructed over this platform's buffer.
func New(numLeds int, maxFPS int, logger zerolog.Logger) *Sim {
	s := &Sim{
		Native:  platform.NewNativeWithLogger(numLeds, logger),
		clients: map[*websocket.Conn]bool{},
		start:   time.Now(),
		logger:  logger,
	}
	if maxFPS > 0 {
		s.minPeriod = time.Second / time.Duration(maxFPS)
	}
	return s
}

// SetGeometry attaches the sculpture view used for topology messages.
func (s *Sim) SetGeometry(geom model.Geometry) {
	s.mu.Lock()
	s.geom = geom
	s.mu.Unlock()
}

// SetControlFunc installs the handler for viewer control messages.
func (s *Sim) SetControlFunc(f ControlFunc) { s.onControl = f }

func (s *Sim) Show() error {
	if err := s.Native.Show(); err != nil {
		return err
	}
	s.mu.Lock()
	s.frameID++
	id := s.frameID
	now := time.Now()
	if s.minPeriod > 0 && now.Sub(s.lastSend) < s.minPeriod {
		s.mu.Unlock()
		return nil
	}
	s.lastSend = now
	s.mu.Unlock()

	s.broadcastFrame(id)
	return nil
}

// HandleFramesWS upgrades the connection, sends the topology once, then
// streams frames until the client goes away.
func (s *Sim) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	s.sendTopology(conn)

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// HandleControlWS accepts JSON control messages: brightness, scene changes,
// parameter writes. Decoding errors are skipped, not fatal.
func (s *Sim) HandleControlWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg map[string]any
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		s.applyControl(msg)
	}
}

// HandleHealth reports uptime and frame counters as JSON.
func (s *Sim) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	faces := 0
	if s.geom != nil {
		faces = s.geom.FaceCount()
	}
	resp := map[string]any{
		"frame_id":   s.frameID,
		"uptime_s":   time.Since(s.start).Seconds(),
		"led_count":  s.NumLeds(),
		"face_count": faces,
		"brightness": s.Brightness(),
		"clients":    len(s.clients),
	}
	s.mu.RUnlock()
	_ = json.NewEncoder(w).Encode(resp)
}

// ClientCount reports attached frame viewers.
func (s *Sim) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Sim) applyControl(msg map[string]any) {
	if v, ok := msg["brightness"].(float64); ok {
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		s.SetBrightness(uint8(v))
	}
	if s.onControl != nil {
		s.onControl(msg)
	}
}

type topologyMsg struct {
	Type         string       `json:"type"`
	LedCount     int          `json:"led_count"`
	FaceCount    int          `json:"face_count"`
	SphereRadius float64      `json:"sphere_radius"`
	Points       [][3]float64 `json:"points"`
}

func (s *Sim) sendTopology(conn *websocket.Conn) {
	s.mu.RLock()
	geom := s.geom
	s.mu.RUnlock()
	if geom == nil {
		return
	}
	msg := topologyMsg{
		Type:         "topology",
		LedCount:     geom.PointCount(),
		FaceCount:    geom.FaceCount(),
		SphereRadius: geom.SphereRadius(),
		Points:       make([][3]float64, geom.PointCount()),
	}
	for i := range msg.Points {
		p := geom.Point(i)
		msg.Points[i] = [3]float64{p.X(), p.Y(), p.Z()}
	}
	b, _ := json.Marshal(msg)
	conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		s.logger.Debug().Err(err).Msg("write topology")
	}
}

type frameMsg struct {
	Type    string `json:"type"`
	T       int64  `json:"t"`
	FrameID uint64 `json:"frame_id"`
	RGB     []byte `json:"rgb"`
}

func (s *Sim) broadcastFrame(id uint64) {
	leds := s.Leds()
	rgb := make([]byte, len(leds)*3)
	for i, c := range leds {
		rgb[i*3+0] = c.R
		rgb[i*3+1] = c.G
		rgb[i*3+2] = c.B
	}
	b, _ := json.Marshal(frameMsg{Type: "frame", T: time.Now().UnixNano(), FrameID: id, RGB: rgb})

	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			s.logger.Debug().Err(err).Msg("write frame")
		}
	}
}
