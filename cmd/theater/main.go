package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pixeltheater/pixeltheater/config"
	"github.com/pixeltheater/pixeltheater/model"
	"github.com/pixeltheater/pixeltheater/model/modeltest"
	"github.com/pixeltheater/pixeltheater/platform"
	"github.com/pixeltheater/pixeltheater/platform/sim"
	"github.com/pixeltheater/pixeltheater/platform/spi"
	"github.com/pixeltheater/pixeltheater/scene"
	"github.com/pixeltheater/pixeltheater/scenes"
	"github.com/pixeltheater/pixeltheater/theater"
)

func main() {
	var (
		configPath = flag.String("config", "theater.yaml", "path to config file")
		driver     = flag.String("driver", "", "override driver: native | spi | sim")
		modelPath  = flag.String("model", "", "override model definition file")
		addr       = flag.String("addr", "", "override simulator listen address")
		fps        = flag.Int("fps", 0, "override target frames per second")
		dumpSchema = flag.Bool("schema", false, "print scene parameter schemas and exit")
		validate   = flag.Bool("validate", false, "validate the model and exit")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := loadConfig(*configPath)
	if *driver != "" {
		cfg.Driver = *driver
	}
	if *modelPath != "" {
		cfg.ModelPath = *modelPath
	}
	if *addr != "" {
		cfg.Sim.Addr = *addr
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		zerolog.SetGlobalLevel(lvl)
	}

	def := loadModel(cfg.ModelPath)

	if *dumpSchema {
		printSchemas(def)
		return
	}

	p := buildPlatform(cfg, def)
	m, err := model.New(def, p.Leds())
	if err != nil {
		log.Fatal().Err(err).Msg("model construction failed")
	}
	if s, ok := p.(*sim.Sim); ok {
		s.SetGeometry(m)
	}

	report := m.Validate(true, true)
	if !report.IsValid() {
		for _, e := range report.Errors {
			log.Warn().Str("model", def.Name).Msg(e)
		}
		if *validate {
			os.Exit(1)
		}
	}
	if *validate {
		log.Info().Str("model", def.Name).Int("checks", report.TotalChecks()).Msg("model valid")
		return
	}

	th := theater.New(p, m, log.Logger)
	th.AddScene(scenes.NewRainbow())
	th.AddScene(scenes.NewSparkle())
	th.AddScene(scenes.NewFaceWalk())

	p.SetBrightness(cfg.Brightness)
	p.SetMaxRefreshRate(uint16(cfg.FPS))

	start := cfg.Playback.StartWith
	if start == "" {
		start = th.SceneNames()[0]
	}
	if err := th.Play(start); err != nil {
		log.Fatal().Err(err).Msg("initial scene failed")
	}
	switch cfg.Playback.Mode {
	case "advance":
		th.SetPlaybackMode(theater.Advance, cfg.Playback.Interval.Std())
	case "random":
		th.SetPlaybackMode(theater.Random, cfg.Playback.Interval.Std())
	}

	if s, ok := p.(*sim.Sim); ok {
		go serveSim(s, th, cfg.Sim.Addr)
	}

	runLoop(th, cfg.FPS)

	if c, ok := p.(interface{ Close() error }); ok {
		_ = c.Close()
	}
	log.Info().Msg("stage stopped")
}

func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("config load failed, using defaults")
		return config.Default()
	}
	return cfg
}

func loadModel(path string) model.Definition {
	if path == "" {
		log.Info().Msg("no model file given, using the built-in demo model")
		return modeltest.BasicPentagon()
	}
	def, err := model.LoadDefinitionFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("model load failed")
	}
	return def
}

func buildPlatform(cfg *config.Config, def model.Definition) platform.Platform {
	switch cfg.Driver {
	case "spi":
		out, err := spi.Open(cfg.SPI.Port, def.LedCount, def.Hardware, log.Logger)
		if err != nil {
			log.Warn().Err(err).Msg("SPI init failed, falling back to native")
			return platform.NewNative(def.LedCount)
		}
		return out
	case "sim":
		return sim.New(def.LedCount, cfg.FPS, log.Logger)
	default:
		return platform.NewNative(def.LedCount)
	}
}

func serveSim(s *sim.Sim, th *theater.Theater, addr string) {
	s.SetControlFunc(func(msg map[string]any) {
		if v, ok := msg["scene"].(string); ok {
			switch v {
			case "next":
				if err := th.Next(); err != nil {
					log.Warn().Err(err).Msg("scene advance failed")
				}
			case "random":
				if err := th.PlayRandom(); err != nil {
					log.Warn().Err(err).Msg("random scene failed")
				}
			default:
				if err := th.Play(v); err != nil {
					log.Warn().Err(err).Str("scene", v).Msg("scene change failed")
				}
			}
		}
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleFramesWS)
	mux.HandleFunc("/control", s.HandleControlWS)
	mux.HandleFunc("/health", s.HandleHealth)

	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Info().Str("addr", addr).Msg("simulator server starting")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("simulator server crashed")
	}
}

func runLoop(th *theater.Theater, fps int) {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			if err := th.Update(); err != nil {
				log.Error().Err(err).Msg("frame update failed")
			}
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			return
		}
	}
}

func printSchemas(def model.Definition) {
	p := platform.NewNative(def.LedCount)
	m, err := model.New(def, p.Leds())
	if err != nil {
		log.Fatal().Err(err).Msg("model construction failed")
	}

	all := []scene.Scene{scenes.NewRainbow(), scenes.NewSparkle(), scenes.NewFaceWalk()}
	for _, s := range all {
		s.Bind(p, m)
		s.Setup()
		raw, err := s.Settings().Schema(s.Meta().Name, s.Meta().Description).JSON()
		if err != nil {
			log.Fatal().Err(err).Str("scene", s.Meta().Name).Msg("schema export failed")
		}
		fmt.Println(string(raw))
	}
}
