package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"edgenudge/internal/logger"
	"edgenudge/internal/models"
)

// ErrDemoRunning is returned by Start while the carousel is active.
var ErrDemoRunning = errors.New("auto-demo already running")

// DemoStatus is the carousel's externally visible state.
type DemoStatus struct {
	Running   bool   `json:"running"`
	StepIndex int    `json:"step_index"`
	Preset    string `json:"preset,omitempty"`
}

// DemoService cycles through the fixed presets: index 0 fires as soon
// as the carousel starts, then a ticker advances (i+1) mod len until
// stopped. Stopping resets to idle at index 0, so a restart always
// begins at "empty" again. Each step writes the preset reading into
// the sensor state, waits the settle delay, then runs the pipeline.
type DemoService struct {
	sensors  Sensors
	pipeline Pipeline
	cfg      DemoConfig
	log      *logger.Logger

	mu      sync.Mutex
	running bool
	index   int
	stop    chan struct{}
	done    chan struct{}
}

func NewDemoService(sensors Sensors, pipeline Pipeline, cfg DemoConfig, log *logger.Logger) *DemoService {
	return &DemoService{sensors: sensors, pipeline: pipeline, cfg: cfg, log: log}
}

// Start launches the carousel goroutine. Returns ErrDemoRunning when
// already active.
func (d *DemoService) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return ErrDemoRunning
	}
	d.running = true
	d.index = 0
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	go d.loop(d.stop, d.done)
	return nil
}

// Stop cancels the timer and resets to idle. Blocks until the loop has
// exited; stopping an idle carousel is a no-op.
func (d *DemoService) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	stop, done := d.stop, d.done
	d.mu.Unlock()

	close(stop)
	<-done

	d.mu.Lock()
	d.running = false
	d.index = 0
	d.mu.Unlock()
}

// Status reports the current carousel position.
func (d *DemoService) Status() DemoStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := DemoStatus{Running: d.running, StepIndex: d.index}
	if d.running {
		st.Preset = models.Presets[d.index].Name
	}
	return st
}

func (d *DemoService) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	// preset 0 fires immediately on start
	d.step(stop, 0)

	t := time.NewTicker(d.cfg.Interval)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
			d.mu.Lock()
			d.index = (d.index + 1) % len(models.Presets)
			idx := d.index
			d.mu.Unlock()
			d.step(stop, idx)
		}
	}
}

// step applies the preset reading, waits the settle delay, then runs
// the pipeline. A failed prediction aborts only this step; the
// carousel keeps going.
func (d *DemoService) step(stop <-chan struct{}, idx int) {
	p := models.Presets[idx]
	d.sensors.Set(p.Reading)

	if d.cfg.SettleDelay > 0 {
		settle := time.NewTimer(d.cfg.SettleDelay)
		defer settle.Stop()
		select {
		case <-stop:
			return
		case <-settle.C:
		}
	}

	if _, err := d.pipeline.RunCurrent(context.Background(), "demo:"+p.Name); err != nil && d.log != nil {
		d.log.Warnw("demo_step_prediction_failed", "err", err, "preset", p.Name)
	}
}
