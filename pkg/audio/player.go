package audio

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"go.uber.org/zap"
)

// Shared audio context; oto allows only one per process
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	globalAudioCtxErr  error
)

// Player plays a single PCM clip and can be stopped early
type Player struct {
	stopChan chan struct{}
	player   *oto.Player
	stopped  bool
	mu       sync.Mutex
	logger   *zap.SugaredLogger
}

// initAudioContext initializes the shared audio context once
func initAudioContext(format Format) error {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			globalAudioCtxErr = fmt.Errorf("init audio context: %w", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
	})

	if globalAudioCtxErr != nil {
		return globalAudioCtxErr
	}
	if globalAudioCtx == nil {
		return errors.New("audio context not ready")
	}
	return nil
}

// Play starts playing 16-bit little-endian PCM in the background.
// The first call fixes the sample rate and channel count for the process.
func Play(pcm []byte, format Format, logger *zap.SugaredLogger) (*Player, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	if err := initAudioContext(format); err != nil {
		return nil, err
	}

	p := &Player{
		stopChan: make(chan struct{}),
		logger:   logger,
	}

	p.mu.Lock()
	p.player = globalAudioCtx.NewPlayer(bytes.NewReader(pcm))
	p.mu.Unlock()

	go p.playOnce()

	return p, nil
}

func (p *Player) playOnce() {
	p.player.Play()

	for p.player.IsPlaying() {
		select {
		case <-p.stopChan:
			p.player.Pause()
			p.closePlayer()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}

	p.closePlayer()
}

func (p *Player) closePlayer() {
	if err := p.player.Close(); err != nil {
		p.logger.Warnw("Failed to close audio player", "error", err)
	}
}

// Stop stops the playback if it is still running
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.stopped {
		p.stopped = true
		close(p.stopChan)
	}
}
