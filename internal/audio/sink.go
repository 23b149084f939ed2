package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Sink plays sound buffers. Playback is fire-and-forget: Play submits the
// buffer to the platform mixer and returns without waiting for completion.
type Sink interface {
	Play(buf Buffer)
}

// NopSink discards all playback. Used when no audio device is available
// (gameplay continues silently) and for remote SSH sessions.
type NopSink struct{}

// Play implements Sink.
func (NopSink) Play(Buffer) {}

// SpeakerSink plays buffers through the local audio device via a shared
// beep mixer. The OS audio subsystem mixes overlapping effects on its own;
// the game loop never blocks on playback.
type SpeakerSink struct {
	mixer *beep.Mixer
}

// NewSpeakerSink opens the audio device at the given sample rate.
// A failure here is non-fatal for the game: callers fall back to NopSink.
func NewSpeakerSink(sampleRate int) (*SpeakerSink, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	return &SpeakerSink{mixer: mixer}, nil
}

// Play implements Sink. The streamer is dropped from the mixer once the
// buffer is drained.
func (s *SpeakerSink) Play(buf Buffer) {
	if len(buf) == 0 {
		return
	}
	speaker.Lock()
	s.mixer.Add(&bufferStreamer{buf: buf})
	speaker.Unlock()
}

// Close stops all playback.
func (s *SpeakerSink) Close() {
	speaker.Clear()
}

// bufferStreamer adapts a mono Buffer to beep's stereo Streamer.
type bufferStreamer struct {
	buf Buffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}

var _ beep.Streamer = (*bufferStreamer)(nil)
