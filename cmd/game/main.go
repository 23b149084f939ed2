package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/spacerocks/spacerocks/internal/audio"
	"github.com/spacerocks/spacerocks/internal/config"
	"github.com/spacerocks/spacerocks/internal/input"
	"github.com/spacerocks/spacerocks/internal/loop"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	seed := config.GetEnvInt64("SPACEROCKS_SEED", time.Now().UnixNano())
	rng := rand.New(rand.NewSource(seed))

	sink, bank, closeAudio := setupAudio(logger, rng)
	defer closeAudio()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	source := input.NewKeyboard(bufio.NewReader(os.Stdin))

	err = loop.Run(os.Stdout, loop.Options{
		Source: source,
		Sink:   sink,
		Bank:   bank,
		Logger: logger,
		Rand:   rng,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// setupAudio generates the effect bank and opens the audio device. A
// missing device falls back to silent play; bad synthesis parameters are
// a build defect and abort before the loop starts.
func setupAudio(logger *log.Logger, rng *rand.Rand) (audio.Sink, *audio.Bank, func()) {
	noop := func() {}

	if config.GetEnvBool("SPACEROCKS_NO_AUDIO", false) {
		return audio.NopSink{}, nil, noop
	}

	bank, err := audio.NewBank(audio.SampleRate, rng)
	if err != nil {
		logger.Fatal("sound effect generation failed", "err", err)
	}

	sink, err := audio.NewSpeakerSink(audio.SampleRate)
	if err != nil {
		logger.Warn("audio device unavailable, playing silent", "err", err)
		return audio.NopSink{}, nil, noop
	}
	return sink, bank, sink.Close
}
