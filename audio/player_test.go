package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/wav"
)

func TestToneClip(t *testing.T) {
	clip, err := ToneClip()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := toneRate.N(toneDuration)
	if clip.Len() != want {
		t.Errorf("Expected %d samples, got %d", want, clip.Len())
	}
	if clip.Format().SampleRate != toneRate {
		t.Errorf("Expected sample rate %d, got %d", toneRate, clip.Format().SampleRate)
	}

	// Samples must stay within [-1, 1]
	samples := make([][2]float64, 256)
	n, ok := clip.Streamer().Stream(samples)
	if !ok || n == 0 {
		t.Fatal("Expected tone to stream samples")
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
}

func TestLoadClipMissingFile(t *testing.T) {
	_, err := LoadClip(filepath.Join(t.TempDir(), "missing.wav"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadClipInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("not a wav file"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := LoadClip(path); err == nil {
		t.Error("Expected error for invalid wav data")
	}
}

func TestLoadClipRoundTrip(t *testing.T) {
	tone, err := ToneClip()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "eat.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := wav.Encode(f, tone.Streamer(), tone.Format()); err != nil {
		f.Close()
		t.Fatalf("Failed to encode wav: %v", err)
	}
	f.Close()

	clip, err := LoadClip(path)
	if err != nil {
		t.Fatalf("Failed to load clip: %v", err)
	}
	if clip.Len() != tone.Len() {
		t.Errorf("Expected %d samples, got %d", tone.Len(), clip.Len())
	}
	if clip.Format().SampleRate != tone.Format().SampleRate {
		t.Errorf("Expected sample rate %d, got %d", tone.Format().SampleRate, clip.Format().SampleRate)
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	clip, err := ToneClip()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Playing or closing before Initialize must be a no-op
	p := NewPlayer(clip)
	p.PlayEat()
	p.Close()

	Mute{}.PlayEat()
}
