package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// PCM normalization constants.
const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

// Peak is one reported spectrum peak.
type Peak struct {
	Frequency float64
	Magnitude float64
}

// readMonoWAV decodes a WAV file into normalized float64 samples in
// [-1, 1], mixing multi-channel audio down to mono by averaging.
func readMonoWAV(path string, verbose bool) (samples []float64, sampleRate int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	format := buf.Format
	bitDepth := int(decoder.BitDepth)
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, bitDepth)
	}

	scale, err := pcmScale(bitDepth)
	if err != nil {
		return nil, 0, err
	}

	samples, err = mixToMono(buf, scale)
	if err != nil {
		return nil, 0, err
	}
	return samples, format.SampleRate, nil
}

// mixToMono converts an interleaved PCM buffer to normalized float64
// samples in [-1, 1], averaging channels down to mono.
func mixToMono(buf *audio.IntBuffer, scale float64) ([]float64, error) {
	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d", channels)
	}

	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for ch := 0; ch < channels; ch++ {
			sum += float64(buf.Data[i*channels+ch]) / scale
		}
		samples[i] = sum / float64(channels)
	}
	return samples, nil
}

// pcmScale returns the full-scale divisor for a PCM bit depth.
func pcmScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
}

// topPeaks returns the k strongest local maxima of the spectrum, paired
// with their frequencies and sorted by descending magnitude. Bin 0 (DC)
// and the Nyquist bin count as peaks when they dominate their single
// neighbor.
func topPeaks(spectrum, frequencies []float64, k int) []Peak {
	var peaks []Peak
	for i := range spectrum {
		if !isLocalMax(spectrum, i) {
			continue
		}
		peaks = append(peaks, Peak{Frequency: frequencies[i], Magnitude: spectrum[i]})
	}

	sort.Slice(peaks, func(a, b int) bool {
		return peaks[a].Magnitude > peaks[b].Magnitude
	})

	if k > len(peaks) {
		k = len(peaks)
	}
	if k < 0 {
		k = 0
	}
	return peaks[:k]
}

// isLocalMax reports whether bin i dominates its immediate neighbors.
func isLocalMax(spectrum []float64, i int) bool {
	if i > 0 && spectrum[i] <= spectrum[i-1] {
		return false
	}
	if i+1 < len(spectrum) && spectrum[i] < spectrum[i+1] {
		return false
	}
	return true
}
