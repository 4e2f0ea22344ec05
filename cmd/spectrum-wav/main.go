// Command spectrum-wav prints the dominant frequency peaks of a WAV file.
//
// Usage:
//
//	spectrum-wav input.wav
//	spectrum-wav -frame 8192 -peaks 10 input.wav
//	spectrum-wav -window none -verbose input.wav
//
// The tool decodes the file, mixes it to mono, applies an analysis window
// to the first frame, and reports the strongest bins of the one-sided
// magnitude spectrum together with their physical frequencies.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/dsp/window"

	spectral "github.com/tphakala/go-spectral"
)

const (
	// defaultFrameSize is the analysis frame length in samples. Any
	// length works; powers of two merely skip the chirp reduction.
	defaultFrameSize = 4096

	// defaultPeakCount is the number of reported spectral peaks.
	defaultPeakCount = 5

	// windowHann and windowNone are the accepted -window values.
	windowHann = "hann"
	windowNone = "none"
)

func main() {
	frameSize := flag.Int("frame", defaultFrameSize, "analysis frame length in samples")
	windowName := flag.String("window", windowHann, "analysis window: hann or none")
	peakCount := flag.Int("peaks", defaultPeakCount, "number of peaks to report")
	verbose := flag.Bool("verbose", false, "print format details")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: spectrum-wav [flags] input.wav")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *frameSize, *windowName, *peakCount, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(path string, frameSize int, windowName string, peakCount int, verbose bool) error {
	if frameSize < 1 {
		return fmt.Errorf("frame length must be positive, got %d", frameSize)
	}

	samples, sampleRate, err := readMonoWAV(path, verbose)
	if err != nil {
		return err
	}
	if len(samples) < frameSize {
		return fmt.Errorf("file has %d samples, need at least %d for one frame", len(samples), frameSize)
	}

	frame := append([]float64(nil), samples[:frameSize]...)
	switch windowName {
	case windowHann:
		window.Hann(frame)
	case windowNone:
	default:
		return fmt.Errorf("unknown window %q (want %s or %s)", windowName, windowHann, windowNone)
	}

	spectrum, err := spectral.AbsFFT(frame)
	if err != nil {
		return fmt.Errorf("spectrum analysis failed: %w", err)
	}

	info := spectral.Info(frameSize, float64(sampleRate))
	peaks := topPeaks(spectrum, info.Frequencies, peakCount)

	fmt.Printf("%s: %d Hz, frame %d samples, resolution %.3f Hz\n",
		path, sampleRate, frameSize, info.DeltaF)
	for i, p := range peaks {
		fmt.Printf("%2d. %9.2f Hz  magnitude %.6g\n", i+1, p.Frequency, p.Magnitude)
	}
	return nil
}
