// Package wave writes mono 16-bit PCM samples as a canonical RIFF/WAVE file.
package wave

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
)

const (
	// HeaderSize is the size of the RIFF, fmt and data chunk headers.
	HeaderSize = 0x2C

	// SampleSize is the size in bytes of one sample.
	SampleSize = 2

	// Channels is the channel count declared in every header.
	Channels = 1
)

// A Writer buffers samples and writes them as a wave file on Close.
type Writer struct {
	w           io.WriteCloser
	sampleRate  int
	sampleCount int
	bb          bytes.Buffer
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NewWriter creates a new Writer with the given sample rate, onto which samples
// can be written with Write. Close must be called when done writing samples to
// finalize the wave data.
func NewWriter(w io.Writer, sampleRate int) *Writer {
	return &Writer{
		w:          nopCloser{Writer: w},
		sampleRate: sampleRate,
	}
}

// NewFile creates a new wave file at the given path with the given sample rate.
// Close must be called when done writing samples to finalize and close the
// file.
func NewFile(path string, sampleRate int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{w: f, sampleRate: sampleRate}, nil
}

// Header returns the header describing count mono 16-bit samples at rate Hz.
func Header(rate, count int) [HeaderSize]byte {
	dataSize := SampleSize * count
	const frameSize = SampleSize * Channels
	h := [HeaderSize]byte{
		'R', 'I', 'F', 'F',
		0, 0, 0, 0, //        length of rest of file
		'W', 'A', 'V', 'E',
		'f', 'm', 't', ' ',
		16, 0, 0, 0, //       size of fmt chunk
		1, 0, //              uncompressed format
		Channels, 0, //       channel count
		0, 0, 0, 0, //        sample rate
		0, 0, 0, 0, //        bytes per second
		frameSize, 0, //      bytes per sample frame
		SampleSize * 8, 0, // bits per sample
		'd', 'a', 't', 'a',
		0, 0, 0, 0, //        size of sample data
		// ...                sample data
	}

	binary.LittleEndian.PutUint32(h[0x04:], uint32(len(h)-8+dataSize))
	binary.LittleEndian.PutUint32(h[0x18:], uint32(rate))
	binary.LittleEndian.PutUint32(h[0x1C:], uint32(rate)*uint32(frameSize))
	binary.LittleEndian.PutUint32(h[0x28:], uint32(dataSize))
	return h
}

// SampleCount returns the number of samples written so far.
func (w *Writer) SampleCount() int {
	return w.sampleCount
}

// SampleRate returns the sample rate declared in the header.
func (w *Writer) SampleRate() int {
	return w.sampleRate
}

// Write buffers p as little-endian samples. It never fails; errors are
// reported by Close.
func (w *Writer) Write(p []int16) (n int, err error) {
	var buf [4096]byte

	for rest := p; len(rest) != 0; {
		chunk := len(buf) / SampleSize
		if chunk > len(rest) {
			chunk = len(rest)
		}
		for i, s := range rest[:chunk] {
			binary.LittleEndian.PutUint16(buf[i*SampleSize:], uint16(s))
		}
		w.bb.Write(buf[:chunk*SampleSize])
		rest = rest[chunk:]
	}

	w.sampleCount += len(p)
	return len(p), nil
}

// Close writes the header and the buffered samples, then closes the
// underlying writer. The underlying writer is closed even if writing fails.
func (w *Writer) Close() error {
	hdr := Header(w.sampleRate, w.sampleCount)
	_, err := w.w.Write(hdr[:])
	if err == nil {
		_, err = w.w.Write(w.bb.Bytes())
	}

	w.bb.Reset()
	w.sampleCount = 0

	if cerr := w.w.Close(); err == nil {
		err = cerr
	}
	return err
}
