// Package delayline provides a fixed-size circular delay buffer for
// audio effects.
package delayline

// Stereo is a circular buffer of stereo sample pairs. Reads are taken
// before the current input is written, so an offset of n returns the
// pair stored n writes ago and a freshly reset line yields silence for
// the first n samples.
type Stereo struct {
	buf      [][2]float32
	writePos int
}

// NewStereo creates a stereo delay line able to look back up to
// maxSamples writes.
func NewStereo(maxSamples int) *Stereo {
	return &Stereo{
		buf: make([][2]float32, maxSamples+1),
	}
}

// Len returns the buffer length in sample pairs.
func (d *Stereo) Len() int {
	return len(d.buf)
}

// Reset clears the buffer.
func (d *Stereo) Reset() {
	for i := range d.buf {
		d.buf[i] = [2]float32{}
	}
	d.writePos = 0
}

// Read returns the pair written offsetL and offsetR samples ago for the
// left and right channel respectively.
func (d *Stereo) Read(offsetL, offsetR int) (left, right float32) {
	n := len(d.buf)
	left = d.buf[(d.writePos+n-offsetL)%n][0]
	right = d.buf[(d.writePos+n-offsetR)%n][1]
	return left, right
}

// Write stores a pair and advances the line.
func (d *Stereo) Write(left, right float32) {
	d.buf[d.writePos] = [2]float32{left, right}
	d.writePos++
	if d.writePos >= len(d.buf) {
		d.writePos = 0
	}
}
