package grammar

// pctDecoderState enumerates the states of a PctDecoder.
type pctDecoderState int

const (
	pctDecoderAwaitFirstDigit pctDecoderState = iota
	pctDecoderAwaitSecondDigit
	pctDecoderDone
)

// PctDecoder decodes one "% HEXDIG HEXDIG" escape sequence into a single
// byte. The zero value is ready to accept the two characters following a
// recognized '%'. A fresh decoder is used for every escape.
type PctDecoder struct {
	state   pctDecoderState
	decoded byte
}

// Next feeds the decoder the next character of the escape sequence.
// It reports whether the character was a valid hexadecimal digit.
func (d *PctDecoder) Next(c byte) bool {
	if !HexDig.Contains(c) {
		return false
	}
	switch d.state {
	case pctDecoderAwaitFirstDigit:
		d.decoded = unhex(c) << 4
		d.state = pctDecoderAwaitSecondDigit
	case pctDecoderAwaitSecondDigit:
		d.decoded |= unhex(c)
		d.state = pctDecoderDone
	case pctDecoderDone:
		return false
	}
	return true
}

// Done reports whether the decoder has consumed both hexadecimal digits.
func (d *PctDecoder) Done() bool { return d.state == pctDecoderDone }

// Decoded returns the decoded byte. It is only meaningful once Done
// reports true.
func (d *PctDecoder) Decoded() byte { return d.decoded }

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
