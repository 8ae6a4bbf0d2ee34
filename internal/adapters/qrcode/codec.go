package qrcode

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/google/uuid"
	qr "github.com/skip2/go-qrcode"

	"weddinghub/internal/domain"
)

// DefaultWidth is the rendered image edge length when the caller does not ask
// for a specific size.
const DefaultWidth = 256

type codec struct{}

// NewCodec returns the identity codec used for guest QR codes. Tokens are
// random UUIDv4 strings; images are rendered with skip2/go-qrcode.
func NewCodec() domain.IdentityCodec {
	return &codec{}
}

func (c *codec) IssueToken() string {
	return uuid.NewString()
}

func (c *codec) Encode(token string, opts domain.QREncodeOptions) ([]byte, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", domain.ErrEncoding)
	}
	level, err := recoveryLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	code, err := qr.New(token, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	if opts.DarkColor != "" {
		fg, err := parseHexColor(opts.DarkColor)
		if err != nil {
			return nil, err
		}
		code.ForegroundColor = fg
	}
	if opts.LightColor != "" {
		bg, err := parseHexColor(opts.LightColor)
		if err != nil {
			return nil, err
		}
		code.BackgroundColor = bg
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	png, err := code.PNG(width)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	return png, nil
}

func (c *codec) DataURL(token string, opts domain.QREncodeOptions) (string, error) {
	png, err := c.Encode(token, opts)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// recoveryLevel maps the wire level names onto the library's constants.
// Unknown levels are an error; the codec never substitutes a weaker level.
func recoveryLevel(level string) (qr.RecoveryLevel, error) {
	switch strings.ToUpper(level) {
	case "L":
		return qr.Low, nil
	case "M", "":
		return qr.Medium, nil
	case "Q":
		return qr.High, nil
	case "H":
		return qr.Highest, nil
	}
	return 0, fmt.Errorf("%w: unsupported error-correction level %q", domain.ErrEncoding, level)
}

// parseHexColor parses "#rgb" or "#rrggbb" into an opaque RGBA color.
func parseHexColor(s string) (color.Color, error) {
	hexPart := strings.TrimPrefix(s, "#")
	if len(hexPart) == 3 {
		hexPart = string([]byte{
			hexPart[0], hexPart[0],
			hexPart[1], hexPart[1],
			hexPart[2], hexPart[2],
		})
	}
	if len(hexPart) != 6 {
		return nil, fmt.Errorf("%w: invalid color %q", domain.ErrEncoding, s)
	}
	v, err := strconv.ParseUint(hexPart, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid color %q", domain.ErrEncoding, s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
