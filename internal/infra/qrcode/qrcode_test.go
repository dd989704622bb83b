package qrcode

import (
	"bytes"
	"testing"

	"wchub/config"

	qrcodeLib "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateProjectQR(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 128,
			ErrorCorrectionLevel: "medium",
			BaseURL:              "https://womenconnect.example.com",
		},
	}

	svc := NewQRCodeService(cfg)

	png, err := svc.GenerateProjectQR(42)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output should be a PNG image")
}

func TestGenerateProjectQRDefaults(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(&config.Config{})

	png, err := svc.GenerateProjectQR(1)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestParseRecoveryLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, qrcodeLib.Low, parseRecoveryLevel("low"))
	assert.Equal(t, qrcodeLib.Medium, parseRecoveryLevel("medium"))
	assert.Equal(t, qrcodeLib.High, parseRecoveryLevel("high"))
	assert.Equal(t, qrcodeLib.Highest, parseRecoveryLevel("highest"))
	assert.Equal(t, qrcodeLib.Medium, parseRecoveryLevel("unknown"))
}
