// Package qrcode generates shareable QR codes for project pages.
package qrcode

import (
	"strconv"

	"wchub/config"
	"wchub/internal/domain/service"

	"github.com/pkg/errors"
	qrcodeLib "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// qrCodeService implements the service.QRCodeService interface.
type qrCodeService struct {
	size     int
	recovery qrcodeLib.RecoveryLevel
	baseURL  string
}

// NewQRCodeService is the constructor for qrCodeService.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	recovery := qrcodeLib.Medium
	baseURL := ""

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		recovery = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
		baseURL = cfg.QRCode.BaseURL
	}

	return &qrCodeService{
		size:     size,
		recovery: recovery,
		baseURL:  baseURL,
	}
}

// GenerateProjectQR generates a PNG QR code pointing at the project's public page.
func (s *qrCodeService) GenerateProjectQR(projectID int64) ([]byte, error) {
	target := s.baseURL + "/projects/" + strconv.FormatInt(projectID, 10)

	png, err := qrcodeLib.Encode(target, s.recovery, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode qr code")
	}

	return png, nil
}

func parseRecoveryLevel(level string) qrcodeLib.RecoveryLevel {
	switch level {
	case "low":
		return qrcodeLib.Low
	case "medium":
		return qrcodeLib.Medium
	case "high":
		return qrcodeLib.High
	case "highest":
		return qrcodeLib.Highest
	default:
		return qrcodeLib.Medium
	}
}
