package service

// QRCodeService defines the interface for generating shareable QR codes.
type QRCodeService interface {
	// GenerateProjectQR generates a PNG QR code pointing at a project's
	// public page.
	GenerateProjectQR(projectID int64) ([]byte, error)
}
