package lib

import (
	"fmt"
	"log"
	"path"

	"etix/config"

	"github.com/yeqown/go-qrcode"
)

// SaveTokenQR renders an attendance token as a QR image under TEMP_DIR and
// returns the file path.
func SaveTokenQR(token string) (string, error) {
	qrc, err := qrcode.New(token)
	if err != nil {
		return "", err
	}
	filepath := path.Join(config.TempDir(), fmt.Sprintf("%s.jpeg", token))
	if err := qrc.Save(filepath); err != nil {
		log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
		return "", err
	}
	return filepath, nil
}
