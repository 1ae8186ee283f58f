package handlers

import (
	"log"
	"net/http"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// HandleQR serves a PNG QR code pointing at the public join URL
func (ctx *Context) HandleQR(w http.ResponseWriter, r *http.Request) {
	png, err := qrcode.Encode(ctx.Config.PublicURL, qrcode.Medium, qrSize)
	if err != nil {
		log.Printf("HandleQR: encode %q: %v", ctx.Config.PublicURL, err)
		respondError(w, http.StatusInternalServerError, "could not generate QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}
