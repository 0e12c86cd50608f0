package handlers

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// HandleJoinQR renders a QR code for joining the room, encoding the
// public join URL with the room code prefilled.
func (ctx *Context) HandleJoinQR(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	room, err := ctx.Games.Room(code)
	if err != nil {
		ctx.writeError(w, err)
		return
	}

	// Code is immutable, no lock needed.
	joinURL := ctx.Config.PublicURL + "/?code=" + room.Code

	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		ctx.Logger.Error("encoding join QR", "code", code, "error", err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
