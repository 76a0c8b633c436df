package feed

import (
	"encoding/base64"
	"encoding/json"
)

type cursorPayload struct {
	Offset int `json:"offset"`
}

// EncodeCursor packs an offset into an opaque page token. Clients must treat
// the token as a black box; the payload may change to a keyset cursor later.
func EncodeCursor(offset int) string {
	raw, err := json.Marshal(cursorPayload{Offset: offset})
	if err != nil {
		return ""
	}

	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeCursor unpacks a page token. Malformed tokens resolve to offset 0:
// a guessed or stale cursor restarts the feed instead of failing the request.
func DecodeCursor(token string) int {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0
	}

	payload := cursorPayload{}
	err = json.Unmarshal(raw, &payload)
	if err != nil {
		return 0
	}

	if payload.Offset < 0 {
		return 0
	}

	return payload.Offset
}
