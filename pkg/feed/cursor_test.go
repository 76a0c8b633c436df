package feed

import (
	"encoding/base64"
	"testing"
)

func TestCursorRoundTrip(t *testing.T) {
	offsets := []int{0, 1, 19, 20, 100, 12345, 1 << 30}

	for _, offset := range offsets {
		token := EncodeCursor(offset)
		if token == "" {
			t.Fatalf("empty token for offset %d", offset)
		}

		decoded := DecodeCursor(token)
		if decoded != offset {
			t.Errorf("round trip fail: encoded %d, decoded %d", offset, decoded)
		}
	}
}

type badCursorCase struct {
	name  string
	token string
}

var badCursorCases = []badCursorCase{
	{name: "NotBase64", token: "!!!not-base64!!!"},
	{name: "Base64NotJSON", token: base64.StdEncoding.EncodeToString([]byte("not json at all"))},
	{name: "JSONMissingField", token: base64.StdEncoding.EncodeToString([]byte(`{"page": 3}`))},
	{name: "NegativeOffset", token: base64.StdEncoding.EncodeToString([]byte(`{"offset": -5}`))},
	{name: "Empty", token: ""},
	{name: "JSONWrongType", token: base64.StdEncoding.EncodeToString([]byte(`{"offset": "ten"}`))},
}

func TestDecodeCursorDegradesToZero(t *testing.T) {
	for _, c := range badCursorCases {
		offset := DecodeCursor(c.token)
		if offset != 0 {
			t.Errorf("%s: expected offset 0, got %d", c.name, offset)
		}
	}
}
