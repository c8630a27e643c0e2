package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// signatureTolerance bounds how stale a signed notification may be. Gateways
// retry for days, but each retry is freshly signed; anything older is a replay.
const signatureTolerance = 5 * time.Minute

// VerifySignature checks a gateway signature header of the form
// "t=<unix>,v1=<hex hmac>[,v1=...]" against an HMAC-SHA256 of
// "<timestamp>.<payload>" keyed by the shared webhook secret.
func VerifySignature(payload []byte, header, secret string, now time.Time) error {
	header = strings.TrimSpace(header)

	if len(header) == 0 {
		return ErrInvalidSignature
	}

	timestamp, signatures, err := parseSignatureHeader(header)

	if err != nil {
		return ErrInvalidSignature
	}

	seconds, err := strconv.ParseInt(timestamp, 10, 64)

	if err != nil {
		return ErrInvalidSignature
	}

	signedAt := time.Unix(seconds, 0)

	if now.Sub(signedAt) > signatureTolerance || signedAt.Sub(now) > signatureTolerance {
		return ErrInvalidSignature
	}

	signedPayload := fmt.Sprintf("%s.%s", timestamp, string(payload))
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(signedPayload))
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, signature := range signatures {
		if hmac.Equal([]byte(signature), []byte(expected)) {
			return nil
		}
	}

	return ErrInvalidSignature
}

func parseSignatureHeader(header string) (string, []string, error) {
	parts := strings.Split(header, ",")

	var timestamp string
	signatures := []string{}

	for _, part := range parts {
		piece := strings.TrimSpace(part)

		if len(piece) == 0 {
			continue
		}

		keyValue := strings.SplitN(piece, "=", 2)

		if len(keyValue) != 2 {
			continue
		}

		key := strings.TrimSpace(keyValue[0])
		value := strings.TrimSpace(keyValue[1])

		if key == "t" {
			timestamp = value
		}

		if key == "v1" {
			signatures = append(signatures, value)
		}
	}

	if len(timestamp) == 0 || len(signatures) == 0 {
		return "", nil, ErrInvalidSignature
	}

	return timestamp, signatures, nil
}
