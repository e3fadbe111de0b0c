package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tokens de sesión HS256 firmados con SECRET_KEY. El subject es el id del
// usuario dueño de los datos.

func issueToken(secret []byte, userID uuid.UUID, email string, dur time.Duration) (string, time.Time, error) {
	head := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	exp := time.Now().Add(dur)
	claims := map[string]any{
		"sub":   userID.String(),
		"email": email,
		"exp":   exp.Unix(),
		"iat":   time.Now().Unix(),
		"iss":   "revpro",
	}
	b, err := json.Marshal(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	unsigned := head + "." + base64.RawURLEncoding.EncodeToString(b)
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(unsigned))
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	return unsigned + "." + sig, exp, nil
}

func verifyToken(secret []byte, tok string) (uuid.UUID, error) {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return uuid.Nil, fmt.Errorf("formato")
	}
	unsigned := parts[0] + "." + parts[1]
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return uuid.Nil, fmt.Errorf("sig")
	}
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(unsigned))
	if !hmac.Equal(sig, h.Sum(nil)) {
		return uuid.Nil, fmt.Errorf("firma")
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return uuid.Nil, fmt.Errorf("payload")
	}
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return uuid.Nil, fmt.Errorf("json")
	}
	sub, _ := m["sub"].(string)
	expF, _ := m["exp"].(float64)
	if time.Now().Unix() > int64(expF) {
		return uuid.Nil, fmt.Errorf("exp")
	}
	id, err := uuid.Parse(sub)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("sub")
	}
	return id, nil
}
