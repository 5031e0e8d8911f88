// Package token выпускает токены доступа для бесплатного редиректа в бот.
package token

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"io"
	"net"
	"time"

	"github.com/pkg/errors"
)

const (
	// PayloadSize — размер открытой части токена до шифрования.
	// Всегда ровно 16 байт вне зависимости от заполненности полей.
	PayloadSize = 16

	nonceSize = 12
)

// Codec шифрует слепок запроса (IP, страна, время выпуска) одним
// процессным ключом AES-GCM и кодирует результат в base64url без паддинга.
// Ключ задаётся один раз при старте и после этого не меняется.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec принимает ключ длиной 16, 24 или 32 байта (AES-128/192/256).
func NewCodec(key []byte) (*Codec, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "Failed new aes cipher")
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "Failed new gcm")
	}
	return &Codec{aead: aead}, nil
}

// Issue собирает слепок и возвращает токен. Никогда не падает: битый IP
// кодируется нулевыми октетами, пустая страна — нулевыми байтами, так что
// выпуск токена не блокирует поток редиректа.
//
// Раскладка слепка: байты 0..3 — октеты IPv4, 4..5 — две буквы кода
// страны, 6..9 — unix-время выпуска (big-endian), 10..15 — резерв.
func (c *Codec) Issue(ip, country string, now time.Time) string {
	var p [PayloadSize]byte
	if v := net.ParseIP(ip); v != nil {
		if v4 := v.To4(); v4 != nil {
			copy(p[0:4], v4)
		}
	}
	for i := 0; i < 2 && i < len(country); i++ {
		p[4+i] = country[i]
	}
	binary.BigEndian.PutUint32(p[6:10], uint32(now.Unix()))

	// Свежий nonce на каждый вызов: повтор nonce при фиксированном ключе
	// ломает гарантии GCM.
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		panic(err)
	}
	out := make([]byte, 0, nonceSize+PayloadSize+c.aead.Overhead())
	out = append(out, nonce...)
	out = c.aead.Seal(out, nonce, p[:], nil)
	return base64.RawURLEncoding.EncodeToString(out)
}

// Open расшифровывает токен обратно в слепок. Выпускающей стороне не
// нужен: токен для неё непрозрачен и потребляется уже на стороне бота.
func (c *Codec) Open(tok string) ([PayloadSize]byte, error) {
	var p [PayloadSize]byte
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil {
		return p, errors.Wrap(err, "Failed decode token")
	}
	if len(raw) < nonceSize {
		return p, errors.New("token too short")
	}
	pt, err := c.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return p, errors.Wrap(err, "Failed open token")
	}
	if len(pt) != PayloadSize {
		return p, errors.New("unexpected payload size")
	}
	copy(p[:], pt)
	return p, nil
}
