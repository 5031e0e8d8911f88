package token

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestNewCodec_BadKey(t *testing.T) {
	_, err := NewCodec([]byte("short"))
	require.Error(t, err)
}

func TestCodec_IssueNotDeterministic(t *testing.T) {
	c, err := NewCodec(testKey)
	require.NoError(t, err)

	now := time.Unix(1700000000, 0)
	tok1 := c.Issue("1.2.3.4", "RU", now)
	tok2 := c.Issue("1.2.3.4", "RU", now)
	require.NotEqual(t, tok1, tok2, "random nonce must produce different tokens")

	p1, err := c.Open(tok1)
	require.NoError(t, err)
	p2, err := c.Open(tok2)
	require.NoError(t, err)
	require.Equal(t, p1, p2, "payloads of identical inputs must match")
}

func TestCodec_Payload(t *testing.T) {
	c, err := NewCodec(testKey)
	require.NoError(t, err)

	now := time.Unix(1700000000, 0)
	p, err := c.Open(c.Issue("10.20.30.40", "DE", now))
	require.NoError(t, err)

	assert.Equal(t, []byte{10, 20, 30, 40}, p[0:4])
	assert.Equal(t, []byte("DE"), p[4:6])
	assert.EqualValues(t, 1700000000, binary.BigEndian.Uint32(p[6:10]))
	assert.Equal(t, make([]byte, 6), p[10:16], "reserved bytes must stay zero")
}

func TestCodec_MalformedIP(t *testing.T) {
	c, err := NewCodec(testKey)
	require.NoError(t, err)

	tests := []struct {
		name string
		ip   string
	}{
		{"empty", ""},
		{"garbage", "not-an-ip"},
		{"octet overflow", "999.1.2.3"},
		{"partial", "1.2.3"},
		{"ipv6", "2001:db8::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := c.Open(c.Issue(tt.ip, "RU", time.Now()))
			require.NoError(t, err)
			assert.Equal(t, []byte{0, 0, 0, 0}, p[0:4], "malformed IP must encode as all-zero octets")
		})
	}
}

func TestCodec_CountryField(t *testing.T) {
	c, err := NewCodec(testKey)
	require.NoError(t, err)

	tests := []struct {
		country string
		want    []byte
	}{
		{"", []byte{0, 0}},
		{"R", []byte{'R', 0}},
		{"RU", []byte("RU")},
		{"RUS", []byte("RU")},
	}
	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			p, err := c.Open(c.Issue("1.2.3.4", tt.country, time.Now()))
			require.NoError(t, err)
			assert.Equal(t, tt.want, p[4:6])
		})
	}
}

func TestCodec_OpenGarbage(t *testing.T) {
	c, err := NewCodec(testKey)
	require.NoError(t, err)

	_, err = c.Open("!!!not base64!!!")
	require.Error(t, err)

	_, err = c.Open("AAAA")
	require.Error(t, err)

	// токен другого ключа не проходит аутентификацию
	other, err := NewCodec([]byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)
	_, err = other.Open(c.Issue("1.2.3.4", "RU", time.Now()))
	require.Error(t, err)
}
