package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPixPayload(t *testing.T) {
	payload := BuildPixPayload("fulano@example.com", "PROFOLI Admin", "Sao Paulo")

	assert.True(t, strings.HasPrefix(payload, "000201"))
	assert.Contains(t, payload, "br.gov.bcb.pix")
	assert.Contains(t, payload, "fulano@example.com")
	assert.Contains(t, payload, "5913PROFOLI Admin")
	assert.Contains(t, payload, "6009Sao Paulo")
	assert.Contains(t, payload, "5303986") // BRL
	assert.Contains(t, payload, "5802BR")

	// fecha com 6304 + CRC de 4 hex
	require.GreaterOrEqual(t, len(payload), 8)
	crcField := payload[len(payload)-8:]
	assert.Equal(t, "6304", crcField[:4])
	assert.Equal(t, crc16(payload[:len(payload)-4]), crcField[4:])
}

func TestBuildPixPayloadTruncatesNameAndCity(t *testing.T) {
	payload := BuildPixPayload("chave", strings.Repeat("N", 40), strings.Repeat("C", 40))

	assert.Contains(t, payload, "59"+"25"+strings.Repeat("N", 25))
	assert.Contains(t, payload, "60"+"15"+strings.Repeat("C", 15))
}

func TestTruncateKeepsRuneWhole(t *testing.T) {
	// "João" = J-o-ã(2 bytes)-o: cortar em 3 bytes cairia no meio do ã
	assert.Equal(t, "Jo", truncate("João", 3))
	assert.Equal(t, "Joã", truncate("João", 4))
	assert.Equal(t, "João", truncate("João", 25))
	assert.True(t, utf8.ValidString(truncate(strings.Repeat("ç", 20), 25)))

	// o payload inteiro segue UTF-8 válido mesmo com o corte caindo num acento
	payload := BuildPixPayload("chave", "Associação Beneficente São João", "São João del-Rei")
	assert.True(t, utf8.ValidString(payload))
}

func TestCRC16KnownVector(t *testing.T) {
	// vetor clássico do CRC16-CCITT (0xFFFF): "123456789" -> 0x29B1
	assert.Equal(t, "29B1", crc16("123456789"))
}
