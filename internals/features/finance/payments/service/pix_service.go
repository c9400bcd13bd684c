// file: internals/features/finance/payments/service/pix_service.go
package service

import (
	"fmt"
	"unicode/utf8"
)

// BuildPixPayload monta o BR Code estático (EMV) do PIX "copia e cola".
// Campos: formato + iniciação, conta br.gov.bcb.pix com a chave, categoria
// 0000, moeda 986 (BRL), país BR, nome e cidade do recebedor, txid "***",
// e o CRC16 de fechamento.
func BuildPixPayload(pixKey, holder, city string) string {
	holder = truncate(holder, 25)
	city = truncate(city, 15)

	account := emv("00", "br.gov.bcb.pix") + emv("01", pixKey)

	payload := "000201" +
		"010211" +
		emv("26", account) +
		"52040000" +
		"5303986" +
		"5802BR" +
		emv("59", holder) +
		emv("60", city) +
		emv("62", emv("05", "***")) +
		"6304"

	return payload + crc16(payload)
}

func emv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// truncate corta em no máximo max bytes (limite EMV do campo) sem partir
// rune no meio, para nome/cidade com acento.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// CRC16-CCITT (0x1021, init 0xFFFF), como manda o padrão BR Code.
func crc16(s string) string {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}
