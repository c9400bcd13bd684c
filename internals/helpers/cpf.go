package helper

import "strings"

// NormalizeCPF remove tudo que não for dígito (pontos, traços, espaços).
// A comparação de CPF no sistema inteiro é feita sobre essa forma.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsCPFShaped aceita qualquer sequência de 11 dígitos. O dígito verificador
// não é validado de propósito: a base legada contém inscrições antigas com
// CPF digitado errado e elas ainda precisam ser consultáveis.
func IsCPFShaped(cpf string) bool {
	return len(cpf) == 11
}
