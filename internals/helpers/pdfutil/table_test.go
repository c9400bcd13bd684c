package pdfutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableGeneratesPDF(t *testing.T) {
	out, err := Table(
		"Relatório Geral de Inscritos",
		[]string{"Nome", "CPF", "Igreja"},
		[][]string{
			{"João da Silva", "12345678900", "Igreja Central"},
			{"Maria Souza", "98765432100", "Congregação Norte"},
		},
	)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestTableToleratesRaggedRows(t *testing.T) {
	out, err := Table(
		"Relatório",
		[]string{"A", "B", "C"},
		[][]string{
			{"só uma célula"},
			{"1", "2", "3", "extra ignorada"},
			{},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestTableEmptyRows(t *testing.T) {
	out, err := Table("Relatório Financeiro", []string{"Data", "Valor"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestTableRejectsNoColumns(t *testing.T) {
	_, err := Table("Relatório", nil, nil)
	assert.Error(t, err)
}
