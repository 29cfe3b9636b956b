package services

import (
	"strings"
	"testing"

	"motoassist-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func billableJob() *models.ServiceJob {
	job := newIntake("9999999999")
	job.Status = models.StatusBilled
	job.Items = testItems
	return job
}

func TestBuildBillTotals(t *testing.T) {
	bill := BuildBill(billableJob())

	require.Len(t, bill.Lines, 2)
	assert.Equal(t, 600.0, bill.Lines[0].Subtotal)
	assert.Equal(t, 800.0, bill.Lines[1].Subtotal)
	assert.Equal(t, 1400.0, bill.Total)
	assert.Equal(t, "Honda Activa 6G", bill.VehicleModel)
	assert.Equal(t, "Ravi Kumar", bill.CustomerName)
}

func TestBillTextLayout(t *testing.T) {
	text := BillText(billableJob())

	assert.Contains(t, text, "*MotoAssist Service Center - Service Bill*")
	assert.Contains(t, text, "Name: Ravi Kumar")
	assert.Contains(t, text, "License: MH12AB1234")
	assert.Contains(t, text, "*1. Engine oil change*")
	assert.Contains(t, text, "Subtotal: Rs.600.00")
	assert.Contains(t, text, "*TOTAL AMOUNT: Rs.1400.00*")
	assert.True(t, strings.HasSuffix(text, "Thank you for choosing MotoAssist Service Center!"))
}

func TestBillPDFProducesDocument(t *testing.T) {
	data, err := BillPDF(billableJob())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
