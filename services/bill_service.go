// services/bill_service.go
package services

import (
	"bytes"
	"fmt"
	"time"

	"motoassist-backend/models"

	"github.com/jung-kurt/gofpdf"
)

// BillLine is one rendered row of the bill: description, parts, labor and
// the line subtotal.
type BillLine struct {
	Description string  `json:"description"`
	PartsCost   float64 `json:"partsCost"`
	LaborCost   float64 `json:"laborCost"`
	Subtotal    float64 `json:"subtotal"`
}

// Bill is the fixed-format rendering of a job's charges, used for both the
// on-screen preview and the PDF flattening. It is a pure function of the
// job data.
type Bill struct {
	BusinessName string     `json:"businessName"`
	Date         string     `json:"date"`
	CustomerName string     `json:"customerName"`
	Mobile       string     `json:"mobile"`
	Address      string     `json:"address"`
	VehicleModel string     `json:"vehicleModel"`
	LicensePlate string     `json:"licensePlate"`
	Lines        []BillLine `json:"lines"`
	Total        float64    `json:"total"`
}

// BuildBill assembles the bill layout from a job snapshot.
func BuildBill(job *models.ServiceJob) Bill {
	bill := Bill{
		BusinessName: businessName(),
		Date:         time.Now().Format("02/01/2006"),
		CustomerName: job.CustomerName,
		Mobile:       job.Mobile,
		Address:      job.Address,
		VehicleModel: job.VehicleModel.String(),
		LicensePlate: job.LicensePlate,
	}
	for _, item := range job.Items {
		bill.Lines = append(bill.Lines, BillLine{
			Description: item.Description,
			PartsCost:   item.PartsCost,
			LaborCost:   item.LaborCost,
			Subtotal:    item.PartsCost + item.LaborCost,
		})
	}
	bill.Total = job.TotalCost()
	return bill
}

// BillText renders the bill as the WhatsApp-shareable plain text the
// original produced.
func BillText(job *models.ServiceJob) string {
	bill := BuildBill(job)

	var b bytes.Buffer
	fmt.Fprintf(&b, "*%s - Service Bill*\n\n", bill.BusinessName)
	fmt.Fprintf(&b, "*Date:* %s\n\n", bill.Date)
	b.WriteString("*Customer Details*\n")
	fmt.Fprintf(&b, "Name: %s\n", bill.CustomerName)
	fmt.Fprintf(&b, "Mobile: %s\n\n", bill.Mobile)
	b.WriteString("*Vehicle Details*\n")
	fmt.Fprintf(&b, "Model: %s\n", bill.VehicleModel)
	fmt.Fprintf(&b, "License: %s\n\n", bill.LicensePlate)
	b.WriteString("*Service Details*\n")
	b.WriteString("--------------------\n")
	for i, line := range bill.Lines {
		fmt.Fprintf(&b, "*%d. %s*\n", i+1, line.Description)
		fmt.Fprintf(&b, "   Parts: Rs.%.2f\n", line.PartsCost)
		fmt.Fprintf(&b, "   Labor: Rs.%.2f\n", line.LaborCost)
		fmt.Fprintf(&b, "   Subtotal: Rs.%.2f\n\n", line.Subtotal)
	}
	b.WriteString("--------------------\n")
	fmt.Fprintf(&b, "*TOTAL AMOUNT: Rs.%.2f*\n\n", bill.Total)
	fmt.Fprintf(&b, "Thank you for choosing %s!", bill.BusinessName)
	return b.String()
}

// BillPDF flattens the bill to a single fixed-size A4 page.
func BillPDF(job *models.ServiceJob) ([]byte, error) {
	bill := BuildBill(job)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, bill.BusinessName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Service Bill - "+bill.Date, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Customer and vehicle blocks
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(95, 7, "Customer", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, "Vehicle", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 6, bill.CustomerName, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, bill.VehicleModel, "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, bill.Mobile, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, bill.LicensePlate, "", 1, "L", false, 0, "")
	if bill.Address != "" {
		pdf.CellFormat(0, 6, bill.Address, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Line-item table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Parts", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Labor", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range bill.Lines {
		pdf.CellFormat(90, 8, line.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", line.PartsCost), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", line.LaborCost), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", line.Subtotal), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(150, 10, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, fmt.Sprintf("%.2f", bill.Total), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
