package lib

import (
	"bytes"
	"fmt"
	"time"

	"chb/src/models"

	"github.com/jung-kurt/gofpdf"
)

var termsClauses = []string{
	"The driver must present the original identity document and a valid driving license at pickup.",
	"A refundable security deposit is collected at pickup and released within 14 days of return.",
	"The vehicle must be returned with the same fuel level as at pickup.",
	"Late returns beyond a 2-hour grace period are charged one additional rental day.",
	"The renter is liable for traffic fines and tolls incurred during the rental period.",
	"Cancellations made less than 48 hours before pickup forfeit the deposit.",
}

// RenderConfirmationPDF produces the booking confirmation document. Output is
// deterministic for the same record and clock, so tests can compare bytes.
func RenderConfirmationPDF(b *models.BookingRecord, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// gofpdf needs both of these plus fixed dates for byte-reproducible output.
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetTitle(fmt.Sprintf("Booking Confirmation %s", b.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(24, 49, 83)
	pdf.CellFormat(0, 12, "Silver Hire", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 6, "Booking Confirmation", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Booking Reference: %s", b.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued: %s", pdfDate(b.CreatedAt)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	sectionHeader(pdf, "Customer")
	kvRow(pdf, "Name", orNA(b.CustomerName))
	kvRow(pdf, "Email", orNA(b.Email))
	kvRow(pdf, "Phone", orNA(b.Phone))
	kvRow(pdf, "Identity Document", fmt.Sprintf("%s (%s)", orNA(b.IDNumber), orNA(string(b.IDType))))
	pdf.Ln(4)

	sectionHeader(pdf, "Rental Details")
	kvRow(pdf, "Vehicle Category", orNA(b.CarType))
	kvRow(pdf, "Pickup Date", pdfDate(b.PickupDate))
	kvRow(pdf, "Return Date", pdfDate(b.ReturnDate))
	kvRow(pdf, "Pickup Location", orNA(b.PickupLocation))
	if b.DropoffLocation != "" {
		kvRow(pdf, "Dropoff Location", b.DropoffLocation)
	}
	if b.Notes != "" {
		kvRow(pdf, "Notes", b.Notes)
	}
	pdf.Ln(4)

	sectionHeader(pdf, "Documents & Deposit")
	kvRow(pdf, "Identity Document", uploadStatus(b.IDDocumentPath))
	kvRow(pdf, "Driving License", uploadStatus(b.DrivingLicensePath))
	kvRow(pdf, "Deposit Proof", uploadStatus(b.DepositProofPath))
	pdf.Ln(4)

	sectionHeader(pdf, "Terms & Conditions")
	pdf.SetFont("Helvetica", "", 9)
	for i, clause := range termsClauses {
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, clause), "", "L", false)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 5, "Questions? Contact us at support@silverhire.example.com or +1 555 0100.", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("(c) %d Silver Hire. All rights reserved.", now.Year()), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(24, 49, 83)
	pdf.CellFormat(0, 7, title, "B", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func kvRow(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(50, 6, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func uploadStatus(path string) string {
	if path != "" {
		return "Uploaded"
	}
	return "Pending"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// pdfDate renders N/A for zero or unparseable dates instead of failing.
func pdfDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("January 2, 2006")
}
