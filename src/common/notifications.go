package common

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"chb/src/config"
	"chb/src/lib"
	"chb/src/lib/mailer"
	"chb/src/models"
	"chb/src/types"
)

// DispatchBookingNotifications runs the deferred phase for one booking:
// package documents, render the confirmation, then notify customer and staff
// in parallel. Packaging always completes (or yields no archive) before any
// send starts, because attachments are embedded in the payloads.
func DispatchBookingNotifications(b *models.BookingRecord) error {
	archive, err := lib.BuildDocumentsArchive(b.IDNumber, b.DocumentPaths())
	if err != nil {
		// Proceed without an archive rather than aborting the whole flow.
		log.Printf("Could not build documents archive for %s: %s\n", b.ID, err.Error())
		archive = nil
	}
	if archive != nil {
		// Written to disk so the transport streams the file instead of holding
		// a second copy in memory; sends fall back to the bytes on failure.
		if _, err := archive.WriteToPath(config.GetTempDir()); err != nil {
			log.Printf("Could not write temp archive for %s: %s\n", b.ID, err.Error())
		}
	}

	pdfBytes, err := lib.RenderConfirmationPDF(b, time.Now())
	if err != nil {
		log.Printf("Could not render confirmation for %s: %s\n", b.ID, err.Error())
		pdfBytes = nil
	}

	// Settle both sends; a failure in one must not block the other.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = NotifyCustomer(b, pdfBytes, archive)
	}()
	go func() {
		defer wg.Done()
		errs[1] = NotifyAdmin(b, archive)
	}()
	wg.Wait()

	// Cleanup only after both sends have settled, plus a grace delay.
	if archive != nil && archive.Path != "" {
		scheduleArchiveCleanup(archive.Path)
	}

	var failed []string
	for _, err := range errs {
		if err != nil {
			failed = append(failed, err.Error())
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("booking %s notifications: %s", b.ID, strings.Join(failed, "; "))
	}
	return nil
}

func NotifyCustomer(b *models.BookingRecord, pdf []byte, archive *lib.DocumentsArchive) error {
	input := &lib.SendMailInput{
		Subject:  fmt.Sprintf("Silver Hire Booking Confirmation: %s", b.ID),
		From:     config.GetSenderEmail(),
		FromName: "Silver Hire",
		To:       []string{b.Email},
		Body:     customerEmailBody(b),
		Html:     true,
	}
	if pdf != nil {
		input.Attachments = append(input.Attachments, lib.Attachment{
			Filename: fmt.Sprintf("%s_confirmation.pdf", b.ID),
			Bytes:    pdf,
		})
	}
	if archive != nil {
		input.Attachments = append(input.Attachments, archive.AsAttachment())
	}
	if err := mailer.SendWithRetry(input); err != nil {
		log.Printf("[mailer] Error sending customer notification for %s: %s\n", b.ID, err.Error())
		return err
	}
	return nil
}

func NotifyAdmin(b *models.BookingRecord, archive *lib.DocumentsArchive) error {
	input := &lib.SendMailInput{
		Subject:  fmt.Sprintf("New Booking Received: %s", b.ID),
		From:     config.GetSenderEmail(),
		FromName: "Silver Hire Bookings",
		To:       []string{config.GetAdminEmail()},
		ReplyTo:  b.Email,
		Body:     adminEmailBody(b),
		Html:     true,
	}
	if archive != nil {
		input.Attachments = append(input.Attachments, archive.AsAttachment())
	}
	if err := mailer.SendWithRetry(input); err != nil {
		log.Printf("[mailer] Error sending admin notification for %s: %s\n", b.ID, err.Error())
		return err
	}
	return nil
}

// ResendConfirmation re-renders the document and resends the customer
// notification synchronously, for the send-confirmation endpoint.
func ResendConfirmation(b *models.BookingRecord) error {
	archive, err := lib.BuildDocumentsArchive(b.IDNumber, b.DocumentPaths())
	if err != nil {
		log.Printf("Could not build documents archive for %s: %s\n", b.ID, err.Error())
		archive = nil
	}
	pdfBytes, err := lib.RenderConfirmationPDF(b, time.Now())
	if err != nil {
		return err
	}
	return NotifyCustomer(b, pdfBytes, archive)
}

// DispatchInquiryNotifications notifies the assigned team and acknowledges the
// customer, independently.
func DispatchInquiryNotifications(i *models.ContactInquiry) error {
	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = mailer.SendWithRetry(&lib.SendMailInput{
			Subject:  fmt.Sprintf("[%s] New %s inquiry: %s", strings.ToUpper(string(i.Priority)), i.Department, i.Subject),
			From:     config.GetSenderEmail(),
			FromName: "Silver Hire Contact",
			To:       []string{config.GetAdminEmail()},
			ReplyTo:  i.Email,
			Body:     inquiryStaffEmailBody(i),
			Html:     true,
		})
	}()
	go func() {
		defer wg.Done()
		errs[1] = mailer.SendWithRetry(&lib.SendMailInput{
			Subject:  "We received your inquiry",
			From:     config.GetSenderEmail(),
			FromName: "Silver Hire",
			To:       []string{i.Email},
			Body:     inquiryAckEmailBody(i),
			Html:     true,
		})
	}()
	wg.Wait()

	var failed []string
	for _, err := range errs {
		if err != nil {
			failed = append(failed, err.Error())
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("inquiry %s notifications: %s", i.ID, strings.Join(failed, "; "))
	}
	return nil
}

func uploadBadge(path string) string {
	if path != "" {
		return `<span style="color:#1a7f37">&#10003; Uploaded</span>`
	}
	return `<span style="color:#9a6700">&#8987; Pending</span>`
}

func customerEmailBody(b *models.BookingRecord) string {
	return fmt.Sprintf(`
		<h2>Thank you for your booking, %s!</h2>
		<p>Your booking <b>%s</b> is confirmed. A confirmation document is attached.</p>
		<p>What: %s</p>
		<p>When: %s to %s</p>
		<p>Where: %s</p>
		<p>Document status:</p>
		<ul>
			<li>Identity document: %s</li>
			<li>Driving license: %s</li>
			<li>Deposit proof: %s</li>
		</ul>
		<p>Please bring your original documents to the pickup desk.</p>
		<p>This is a system-generated message. Do not reply to this email.</p>
		`,
		b.CustomerName,
		b.ID,
		b.CarType,
		b.PickupDate.Format("January 2, 2006"),
		b.ReturnDate.Format("January 2, 2006"),
		b.PickupLocation,
		uploadBadge(b.IDDocumentPath),
		uploadBadge(b.DrivingLicensePath),
		uploadBadge(b.DepositProofPath),
	)
}

func adminEmailBody(b *models.BookingRecord) string {
	return fmt.Sprintf(`
		<h2>New booking %s</h2>
		<p>Customer: %s &lt;%s&gt; %s</p>
		<p>Identity: %s (%s)</p>
		<p>Vehicle: %s</p>
		<p>Rental: %s to %s, pickup at %s</p>
		<p>Uploads: identity %s, license %s, deposit %s</p>
		<p>Notes: %s</p>
		`,
		b.ID,
		b.CustomerName,
		b.Email,
		b.Phone,
		b.IDNumber,
		b.IDType,
		b.CarType,
		b.PickupDate.Format("2006-01-02"),
		b.ReturnDate.Format("2006-01-02"),
		b.PickupLocation,
		uploadBadge(b.IDDocumentPath),
		uploadBadge(b.DrivingLicensePath),
		uploadBadge(b.DepositProofPath),
		orDash(b.Notes),
	)
}

func inquiryStaffEmailBody(i *models.ContactInquiry) string {
	return fmt.Sprintf(`
		<h2>New inquiry %s</h2>
		<p>From: %s &lt;%s&gt;</p>
		<p>Company: %s</p>
		<p>Department: %s (assigned to %s)</p>
		<p>Priority: <b>%s</b></p>
		<p>Subject: %s</p>
		<blockquote>%s</blockquote>
		`,
		i.ID,
		i.Name,
		i.Email,
		orDash(i.Company),
		i.Department,
		i.Assignee,
		i.Priority,
		i.Subject,
		i.Message,
	)
}

func inquiryAckEmailBody(i *models.ContactInquiry) string {
	return fmt.Sprintf(`
		<h2>We received your inquiry, %s</h2>
		<p>Reference: <b>%s</b></p>
		<p>Our %s will get back to you %s.</p>
		<p>This is a system-generated message. Do not reply to this email.</p>
		`,
		i.Name,
		i.ID,
		i.Assignee,
		types.ResponseTimeFor(i.Priority),
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// scheduleArchiveCleanup deletes the temp archive after a grace delay, so a
// file a transport may still be streaming is not pulled out from under it.
func scheduleArchiveCleanup(p string) {
	grace := 5 * time.Minute
	if _, err := lib.CreateOneTimeCronJob(time.Now().Add(grace), func(path string) {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Could not remove temp archive %s: %s\n", path, err.Error())
		}
	}, p); err != nil {
		log.Printf("Could not schedule cleanup for %s: %s\n", p, err.Error())
	}
}
