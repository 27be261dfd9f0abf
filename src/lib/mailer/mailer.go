package mailer

import (
	"log"
	"os"
	"strings"
	"time"

	"chb/src/lib"
	awslib "chb/src/lib/aws"
)

// Transport hands a rendered message to an external mail service. Swappable so
// tests can count delivery attempts without a live SMTP server.
type Transport interface {
	Send(input *lib.SendMailInput) error
}

type defaultTransport struct{}

// Send routes attachment-free messages through SES when MAIL_PROVIDER=ses;
// everything else, and every message with attachments, goes through SMTP.
func (defaultTransport) Send(input *lib.SendMailInput) error {
	provider := os.Getenv("MAIL_PROVIDER")
	if provider == "ses" && len(input.Attachments) == 0 {
		return awslib.SESSendMessage(input.From, input.To, input.Subject, input.Body)
	}
	return lib.SendMail(input)
}

var transport Transport = defaultTransport{}

// NewTransport swaps the active transport. Used by tests.
func NewTransport(t Transport) {
	transport = t
}

func GetTransport() Transport {
	return transport
}

const (
	maxAttempts  = 3
	retryBackoff = 2 * time.Second
)

// SendWithRetry retries transient transport failures up to maxAttempts with
// doubling backoff. Permanent failures (rejected address, auth) fail at once.
func SendWithRetry(input *lib.SendMailInput) error {
	backoff := retryBackoff
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = GetTransport().Send(input)
		if err == nil {
			return nil
		}
		if isPermanent(err) {
			log.Printf("[mailer] permanent failure, not retrying: %s\n", err.Error())
			return err
		}
		if attempt < maxAttempts {
			log.Printf("[mailer] attempt %d/%d failed, retrying in %s: %s\n", attempt, maxAttempts, backoff, err.Error())
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return err
}

// isPermanent classifies errors not worth retrying: SMTP 5xx policy/auth
// rejections and malformed addresses.
func isPermanent(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"535", "550", "551", "553", "554", "invalid address", "auth"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
