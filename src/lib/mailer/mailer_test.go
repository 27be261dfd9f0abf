package mailer

import (
	"errors"
	"testing"

	"chb/src/lib"

	"github.com/stretchr/testify/assert"
)

type countingTransport struct {
	attempts int
	failures int
	err      error
}

func (c *countingTransport) Send(input *lib.SendMailInput) error {
	c.attempts++
	if c.attempts <= c.failures {
		return c.err
	}
	return nil
}

func TestSendWithRetrySucceedsFirstTry(t *testing.T) {
	ct := &countingTransport{}
	NewTransport(ct)
	defer NewTransport(defaultTransport{})

	err := SendWithRetry(&lib.SendMailInput{To: []string{"a@example.com"}})
	assert.Nil(t, err)
	assert.Equal(t, 1, ct.attempts)
}

func TestSendWithRetryRetriesTransientFailures(t *testing.T) {
	ct := &countingTransport{failures: 1, err: errors.New("connection reset by peer")}
	NewTransport(ct)
	defer NewTransport(defaultTransport{})

	err := SendWithRetry(&lib.SendMailInput{To: []string{"a@example.com"}})
	assert.Nil(t, err)
	assert.Equal(t, 2, ct.attempts)
}

func TestSendWithRetryGivesUpAfterMaxAttempts(t *testing.T) {
	ct := &countingTransport{failures: 10, err: errors.New("connection reset by peer")}
	NewTransport(ct)
	defer NewTransport(defaultTransport{})

	err := SendWithRetry(&lib.SendMailInput{To: []string{"a@example.com"}})
	assert.NotNil(t, err)
	assert.Equal(t, maxAttempts, ct.attempts)
}

func TestSendWithRetryStopsOnPermanentFailure(t *testing.T) {
	ct := &countingTransport{failures: 10, err: errors.New("550 mailbox unavailable")}
	NewTransport(ct)
	defer NewTransport(defaultTransport{})

	err := SendWithRetry(&lib.SendMailInput{To: []string{"a@example.com"}})
	assert.NotNil(t, err)
	assert.Equal(t, 1, ct.attempts)
}

func TestIsPermanent(t *testing.T) {
	assert.True(t, isPermanent(errors.New("550 mailbox unavailable")))
	assert.True(t, isPermanent(errors.New("535 Authentication credentials invalid")))
	assert.True(t, isPermanent(errors.New("invalid address: missing @")))
	assert.False(t, isPermanent(errors.New("connection reset by peer")))
	assert.False(t, isPermanent(errors.New("dial tcp: i/o timeout")))
	assert.False(t, isPermanent(errors.New("421 service not available, try again")))
}
