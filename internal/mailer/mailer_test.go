package mailer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/autogy/listing-service/internal/listing/domain"
)

type captureSender struct {
	messages []*gomail.Message
	err      error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	if c.err != nil {
		return c.err
	}
	c.messages = append(c.messages, m...)
	return nil
}

func newTestMailer(s sender) *Mailer {
	return &Mailer{sender: s, from: "no-reply@autogy.example", logger: zap.NewNop()}
}

func TestSendListingSold(t *testing.T) {
	capture := &captureSender{}
	m := newTestMailer(capture)

	err := m.SendListingSold("sales@autogymotors.gy", &domain.Listing{
		Title: "Toyota Premio 2018", Make: "Toyota", Model: "Premio", Year: 2018,
	})
	require.NoError(t, err)
	require.Len(t, capture.messages, 1)

	msg := capture.messages[0]
	assert.Equal(t, []string{"sales@autogymotors.gy"}, msg.GetHeader("To"))
	assert.Contains(t, msg.GetHeader("Subject")[0], "Toyota Premio 2018")
}

func TestSendDealerDecision_Approved(t *testing.T) {
	capture := &captureSender{}
	m := newTestMailer(capture)

	err := m.SendDealerDecision("info@berbicewheels.gy", &domain.Dealer{
		BusinessName: "Berbice Wheels",
	}, true)
	require.NoError(t, err)
	require.Len(t, capture.messages, 1)
	assert.Contains(t, capture.messages[0].GetHeader("Subject")[0], "approved")
}

func TestSend_WrapsDialerError(t *testing.T) {
	m := newTestMailer(&captureSender{err: errors.New("connection refused")})

	err := m.SendDealerDecision("info@berbicewheels.gy", &domain.Dealer{BusinessName: "Berbice Wheels"}, false)
	assert.ErrorContains(t, err, "failed to send")
}
