package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	gomail "gopkg.in/gomail.v2"
)

type dialerStub struct {
	sent []*gomail.Message
	err  error
}

func (d *dialerStub) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestSMTPMailer_Send_SetsHeadersAndReturnsID(t *testing.T) {
	d := &dialerStub{}
	m := &SMTPMailer{d: d, domain: "shop.test"}

	id, err := m.Send(context.Background(), Email{
		From:    "orders@shop.test",
		To:      []string{"vendor@example.com"},
		Cc:      []string{"house@shop.test"},
		Subject: "Vendor Order JAN1",
		Text:    "hello",
		HTML:    "<p>hello</p>",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(id, "<"))
	require.True(t, strings.HasSuffix(id, "@shop.test>"))

	require.Len(t, d.sent, 1)
	msg := d.sent[0]
	require.Equal(t, []string{id}, msg.GetHeader("Message-Id"))
	require.Equal(t, []string{"vendor@example.com"}, msg.GetHeader("To"))
	require.Equal(t, []string{"house@shop.test"}, msg.GetHeader("Cc"))
	require.Empty(t, msg.GetHeader("Bcc"))
}

func TestSMTPMailer_Send_Errors(t *testing.T) {
	d := &dialerStub{err: errors.New("connection refused")}
	m := &SMTPMailer{d: d, domain: "shop.test"}

	_, err := m.Send(context.Background(), Email{To: []string{"a@b.co"}})
	require.ErrorContains(t, err, "connection refused")

	_, err = m.Send(context.Background(), Email{Subject: "nobody"})
	require.ErrorContains(t, err, "no recipient")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Send(ctx, Email{To: []string{"a@b.co"}})
	require.ErrorIs(t, err, context.Canceled)
}
