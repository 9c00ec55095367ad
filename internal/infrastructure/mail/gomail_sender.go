// Package mail implementa el envío de facturas por correo SMTP con gomail.
package mail

import (
	"bytes"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/pkg/config"
)

var _ billing.InvoiceMailer = (*GomailSender)(nil)

// GomailSender implementa billing.InvoiceMailer sobre SMTP.
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender construye el sender. El caller debe verificar
// cfg.Enabled() antes de registrarlo.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// SendInvoice envía el correo con el PDF adjunto.
func (s *GomailSender) SendInvoice(to, subject, body, pdfName string, pdf []byte) error {
	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(pdfName,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(pdf))
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: enviar factura: %w", err)
	}
	return nil
}
