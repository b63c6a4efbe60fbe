package email

import (
	"context"

	"github.com/expensio/expensio/internal/pkg/instrument"
	"github.com/expensio/expensio/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

// Mail delivers messages synchronously through the configured provider. A
// delivery failure is returned to the caller; nothing is queued or retried.
type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

func (m *Mail) Send(ctx context.Context, msg mail.Message) error {
	ctx, span := m.ins.Tracer("identity.outbound.email").Start(ctx, "Send")
	defer span.End()

	if err := m.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
