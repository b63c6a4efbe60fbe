package usecase

import (
	"bytes"
	"html/template"
)

// otpEmailTemplate is the verification email sent during registration. The
// layout keeps a fixed banner, the recipient address in bold, the code in
// large type, and an expiry notice.
const otpEmailTemplate = `<html>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,sans-serif;">
  <div style="max-width:600px;margin:20px auto;background-color:#ffffff;border-radius:8px;overflow:hidden;">
    <div style="background-color:#4CAF50;padding:20px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;">Expensio</h1>
    </div>
    <div style="padding:30px;color:#333333;">
      <p>Hello,</p>
      <p>We received a request to verify the email address <b>{{.Email}}</b>.
      Use the code below to complete your registration:</p>
      <p style="text-align:center;font-size:32px;letter-spacing:6px;color:#FF5722;font-weight:bold;margin:30px 0;">{{.Code}}</p>
      <p>This code expires in {{.ExpiryMinutes}} minutes. If you did not request
      it, you can safely ignore this email.</p>
    </div>
    <div style="background-color:#f4f4f4;padding:15px;text-align:center;font-size:12px;color:#888888;">
      Need help? Contact us at {{.SupportEmail}}
    </div>
  </div>
</body>
</html>`

var otpEmailTmpl = template.Must(template.New("otp_email").Parse(otpEmailTemplate))

func (s *Usecase) renderOTPEmail(email, code string) (string, error) {
	data := map[string]any{
		"Email":         email,
		"Code":          code,
		"ExpiryMinutes": int(s.cfg.GetMinute("modules.identity.otp_ttl_minutes").Minutes()),
		"SupportEmail":  s.cfg.GetString("mail.support_address"),
	}

	var buf bytes.Buffer
	if err := otpEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
