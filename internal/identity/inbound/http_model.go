package inbound

import "encoding/json"

// TokenResponse is written without the JSON envelope so the payload matches
// the OAuth2-style password flow shape clients expect.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (t TokenResponse) Raw() any {
	return t
}

type RegisterRequest struct {
	Email string `json:"email"`
}

type RegisterResponse struct{}

func (RegisterResponse) Message() string {
	return "OTP sent to email. Please verify to complete registration."
}

// OTPCode is the verification code as clients submit it. Some clients send
// the code as a JSON number rather than a string; both forms decode to the
// code's decimal digits.
type OTPCode string

func (c *OTPCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = OTPCode(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = OTPCode(n.String())

	return nil
}

type RegisterVerifyRequest struct {
	Email    string  `json:"email"`
	OTP      OTPCode `json:"otp"`
	Password string  `json:"password"`
}

type RegisterVerifyResponse struct{}

func (RegisterVerifyResponse) Message() string {
	return "Registration successful. You can now log in."
}
