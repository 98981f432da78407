// ABOUTME: Email bodies for account and contact-form flows
// ABOUTME: Verification, password reset, admin alerts, and acknowledgments
package mail

import (
	"fmt"
	"strings"
	"time"
)

const emailStyle = `body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background-color: #16a34a; color: white; padding: 30px; text-align: center; }
.content { padding: 30px; background-color: #f8f9fa; }
.button { background-color: #16a34a; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block; }
.footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }`

// SendVerificationEmail sends the welcome email with a verification link.
func (m *Mailer) SendVerificationEmail(to, userName, token string) bool {
	verificationURL := "https://cravekind.ca/verify-email?token=" + token

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><style>%s</style></head>
<body>
<div class="container">
  <div class="header">
    <h1>Welcome to CraveKind!</h1>
    <p>Satisfy your cravings, stay kind.</p>
  </div>
  <div class="content">
    <h2>Hi %s,</h2>
    <p>Thank you for joining CraveKind! We're excited to help you discover amazing plant-based alternatives to your favorite foods.</p>
    <p>To get started, please verify your email address by clicking the button below:</p>
    <p style="text-align: center; margin: 30px 0;"><a href="%s" class="button">Verify Email Address</a></p>
    <p>If the button doesn't work, copy and paste this link into your browser:</p>
    <p><a href="%s">%s</a></p>
    <p>Once verified, you'll be able to:</p>
    <ul>
      <li>Save your favorite alternatives</li>
      <li>Track your plant-based journey</li>
      <li>Get personalized recommendations</li>
      <li>Join our community of kind eaters</li>
    </ul>
  </div>
  <div class="footer">
    <p>Happy exploring!<br>The CraveKind Team</p>
    <p>If you didn't create an account, please ignore this email.</p>
  </div>
</div>
</body>
</html>`, emailStyle, userName, verificationURL, verificationURL, verificationURL)

	text := fmt.Sprintf(`Welcome to CraveKind!

Hi %s,

Thank you for joining CraveKind! Please verify your email address by clicking this link:
%s

Happy exploring!
The CraveKind Team`, userName, verificationURL)

	return m.Send(to, "Welcome to CraveKind - Verify Your Email", html, text)
}

// SendPasswordResetEmail sends a reset link that expires in one hour.
func (m *Mailer) SendPasswordResetEmail(to, userName, token string) bool {
	resetURL := "https://cravekind.ca/reset-password?token=" + token

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><style>%s</style></head>
<body>
<div class="container">
  <div class="header"><h1>Password Reset</h1></div>
  <div class="content">
    <h2>Hi %s,</h2>
    <p>We received a request to reset your CraveKind password. Click the button below to create a new password:</p>
    <p style="text-align: center; margin: 30px 0;"><a href="%s" class="button">Reset Password</a></p>
    <p>If the button doesn't work, copy and paste this link into your browser:</p>
    <p><a href="%s">%s</a></p>
    <p>This link will expire in 1 hour for security reasons.</p>
    <p>If you didn't request a password reset, please ignore this email.</p>
  </div>
  <div class="footer"><p>Stay kind!<br>The CraveKind Team</p></div>
</div>
</body>
</html>`, emailStyle, userName, resetURL, resetURL, resetURL)

	text := fmt.Sprintf(`Password Reset Request

Hi %s,

We received a request to reset your CraveKind password. Click this link to create a new password:
%s

This link will expire in 1 hour for security reasons.

If you didn't request a password reset, please ignore this email.

Stay kind!
The CraveKind Team`, userName, resetURL)

	return m.Send(to, "Reset Your CraveKind Password", html, text)
}

// SendContactAlert notifies the admin inbox about a new contact-form
// submission.
func (m *Mailer) SendContactAlert(firstName, lastName, email, message string, businessInquiry bool) bool {
	inquiry := "No"
	if businessInquiry {
		inquiry = "Yes"
	}

	text := fmt.Sprintf(`New Contact Form Submission

Name: %s %s
Email: %s
Message: %s

Submitted: %s UTC
Business Inquiry: %s`,
		firstName, lastName, email, message,
		time.Now().UTC().Format("2006-01-02 15:04:05"), inquiry)

	subject := fmt.Sprintf("New Contact Form Submission from %s %s", firstName, lastName)
	return m.Send(m.AdminEmail(), subject, textToHTML(text), text)
}

// SendContactAcknowledgment confirms receipt to the person who wrote in.
func (m *Mailer) SendContactAcknowledgment(to, firstName, message string) bool {
	text := fmt.Sprintf(`Hi %s,

Thank you for contacting CraveKind! We've received your message and will get back to you within 24 hours.

Your message:
%s

We're excited to help you on your plant-based journey!

Best regards,
The CraveKind Team`, firstName, message)

	return m.Send(to, "Thank you for contacting CraveKind!", textToHTML(text), text)
}

func textToHTML(text string) string {
	return strings.ReplaceAll(text, "\n", "<br>")
}
