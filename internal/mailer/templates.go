package mailer

import (
	"fmt"
	"strings"
)

// PurchaseInfo carries the purchase fields used by notification emails.
type PurchaseInfo struct {
	CourseTitle   string
	FullName      string
	Email         string
	Phone         string
	Amount        float64
	TransactionID string
	Status        string
}

// ContactInfo carries contact-form fields for notification emails.
type ContactInfo struct {
	FullName       string
	Email          string
	Phone          string
	SecondaryPhone string
	Address        string
	Query          string
}

// InquiryInfo carries exclusive-plan inquiry fields.
type InquiryInfo struct {
	Name  string
	Email string
	Phone string
	Plan  string
	Query string
}

// OTPMessage builds the verification-code email.
func OTPMessage(to, otp string) Message {
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 500px; margin: 0 auto;">
<h1 style="color: #10B981;">Money Miners</h1>
<p>Your verification code is:</p>
<div style="letter-spacing: 8px; font-size: 36px; font-weight: 800; color: #10B981;">%s</div>
<p>This code expires in <strong>10 minutes</strong>.</p>
<p style="color: #666;">If you did not request this code, please ignore this email.</p>
</div>`, otp)

	return Message{
		To:      to,
		Subject: "Money Miners - Your Verification Code",
		HTML:    html,
	}
}

// PurchaseAdminMessage notifies the administrator about a new enrolment.
func PurchaseAdminMessage(to string, p PurchaseInfo) Message {
	html := fmt.Sprintf(`<div style="font-family: sans-serif; padding: 20px;">
<h2 style="color: #10B981;">New Enrolment Received</h2>
<p><strong>Course:</strong> %s</p>
<p><strong>Student:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Amount:</strong> &#8377;%.0f</p>
<p><strong>Transaction ID:</strong> <span style="background: #eee; padding: 2px 6px;">%s</span></p>
<hr/>
<p>Please login to the Admin Panel to verify this payment.</p>
</div>`, p.CourseTitle, p.FullName, p.Email, p.Phone, p.Amount, p.TransactionID)

	return Message{
		To:      to,
		Subject: fmt.Sprintf("NEW COURSE ENROLMENT: %s", p.CourseTitle),
		HTML:    html,
	}
}

// PurchaseUserMessage confirms receipt of a manual-payment claim.
func PurchaseUserMessage(p PurchaseInfo) Message {
	html := fmt.Sprintf(`<div style="font-family: sans-serif; padding: 20px;">
<h2 style="color: #10B981;">Your Registration is Pending Verification</h2>
<p>Hello <strong>%s</strong>,</p>
<p>Thank you for enrolling in <strong>%s</strong>. We have received your payment information.</p>
<p>Total Amount: &#8377;%.0f<br/>Transaction ID: %s</p>
<p>Our team will manually verify the payment details. Once verified (usually within 24 hours), the course will be unlocked in your dashboard.</p>
<p>Happy Learning!<br/><strong>Money Miners Team</strong></p>
</div>`, p.FullName, p.CourseTitle, p.Amount, p.TransactionID)

	return Message{
		To:      p.Email,
		Subject: fmt.Sprintf("Order Received: %s", p.CourseTitle),
		HTML:    html,
	}
}

// StatusUpdateMessage notifies a user that an admin verified (or
// rejected) their payment. The template differs per outcome.
func StatusUpdateMessage(p PurchaseInfo) Message {
	if p.Status == "success" {
		html := fmt.Sprintf(`<div style="font-family: sans-serif; padding: 20px;">
<h2 style="color: #10B981;">Success! Your Course is Unlocked</h2>
<p>Hello <strong>%s</strong>,</p>
<p>Great news! We have verified your payment for <strong>%s</strong>.</p>
<p>The course is now available in your Dashboard. You can start learning immediately.</p>
<p>Happy Learning!<br/><strong>Money Miners Team</strong></p>
</div>`, p.FullName, p.CourseTitle)

		return Message{
			To:      p.Email,
			Subject: fmt.Sprintf("Course Unlocked: %s", p.CourseTitle),
			HTML:    html,
		}
	}

	html := fmt.Sprintf(`<div style="font-family: sans-serif; padding: 20px;">
<h2 style="color: #f43f5e;">Update Regarding your Enrolment</h2>
<p>Hello <strong>%s</strong>,</p>
<p>We encountered an issue while verifying your payment for <strong>%s</strong>.</p>
<p><strong>Current Status:</strong> %s</p>
<p>Please contact our support team with your transaction details for assistance.</p>
<p>Best regards,<br/><strong>Money Miners Team</strong></p>
</div>`, p.FullName, p.CourseTitle, strings.ToUpper(p.Status))

	return Message{
		To:      p.Email,
		Subject: fmt.Sprintf("Update on your Enrolment: %s", p.CourseTitle),
		HTML:    html,
	}
}

// ContactAdminMessage forwards a contact-form submission to the admin.
func ContactAdminMessage(to string, c ContactInfo) Message {
	secondary := c.SecondaryPhone
	if secondary == "" {
		secondary = "N/A"
	}

	html := fmt.Sprintf(`<div style="font-family: sans-serif;">
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Secondary Phone:</strong> %s</p>
<p><strong>Address:</strong> %s</p>
<h3>Query:</h3>
<p>%s</p>
</div>`, c.FullName, c.Email, c.Phone, secondary, c.Address, c.Query)

	return Message{
		To:      to,
		Subject: fmt.Sprintf("New Contact Query from %s", c.FullName),
		HTML:    html,
	}
}

// ContactUserMessage confirms receipt of a contact-form submission.
func ContactUserMessage(c ContactInfo) Message {
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h1 style="color: #10B981;">Thank You, %s!</h1>
<p>Thank you for reaching out to Money Miners. We have received your message and our team will review it within 24 hours.</p>
<h3>Your Message</h3>
<p style="padding: 15px; background: #f5f5f5; border-radius: 8px;">%s</p>
<p style="color: #888; font-size: 13px;">This is an automated confirmation email. Please do not reply.</p>
</div>`, c.FullName, c.Query)

	return Message{
		To:      c.Email,
		Subject: "Thank You for Contacting Money Miners",
		HTML:    html,
	}
}

// InquiryAdminMessage forwards an exclusive-channel inquiry to the admin.
func InquiryAdminMessage(to string, i InquiryInfo) Message {
	query := ""
	if i.Query != "" {
		query = fmt.Sprintf(`<h3>User Query</h3><p>%s</p>`, i.Query)
	}

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h1 style="color: #10B981;">New Exclusive Inquiry</h1>
<h2 style="color: #FFD700;">Selected Plan: %s</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
%s
<p style="color: #888;">Respond to this inquiry as soon as possible to maintain customer engagement.</p>
</div>`, i.Plan, i.Name, i.Email, i.Phone, query)

	return Message{
		To:      to,
		Subject: fmt.Sprintf("EXCLUSIVE CHANNEL INQUIRY: %s Plan", i.Plan),
		HTML:    html,
	}
}

// InquiryUserMessage confirms receipt of an exclusive-channel inquiry.
func InquiryUserMessage(i InquiryInfo) Message {
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h1 style="color: #10B981;">Thank You, %s!</h1>
<p>Thank you for your interest in our <strong style="color: #FFD700;">%s</strong> exclusive channel plan.</p>
<p>Our team will review your inquiry within 24 hours and contact you via email or phone to discuss the plan details.</p>
<p style="color: #888; font-size: 13px;">This is an automated confirmation email. Please do not reply.</p>
</div>`, i.Name, i.Plan)

	return Message{
		To:      i.Email,
		Subject: "Thank You for Your Interest in Money Miners Exclusive Channel",
		HTML:    html,
	}
}
