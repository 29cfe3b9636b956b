// utils/whatsapp.go
package utils

import "net/url"

// WhatsAppLink builds a click-to-chat deep link with a pre-filled message.
// The phone is reduced to bare digits and the text URL-encoded. Opening the
// link is up to the client; no delivery or read receipt is ever observed.
func WhatsAppLink(phone, text string) string {
	q := url.Values{}
	q.Set("phone", DigitsOnly(phone))
	q.Set("text", text)
	return "https://api.whatsapp.com/send?" + q.Encode()
}
