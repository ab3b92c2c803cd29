package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me link that opens a chat with the business number
// and the message pre-filled.
func WhatsAppLink(businessNumber, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, businessNumber)

	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, text)
}

type PartRequestMessage struct {
	CustomerName   string
	CustomerPhone  string
	CarBrand       string
	CarModel       string
	RequestedPart  string
	Year           string
	AdditionalInfo string
}

func FormatPartRequestMessage(m PartRequestMessage) string {
	car := strings.TrimSpace(m.CarBrand + " " + m.CarModel)
	if m.Year != "" {
		car += fmt.Sprintf(" (%s)", m.Year)
	}

	lines := []string{
		"🔧 *Part Request*",
		"Customer: " + m.CustomerName,
		"Phone: " + m.CustomerPhone,
		"Car: " + car,
		"Part: " + m.RequestedPart,
	}
	if m.AdditionalInfo != "" {
		lines = append(lines, "Notes: "+m.AdditionalInfo)
	}

	return strings.Join(lines, "\n")
}

type MechanicMessage struct {
	Name         string
	GarageName   string
	Location     string
	Phone        string
	Email        string
	ReferralCode string
}

func FormatMechanicMessage(m MechanicMessage) string {
	lines := []string{
		"🔧 *Mechanic Registration*",
		"Name: " + m.Name,
		"Garage: " + m.GarageName,
		"Location: " + m.Location,
		"Phone: " + m.Phone,
	}
	if m.Email != "" {
		lines = append(lines, "Email: "+m.Email)
	}
	lines = append(lines, "Referral Code: "+m.ReferralCode)

	return strings.Join(lines, "\n")
}
