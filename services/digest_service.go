package services

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/prateeksteaparty/vital-wellness/models"

	"gorm.io/gorm"
)

const (
	digestLimit        = 5
	digestSubject      = "Your Vital Wellness Summary & Food Guide"
	genericDescription = "Supports overall wellness."
	feedbackURL        = "https://vital-wellness.vercel.app/recommendations"
)

// DigestEmail is an assembled notification payload, ready to hand to the
// mail transport.
type DigestEmail struct {
	To      string
	Subject string
	HTML    string
}

type DigestService struct {
	db *gorm.DB
}

func NewDigestService(db *gorm.DB) *DigestService {
	return &DigestService{db: db}
}

// BuildDigest assembles the wellness summary email from the user's five most
// recent saved recommendations. Returns nil when the user has nothing saved,
// which the scheduler treats as "nothing to send". Read-only and safe to call
// repeatedly.
func (s *DigestService) BuildDigest(userID uint) (*DigestEmail, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	var recent []models.SavedRecommendation
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(digestLimit).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, nil
	}

	return &DigestEmail{
		To:      user.Email,
		Subject: digestSubject,
		HTML:    renderDigestHTML(&user, recent),
	}, nil
}

func renderDigestHTML(user *models.User, recent []models.SavedRecommendation) string {
	allergies := "None"
	if len(user.AllergyList()) > 0 {
		allergies = strings.Join(user.AllergyList(), ", ")
	}

	var b bytes.Buffer
	b.WriteString(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #111;">`)
	fmt.Fprintf(&b, `<h2 style="color: #065f46;">Hi %s</h2>`, user.Name)
	b.WriteString(`<p>Based on your recent activity on <strong>Vital</strong>, we have prepared a quick wellness summary for you.</p>`)
	b.WriteString(`<hr />`)
	b.WriteString(`<h3 style="color: #065f46;">Your Profile</h3><ul style="font-size: 14px;">`)
	fmt.Fprintf(&b, `<li><strong>Diet:</strong> %s</li>`, user.DietPreference)
	fmt.Fprintf(&b, `<li><strong>Allergies:</strong> %s</li>`, allergies)
	b.WriteString(`</ul><hr />`)
	b.WriteString(`<h3 style="color: #065f46;">Your Saved Recommendations</h3>`)

	for _, r := range recent {
		desc := r.Description
		if desc == "" {
			desc = genericDescription
		}
		b.WriteString(`<div style="margin-bottom: 16px;">`)
		fmt.Fprintf(&b, `<h4 style="margin: 0; color: #065f46;">%s <span style="font-size: 13px; color: #059669;">(%d%% confidence)</span></h4>`,
			r.NutrientName, int(math.Round(r.Confidence)))
		fmt.Fprintf(&b, `<p style="margin: 6px 0; font-size: 14px;">%s</p>`, desc)
		fmt.Fprintf(&b, `<p style="margin: 4px 0; font-size: 13px; color: #374151;"><strong>Food sources you can include:</strong><br/>%s</p>`,
			r.FoodSources)
		b.WriteString(`</div>`)
	}

	b.WriteString(`<hr />`)
	b.WriteString(`<p>You can give feedback anytime to help us improve future suggestions.</p>`)
	fmt.Fprintf(&b, `<a href="%s" style="display: inline-block; padding: 10px 16px; background: #10b981; color: white; text-decoration: none; border-radius: 6px; margin: 12px 0; font-weight: bold;">View &amp; Give Feedback</a>`,
		feedbackURL)
	b.WriteString(`<p style="font-size: 12px; color: #555; margin-top: 24px;">This is a wellness support summary, not a medical diagnosis.</p>`)
	b.WriteString(`<p>- Team Vital</p>`)
	b.WriteString(`</div>`)
	return b.String()
}
